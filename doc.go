// Package linreg provides a small ordinary least-squares linear regression
// library for Go, built as a pedagogical reference rather than a production
// modeling toolkit.
//
// The core lives in two packages: linear, which fits simple (closed-form)
// and multiple (normal-equations) regression models and produces
// predictions, and metrics, which scores predictions with R², RMSE and MAE.
// Around them sit the lab's collaborators: dataset ships Anscombe's quartet,
// compare checks fitted parameters against reference estimators, plot
// renders fits, and cmd/linreg ties everything into a CLI.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/edstats/linreg/linear"
//	)
//
//	func main() {
//	    reg := linear.NewRegressor()
//	    if err := reg.FitSimple([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8}); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    preds, err := reg.PredictSimple([]float64{5})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(preds) // [10]
//	}
//
// Models report structured errors (see pkg/errors): predicting before
// fitting yields a NotFittedError, rank-deficient design matrices surface
// ErrSingularMatrix, and degenerate numeric conditions propagate NaN/Inf
// values accompanied by warnings rather than silently failing.
package linreg
