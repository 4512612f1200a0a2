// Package dataset provides the embedded example datasets consumed by the
// regression lab: Anscombe's quartet, four small groups with near-identical
// summary statistics but very different shapes.
package dataset

import (
	_ "embed"

	json "github.com/goccy/go-json"

	"github.com/edstats/linreg/pkg/errors"
)

//go:embed anscombe.json
var anscombeJSON []byte

// Group is one named dataset: an ordered sequence of (predictor, response)
// pairs. Groups are value types; callers own their copies and the Regressor
// never mutates them.
type Group struct {
	Name string    `json:"name"`
	X    []float64 `json:"x"`
	Y    []float64 `json:"y"`
}

// Len returns the number of observations in the group.
func (g Group) Len() int {
	return len(g.X)
}

// Anscombe returns the four groups of Anscombe's quartet (I through IV),
// eleven observations each.
func Anscombe() ([]Group, error) {
	var groups []Group
	if err := json.Unmarshal(anscombeJSON, &groups); err != nil {
		return nil, errors.Wrap(err, "decoding embedded anscombe data")
	}

	for _, g := range groups {
		if len(g.X) != len(g.Y) {
			return nil, errors.Newf("group %s: %d predictors but %d responses", g.Name, len(g.X), len(g.Y))
		}
	}

	return groups, nil
}

// GroupByName returns the named quartet group.
func GroupByName(name string) (Group, error) {
	groups, err := Anscombe()
	if err != nil {
		return Group{}, err
	}
	for _, g := range groups {
		if g.Name == name {
			return g, nil
		}
	}
	return Group{}, errors.Newf("no dataset group named %q", name)
}
