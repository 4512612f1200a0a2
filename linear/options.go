package linear

// Solver selects how FitMultiple solves the normal equations.
type Solver int

const (
	// SolverNormal inverts XᵀX directly. This mirrors the classic
	// closed-form derivation and is the default.
	SolverNormal Solver = iota
	// SolverQR solves the least-squares system via QR factorization,
	// which avoids forming the inverse explicitly.
	SolverQR
)

// Option is a function that configures a Regressor.
type Option func(*Regressor)

// WithSolver selects the solver used by FitMultiple.
func WithSolver(s Solver) Option {
	return func(r *Regressor) {
		r.solver = s
	}
}
