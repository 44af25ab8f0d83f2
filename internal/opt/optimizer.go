package opt

// Bounds is a box constraint shared by every dimension
type Bounds struct {
	Lower float64
	Upper float64
	Dim   int
}

// Result holds the best point found and its cost
type Result struct {
	Position []float64
	Cost     float64
}

// Optimizer defines a black-box minimization algorithm
type Optimizer interface {
	// Minimize searches bounds for a point with low objective value.
	// The objective may be called from several goroutines.
	Minimize(objective func([]float64) float64, bounds Bounds) (Result, error)
}
