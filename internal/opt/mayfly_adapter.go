package opt

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/mayfly"
)

// MinPopulation is the smallest population mayfly v0.1.0 accepts
const MinPopulation = 20

// MayflyAdapter wraps the external Mayfly library to conform to our Optimizer interface
type MayflyAdapter struct {
	maxIters int
	popSize  int
	seed     int64
}

// NewMayfly creates a new Mayfly optimizer adapter
func NewMayfly(maxIters, popSize int, seed int64) *MayflyAdapter {
	return &MayflyAdapter{
		maxIters: maxIters,
		popSize:  popSize,
		seed:     seed,
	}
}

// Minimize executes the Mayfly optimization using the external library
func (m *MayflyAdapter) Minimize(objective func([]float64) float64, bounds Bounds) (Result, error) {
	if bounds.Dim <= 0 {
		return Result{}, fmt.Errorf("invalid dimension %d", bounds.Dim)
	}
	if m.popSize < MinPopulation {
		return Result{}, fmt.Errorf("population %d below minimum %d", m.popSize, MinPopulation)
	}
	if m.maxIters <= 0 {
		return Result{}, fmt.Errorf("iterations must be positive, got %d", m.maxIters)
	}

	config := mayfly.NewDefaultConfig()
	config.ObjectiveFunc = objective
	config.ProblemSize = bounds.Dim
	config.MaxIterations = m.maxIters
	config.NPop = m.popSize
	config.LowerBound = bounds.Lower
	config.UpperBound = bounds.Upper

	// Set random seed for reproducibility
	config.Rand = rand.New(rand.NewSource(m.seed))

	result, err := mayfly.Optimize(config)
	if err != nil {
		return Result{}, fmt.Errorf("mayfly optimization failed: %w", err)
	}

	return Result{Position: result.GlobalBest.Position, Cost: result.GlobalBest.Cost}, nil
}
