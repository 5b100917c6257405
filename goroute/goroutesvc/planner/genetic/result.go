package genetic

import "math"

// Result is the outcome of a solver run: the best tour observed across all
// generations and its total cost.
type Result struct {
	tour Chromosome
	cost float64
}

func NewResult(tour Chromosome, cost float64) Result {
	return Result{
		tour: tour,
		cost: cost,
	}
}

// NewEmptyResult is worse than any real result, so the first population's
// fittest member always replaces it.
func NewEmptyResult() Result {
	return Result{
		cost: math.MaxFloat64,
	}
}

func (r Result) Tour() []int {
	return r.tour
}

func (r Result) Cost() float64 {
	return r.cost
}

func (r Result) BetterThan(other Result) bool {
	return r.cost < other.cost
}
