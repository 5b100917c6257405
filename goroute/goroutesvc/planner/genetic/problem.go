package genetic

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

type Mode int

const (
	ModeOpenPath Mode = iota
	ModeRoundTrip
)

var (
	ErrMatrixShape        = errors.New("cost matrix must be square with one row per location")
	ErrNotEnoughLocations = errors.New("optimization needs at least two locations")
	ErrStartIndex         = errors.New("start index does not match any location")
	ErrEndIndex           = errors.New("end index does not match any location")
	ErrSameEndpoints      = errors.New("open path start and end must be distinct locations")
)

// Problem is the read-only optimization context: a directed cost matrix with
// one row and column per location, the fixed tour endpoints and the tour
// mode. It is safe to share between concurrent solver runs.
type Problem struct {
	costs *mat.Dense
	start int
	end   int
	mode  Mode
	n     int
}

func NewProblem(costs *mat.Dense, start, end int, mode Mode) (*Problem, error) {
	r, c := costs.Dims()
	if r != c {
		return nil, ErrMatrixShape
	}
	if r < 2 {
		return nil, ErrNotEnoughLocations
	}
	if start < 0 || start >= r {
		return nil, ErrStartIndex
	}
	if end < 0 || end >= r {
		return nil, ErrEndIndex
	}
	if mode == ModeOpenPath && start == end {
		return nil, ErrSameEndpoints
	}
	if mode == ModeRoundTrip {
		end = start
	}
	return &Problem{
		costs: costs,
		start: start,
		end:   end,
		mode:  mode,
		n:     r,
	}, nil
}

func (p *Problem) Size() int {
	return p.n
}

func (p *Problem) Start() int {
	return p.start
}

func (p *Problem) End() int {
	return p.end
}

func (p *Problem) Mode() Mode {
	return p.mode
}

func (p *Problem) Cost(i, j int) float64 {
	return p.costs.At(i, j)
}

// tourLen is the mode-dependent chromosome length: n for an open path, n+1
// for a round trip where the start index closes the tour.
func (p *Problem) tourLen() int {
	if p.mode == ModeRoundTrip {
		return p.n + 1
	}
	return p.n
}

// interiorLen is the number of free positions between the fixed endpoints.
func (p *Problem) interiorLen() int {
	return p.tourLen() - 2
}
