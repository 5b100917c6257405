package genetic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// randomCosts builds an asymmetric cost matrix with a zero diagonal.
func randomCosts(n int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				m.Set(i, j, 1.0+99.0*rng.Float64())
			}
		}
	}
	return m
}

func openProblem(t *testing.T, n int, start, end int, seed int64) *Problem {
	t.Helper()
	p, err := NewProblem(randomCosts(n, seed), start, end, ModeOpenPath)
	require.NoError(t, err)
	return p
}

func roundProblem(t *testing.T, n int, start int, seed int64) *Problem {
	t.Helper()
	p, err := NewProblem(randomCosts(n, seed), start, start, ModeRoundTrip)
	require.NoError(t, err)
	return p
}

func TestNewProblemValidation(t *testing.T) {
	costs := randomCosts(4, 1)

	_, err := NewProblem(mat.NewDense(3, 4, nil), 0, 1, ModeOpenPath)
	assert.Equal(t, ErrMatrixShape, err)

	_, err = NewProblem(mat.NewDense(1, 1, nil), 0, 0, ModeRoundTrip)
	assert.Equal(t, ErrNotEnoughLocations, err)

	_, err = NewProblem(costs, -1, 1, ModeOpenPath)
	assert.Equal(t, ErrStartIndex, err)
	_, err = NewProblem(costs, 4, 1, ModeOpenPath)
	assert.Equal(t, ErrStartIndex, err)

	_, err = NewProblem(costs, 0, 4, ModeOpenPath)
	assert.Equal(t, ErrEndIndex, err)

	_, err = NewProblem(costs, 2, 2, ModeOpenPath)
	assert.Equal(t, ErrSameEndpoints, err)

	p, err := NewProblem(costs, 0, 3, ModeOpenPath)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Size())
	assert.Equal(t, 0, p.Start())
	assert.Equal(t, 3, p.End())
	assert.Equal(t, 4, p.tourLen())
	assert.Equal(t, 2, p.interiorLen())
}

func TestNewProblemRoundTripNormalizesEnd(t *testing.T) {
	p, err := NewProblem(randomCosts(5, 1), 2, 4, ModeRoundTrip)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Start())
	assert.Equal(t, 2, p.End())
	assert.Equal(t, 6, p.tourLen())
	assert.Equal(t, 4, p.interiorLen())
}
