package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{"empty", nil, 0},
		{"single", []float64{5}, 5},
		{"skewed by outlier", []float64{1, 2, 3, 100}, 26.5},
		{"negatives", []float64{-2, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, mean(tt.input), 1e-9)
		})
	}
}

func TestPercentile(t *testing.T) {
	// Quartiles of [1,2,3,26.5,100]:
	// rank 0.25*(5-1)=1 -> 2, rank 0.75*4=3 -> 26.5.
	vals := []float64{1, 2, 3, 26.5, 100}

	assert.InDelta(t, 2.0, percentile(vals, 25), 1e-9)
	assert.InDelta(t, 26.5, percentile(vals, 75), 1e-9)
	assert.InDelta(t, 1.0, percentile(vals, 0), 1e-9)
	assert.InDelta(t, 100.0, percentile(vals, 100), 1e-9)
	assert.InDelta(t, 3.0, percentile(vals, 50), 1e-9)
}

func TestPercentileInterpolates(t *testing.T) {
	vals := []float64{10, 20}
	assert.InDelta(t, 12.5, percentile(vals, 25), 1e-9)
	assert.InDelta(t, 17.5, percentile(vals, 75), 1e-9)
}

func TestPercentileDoesNotReorderInput(t *testing.T) {
	vals := []float64{3, 1, 2}
	percentile(vals, 50)
	assert.Equal(t, []float64{3, 1, 2}, vals)
}
