package services

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Weighted pairs a categorical value with its relative sampling weight.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// WeightedChooser draws values with probability proportional to their weight.
// Weights need not sum to one.
type WeightedChooser[T any] struct {
	values []T
	cum    []float64
}

func NewWeightedChooser[T any](options []Weighted[T]) (*WeightedChooser[T], error) {
	if len(options) == 0 {
		return nil, errors.New("weighted chooser: options must not be empty")
	}

	values := make([]T, len(options))
	weights := make([]float64, len(options))
	for i, o := range options {
		if o.Weight < 0 || math.IsNaN(o.Weight) || math.IsInf(o.Weight, 0) {
			return nil, fmt.Errorf("weighted chooser: option %d has invalid weight %v", i, o.Weight)
		}
		values[i] = o.Value
		weights[i] = o.Weight
	}

	cum := floats.CumSum(make([]float64, len(weights)), weights)
	if cum[len(cum)-1] <= 0 {
		return nil, errors.New("weighted chooser: total weight must be positive")
	}

	return &WeightedChooser[T]{values: values, cum: cum}, nil
}

// Pick draws one value using rng.
func (c *WeightedChooser[T]) Pick(rng *rand.Rand) T {
	u := rng.Float64() * c.cum[len(c.cum)-1]
	i := sort.Search(len(c.cum), func(i int) bool { return c.cum[i] > u })
	if i == len(c.cum) {
		i = len(c.cum) - 1
	}
	return c.values[i]
}
