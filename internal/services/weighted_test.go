package services

import (
	"math"
	"testing"
)

func TestWeightedChooserFrequencies(t *testing.T) {
	chooser, err := NewWeightedChooser([]Weighted[string]{
		{Value: "High", Weight: 0.2},
		{Value: "Medium", Weight: 0.5},
		{Value: "Low", Weight: 0.3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rng := NewRand(7)
	const draws = 100_000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		counts[chooser.Pick(rng)]++
	}

	want := map[string]float64{"High": 0.2, "Medium": 0.5, "Low": 0.3}
	for v, p := range want {
		got := float64(counts[v]) / draws
		if math.Abs(got-p) > 0.01 {
			t.Errorf("frequency of %s = %.4f, want %.2f ± 0.01", v, got, p)
		}
	}
}

func TestWeightedChooserSkipsZeroWeight(t *testing.T) {
	chooser, err := NewWeightedChooser([]Weighted[int]{
		{Value: 1, Weight: 0},
		{Value: 2, Weight: 3},
		{Value: 3, Weight: 0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rng := NewRand(1)
	for i := 0; i < 1000; i++ {
		if got := chooser.Pick(rng); got != 2 {
			t.Fatalf("picked %d, want only 2", got)
		}
	}
}

func TestNewWeightedChooserRejectsInvalid(t *testing.T) {
	cases := map[string][]Weighted[string]{
		"empty":    nil,
		"negative": {{Value: "a", Weight: 1}, {Value: "b", Weight: -0.5}},
		"nan":      {{Value: "a", Weight: math.NaN()}},
		"all zero": {{Value: "a", Weight: 0}, {Value: "b", Weight: 0}},
	}

	for name, opts := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := NewWeightedChooser(opts); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
