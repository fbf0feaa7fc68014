// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of numeric data points.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Sum returns the sum of the sample's values.
func (s Sample) Sum() float64 {
	return floats.Sum(s.Xs)
}

// Mean returns the arithmetic mean of the sample, or NaN if the
// sample is empty.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Mean(s.Xs, nil)
}

// Bounds returns the minimum and maximum values of the sample.
//
// If the sample is empty, Bounds returns NaN, NaN.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// Variance returns the population variance of the sample: the mean
// squared deviation from the mean, dividing by N rather than N-1.
//
// If the sample is empty, Variance returns NaN.
func (s Sample) Variance() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	// The compensated two-pass result can round a hair below zero.
	return math.Max(stat.PopVariance(s.Xs, nil), 0)
}

// StdDev returns the population standard deviation of the sample.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Copy returns a copy of the sample with its own Xs.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{xs, s.Sorted}
}

// Sort sorts the sample in place in ascending order and returns s.
func (s *Sample) Sort() *Sample {
	if !s.Sorted {
		sort.Float64s(s.Xs)
		s.Sorted = true
	}
	return s
}

// order returns the i'th smallest value (0-based), clamping i into
// [0, N-1]. s must be sorted and non-empty.
func (s Sample) order(i int) float64 {
	if !s.Sorted {
		panic("order statistic of an unsorted sample")
	}
	if i < 0 {
		i = 0
	} else if i >= len(s.Xs) {
		i = len(s.Xs) - 1
	}
	return s.Xs[i]
}

// Select returns the p'th percentile of the sample by index: the
// value at position ⌊N*p/100⌋ of the sorted sample. Unlike
// interpolating estimators this always returns a sample value. The
// position is clamped to the sample, so Select(100) is the maximum.
//
// Select panics if s is not sorted. It returns NaN if s is empty.
func (s Sample) Select(p int) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return s.order(int(math.Floor(float64(len(s.Xs)*p) / 100.0)))
}

// Quartiles returns the values at positions ⌊N/4⌋, ⌊N/2⌋ and ⌊3N/4⌋
// of the sorted sample.
//
// Quartiles panics if s is not sorted. The result is all NaN if s is
// empty.
func (s Sample) Quartiles() Quartiles {
	n := len(s.Xs)
	if n == 0 {
		return Quartiles{nan, nan, nan}
	}
	return Quartiles{
		Q1: s.order(n / 4),
		Q2: s.order(n / 2),
		Q3: s.order(n * 3 / 4),
	}
}

// Quartiles holds the three quartile points of a sample.
type Quartiles struct {
	Q1 float64 `json:"q1"`
	Q2 float64 `json:"q2"`
	Q3 float64 `json:"q3"`
}

// IQR returns the interquartile range, Q3 - Q1.
func (q Quartiles) IQR() float64 {
	return q.Q3 - q.Q1
}

// Fences returns Tukey's inner fences, Q1 - 1.5*IQR and
// Q3 + 1.5*IQR. Values strictly outside them are outliers.
func (q Quartiles) Fences() (lo, hi float64) {
	iqr := q.IQR()
	return q.Q1 - 1.5*iqr, q.Q3 + 1.5*iqr
}
