// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// A Summary holds the descriptive statistics of a dataset after its
// missing values have been resolved.
//
// Describe returns a new Summary on every call and never touches it
// again; the caller owns it.
type Summary struct {
	// N is the number of values the statistics were computed over.
	// Under MeanImpute this counts imputed values.
	N int `json:"n"`

	Sum     float64 `json:"sum"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`

	// Range is Max - Min.
	Range float64 `json:"range"`

	// Variance is the population variance (divisor N) and
	// StandardDeviation is its square root.
	Variance          float64 `json:"variance"`
	StandardDeviation float64 `json:"standard_deviation"`

	// Quartiles are picked by index from the sorted values, not
	// interpolated. See Sample.Quartiles.
	Quartiles Quartiles `json:"quartiles"`

	// Percentiles maps each integer percentile 1..100 to a value of
	// the dataset, picked as by Sample.Select. Percentiles[100] is
	// always Max.
	Percentiles map[int]float64 `json:"percentiles"`

	// Outliers are the values strictly outside Quartiles.Fences, in
	// dataset order. Repeated values are repeated here.
	Outliers []float64 `json:"outliers"`
}

// Percentile returns s.Percentiles[p], or NaN if p is not in 1..100.
func (s *Summary) Percentile(p int) float64 {
	x, ok := s.Percentiles[p]
	if !ok {
		return nan
	}
	return x
}

// Describe resolves the missing values in data according to policy
// and computes its descriptive statistics.
//
// Describe fails with an error wrapping ErrInvalidArgument if policy
// is unknown or data holds a non-numeric value, and with an error
// wrapping ErrEmptyDataset if no values remain to describe. It never
// returns a partial Summary.
func Describe(data []Value, policy MissingPolicy) (*Summary, error) {
	xs, err := Clean(data, policy)
	if err != nil {
		return nil, err
	}
	return describe(xs)
}

// DescribeFloats is Describe for a dataset with no missing values.
func DescribeFloats(xs []float64) (*Summary, error) {
	return Describe(Floats(xs...), Ignore)
}

func describe(xs []float64) (*Summary, error) {
	n := len(xs)
	if n == 0 {
		return nil, ErrEmptyDataset
	}

	s := Sample{Xs: xs}
	min, max := s.Bounds()
	sum := s.Sum()
	res := &Summary{
		N:        n,
		Sum:      sum,
		Average:  sum / float64(n),
		Min:      min,
		Max:      max,
		Range:    max - min,
		Variance: s.Variance(),
	}
	res.StandardDeviation = math.Sqrt(res.Variance)

	sorted := s.Copy().Sort()
	res.Quartiles = sorted.Quartiles()

	res.Percentiles = make(map[int]float64, 100)
	for p := 1; p < 100; p++ {
		res.Percentiles[p] = sorted.Select(p)
	}
	res.Percentiles[100] = max

	lo, hi := res.Quartiles.Fences()
	res.Outliers = []float64{}
	for _, x := range xs {
		if x < lo || x > hi {
			res.Outliers = append(res.Outliers, x)
		}
	}
	return res, nil
}
