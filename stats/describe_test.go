// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"
)

func TestDescribeMeanImpute(t *testing.T) {
	data := []Value{Num(10), Missing(), Num(18), Num(2), Num(12), Missing()}
	res, err := Describe(data, MeanImpute)
	if err != nil {
		t.Fatal(err)
	}

	want := &Summary{
		N:                 6,
		Sum:               63,
		Average:           10.5,
		Min:               2,
		Max:               18,
		Range:             16,
		Variance:          131.0 / 6,
		StandardDeviation: math.Sqrt(131.0 / 6),
		Quartiles:         Quartiles{10, 10.5, 12},
		Outliers:          []float64{18, 2},
	}
	check := func(name string, want, got float64) {
		t.Helper()
		if !aeq(want, got) {
			t.Errorf("want %s %v, got %v", name, want, got)
		}
	}
	if res.N != want.N {
		t.Errorf("want N %v, got %v", want.N, res.N)
	}
	check("Sum", want.Sum, res.Sum)
	check("Average", want.Average, res.Average)
	check("Min", want.Min, res.Min)
	check("Max", want.Max, res.Max)
	check("Range", want.Range, res.Range)
	check("Variance", want.Variance, res.Variance)
	check("StandardDeviation", want.StandardDeviation, res.StandardDeviation)
	if res.Quartiles != want.Quartiles {
		t.Errorf("want quartiles %+v, got %+v", want.Quartiles, res.Quartiles)
	}
	if !reflect.DeepEqual(res.Outliers, want.Outliers) {
		t.Errorf("want outliers %v, got %v", want.Outliers, res.Outliers)
	}

	// Sorted: 2 10 10.5 10.5 12 18
	for p, x := range map[int]float64{1: 2, 16: 2, 17: 10, 33: 10, 34: 10.5, 50: 10.5, 66: 10.5, 67: 12, 83: 12, 84: 18, 99: 18, 100: 18} {
		if got := res.Percentile(p); got != x {
			t.Errorf("want percentile %d = %v, got %v", p, x, got)
		}
	}
}

func TestDescribeIgnore(t *testing.T) {
	data := []Value{Num(10), Missing(), Num(18), Num(2), Num(12), Missing()}
	res, err := Describe(data, Ignore)
	if err != nil {
		t.Fatal(err)
	}
	if res.N != 4 || res.Sum != 42 || res.Average != 10.5 || res.Min != 2 || res.Max != 18 {
		t.Errorf("want N=4 sum=42 avg=10.5 min=2 max=18, got %+v", res)
	}
	// Sorted: 2 10 12 18
	if want := (Quartiles{10, 12, 18}); res.Quartiles != want {
		t.Errorf("want quartiles %+v, got %+v", want, res.Quartiles)
	}
	if len(res.Outliers) != 0 {
		t.Errorf("want no outliers, got %v", res.Outliers)
	}
}

func TestDescribeNonNumeric(t *testing.T) {
	for _, policy := range []MissingPolicy{Ignore, MeanImpute} {
		res, err := Describe(Parse("apple", "banana", "orange"), policy)
		if res != nil {
			t.Errorf("%v: want no result, got %+v", policy, res)
		}
		if !errors.Is(err, ErrNonNumeric) || !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%v: want ErrNonNumeric, got %v", policy, err)
		}
	}

	_, err := Describe([]Value{Num(1), Num(math.NaN())}, Ignore)
	if !errors.Is(err, ErrNonNumeric) {
		t.Errorf("want ErrNonNumeric for NaN, got %v", err)
	}
}

func TestDescribeInfinite(t *testing.T) {
	check := func(data []Value, policy MissingPolicy) {
		t.Helper()
		res, err := Describe(data, policy)
		if res != nil {
			t.Errorf("%v %v: want no result, got %+v", data, policy, res)
		}
		if !errors.Is(err, ErrNonNumeric) || !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%v %v: want ErrNonNumeric, got %v", data, policy, err)
		}
	}
	check(Floats(math.Inf(1), math.Inf(-1), 1), Ignore)
	check(Floats(1, math.Inf(-1)), Ignore)
	check([]Value{Num(math.Inf(1)), Missing(), Num(2)}, MeanImpute)
	check(Parse("1", "1e400", "2"), Ignore)
	check(Parse("1", "-inf"), MeanImpute)
}

func TestDescribeErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   []Value
		policy MissingPolicy
		want   error
	}{
		{"unknown policy", Floats(1, 2, 3), MissingPolicy(7), ErrInvalidPolicy},
		{"negative policy", Floats(1, 2, 3), MissingPolicy(-1), ErrInvalidPolicy},
		{"empty", nil, Ignore, ErrEmptyDataset},
		{"empty mean", []Value{}, MeanImpute, ErrEmptyDataset},
		{"all missing", []Value{Missing(), Missing()}, Ignore, ErrEmptyDataset},
		{"all missing mean", []Value{Missing(), Missing()}, MeanImpute, ErrNoValues},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Describe(tt.data, tt.policy)
			if res != nil {
				t.Errorf("want no result, got %+v", res)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("want error %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := Describe(nil, MissingPolicy(7)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("want ErrInvalidPolicy to be an ErrInvalidArgument, got %v", err)
	}
	if _, err := Describe([]Value{Missing()}, MeanImpute); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("want ErrNoValues to be an ErrEmptyDataset, got %v", err)
	}
}

func TestDescribeSingle(t *testing.T) {
	res, err := DescribeFloats([]float64{4.25})
	if err != nil {
		t.Fatal(err)
	}
	q := res.Quartiles
	if q.Q1 != 4.25 || q.Q2 != 4.25 || q.Q3 != 4.25 || res.Min != 4.25 || res.Max != 4.25 || res.Average != 4.25 {
		t.Errorf("want every location statistic 4.25, got %+v", res)
	}
	if q.IQR() != 0 || res.Variance != 0 || res.StandardDeviation != 0 || res.Range != 0 {
		t.Errorf("want zero spread, got %+v", res)
	}
	if len(res.Outliers) != 0 {
		t.Errorf("want no outliers, got %v", res.Outliers)
	}
	for p := 1; p <= 100; p++ {
		if res.Percentiles[p] != 4.25 {
			t.Errorf("want percentile %d = 4.25, got %v", p, res.Percentiles[p])
		}
	}
}

func TestDescribeOutliers(t *testing.T) {
	// Sorted: -50 1 2 3 4 5 6 7 100 100; Q1=2, Q3=7, fences [-5.5, 14.5].
	res, err := DescribeFloats([]float64{100, 1, 2, 3, -50, 4, 5, 6, 7, 100})
	if err != nil {
		t.Fatal(err)
	}
	if want := []float64{100, -50, 100}; !reflect.DeepEqual(res.Outliers, want) {
		t.Errorf("want outliers %v, got %v", want, res.Outliers)
	}
}

func TestDescribeDoesNotModifyInput(t *testing.T) {
	xs := []float64{3, 1, 2}
	if _, err := DescribeFloats(xs); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(xs, []float64{3, 1, 2}) {
		t.Errorf("input reordered to %v", xs)
	}
}

func randomData(r *rand.Rand) []Value {
	n := 1 + r.Intn(60)
	data := make([]Value, n)
	for i := range data {
		switch k := r.Intn(10); {
		case k == 0:
			data[i] = Missing()
		case k == 1:
			data[i] = Num(r.NormFloat64() * 500)
		default:
			data[i] = Num(math.Round(r.Float64()*2000) / 10)
		}
	}
	return data
}

func TestDescribeProperties(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for iter := 0; iter < 500; iter++ {
		data := randomData(r)
		for _, policy := range []MissingPolicy{Ignore, MeanImpute} {
			xs, err := Clean(data, policy)
			res, derr := Describe(data, policy)
			if err != nil {
				if !errors.Is(err, ErrNoValues) || !errors.Is(derr, ErrNoValues) {
					t.Errorf("%v: want ErrNoValues, got %v and %v", data, err, derr)
				}
				continue
			}
			err = derr
			if len(xs) == 0 {
				if !errors.Is(err, ErrEmptyDataset) {
					t.Errorf("%v: want ErrEmptyDataset, got %v", data, err)
				}
				continue
			}
			if err != nil {
				t.Fatalf("%v: %v", data, err)
			}

			var sum float64
			for _, x := range xs {
				sum += x
				if x < res.Min || x > res.Max {
					t.Errorf("%v: %v outside [%v,%v]", xs, x, res.Min, res.Max)
				}
			}
			if math.Abs(sum-res.Sum) > 1e-9*math.Max(1, math.Abs(sum)) {
				t.Errorf("%v: want sum %v, got %v", xs, sum, res.Sum)
			}
			if res.Average != res.Sum/float64(len(xs)) {
				t.Errorf("%v: average %v != sum/n", xs, res.Average)
			}
			if res.Range != res.Max-res.Min || res.Range < 0 {
				t.Errorf("%v: bad range %v", xs, res.Range)
			}
			if res.Variance < 0 {
				t.Errorf("%v: negative variance %v", xs, res.Variance)
			}
			if res.Percentiles[100] != res.Max {
				t.Errorf("%v: percentile 100 %v != max %v", xs, res.Percentiles[100], res.Max)
			}
			for p := 2; p <= 100; p++ {
				if res.Percentiles[p] < res.Percentiles[p-1] {
					t.Errorf("%v: percentile %d < percentile %d", xs, p, p-1)
				}
			}

			lo, hi := res.Quartiles.Fences()
			j := 0
			for _, x := range xs {
				if x < lo || x > hi {
					if j >= len(res.Outliers) || res.Outliers[j] != x {
						t.Errorf("%v: outliers %v out of order or missing %v", xs, res.Outliers, x)
						break
					}
					j++
				}
			}
			if j != len(res.Outliers) {
				t.Errorf("%v: unexpected outliers %v", xs, res.Outliers)
			}

			again, err := Describe(data, policy)
			if err != nil || !reflect.DeepEqual(res, again) {
				t.Errorf("%v: second call differs: %+v vs %+v", data, res, again)
			}
		}
	}
}
