// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats computes descriptive statistics over one-dimensional
// datasets that may contain missing values.
//
// The entry point is Describe, which resolves missing values under a
// MissingPolicy and returns a Summary: sum, average, extrema, range,
// population variance and standard deviation, index-based quartiles
// and percentiles, and Tukey outliers.
package stats // import "github.com/aclements/go-describe/stats"

import "math"

var nan = math.NaN()
