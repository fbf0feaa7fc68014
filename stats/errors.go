// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "github.com/hyp3rd/ewrap"

var (
	// ErrInvalidArgument is the parent of every error caused by a bad
	// argument to Describe or Clean.
	ErrInvalidArgument = ewrap.New("invalid argument")

	// ErrInvalidPolicy is returned for a MissingPolicy that is not
	// Ignore or MeanImpute, or a policy name ParseMissingPolicy does
	// not recognize.
	ErrInvalidPolicy = ewrap.Wrap(ErrInvalidArgument, "invalid missing-value policy")

	// ErrNonNumeric is returned when the dataset holds an element that
	// is neither a number nor missing. NaN and ±Inf count as
	// non-numeric.
	ErrNonNumeric = ewrap.Wrap(ErrInvalidArgument, "data must contain numeric values for calculations")

	// ErrEmptyDataset is returned when no values remain after missing
	// values have been resolved.
	ErrEmptyDataset = ewrap.New("empty dataset")

	// ErrNoValues is returned by MeanImpute when every element is
	// missing, so there is no mean to impute.
	ErrNoValues = ewrap.Wrap(ErrEmptyDataset, "no values to impute from")
)
