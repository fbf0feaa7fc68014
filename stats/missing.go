// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"strconv"
	"strings"

	"github.com/hyp3rd/ewrap"
)

// MissingPolicy selects how Describe resolves missing values.
type MissingPolicy int

const (
	// Ignore drops missing values. The remaining values keep their
	// relative order.
	Ignore MissingPolicy = iota

	// MeanImpute replaces every missing value with the mean of the
	// values that are present, so the cleaned dataset has the same
	// length as the input.
	MeanImpute
)

var policyNames = [...]string{
	Ignore:     "ignore",
	MeanImpute: "mean",
}

// ParseMissingPolicy returns the policy named s, which must be
// "ignore" or "mean".
func ParseMissingPolicy(s string) (MissingPolicy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, n := range policyNames {
		if n == name {
			return MissingPolicy(p), nil
		}
	}
	return 0, ewrap.Wrapf(ErrInvalidPolicy, "%q", s)
}

func (p MissingPolicy) valid() bool {
	return p >= 0 && int(p) < len(policyNames)
}

func (p MissingPolicy) String() string {
	if !p.valid() {
		return "MissingPolicy(" + strconv.Itoa(int(p)) + ")"
	}
	return policyNames[p]
}

// Set parses s into p, so a *MissingPolicy can back a command-line
// flag.
func (p *MissingPolicy) Set(s string) error {
	v, err := ParseMissingPolicy(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Clean resolves the missing values in data according to policy and
// returns the resulting numbers.
//
// It fails with ErrInvalidPolicy for an unknown policy, ErrNonNumeric
// if data holds text or NaN, and ErrNoValues if policy is MeanImpute
// and every element is missing. The result may be empty under Ignore.
func Clean(data []Value, policy MissingPolicy) ([]float64, error) {
	if !policy.valid() {
		return nil, ewrap.Wrap(ErrInvalidPolicy, policy.String())
	}

	present := make([]float64, 0, len(data))
	for i, v := range data {
		if v.IsMissing() {
			continue
		}
		x, ok := v.Float()
		if !ok {
			return nil, ewrap.Wrapf(ErrNonNumeric, "element %d is %v", i, v)
		}
		present = append(present, x)
	}

	switch policy {
	case MeanImpute:
		if len(present) == len(data) {
			return present, nil
		}
		if len(present) == 0 {
			return nil, ErrNoValues
		}
		mean := Sample{Xs: present}.Mean()
		xs := make([]float64, len(data))
		j := 0
		for i, v := range data {
			if v.IsMissing() {
				xs[i] = mean
			} else {
				xs[i] = present[j]
				j++
			}
		}
		return xs, nil
	}
	return present, nil
}
