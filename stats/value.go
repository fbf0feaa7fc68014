// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

type valueKind uint8

const (
	kindNumber valueKind = iota
	kindMissing
	kindText
)

// A Value is one element of a dataset. It is a number, a missing
// marker, or a token that is not a number at all.
//
// The zero Value is the number 0.
type Value struct {
	kind valueKind
	x    float64
	text string
}

// Num returns a Value holding the number x.
func Num(x float64) Value {
	return Value{kind: kindNumber, x: x}
}

// Missing returns a Value marking an absent element.
func Missing() Value {
	return Value{kind: kindMissing}
}

// Text returns a Value holding the non-numeric token s.
func Text(s string) Value {
	return Value{kind: kindText, text: s}
}

// missingTokens are the spellings ParseValue reads as a missing value.
var missingTokens = map[string]bool{
	"":     true,
	"nil":  true,
	"null": true,
	"na":   true,
	"n/a":  true,
	"-":    true,
}

// ParseValue interprets the token s. Blank tokens and the usual
// spellings of "no value" (nil, null, NA, N/A, -) are missing; tokens
// strconv.ParseFloat accepts are numbers; everything else is text.
// Tokens too large for a float64, like 1e400, parse as ±Inf, which
// Describe rejects as non-numeric.
func ParseValue(s string) Value {
	s = strings.TrimSpace(s)
	if missingTokens[strings.ToLower(s)] {
		return Missing()
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Text(s)
	}
	return Num(x)
}

// Floats returns xs as a slice of numeric Values.
func Floats(xs ...float64) []Value {
	vs := make([]Value, len(xs))
	for i, x := range xs {
		vs[i] = Num(x)
	}
	return vs
}

// Parse applies ParseValue to each token.
func Parse(tokens ...string) []Value {
	vs := make([]Value, len(tokens))
	for i, tok := range tokens {
		vs[i] = ParseValue(tok)
	}
	return vs
}

// IsMissing reports whether v marks an absent element.
func (v Value) IsMissing() bool {
	return v.kind == kindMissing
}

// Float returns v's number. ok is false if v is missing, text, NaN,
// or infinite.
func (v Value) Float() (x float64, ok bool) {
	if v.kind != kindNumber || math.IsNaN(v.x) || math.IsInf(v.x, 0) {
		return 0, false
	}
	return v.x, true
}

func (v Value) String() string {
	switch v.kind {
	case kindMissing:
		return "nil"
	case kindText:
		return strconv.Quote(v.text)
	}
	return strconv.FormatFloat(v.x, 'g', -1, 64)
}
