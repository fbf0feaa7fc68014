// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/aclements/go-describe/stats"
)

// readInput reads a dataset from r. Values are separated by newlines,
// commas, or blanks. Blank lines are skipped, but an empty field
// between two commas is a missing value.
func readInput(r io.Reader) ([]stats.Value, error) {
	var data []stats.Value
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		data = append(data, parseLine(scanner.Text())...)
	}
	if err := scanner.Err(); err != nil {
		return nil, ewrap.Wrap(err, "reading input")
	}
	return data, nil
}

func parseLine(l string) []stats.Value {
	if strings.TrimSpace(l) == "" {
		return nil
	}
	var vs []stats.Value
	for _, field := range strings.Split(l, ",") {
		toks := strings.Fields(field)
		if len(toks) == 0 {
			vs = append(vs, stats.Missing())
			continue
		}
		vs = append(vs, stats.Parse(toks...)...)
	}
	return vs
}

// readFiles reads and concatenates the datasets in the named files.
// The name "-" reads stdin.
func readFiles(stdin io.Reader, names []string) ([]stats.Value, error) {
	var data []stats.Value
	for _, name := range names {
		var vs []stats.Value
		var err error
		if name == "-" {
			vs, err = readInput(stdin)
		} else {
			vs, err = readFile(name)
		}
		if err != nil {
			return nil, err
		}
		data = append(data, vs...)
	}
	return data, nil
}

func readFile(name string) ([]stats.Value, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, ewrap.Wrap(err, "opening input")
	}
	defer f.Close()

	vs, err := readInput(f)
	if err != nil {
		return nil, ewrap.Wrap(err, name)
	}
	return vs, nil
}
