// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/hyp3rd/ewrap"
	"github.com/olekukonko/tablewriter"

	"github.com/aclements/go-describe/stats"
)

var (
	bold = color.New(color.Bold).SprintFunc()
	red  = color.New(color.FgRed).SprintFunc()
)

func num(x float64) string {
	return fmt.Sprintf("%.6g", x)
}

// printTable writes res as a summary table, a table of the
// percentiles ps, and the outlier list.
func printTable(w io.Writer, res *stats.Summary, ps []int) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Statistic", "Value"})
	tbl.SetBorder(true)
	for _, row := range [][2]string{
		{"n", strconv.Itoa(res.N)},
		{"sum", num(res.Sum)},
		{"average", num(res.Average)},
		{"min", num(res.Min)},
		{"max", num(res.Max)},
		{"range", num(res.Range)},
		{"variance", num(res.Variance)},
		{"std dev", num(res.StandardDeviation)},
		{"q1", num(res.Quartiles.Q1)},
		{"q2", num(res.Quartiles.Q2)},
		{"q3", num(res.Quartiles.Q3)},
		{"iqr", num(res.Quartiles.IQR())},
	} {
		tbl.Append([]string{bold(row[0]), row[1]})
	}
	tbl.Render()

	// Quartiles and tails.
	labels := map[int]string{50: "median", 100: "max"}
	tbl = tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Percentile", "Value"})
	tbl.SetBorder(true)
	for _, p := range ps {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		tbl.Append([]string{bold(label), num(res.Percentile(p))})
	}
	tbl.Render()

	if len(res.Outliers) == 0 {
		fmt.Fprintf(w, "%s none\n", bold("outliers:"))
		return
	}
	xs := make([]string, len(res.Outliers))
	for i, x := range res.Outliers {
		xs[i] = red(num(x))
	}
	fmt.Fprintf(w, "%s %s\n", bold("outliers:"), strings.Join(xs, " "))
}

func printJSON(w io.Writer, res *stats.Summary) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return ewrap.Wrap(err, "failed to marshal json")
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return ewrap.Wrap(err, "writing output")
	}
	return nil
}

// parsePercentiles parses a comma-separated list of percentiles in
// 1..100.
func parsePercentiles(s string) ([]int, error) {
	var ps []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		p, err := strconv.Atoi(f)
		if err != nil || p < 1 || p > 100 {
			return nil, ewrap.Wrapf(errBadPercentile, "%q", f)
		}
		ps = append(ps, p)
	}
	if len(ps) == 0 {
		return nil, ewrap.Wrapf(errBadPercentile, "%q", s)
	}
	return ps, nil
}

func allPercentiles() []int {
	ps := make([]int, 100)
	for i := range ps {
		ps[i] = i + 1
	}
	return ps
}
