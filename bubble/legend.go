// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import "math"

// LegendConfig positions the size legend.
type LegendConfig struct {
	CircleX  float64 // center column of the legend circles
	LabelX   float64 // column the connector lines run to
	Baseline float64 // y coordinate every circle rests on
	Unit     float64 // labels show value/Unit
	Title    string
}

// A LegendEntry is one circle of the size legend, with the dashed
// connector to its label.
//
// All circles rest on the legend baseline, so larger circles have
// their centers (and labels) further up.
type LegendEntry struct {
	Value  float64
	R      float64
	CX, CY float64

	// The connector runs from (LineX1, CY) to (LineX2, CY).
	LineX1, LineX2 float64

	LabelX float64
	Label  string
}

// BuildLegend lays out one legend entry per value, in the order
// given, using the same radius scale as the data circles.
func BuildLegend(values []float64, r *Sqrt, lc LegendConfig) []LegendEntry {
	unit := lc.Unit
	if unit == 0 {
		unit = 1
	}
	ents := make([]LegendEntry, len(values))
	for i, v := range values {
		rad := radius(r, v)
		cy := lc.Baseline - rad
		ents[i] = LegendEntry{
			Value:  v,
			R:      rad,
			CX:     lc.CircleX,
			CY:     cy,
			LineX1: lc.CircleX + rad,
			LineX2: lc.LabelX,
			LabelX: lc.LabelX,
			Label:  formatNumber(v / unit),
		}
	}
	return ents
}

// LegendValues returns n representative magnitudes for r's domain, in
// increasing order. The values are evenly spaced across the domain,
// which spaces the circles evenly by area, and rounded to two
// significant digits.
func LegendValues(r *Sqrt, n int) []float64 {
	if n <= 0 {
		return nil
	}
	lo, hi := r.Domain()[0], r.Domain()[1]
	if lo > hi {
		lo, hi = hi, lo
	}
	vals := make([]float64, n)
	for i := range vals {
		// Skip the bottom of the domain, where circles are too
		// small to read.
		v := lo + (hi-lo)*float64(i+1)/float64(n)
		v = round2(v)
		if v < lo {
			v = lo
		} else if v > hi {
			v = hi
		}
		vals[i] = v
	}
	return vals
}

// round2 rounds v to two significant digits.
func round2(v float64) float64 {
	if v == 0 {
		return 0
	}
	p := math.Pow(10, math.Floor(math.Log10(math.Abs(v)))-1)
	return math.Round(v/p) * p
}
