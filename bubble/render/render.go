// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render materializes bubble charts as SVG or PNG images.
//
// Both renderers draw a snapshot of a chart's interaction state, so a
// static image can show a highlighted group or an open tooltip.
package render

import (
	"io"
	"math"
)

// errWriter remembers the first write error so drawing code can
// ignore errors until the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(b)
	e.err = err
	return n, err
}

// px rounds a chart coordinate to a pixel.
func px(v float64) int {
	return int(math.Round(v))
}

// tooltipWidth estimates the width of a tooltip box holding text.
func tooltipWidth(text string) int {
	return 7*len(text) + 2*tooltipPad
}

const (
	tooltipPad    = 10
	tooltipHeight = 13 + 2*tooltipPad

	groupDotSpacing = 25
	groupDotR       = 7
)
