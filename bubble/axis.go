// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import "fmt"

// A Tick is a labeled position along an axis.
type Tick struct {
	Value float64
	Pos   float64 // pixel coordinate along the axis
	Label string
}

// Axis describes one chart axis: its ticks and title. The Render
// Driver is responsible for drawing it.
type Axis struct {
	Title string
	Ticks []Tick
}

func buildAxis(s *Linear, title string, maxTicks int) Axis {
	ax := Axis{Title: title}
	for _, v := range s.Ticks(maxTicks) {
		ax.Ticks = append(ax.Ticks, Tick{v, s.Map(v), formatNumber(v)})
	}
	return ax
}

func formatNumber(v float64) string {
	if v == 0 {
		// Avoid "-0".
		return "0"
	}
	return fmt.Sprintf("%.6g", v)
}
