// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-moremath/stats"
)

// Margin is the space around the plot area.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Config is the layout of a chart.
//
// A zero domain ([0, 0]) is computed from the data.
type Config struct {
	// Width and Height are the size of the plot area, excluding
	// margins.
	Width, Height float64
	Margin        Margin

	XDomain, YDomain [2]float64
	RDomain          [2]float64
	RRange           [2]float64

	XLabel, YLabel string
	XTicks, YTicks int // maximum number of ticks on each axis

	Legend LegendConfig

	// LegendValues are the magnitudes shown in the size legend.
	// If nil, LegendCount values are chosen from RDomain.
	LegendValues []float64
	LegendCount  int

	// Interact configures the interaction state. Its Groups are
	// filled in from the data.
	Interact InteractOptions
}

// DefaultConfig returns the layout of the restaurant charts: a
// 500x420 canvas with the size legend in the right margin.
func DefaultConfig() Config {
	m := Margin{Top: 40, Right: 150, Bottom: 60, Left: 30}
	w, h := 500-m.Left-m.Right, 420-m.Top-m.Bottom
	return Config{
		Width:  w,
		Height: h,
		Margin: m,
		RRange: [2]float64{2, 40},
		YLabel: "Number of restaurants",
		XTicks: 3,
		YTicks: 10,
		Legend: LegendConfig{
			CircleX:  390,
			LabelX:   440,
			Baseline: h - 100,
			Unit:     1e6,
			Title:    "Population (M)",
		},
		LegendCount: 7,
		Interact:    DefaultInteractOptions(nil),
	}
}

// A Chart is a render session: the dataset and everything derived
// from it. Components receive the Chart instead of sharing a global
// drawing surface.
type Chart struct {
	Config  Config
	Records []Record

	X, Y *Linear
	R    *Sqrt

	Points       []Point
	Legend       []LegendEntry
	XAxis, YAxis Axis

	// Groups are the record categories in order of first
	// appearance, and Colors their fill colors.
	Groups []string
	Colors map[string]color.RGBA

	Controller *Controller
}

// NewChart lays out recs according to cfg.
func NewChart(cfg Config, recs []Record) (*Chart, error) {
	if len(recs) == 0 {
		return nil, fmt.Errorf("no records to plot")
	}
	c := &Chart{Config: cfg, Records: recs}

	xs := make([]float64, len(recs))
	ys := make([]float64, len(recs))
	sizes := make([]float64, len(recs))
	for i, rec := range recs {
		xs[i], ys[i], sizes[i] = rec.X, rec.Y, rec.Size
	}

	var err error
	if c.X, err = NewLinear(domainOf(cfg.XDomain, xs), [2]float64{0, cfg.Width}); err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	if c.Y, err = NewLinear(domainOf(cfg.YDomain, ys), [2]float64{cfg.Height, 0}); err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}
	rdom := cfg.RDomain
	if rdom == ([2]float64{}) {
		_, max := stats.Bounds(sizes)
		if !(max > 0) {
			// Every bubble is empty; any domain gives R = 0.
			max = 1
		}
		rdom = [2]float64{0, max}
	}
	if c.R, err = NewSqrt(rdom, cfg.RRange); err != nil {
		return nil, fmt.Errorf("bubble size: %w", err)
	}

	c.Points = Layout(recs, c.X, c.Y, c.R)
	c.XAxis = buildAxis(c.X, cfg.XLabel, cfg.XTicks)
	c.YAxis = buildAxis(c.Y, cfg.YLabel, cfg.YTicks)

	lc := cfg.Legend
	if lc.Baseline == 0 {
		lc.Baseline = cfg.Height - 100
	}
	vals := cfg.LegendValues
	if vals == nil {
		vals = LegendValues(c.R, cfg.LegendCount)
	}
	c.Legend = BuildLegend(vals, c.R, lc)
	c.Config.Legend = lc

	c.Groups = Groups(recs)
	c.Colors = make(map[string]color.RGBA, len(c.Groups))
	for i, g := range c.Groups {
		c.Colors[g] = GroupColor(i)
	}
	opts := cfg.Interact
	opts.Groups = c.Groups
	c.Controller = NewController(opts)
	return c, nil
}

// Size returns the full canvas size, including margins.
func (c *Chart) Size() (width, height float64) {
	m := c.Config.Margin
	return c.Config.Width + m.Left + m.Right, c.Config.Height + m.Top + m.Bottom
}

// domainOf returns d, or if d is zero, the bounds of xs padded by 5%
// on each side.
func domainOf(d [2]float64, xs []float64) [2]float64 {
	if d != ([2]float64{}) {
		return d
	}
	lo, hi := stats.Bounds(xs)
	pad := (hi - lo) * 0.05
	if pad == 0 {
		// Single distinct value.
		pad = 1
	}
	return [2]float64{lo - pad, hi + pad}
}
