// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/aclements/go-bubble/bubble"
	"github.com/ajstarks/svgo"
)

const svgStyle = `
.bubbles { stroke: white; transition: opacity 200ms; }
.bubbles:hover { stroke: black; }
.legend-size { fill: none; stroke: black; }
.legend-line { stroke: black; stroke-dasharray: 2,2; }
.legend-label { font-size: 10px; dominant-baseline: middle; }
.axis line { stroke: black; }
.axis text { font-size: 10px; fill: black; }
#tooltip rect { fill: black; }
#tooltip text { fill: white; dominant-baseline: middle; }
`

// SVG writes c to w as an SVG image showing interaction state st.
//
// Data circles carry the class "bubbles" and data-id and data-group
// attributes, and category legend items carry the class "group" and
// data-group, so a script can dispatch pointer events for them. The
// tooltip is the element with id "tooltip".
func SVG(w io.Writer, c *bubble.Chart, st bubble.State) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	width, height := c.Size()
	canvas.Start(px(width), px(height), `font-family="sans-serif" font-size="12px"`)
	canvas.Style("text/css", svgStyle)
	m := c.Config.Margin
	canvas.Translate(px(m.Left), px(m.Top))

	svgXAxis(canvas, c)
	svgYAxis(canvas, c)

	// Data circles.
	opts := c.Controller.Options()
	canvas.Group(`class="data"`)
	for _, p := range c.Points {
		canvas.Circle(px(p.CX), px(p.CY), px(p.R),
			attr("class", "bubbles "+className(p.Category)),
			attr("data-id", p.ID),
			attr("data-group", p.Category),
			attr("fill", bubble.Hex(c.Colors[p.Category])),
			attr("opacity", fmt.Sprintf("%g", bubble.Opacity(st, p.Category, opts))))
	}
	canvas.Gend()

	svgLegend(canvas, c)
	svgGroups(canvas, c, st)
	svgTooltip(canvas, st)

	canvas.Gend()
	canvas.End()
	return ew.err
}

func svgXAxis(canvas *svg.SVG, c *bubble.Chart) {
	w, h := px(c.Config.Width), px(c.Config.Height)
	canvas.Group(`class="axis x"`, fmt.Sprintf(`transform="translate(0,%d)"`, h))
	canvas.Line(0, 0, w, 0)
	for _, t := range c.XAxis.Ticks {
		x := px(t.Pos)
		canvas.Line(x, 0, x, 6)
		canvas.Text(x, 9, t.Label, `text-anchor="middle"`, `dy=".71em"`)
	}
	canvas.Gend()
	if c.XAxis.Title != "" {
		canvas.Text(w, h+50, c.XAxis.Title, `text-anchor="end"`)
	}
}

func svgYAxis(canvas *svg.SVG, c *bubble.Chart) {
	h := px(c.Config.Height)
	canvas.Group(`class="axis y"`)
	canvas.Line(0, 0, 0, h)
	for _, t := range c.YAxis.Ticks {
		y := px(t.Pos)
		canvas.Line(-6, y, 0, y)
		canvas.Text(-9, y, t.Label, `text-anchor="end"`, `dy=".32em"`)
	}
	canvas.Gend()
	if c.YAxis.Title != "" {
		canvas.Text(0, -20, c.YAxis.Title, `text-anchor="start"`)
	}
}

func svgLegend(canvas *svg.SVG, c *bubble.Chart) {
	canvas.Group(`class="legend"`)
	// Circles, lines and labels are drawn in the same order so
	// entry i of each lines up.
	for _, e := range c.Legend {
		canvas.Circle(px(e.CX), px(e.CY), px(e.R), `class="legend-size"`)
	}
	for _, e := range c.Legend {
		canvas.Line(px(e.LineX1), px(e.CY), px(e.LineX2), px(e.CY), `class="legend-line"`)
	}
	for _, e := range c.Legend {
		canvas.Text(px(e.LabelX), px(e.CY), e.Label, `class="legend-label"`)
	}
	lc := c.Config.Legend
	if lc.Title != "" {
		canvas.Text(px(lc.CircleX), px(lc.Baseline+30), lc.Title, `text-anchor="middle"`)
	}
	canvas.Gend()
}

// svgGroups draws the category legend, one colored dot and label per
// group, above the size legend.
func svgGroups(canvas *svg.SVG, c *bubble.Chart, st bubble.State) {
	if len(c.Groups) < 2 {
		return
	}
	x := px(c.Config.Legend.CircleX)
	opts := c.Controller.Options()
	for i, g := range c.Groups {
		y := 10 + i*groupDotSpacing
		canvas.Group(`class="group"`, attr("data-group", g),
			attr("opacity", fmt.Sprintf("%g", bubble.Opacity(st, g, opts))))
		canvas.Circle(x, y, groupDotR, attr("fill", bubble.Hex(c.Colors[g])))
		canvas.Text(x+16, y, g, `dominant-baseline="middle"`)
		canvas.Gend()
	}
}

func svgTooltip(canvas *svg.SVG, st bubble.State) {
	t := st.Tooltip
	display := "none"
	if t.Visible {
		display = "inline"
	}
	canvas.Group(`id="tooltip"`, attr("display", display),
		fmt.Sprintf(`transform="translate(%d,%d)"`, px(t.X), px(t.Y)))
	canvas.Roundrect(0, 0, tooltipWidth(t.Text), tooltipHeight, 5, 5)
	canvas.Text(tooltipPad, tooltipHeight/2, t.Text, `id="tooltip-text"`)
	canvas.Gend()
}

// attr formats an SVG attribute. svgo passes any argument containing
// "=" through as attributes.
func attr(name, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}

// className turns a category into a CSS class name.
func className(category string) string {
	var b strings.Builder
	b.WriteString("g-")
	for _, r := range category {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
