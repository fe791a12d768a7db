// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/aclements/go-bubble/bubble"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Image rasterizes c showing interaction state st.
func Image(c *bubble.Chart, st bubble.State) *image.RGBA {
	width, height := c.Size()
	img := image.NewRGBA(image.Rect(0, 0, px(width), px(height)))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	m := c.Config.Margin
	p := &painter{
		img: img,
		z:   vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy()),
		ox:  m.Left,
		oy:  m.Top,
	}
	w, h := c.Config.Width, c.Config.Height

	// Axes.
	p.line(0, h, w, h, 1, color.Black, 0)
	for _, t := range c.XAxis.Ticks {
		p.line(t.Pos, h, t.Pos, h+6, 1, color.Black, 0)
		p.text(t.Pos, h+15, t.Label, color.Black, 0.5)
	}
	if c.XAxis.Title != "" {
		p.text(w, h+50, c.XAxis.Title, color.Black, 1)
	}
	p.line(0, 0, 0, h, 1, color.Black, 0)
	for _, t := range c.YAxis.Ticks {
		p.line(-6, t.Pos, 0, t.Pos, 1, color.Black, 0)
		p.text(-9, t.Pos, t.Label, color.Black, 1)
	}
	if c.YAxis.Title != "" {
		p.text(0, -20, c.YAxis.Title, color.Black, 0)
	}

	// Data circles.
	opts := c.Controller.Options()
	for _, pt := range c.Points {
		if pt.R <= 0 {
			continue
		}
		op := bubble.Opacity(st, pt.Category, opts)
		p.circle(pt.CX, pt.CY, pt.R, withAlpha(c.Colors[pt.Category], op))
		p.ring(pt.CX, pt.CY, pt.R, 1, withAlpha(color.RGBA{0xff, 0xff, 0xff, 0xff}, op))
	}

	// Size legend.
	for _, e := range c.Legend {
		p.ring(e.CX, e.CY, e.R, 1, color.Black)
	}
	for _, e := range c.Legend {
		p.line(e.LineX1, e.CY, e.LineX2, e.CY, 1, color.Black, 2)
	}
	for _, e := range c.Legend {
		p.text(e.LabelX+2, e.CY, e.Label, color.Black, 0)
	}
	if lc := c.Config.Legend; lc.Title != "" {
		p.text(lc.CircleX, lc.Baseline+30, lc.Title, color.Black, 0.5)
	}

	// Category legend.
	if len(c.Groups) > 1 {
		for i, g := range c.Groups {
			y := float64(10 + i*groupDotSpacing)
			op := bubble.Opacity(st, g, opts)
			p.circle(c.Config.Legend.CircleX, y, groupDotR, withAlpha(c.Colors[g], op))
			p.text(c.Config.Legend.CircleX+16, y, g, withAlpha(color.RGBA{0, 0, 0, 0xff}, op), 0)
		}
	}

	if t := st.Tooltip; t.Visible {
		tw, th := float64(tooltipWidth(t.Text)), float64(tooltipHeight)
		p.rect(t.X, t.Y, tw, th, color.Black)
		p.text(t.X+tooltipPad, t.Y+th/2, t.Text, color.White, 0)
	}
	return img
}

// PNG writes c to w as a PNG image showing interaction state st.
func PNG(w io.Writer, c *bubble.Chart, st bubble.State) error {
	return png.Encode(w, Image(c, st))
}

func withAlpha(c color.RGBA, opacity float64) color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, uint8(math.Round(255 * opacity))}
}

type fpt struct{ x, y float64 }

// painter draws shapes in chart coordinates, offset by (ox, oy).
type painter struct {
	img    *image.RGBA
	z      *vector.Rasterizer
	ox, oy float64
}

// fill fills the given closed polygons with col. Polygons wound in
// opposite directions cancel, which is how rings are drawn.
func (p *painter) fill(col color.Color, polys ...[]fpt) {
	b := p.img.Bounds()
	p.z.Reset(b.Dx(), b.Dy())
	drawn := false
	for _, poly := range polys {
		poly = clipPoly(p.translate(poly), float64(b.Dx()), float64(b.Dy()))
		if len(poly) < 3 {
			continue
		}
		drawn = true
		p.z.MoveTo(float32(poly[0].x), float32(poly[0].y))
		for _, q := range poly[1:] {
			p.z.LineTo(float32(q.x), float32(q.y))
		}
		p.z.ClosePath()
	}
	if drawn {
		p.z.Draw(p.img, b, image.NewUniform(col), image.Point{})
	}
}

func (p *painter) translate(poly []fpt) []fpt {
	out := make([]fpt, len(poly))
	for i, q := range poly {
		out[i] = fpt{q.x + p.ox, q.y + p.oy}
	}
	return out
}

func (p *painter) circle(cx, cy, r float64, col color.Color) {
	p.fill(col, circlePoly(cx, cy, r, false))
}

// ring strokes a circle outline of width sw.
func (p *painter) ring(cx, cy, r, sw float64, col color.Color) {
	if r <= 0 {
		return
	}
	outer := circlePoly(cx, cy, r+sw/2, false)
	inner := circlePoly(cx, cy, math.Max(r-sw/2, 0), true)
	p.fill(col, outer, inner)
}

// line strokes a segment of width sw. If dash > 0, the segment is
// dashed with dashes and gaps of that length.
func (p *painter) line(x1, y1, x2, y2, sw float64, col color.Color, dash float64) {
	dx, dy := x2-x1, y2-y1
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	ux, uy := dx/l, dy/l
	nx, ny := -uy*sw/2, ux*sw/2
	seg := func(a, b float64) []fpt {
		ax, ay := x1+ux*a, y1+uy*a
		bx, by := x1+ux*b, y1+uy*b
		return []fpt{{ax + nx, ay + ny}, {bx + nx, by + ny}, {bx - nx, by - ny}, {ax - nx, ay - ny}}
	}
	if dash <= 0 {
		p.fill(col, seg(0, l))
		return
	}
	var polys [][]fpt
	for a := 0.0; a < l; a += 2 * dash {
		polys = append(polys, seg(a, math.Min(a+dash, l)))
	}
	p.fill(col, polys...)
}

func (p *painter) rect(x, y, w, h float64, col color.Color) {
	p.fill(col, []fpt{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}})
}

// text draws s vertically centered on y. anchor is 0 to start the
// text at x, 0.5 to center it and 1 to end it at x.
func (p *painter) text(x, y float64, s string, col color.Color, anchor float64) {
	face := basicfont.Face7x13
	adv := font.MeasureString(face, s)
	x -= anchor * float64(adv) / 64
	m := face.Metrics()
	base := y + float64(m.Ascent-m.Descent)/64/2
	d := font.Drawer{
		Dst:  p.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(int(math.Round(x+p.ox)), int(math.Round(base+p.oy))),
	}
	d.DrawString(s)
}

// circlePoly approximates a circle with a polygon. If rev is set, the
// polygon winds in the opposite direction.
func circlePoly(cx, cy, r float64, rev bool) []fpt {
	n := int(math.Ceil(2 * math.Pi * r / 2))
	if n < 16 {
		n = 16
	} else if n > 256 {
		n = 256
	}
	poly := make([]fpt, n)
	for i := range poly {
		a := 2 * math.Pi * float64(i) / float64(n)
		if rev {
			a = -a
		}
		poly[i] = fpt{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return poly
}

// clipPoly clips poly to the rectangle [0,w]x[0,h] using
// Sutherland-Hodgman. The winding direction is preserved.
func clipPoly(poly []fpt, w, h float64) []fpt {
	type edge struct {
		inside func(fpt) bool
		cross  func(a, b fpt) fpt
	}
	atX := func(x float64) func(a, b fpt) fpt {
		return func(a, b fpt) fpt {
			t := (x - a.x) / (b.x - a.x)
			return fpt{x, a.y + t*(b.y-a.y)}
		}
	}
	atY := func(y float64) func(a, b fpt) fpt {
		return func(a, b fpt) fpt {
			t := (y - a.y) / (b.y - a.y)
			return fpt{a.x + t*(b.x-a.x), y}
		}
	}
	edges := []edge{
		{func(q fpt) bool { return q.x >= 0 }, atX(0)},
		{func(q fpt) bool { return q.x <= w }, atX(w)},
		{func(q fpt) bool { return q.y >= 0 }, atY(0)},
		{func(q fpt) bool { return q.y <= h }, atY(h)},
	}
	for _, e := range edges {
		if len(poly) == 0 {
			break
		}
		in := poly
		poly = nil
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur) && e.inside(prev):
				poly = append(poly, cur)
			case e.inside(cur):
				poly = append(poly, e.cross(prev, cur), cur)
			case e.inside(prev):
				poly = append(poly, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return poly
}
