// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"io"

	"github.com/aclements/go-gg/table"
)

// Table returns the chart's records and their computed geometry as a
// table with one row per record, in record order.
func (c *Chart) Table() *table.Table {
	n := len(c.Points)
	var (
		names, cats   = make([]string, n), make([]string, n)
		xs, ys, sizes = make([]float64, n), make([]float64, n), make([]float64, n)
		cxs, cys, rs  = make([]float64, n), make([]float64, n), make([]float64, n)
	)
	for i, p := range c.Points {
		rec := &c.Records[i]
		names[i], cats[i] = p.ID, p.Category
		xs[i], ys[i], sizes[i] = rec.X, rec.Y, rec.Size
		cxs[i], cys[i], rs[i] = p.CX, p.CY, p.R
	}
	return new(table.Builder).
		Add("name", names).
		Add("category", cats).
		Add("x", xs).
		Add("y", ys).
		Add("size", sizes).
		Add("cx", cxs).
		Add("cy", cys).
		Add("r", rs).
		Done()
}

// WriteTable prints the chart's table to w, grouped by category.
func (c *Chart) WriteTable(w io.Writer) {
	var g table.Grouping = c.Table()
	if len(c.Groups) > 1 {
		g = table.GroupBy(g, "category")
	}
	table.Fprint(w, g, "%s", "%s", "%.6g", "%.6g", "%.6g", "%.1f", "%.1f", "%.1f")
}
