// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import "math"

// A Point is the screen geometry of one record.
type Point struct {
	ID       string
	CX, CY   float64
	R        float64
	Category string
}

// Layout places each record using the given scales. The result has
// one Point per record, in record order.
//
// A record whose Size is zero or negative gets radius 0, as does any
// record the radius scale would give a negative radius (for example,
// a size below the radius domain).
func Layout(recs []Record, x, y *Linear, r *Sqrt) []Point {
	pts := make([]Point, len(recs))
	for i, rec := range recs {
		pts[i] = Point{
			ID:       rec.Name,
			CX:       x.Map(rec.X),
			CY:       y.Map(rec.Y),
			R:        radius(r, rec.Size),
			Category: rec.Category,
		}
	}
	return pts
}

func radius(r *Sqrt, size float64) float64 {
	if !(size > 0) {
		return 0
	}
	v := r.Map(size)
	if !(v > 0) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
