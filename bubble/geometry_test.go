// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import "testing"

func testScales(t *testing.T) (x, y *Linear, r *Sqrt) {
	t.Helper()
	var err error
	if x, err = NewLinear([2]float64{0, 100}, [2]float64{0, 200}); err != nil {
		t.Fatal(err)
	}
	if y, err = NewLinear([2]float64{0, 10}, [2]float64{100, 0}); err != nil {
		t.Fatal(err)
	}
	if r, err = NewSqrt([2]float64{0, 400}, [2]float64{0, 20}); err != nil {
		t.Fatal(err)
	}
	return
}

func TestLayout(t *testing.T) {
	x, y, r := testScales(t)
	recs := []Record{
		{Name: "B", X: 50, Y: 5, Size: 100, Category: "red"},
		{Name: "A", X: 0, Y: 10, Size: 400},
		{Name: "B", X: 100, Y: 0, Size: 25, Category: "blue"},
	}
	want := []Point{
		{"B", 100, 50, 10, "red"},
		{"A", 0, 0, 20, ""},
		{"B", 200, 100, 5, "blue"},
	}
	got := Layout(recs, x, y, r)
	if len(got) != len(want) {
		t.Fatalf("got %d points; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: got %+v; want %+v", i, got[i], want[i])
		}
	}
}

func TestLayoutClampsRadius(t *testing.T) {
	x, y, _ := testScales(t)
	// A domain not starting at 0 extrapolates to negative radii
	// below it.
	r, err := NewSqrt([2]float64{200000, 1310000000}, [2]float64{2, 1000})
	if err != nil {
		t.Fatal(err)
	}
	recs := []Record{
		{Name: "zero", Size: 0},
		{Name: "negative", Size: -5},
		{Name: "tiny", Size: 1},
		{Name: "ok", Size: 200000},
	}
	pts := Layout(recs, x, y, r)
	for i, want := range []float64{0, 0, 0, 2} {
		if pts[i].R != want {
			t.Errorf("%s: R = %v; want %v", pts[i].ID, pts[i].R, want)
		}
	}
}

func TestLayoutEmpty(t *testing.T) {
	x, y, r := testScales(t)
	if got := Layout(nil, x, y, r); len(got) != 0 {
		t.Errorf("Layout(nil) = %v; want empty", got)
	}
}
