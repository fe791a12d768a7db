// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
)

// ErrDegenerateScale is matched by errors returned when a scale
// cannot map its domain to a range.
var ErrDegenerateScale = errors.New("degenerate scale")

// DegenerateScaleError describes a scale whose domain has zero width
// or non-finite bounds.
type DegenerateScaleError struct {
	Kind   string // "linear" or "sqrt"
	Domain [2]float64
}

func (e *DegenerateScaleError) Error() string {
	return fmt.Sprintf("%s scale has degenerate domain [%g, %g]", e.Kind, e.Domain[0], e.Domain[1])
}

func (e *DegenerateScaleError) Is(target error) bool {
	return target == ErrDegenerateScale
}

// Linear maps a data domain linearly onto a pixel range.
type Linear struct {
	domain, rng [2]float64
	norm        scale.Linear
}

// NewLinear returns a linear scale mapping domain[0] to rng[0] and
// domain[1] to rng[1]. Either interval may be reversed.
func NewLinear(domain, rng [2]float64) (*Linear, error) {
	if !finite(domain[0]) || !finite(domain[1]) || domain[0] == domain[1] {
		return nil, &DegenerateScaleError{"linear", domain}
	}
	return &Linear{
		domain: domain,
		rng:    rng,
		norm:   scale.Linear{Min: domain[0], Max: domain[1]},
	}, nil
}

func (s *Linear) Domain() [2]float64 { return s.domain }
func (s *Linear) Range() [2]float64  { return s.rng }

// Map returns the range value for v. Values outside the domain are
// extrapolated.
func (s *Linear) Map(v float64) float64 {
	return lerp(s.rng, s.norm.Map(v))
}

// Ticks returns at most max evenly spaced round values within the
// domain, in increasing order.
func (s *Linear) Ticks(max int) []float64 {
	if max < 1 {
		return nil
	}
	ls := s.norm
	if ls.Min > ls.Max {
		ls.Min, ls.Max = ls.Max, ls.Min
	}
	major, _ := ls.Ticks(scale.TickOptions{Max: max})
	return major
}

// Sqrt maps the square root of a data domain linearly onto a range.
// Used for radii, it makes circle area (rather than radius) grow
// linearly with the input.
type Sqrt struct {
	domain, rng [2]float64
	norm        scale.Linear
}

// NewSqrt returns a square-root scale mapping domain[0] to rng[0] and
// domain[1] to rng[1].
func NewSqrt(domain, rng [2]float64) (*Sqrt, error) {
	lo, hi := signedSqrt(domain[0]), signedSqrt(domain[1])
	if !finite(lo) || !finite(hi) || lo == hi {
		return nil, &DegenerateScaleError{"sqrt", domain}
	}
	return &Sqrt{
		domain: domain,
		rng:    rng,
		norm:   scale.Linear{Min: lo, Max: hi},
	}, nil
}

func (s *Sqrt) Domain() [2]float64 { return s.domain }
func (s *Sqrt) Range() [2]float64  { return s.rng }

func (s *Sqrt) Map(v float64) float64 {
	return lerp(s.rng, s.norm.Map(signedSqrt(v)))
}

// lerp interpolates between r[0] and r[1] so that t=0 and t=1 produce
// the endpoints exactly.
func lerp(r [2]float64, t float64) float64 {
	return r[0]*(1-t) + r[1]*t
}

func signedSqrt(v float64) float64 {
	if v < 0 {
		return -math.Sqrt(-v)
	}
	return math.Sqrt(v)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
