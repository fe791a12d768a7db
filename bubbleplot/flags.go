// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"
)

// pairFlag is a flag.Value holding an interval "lo,hi".
type pairFlag [2]float64

func (p *pairFlag) String() string {
	if *p == (pairFlag{}) {
		return ""
	}
	return fmt.Sprintf("%g,%g", p[0], p[1])
}

func (p *pairFlag) Set(s string) error {
	vs, err := parseFloats(s)
	if err != nil {
		return err
	}
	if len(vs) != 2 {
		return fmt.Errorf("want lo,hi, got %q", s)
	}
	p[0], p[1] = vs[0], vs[1]
	return nil
}

// floatsFlag is a flag.Value holding a comma-separated list of
// numbers.
type floatsFlag []float64

func (f *floatsFlag) String() string {
	var parts []string
	for _, v := range *f {
		parts = append(parts, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return strings.Join(parts, ",")
}

func (f *floatsFlag) Set(s string) error {
	vs, err := parseFloats(s)
	if err != nil {
		return err
	}
	*f = vs
	return nil
}

func parseFloats(s string) ([]float64, error) {
	var vs []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", part)
		}
		vs = append(vs, v)
	}
	return vs, nil
}
