// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-gg/palette/brewer"
)

// groupPalette is the qualitative palette for categories.
var groupPalette = func() []color.RGBA {
	var p []color.RGBA
	for _, c := range brewer.Set1_9 {
		p = append(p, color.RGBAModel.Convert(color.Color(c)).(color.RGBA))
	}
	return p
}()

// Groups returns the distinct categories of recs in order of first
// appearance.
func Groups(recs []Record) []string {
	var groups []string
	seen := make(map[string]bool)
	for _, rec := range recs {
		if !seen[rec.Category] {
			seen[rec.Category] = true
			groups = append(groups, rec.Category)
		}
	}
	return groups
}

// GroupColor returns the color of the i'th group.
func GroupColor(i int) color.RGBA {
	return groupPalette[i%len(groupPalette)]
}

// Hex formats c as a CSS color.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
