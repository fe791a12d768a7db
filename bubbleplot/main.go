// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bubbleplot draws a bubble chart from a JSON dataset.
//
// Each input is a JSON array of objects, one per region. The -x, -y
// and -size flags name the fields plotted on each axis and used for
// the bubble area; -category names an optional field used to color
// and group bubbles. Inputs may be files, "-" for standard input, or
// http(s) URLs; all inputs are loaded before anything is drawn.
//
// By default bubbleplot writes an SVG image. With -http, it instead
// serves an interactive page where hovering a bubble shows a tooltip
// and hovering a category dims the other categories.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aclements/go-bubble/bubble"
	"github.com/aclements/go-bubble/bubble/render"
	"golang.org/x/term"
)

func main() {
	log.SetPrefix("bubbleplot: ")
	log.SetFlags(0)

	fields := bubble.DefaultFields()
	cfg := bubble.DefaultConfig()
	var (
		flagName     = flag.String("name", fields.Name, "record name `field`")
		flagX        = flag.String("x", "", "x axis `field` (required)")
		flagY        = flag.String("y", fields.Y, "y axis `field`")
		flagSize     = flag.String("size", fields.Size, "bubble size `field`")
		flagCategory = flag.String("category", fields.Category, "category `field` (empty for none)")
		flagStrict   = flag.Bool("strict", false, "fail on records with missing fields instead of skipping them")
		flagTimeout  = flag.Duration("timeout", time.Minute, "time limit for loading inputs")

		flagWidth       = flag.Float64("width", cfg.Width, "plot area width")
		flagHeight      = flag.Float64("height", cfg.Height, "plot area height")
		flagXLabel      = flag.String("xlabel", "", "x axis title (default: x field)")
		flagYLabel      = flag.String("ylabel", cfg.YLabel, "y axis title")
		flagLegendTitle = flag.String("legend-title", cfg.Legend.Title, "size legend title")
		flagLegendUnit  = flag.Float64("legend-unit", cfg.Legend.Unit, "size legend labels show value/`unit`")
		flagTooltip     = flag.String("tooltip", cfg.Interact.TooltipPrefix, "tooltip text `prefix`")

		flagOut       = flag.String("o", "", "write output to `file` (default: stdout)")
		flagFormat    = flag.String("format", "", "output `format`, svg or png (default: from -o, else svg)")
		flagTable     = flag.Bool("table", false, "output a table of the chart geometry instead of a plot")
		flagHover     = flag.String("hover", "", "draw the chart with the tooltip of record `id` shown")
		flagHighlight = flag.String("highlight", "", "draw the chart with `category` highlighted")
		flagHTTP      = flag.String("http", "", "serve an interactive chart on `addr` (e.g., 'localhost:8080')")
		flagOpen      = flag.String("open", "", "with -http, run `command` with the chart URL appended")
	)
	var xdom, ydom, rdom, rrange pairFlag
	rrange = pairFlag(cfg.RRange)
	var legend floatsFlag
	flag.Var(&xdom, "xdomain", "x axis domain `lo,hi` (default: data bounds)")
	flag.Var(&ydom, "ydomain", "y axis domain `lo,hi` (default: data bounds)")
	flag.Var(&rdom, "rdomain", "bubble size domain `lo,hi` (default: 0 to data max)")
	flag.Var(&rrange, "rrange", "bubble radius range `lo,hi`")
	flag.Var(&legend, "legend", "comma-separated size legend `values` (default: 7 values across -rdomain)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -x field [flags] [inputs...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *flagX == "" {
		// The restaurant datasets only have "state" for the
		// horizontal axis, which is not a number.
		log.Print("no x field given; use -x to name a numeric field")
		flag.Usage()
		os.Exit(2)
	}
	fields = bubble.Fields{
		Name:     *flagName,
		X:        *flagX,
		Y:        *flagY,
		Size:     *flagSize,
		Category: *flagCategory,
	}

	cfg.Width, cfg.Height = *flagWidth, *flagHeight
	cfg.XDomain, cfg.YDomain = xdom, ydom
	cfg.RDomain, cfg.RRange = rdom, rrange
	cfg.XLabel = *flagXLabel
	if cfg.XLabel == "" {
		cfg.XLabel = fields.X
	}
	cfg.YLabel = *flagYLabel
	cfg.Legend.Title = *flagLegendTitle
	cfg.Legend.Unit = *flagLegendUnit
	cfg.Legend.Baseline = cfg.Height - 100
	cfg.LegendValues = legend
	cfg.Interact.TooltipPrefix = *flagTooltip

	// Load the dataset.
	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	ctx, cancel := context.WithTimeout(context.Background(), *flagTimeout)
	defer cancel()
	loader := &bubble.Loader{Fields: fields, Strict: *flagStrict}
	ds, err := loader.Load(ctx, paths...)
	if err != nil {
		log.Fatal(err)
	}
	for _, err := range ds.Skipped {
		log.Printf("skipping %v", err)
	}

	c, err := bubble.NewChart(cfg, ds.Records)
	if err != nil {
		log.Fatal(err)
	}

	if *flagHTTP != "" {
		serve(c, *flagHTTP, *flagOpen)
		return
	}

	if err := applySnapshot(c, *flagHover, *flagHighlight); err != nil {
		log.Fatal(err)
	}

	// Prepare for output.
	format := outputFormat(*flagFormat, *flagOut)
	f, err := createOutput(*flagOut, format, *flagTable)
	if err != nil {
		log.Fatal(err)
	}

	if *flagTable {
		c.WriteTable(f)
	} else if err := write(f, c, format); err != nil {
		log.Fatal(err)
	}
	if f != os.Stdout {
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
	}
}

// applySnapshot drives c's controller so the rendered image shows
// the tooltip of record hover and the highlight of category group.
func applySnapshot(c *bubble.Chart, hover, group string) error {
	if hover != "" {
		found := false
		for _, p := range c.Points {
			if p.ID == hover {
				c.Controller.Handle(bubble.Event{Kind: bubble.Enter, X: p.CX, Y: p.CY, Target: p.ID})
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("no record %q to hover", hover)
		}
	}
	if group != "" {
		found := false
		for _, g := range c.Groups {
			if g == group {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("no category %q to highlight", group)
		}
		c.Controller.Handle(bubble.Event{Kind: bubble.GroupEnter, Target: group})
	}
	return nil
}

func outputFormat(format, out string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	if strings.EqualFold(filepath.Ext(out), ".png") {
		return "png"
	}
	return "svg"
}

// createOutput checks format and returns the file to write to, or
// os.Stdout if path is empty. Nothing is created if format is bad.
func createOutput(path, format string, table bool) (*os.File, error) {
	if !table {
		if err := checkFormat(format); err != nil {
			return nil, err
		}
		if format == "png" && path == "" && term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, fmt.Errorf("refusing to write PNG to a terminal; use -o")
		}
	}
	if path == "" {
		return os.Stdout, nil
	}
	return os.Create(path)
}

func checkFormat(format string) error {
	switch format {
	case "svg", "png":
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}

func write(w io.Writer, c *bubble.Chart, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	st := c.Controller.State()
	if format == "png" {
		return render.PNG(w, c, st)
	}
	return render.SVG(w, c, st)
}
