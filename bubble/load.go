// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
)

// LoadError reports a source that could not be fetched or parsed.
// A LoadError is fatal to the render session.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// A Dataset is the complete record collection of a render session.
type Dataset struct {
	Records []Record

	// Skipped lists the objects dropped for missing fields, in
	// input order.
	Skipped []error
}

// A Loader fetches and decodes datasets.
type Loader struct {
	Fields Fields
	Strict bool // fail instead of skipping records with missing fields

	// Client is used for http and https sources. If nil,
	// http.DefaultClient is used.
	Client *http.Client

	// Stdin is read for the source "-". If nil, os.Stdin is used.
	Stdin io.Reader
}

// Load fetches all sources concurrently and concatenates their
// records in source order. A source is a file path, "-" for standard
// input, or an http or https URL.
//
// The load is atomic: if any source fails, Load returns a *LoadError
// and no records. There are no retries.
func (l *Loader) Load(ctx context.Context, sources ...string) (*Dataset, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("no data sources")
	}
	stdin := 0
	for _, src := range sources {
		if src == "-" {
			if stdin++; stdin > 1 {
				return nil, fmt.Errorf("standard input given more than once")
			}
		}
	}
	parts := make([]*Dataset, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			ds, err := l.loadOne(ctx, src)
			if err != nil {
				return &LoadError{src, err}
			}
			parts[i] = ds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ds := new(Dataset)
	for _, p := range parts {
		ds.Records = append(ds.Records, p.Records...)
		ds.Skipped = append(ds.Skipped, p.Skipped...)
	}
	return ds, nil
}

func (l *Loader) loadOne(ctx context.Context, src string) (*Dataset, error) {
	rc, err := l.open(ctx, src)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	recs, skipped, err := Decode(rc, l.Fields, l.Strict)
	if err != nil {
		return nil, err
	}
	return &Dataset{recs, skipped}, nil
}

func (l *Loader) open(ctx context.Context, src string) (io.ReadCloser, error) {
	switch {
	case src == "-":
		if l.Stdin != nil {
			return io.NopCloser(l.Stdin), nil
		}
		return io.NopCloser(os.Stdin), nil

	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		req, err := http.NewRequestWithContext(ctx, "GET", src, nil)
		if err != nil {
			return nil, err
		}
		client := l.Client
		if client == nil {
			client = http.DefaultClient
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("GET %s: %s", src, resp.Status)
		}
		return resp.Body, nil
	}
	return os.Open(src)
}
