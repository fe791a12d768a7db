// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFile(t *testing.T) {
	l := &Loader{Fields: testFields()}
	ds, err := l.Load(context.Background(), "testdata/states.json")
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.Records) != 6 {
		t.Errorf("got %d records; want 6", len(ds.Records))
	}
	if len(ds.Skipped) != 1 {
		t.Errorf("got %d skipped; want 1", len(ds.Skipped))
	}
	if got := ds.Records[5]; got.Name != "Vermont" || got.Y != 1690 {
		t.Errorf("last record %+v; want Vermont with 1690 restaurants", got)
	}
}

func TestLoadOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/")
		fmt.Fprintf(w, `[{"state": %q, "population": 1, "number_of_restaurants": 2}]`, name)
	}))
	defer srv.Close()

	dir := t.TempDir()
	path := filepath.Join(dir, "local.json")
	if err := os.WriteFile(path, []byte(`[{"state": "local", "population": 1, "number_of_restaurants": 2}]`), 0666); err != nil {
		t.Fatal(err)
	}

	l := &Loader{
		Fields: testFields(),
		Stdin:  strings.NewReader(`[{"state": "stdin", "population": 1, "number_of_restaurants": 2}]`),
	}
	ds, err := l.Load(context.Background(), srv.URL+"/one", path, "-", srv.URL+"/two")
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, rec := range ds.Records {
		names = append(names, rec.Name)
	}
	if want := "one local stdin two"; strings.Join(names, " ") != want {
		t.Errorf("got records %v; want %s", names, want)
	}
}

func TestLoadFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	l := &Loader{Fields: testFields()}
	for _, srcs := range [][]string{
		{"testdata/states.json", srv.URL + "/missing"},
		{"testdata/does-not-exist.json"},
	} {
		ds, err := l.Load(context.Background(), srcs...)
		var le *LoadError
		if !errors.As(err, &le) {
			t.Errorf("Load(%v): got %v; want *LoadError", srcs, err)
		}
		if ds != nil {
			t.Errorf("Load(%v): got partial dataset %+v", srcs, ds)
		}
	}
	if _, err := l.Load(context.Background()); err == nil {
		t.Errorf("Load with no sources: want error")
	}
}

func TestLoadStdinTwice(t *testing.T) {
	l := &Loader{
		Fields: testFields(),
		Stdin:  strings.NewReader(`[{"state": "stdin", "population": 1, "number_of_restaurants": 2}]`),
	}
	ds, err := l.Load(context.Background(), "-", "testdata/states.json", "-")
	if err == nil || ds != nil {
		t.Errorf("Load(-, file, -) = %+v, %v; want error", ds, err)
	}
}
