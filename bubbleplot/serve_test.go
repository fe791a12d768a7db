// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aclements/go-bubble/bubble"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func testServer(t *testing.T) (*server, *httptest.Server) {
	t.Helper()
	s, err := newServer(testChart(t), prometheus.NewRegistry())
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(s.handler())
	t.Cleanup(srv.Close)
	return s, srv
}

func get(t *testing.T, url string) (string, *http.Response) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(body), resp
}

func TestServePages(t *testing.T) {
	s, srv := testServer(t)

	body, _ := get(t, srv.URL+"/")
	for _, want := range []string{"<svg", `data-id="Texas"`, "new WebSocket"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %s", want)
		}
	}
	body, resp := get(t, srv.URL+"/chart.svg")
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("chart.svg Content-Type %q", ct)
	}
	if !strings.Contains(body, `data-id="Vermont"`) {
		t.Errorf("chart.svg missing Vermont")
	}
	if _, resp := get(t, srv.URL+"/nope"); resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET /nope: status %d; want 404", resp.StatusCode)
	}

	if got := testutil.ToFloat64(s.metrics.renders.WithLabelValues("html")); got != 1 {
		t.Errorf("html renders = %v; want 1", got)
	}
	body, _ = get(t, srv.URL+"/metrics")
	if !strings.Contains(body, "bubbleplot_renders_total") {
		t.Errorf("/metrics missing bubbleplot_renders_total:\n%s", body)
	}
}

func TestServeEvents(t *testing.T) {
	s, srv := testServer(t)
	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/events", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer ws.Close()

	roundTrip := func(ev bubble.Event) bubble.Delta {
		t.Helper()
		if err := ws.WriteJSON(ev); err != nil {
			t.Fatal(err)
		}
		var d bubble.Delta
		if err := ws.ReadJSON(&d); err != nil {
			t.Fatal(err)
		}
		return d
	}

	d := roundTrip(bubble.Event{Kind: bubble.Enter, X: 10, Y: 20, Target: "Texas"})
	want := bubble.Tooltip{Visible: true, Text: "state: Texas", X: 40, Y: 50}
	if d.Tooltip == nil || *d.Tooltip != want {
		t.Errorf("enter: tooltip %+v; want %+v", d.Tooltip, want)
	}

	// Events that change nothing get no reply, and invalid events
	// are dropped, so the next reply answers the group event.
	if err := ws.WriteMessage(websocket.TextMessage, []byte(`{"kind":"click"}`)); err != nil {
		t.Fatal(err)
	}
	if err := ws.WriteJSON(bubble.Event{Kind: bubble.GroupLeave, Target: "red"}); err != nil {
		t.Fatal(err)
	}
	d = roundTrip(bubble.Event{Kind: bubble.GroupEnter, Target: "red"})
	if d.Opacity["red"] != 1 || d.Opacity["blue"] != 0.05 {
		t.Errorf("group enter: opacity %v; want red 1, blue 0.05", d.Opacity)
	}

	for kind, want := range map[string]float64{"enter": 1, "groupenter": 1, "groupleave": 1, "invalid": 1} {
		if got := testutil.ToFloat64(s.metrics.events.WithLabelValues(kind)); got != want {
			t.Errorf("%s events = %v; want %v", kind, got, want)
		}
	}
	if got := testutil.ToFloat64(s.metrics.sessions); got != 1 {
		t.Errorf("sessions = %v; want 1", got)
	}

	// The chart's own controller is untouched by sessions.
	if st := s.chart.Controller.State(); st != (bubble.State{}) {
		t.Errorf("chart controller state %+v; want idle", st)
	}
}
