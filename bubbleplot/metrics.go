// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// viewerMetrics counts viewer activity.
type viewerMetrics struct {
	gatherer prometheus.Gatherer

	sessions prometheus.Gauge
	events   *prometheus.CounterVec
	renders  *prometheus.CounterVec
}

func newViewerMetrics(reg *prometheus.Registry) (*viewerMetrics, error) {
	m := &viewerMetrics{
		gatherer: reg,
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bubbleplot_sessions",
			Help: "Number of connected interactive sessions.",
		}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bubbleplot_events_total",
			Help: "Pointer events handled, labeled by event kind.",
		}, []string{"kind"}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bubbleplot_renders_total",
			Help: "Charts served, labeled by format.",
		}, []string{"format"}),
	}
	for _, c := range []prometheus.Collector{m.sessions, m.events, m.renders} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *viewerMetrics) handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
