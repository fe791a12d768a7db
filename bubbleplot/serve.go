// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/http"
	"os"
	"os/exec"

	"github.com/aclements/go-bubble/bubble"
	"github.com/aclements/go-bubble/bubble/render"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/kballard/go-shellquote"
	"github.com/prometheus/client_golang/prometheus"
)

var pageTemplate = template.Must(template.New("page").Parse(`<html>
  <head>
    <meta charset="utf-8" />
    <title>{{.Title}}</title>
    <style>
body {
  font-family: sans-serif;
  color: #222;
}
    </style>
  </head>
  <body>
{{.SVG}}
    <script>{{.Script}}</script>
  </body>
</html>
`))

// server serves one chart. Every websocket connection is a separate
// render session with its own interaction state.
type server struct {
	chart   *bubble.Chart
	svg     []byte // chart in its initial state
	metrics *viewerMetrics

	upgrader websocket.Upgrader
}

func newServer(c *bubble.Chart, reg *prometheus.Registry) (*server, error) {
	var buf bytes.Buffer
	if err := render.SVG(&buf, c, bubble.State{}); err != nil {
		return nil, err
	}
	m, err := newViewerMetrics(reg)
	if err != nil {
		return nil, err
	}
	return &server{
		chart:   c,
		svg:     buf.Bytes(),
		metrics: m,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}, nil
}

func (s *server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.httpMain)
	mux.HandleFunc("/chart.svg", s.httpSVG)
	mux.HandleFunc("/chart.png", s.httpPNG)
	mux.HandleFunc("/events", s.httpEvents)
	mux.Handle("/metrics", s.metrics.handler())
	return mux
}

func (s *server) httpMain(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.metrics.renders.WithLabelValues("html").Inc()
	// Drop the XML declaration to inline the SVG.
	inline := s.svg
	if i := bytes.Index(inline, []byte("<svg")); i >= 0 {
		inline = inline[i:]
	}
	err := pageTemplate.Execute(w, map[string]interface{}{
		"Title":  s.chart.Config.YLabel,
		"SVG":    template.HTML(inline),
		"Script": template.JS(render.Script),
	})
	if err != nil {
		log.Print(err)
	}
}

func (s *server) httpSVG(w http.ResponseWriter, r *http.Request) {
	s.metrics.renders.WithLabelValues("svg").Inc()
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(s.svg)
}

func (s *server) httpPNG(w http.ResponseWriter, r *http.Request) {
	s.metrics.renders.WithLabelValues("png").Inc()
	w.Header().Set("Content-Type", "image/png")
	if err := render.PNG(w, s.chart, bubble.State{}); err != nil {
		log.Print(err)
	}
}

// httpEvents runs one interactive session. The client sends pointer
// events as JSON bubble.Events and receives a JSON bubble.Delta for
// each event that changes the presentation.
func (s *server) httpEvents(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client.
		return
	}
	defer ws.Close()

	id := uuid.NewString()
	ctl := bubble.NewController(*s.chart.Controller.Options())
	s.metrics.sessions.Inc()
	defer s.metrics.sessions.Dec()
	log.Printf("session %s: connected from %s", id, r.RemoteAddr)

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("session %s: %v", id, err)
			}
			break
		}
		var ev bubble.Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			log.Printf("session %s: bad event: %v", id, err)
			s.metrics.events.WithLabelValues("invalid").Inc()
			continue
		}
		s.metrics.events.WithLabelValues(ev.Kind.String()).Inc()
		d := ctl.Handle(ev)
		if d.Empty() {
			continue
		}
		if err := ws.WriteJSON(d); err != nil {
			log.Printf("session %s: %v", id, err)
			break
		}
	}
	log.Printf("session %s: closed", id)
}

// serve serves c on addr until the process exits. If open is not
// empty, it is run as a command with the chart's URL appended.
func serve(c *bubble.Chart, addr, open string) {
	s, err := newServer(c, prometheus.NewRegistry())
	if err != nil {
		log.Fatal(err)
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("failed to create server socket: %v", err)
	}
	url := "http://" + ln.Addr().String()
	fmt.Printf("Listening on %s\n", url)
	if open != "" {
		if err := startBrowser(open, url); err != nil {
			log.Print(err)
		}
	}
	err = http.Serve(ln, s.handler())
	log.Fatalf("failed to start HTTP server: %v", err)
}

// startBrowser runs the shell-quoted command line cmd with url as an
// extra argument, without waiting for it.
func startBrowser(cmd, url string) error {
	args, err := shellquote.Split(cmd)
	if err != nil {
		return fmt.Errorf("parsing -open command: %w", err)
	}
	if len(args) == 0 {
		return fmt.Errorf("empty -open command")
	}
	proc := exec.Command(args[0], append(args[1:], url)...)
	proc.Stdout, proc.Stderr = os.Stdout, os.Stderr
	return proc.Start()
}
