// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import "fmt"

// EventKind is the kind of a pointer event.
type EventKind int

const (
	// Enter, Move and Leave are pointer events over a data
	// circle. Their Target is the record ID.
	Enter EventKind = iota
	Move
	Leave

	// GroupEnter and GroupLeave are pointer events over a
	// category legend item. Their Target is the category.
	GroupEnter
	GroupLeave
)

var eventKindNames = []string{"enter", "move", "leave", "groupenter", "groupleave"}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

func (k EventKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(eventKindNames) {
		return nil, fmt.Errorf("unknown event kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *EventKind) UnmarshalText(b []byte) error {
	for i, name := range eventKindNames {
		if string(b) == name {
			*k = EventKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown event kind %q", b)
}

// An Event is a pointer event dispatched by the Render Driver. X and
// Y are the pointer position in chart coordinates.
type Event struct {
	Kind   EventKind `json:"kind"`
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
	Target string    `json:"target"`
}

// Tooltip is the tooltip's content and position.
type Tooltip struct {
	Visible bool    `json:"visible"`
	Text    string  `json:"text"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// State is the interaction state of a render session. The zero State
// is idle and unhighlighted.
//
// Hovering and highlighting are independent: hovering follows the
// data circles, highlighting follows the category legend.
type State struct {
	Tooltip Tooltip

	Hovering bool
	Hover    string // record under the pointer, if Hovering

	Highlighted bool
	Highlight   string // highlighted category, if Highlighted
}

// InteractOptions configures how events change the State.
type InteractOptions struct {
	TooltipPrefix    string  // tooltip text is TooltipPrefix + record ID
	OffsetX, OffsetY float64 // tooltip offset from the pointer
	DimOpacity       float64 // opacity of groups other than the highlighted one
	Groups           []string
}

// DefaultInteractOptions returns the options used by the restaurant
// charts.
func DefaultInteractOptions(groups []string) InteractOptions {
	return InteractOptions{
		TooltipPrefix: "state: ",
		OffsetX:       30,
		OffsetY:       30,
		DimOpacity:    0.05,
		Groups:        groups,
	}
}

// A Delta lists the presentation changes caused by one event. Nil
// fields are unchanged.
type Delta struct {
	Tooltip *Tooltip           `json:"tooltip,omitempty"`
	Opacity map[string]float64 `json:"opacity,omitempty"`
}

// Empty reports whether d changes nothing.
func (d Delta) Empty() bool {
	return d.Tooltip == nil && d.Opacity == nil
}

// Step applies ev to s and returns the new state and the change the
// Render Driver must apply. Transitions are instantaneous; any fading
// belongs to the presentation layer.
func Step(s State, ev Event, o *InteractOptions) (State, Delta) {
	var d Delta
	switch ev.Kind {
	case Enter:
		// The most recent Enter wins, even without a Leave.
		s.Hovering, s.Hover = true, ev.Target
		s.Tooltip = Tooltip{
			Visible: true,
			Text:    o.TooltipPrefix + ev.Target,
			X:       ev.X + o.OffsetX,
			Y:       ev.Y + o.OffsetY,
		}
		d.Tooltip = tooltipCopy(s.Tooltip)

	case Move:
		if !s.Hovering {
			break
		}
		s.Tooltip.X, s.Tooltip.Y = ev.X+o.OffsetX, ev.Y+o.OffsetY
		d.Tooltip = tooltipCopy(s.Tooltip)

	case Leave:
		if !s.Hovering {
			break
		}
		s.Hovering, s.Hover = false, ""
		s.Tooltip.Visible = false
		d.Tooltip = tooltipCopy(s.Tooltip)

	case GroupEnter:
		if s.Highlighted && s.Highlight == ev.Target {
			break
		}
		s.Highlighted, s.Highlight = true, ev.Target
		d.Opacity = opacities(s, o)

	case GroupLeave:
		if !s.Highlighted {
			break
		}
		s.Highlighted, s.Highlight = false, ""
		d.Opacity = opacities(s, o)
	}
	return s, d
}

// Opacity returns the opacity of group in state s.
func Opacity(s State, group string, o *InteractOptions) float64 {
	if s.Highlighted && s.Highlight != group {
		return o.DimOpacity
	}
	return 1
}

func opacities(s State, o *InteractOptions) map[string]float64 {
	m := make(map[string]float64, len(o.Groups))
	for _, g := range o.Groups {
		m[g] = Opacity(s, g, o)
	}
	return m
}

func tooltipCopy(t Tooltip) *Tooltip {
	return &t
}

// A Controller holds the interaction state of one render session.
// It is not safe for concurrent use; events must be delivered one at
// a time, as an event loop does.
type Controller struct {
	opts  InteractOptions
	state State
}

// NewController returns an idle, unhighlighted Controller.
func NewController(o InteractOptions) *Controller {
	return &Controller{opts: o}
}

// Handle applies ev and returns the resulting presentation change.
func (c *Controller) Handle(ev Event) Delta {
	var d Delta
	c.state, d = Step(c.state, ev, &c.opts)
	return d
}

// State returns the current interaction state.
func (c *Controller) State() State {
	return c.state
}

// Options returns the controller's options.
func (c *Controller) Options() *InteractOptions {
	return &c.opts
}
