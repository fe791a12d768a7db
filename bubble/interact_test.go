// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestHoverSequence(t *testing.T) {
	c := NewController(DefaultInteractOptions(nil))

	d := c.Handle(Event{Kind: Enter, X: 10, Y: 20, Target: "A"})
	want := Tooltip{Visible: true, Text: "state: A", X: 40, Y: 50}
	if d.Tooltip == nil || *d.Tooltip != want {
		t.Fatalf("enter: delta tooltip %+v; want %+v", d.Tooltip, want)
	}
	if st := c.State(); !st.Hovering || st.Hover != "A" {
		t.Fatalf("enter: state %+v; want hovering A", st)
	}

	d = c.Handle(Event{Kind: Move, X: 15, Y: 25, Target: "A"})
	want = Tooltip{Visible: true, Text: "state: A", X: 45, Y: 55}
	if d.Tooltip == nil || *d.Tooltip != want {
		t.Fatalf("move: delta tooltip %+v; want %+v", d.Tooltip, want)
	}
	if d.Opacity != nil {
		t.Errorf("move: unexpected opacity change %v", d.Opacity)
	}

	d = c.Handle(Event{Kind: Leave, Target: "A"})
	if d.Tooltip == nil || d.Tooltip.Visible {
		t.Fatalf("leave: delta tooltip %+v; want hidden", d.Tooltip)
	}
	if st := c.State(); st.Hovering || st.Tooltip.Visible {
		t.Fatalf("leave: state %+v; want idle", st)
	}
}

func TestReentrantEnter(t *testing.T) {
	c := NewController(DefaultInteractOptions(nil))
	c.Handle(Event{Kind: Enter, X: 1, Y: 1, Target: "A"})
	c.Handle(Event{Kind: Enter, X: 2, Y: 2, Target: "B"})
	st := c.State()
	if !st.Hovering || st.Hover != "B" || st.Tooltip.Text != "state: B" {
		t.Errorf("state %+v; want hovering B", st)
	}
}

func TestIdleEventsIgnored(t *testing.T) {
	c := NewController(DefaultInteractOptions([]string{"red"}))
	for _, ev := range []Event{
		{Kind: Move, X: 1, Y: 2},
		{Kind: Leave, Target: "A"},
		{Kind: GroupLeave, Target: "red"},
	} {
		if d := c.Handle(ev); !d.Empty() {
			t.Errorf("%v while idle: got delta %+v; want none", ev.Kind, d)
		}
	}
	if st := c.State(); st != (State{}) {
		t.Errorf("state %+v; want zero State", st)
	}
}

func TestHighlight(t *testing.T) {
	groups := []string{"red", "blue", "purple"}
	c := NewController(DefaultInteractOptions(groups))

	d := c.Handle(Event{Kind: GroupEnter, Target: "blue"})
	want := map[string]float64{"red": 0.05, "blue": 1, "purple": 0.05}
	if !reflect.DeepEqual(d.Opacity, want) {
		t.Errorf("group enter: opacity %v; want %v", d.Opacity, want)
	}
	if d.Tooltip != nil {
		t.Errorf("group enter: unexpected tooltip change %+v", d.Tooltip)
	}

	// Hovering is independent of highlighting.
	c.Handle(Event{Kind: Enter, Target: "Texas"})
	if st := c.State(); !st.Highlighted || st.Highlight != "blue" {
		t.Errorf("after enter: state %+v; want blue still highlighted", st)
	}

	if d := c.Handle(Event{Kind: GroupEnter, Target: "blue"}); !d.Empty() {
		t.Errorf("repeated group enter: got delta %+v; want none", d)
	}

	d = c.Handle(Event{Kind: GroupLeave, Target: "blue"})
	want = map[string]float64{"red": 1, "blue": 1, "purple": 1}
	if !reflect.DeepEqual(d.Opacity, want) {
		t.Errorf("group leave: opacity %v; want %v", d.Opacity, want)
	}
	if st := c.State(); st.Highlighted || !st.Hovering {
		t.Errorf("after group leave: state %+v; want unhighlighted, hovering", st)
	}
}

func TestStepIsPure(t *testing.T) {
	o := DefaultInteractOptions(nil)
	s0 := State{}
	s1, _ := Step(s0, Event{Kind: Enter, Target: "A"}, &o)
	if s0 != (State{}) {
		t.Errorf("Step modified its input state: %+v", s0)
	}
	s2, _ := Step(s1, Event{Kind: Enter, Target: "A"}, &o)
	if s1 != s2 {
		t.Errorf("re-entering the same record changed state: %+v -> %+v", s1, s2)
	}
}

func TestEventJSON(t *testing.T) {
	var ev Event
	if err := json.Unmarshal([]byte(`{"kind":"groupenter","x":1.5,"y":2,"target":"red"}`), &ev); err != nil {
		t.Fatal(err)
	}
	if want := (Event{GroupEnter, 1.5, 2, "red"}); ev != want {
		t.Errorf("got %+v; want %+v", ev, want)
	}
	if err := json.Unmarshal([]byte(`{"kind":"click"}`), &ev); err == nil {
		t.Errorf("unknown kind: want error")
	}
	b, err := json.Marshal(Event{Kind: Leave, Target: "A"})
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"kind":"leave","x":0,"y":0,"target":"A"}`; string(b) != want {
		t.Errorf("Marshal = %s; want %s", b, want)
	}
}
