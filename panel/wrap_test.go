// SPDX-License-Identifier: Unlicense OR MIT

package panel

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/panelkit/panelkit/axis"
)

var inf = math.Inf(1)

func sized(sizes ...axis.Point) []Child {
	children := make([]Child, len(sizes))
	for i, sz := range sizes {
		children[i] = Child{Key: i, Size: sz}
	}
	return children
}

func place(index int, x, y, w, h float64) Placement {
	return Placement{Index: index, Key: index, Bounds: axis.Bounds{X: x, Y: y, Width: w, Height: h}}
}

func TestWrapRows(t *testing.T) {
	tests := []struct {
		label     string
		wrap      Wrap
		children  []Child
		available axis.Point
		rows      [][]int
		required  axis.Point
		places    []Placement
	}{
		{
			label:     "three of forty",
			children:  sized(axis.Pt(40, 10), axis.Pt(40, 10), axis.Pt(40, 10)),
			available: axis.Pt(100, inf),
			rows:      [][]int{{0, 1}, {2}},
			required:  axis.Pt(80, 20),
			places: []Placement{
				place(0, 0, 0, 40, 10),
				place(1, 40, 0, 40, 10),
				place(2, 0, 10, 40, 10),
			},
		},
		{
			label:     "vertical",
			wrap:      Wrap{Orientation: axis.Vertical},
			children:  sized(axis.Pt(10, 40), axis.Pt(10, 40), axis.Pt(10, 40)),
			available: axis.Pt(inf, 100),
			rows:      [][]int{{0, 1}, {2}},
			required:  axis.Pt(20, 80),
			places: []Placement{
				place(0, 0, 0, 10, 40),
				place(1, 0, 40, 10, 40),
				place(2, 10, 0, 10, 40),
			},
		},
		{
			label: "spacing and padding",
			wrap: Wrap{
				HorizontalSpacing: 5,
				VerticalSpacing:   3,
				Padding:           Inset{Left: 2, Top: 1, Right: 2, Bottom: 1},
			},
			children:  sized(axis.Pt(30, 10), axis.Pt(30, 20), axis.Pt(30, 10)),
			available: axis.Pt(70, inf),
			rows:      [][]int{{0, 1}, {2}},
			required:  axis.Pt(69, 35),
			places: []Placement{
				place(0, 2, 1, 30, 20),
				place(1, 37, 1, 30, 20),
				place(2, 2, 24, 30, 10),
			},
		},
		{
			label: "collapsed children take no spacing",
			wrap:  Wrap{HorizontalSpacing: 10},
			children: []Child{
				{Key: 0, Size: axis.Pt(40, 10)},
				{Key: 1, Size: axis.Pt(40, 10), Collapsed: true},
				{Key: 2, Size: axis.Pt(40, 10)},
				{Key: 3, Size: axis.Pt(40, 10)},
			},
			available: axis.Pt(100, inf),
			rows:      [][]int{{0, 2}, {3}},
			required:  axis.Pt(90, 20),
			places: []Placement{
				place(0, 0, 0, 40, 10),
				place(2, 50, 0, 40, 10),
				place(3, 0, 10, 40, 10),
			},
		},
		{
			label:     "over-wide child keeps its own row",
			children:  sized(axis.Pt(150, 10), axis.Pt(40, 10)),
			available: axis.Pt(100, inf),
			rows:      [][]int{{0}, {1}},
			required:  axis.Pt(150, 20),
			places: []Placement{
				place(0, 0, 0, 150, 10),
				place(1, 0, 10, 40, 10),
			},
		},
		{
			label:     "stretch last",
			wrap:      Wrap{StretchLast: true},
			children:  sized(axis.Pt(40, 10), axis.Pt(40, 10), axis.Pt(40, 10)),
			available: axis.Pt(100, inf),
			rows:      [][]int{{0, 1}, {2}},
			required:  axis.Pt(100, 20),
			places: []Placement{
				place(0, 0, 0, 40, 10),
				place(1, 40, 0, 40, 10),
				place(2, 0, 10, 100, 10),
			},
		},
		{
			label:     "stretch last unbounded",
			wrap:      Wrap{StretchLast: true},
			children:  sized(axis.Pt(40, 10), axis.Pt(40, 10)),
			available: axis.Pt(inf, inf),
			rows:      [][]int{{0, 1}},
			required:  axis.Pt(80, 10),
			places: []Placement{
				place(0, 0, 0, 40, 10),
				place(1, 40, 0, 40, 10),
			},
		},
		{
			label:     "row thickness",
			children:  sized(axis.Pt(20, 10), axis.Pt(20, 30)),
			available: axis.Pt(100, inf),
			rows:      [][]int{{0, 1}},
			required:  axis.Pt(40, 30),
			places: []Placement{
				place(0, 0, 0, 20, 30),
				place(1, 20, 0, 20, 30),
			},
		},
		{
			label:     "zero space",
			children:  sized(axis.Pt(10, 10), axis.Pt(10, 10)),
			available: axis.Pt(0, 0),
			rows:      [][]int{{0}, {1}},
			required:  axis.Pt(10, 20),
			places: []Placement{
				place(0, 0, 0, 10, 10),
				place(1, 0, 10, 10, 10),
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			w := tc.wrap
			required := w.Measure(tc.children, tc.available)
			if required != tc.required {
				t.Errorf("required size: got %v; want %v", required, tc.required)
			}
			if diff := cmp.Diff(tc.rows, w.Rows()); diff != "" {
				t.Errorf("rows (-want +got):\n%s", diff)
			}
			places := w.Arrange(required)
			if diff := cmp.Diff(tc.places, places, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("placements (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWrapEmpty(t *testing.T) {
	pad := Inset{Left: 1, Top: 2, Right: 3, Bottom: 4}
	for _, children := range [][]Child{
		nil,
		{{Size: axis.Pt(10, 10), Collapsed: true}},
	} {
		w := Wrap{Padding: pad}
		if got, want := w.Measure(children, axis.Pt(100, 100)), axis.Pt(4, 6); got != want {
			t.Errorf("required size: got %v; want %v", got, want)
		}
		if places := w.Arrange(axis.Pt(100, 100)); len(places) != 0 {
			t.Errorf("got %d placements for no visible children", len(places))
		}
	}
}

func TestWrapChildConstraint(t *testing.T) {
	w := Wrap{Padding: Inset{Left: 5, Top: 5, Right: 5, Bottom: 5}}
	if got, want := w.ChildConstraint(axis.Pt(100, 6)), axis.Pt(90, 0); got != want {
		t.Errorf("got %v; want %v", got, want)
	}
	if got := w.ChildConstraint(axis.Pt(inf, 10)); !math.IsInf(got.X, 1) {
		t.Errorf("unbounded extent not preserved: %v", got)
	}
}

func TestWrapArrangeRepacks(t *testing.T) {
	children := sized(axis.Pt(40, 10), axis.Pt(50, 20), axis.Pt(30, 10), axis.Pt(60, 5))
	cfg := Wrap{HorizontalSpacing: 4, VerticalSpacing: 2, Padding: Inset{Left: 1, Right: 1}}

	wide := cfg
	wide.Measure(children, axis.Pt(1000, inf))
	got := wide.Arrange(axis.Pt(100, 100))

	narrow := cfg
	required := narrow.Measure(children, axis.Pt(100, 100))
	want := narrow.Arrange(required)

	if diff := cmp.Diff(narrow.Rows(), wide.Rows()); diff != "" {
		t.Errorf("rows (-measured +arranged):\n%s", diff)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("placements (-measured +arranged):\n%s", diff)
	}
}

func TestWrapPacking(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for n := 0; n < 200; n++ {
		var children []Child
		visible := 0
		for i := r.IntN(20); i > 0; i-- {
			c := Child{
				Key:       len(children),
				Size:      axis.Pt(float64(r.IntN(60)), float64(r.IntN(30))),
				Collapsed: r.IntN(5) == 0,
			}
			if !c.Collapsed {
				visible++
			}
			children = append(children, c)
		}
		avail := float64(r.IntN(150))
		w := Wrap{
			Orientation:       axis.Orientation(r.IntN(2)),
			HorizontalSpacing: float64(r.IntN(8)),
			VerticalSpacing:   float64(r.IntN(8)),
		}
		w.Measure(children, w.Orientation.Point(axis.Coord{U: avail, V: inf}))
		seen := make(map[int]bool)
		for _, row := range w.rows {
			for _, c := range row.cells {
				if seen[c.index] {
					t.Fatalf("child %d placed twice", c.index)
				}
				seen[c.index] = true
			}
			if len(row.cells) > 1 && row.size.U > avail {
				t.Errorf("row of %d children spans %v > %v", len(row.cells), row.size.U, avail)
			}
		}
		if len(seen) != visible {
			t.Errorf("placed %d children; want %d", len(seen), visible)
		}
	}
}

func TestWrapArrangeWidensAgain(t *testing.T) {
	var w Wrap
	children := sized(axis.Pt(40, 10), axis.Pt(40, 10), axis.Pt(40, 10))
	required := w.Measure(children, axis.Pt(100, inf))

	w.Arrange(axis.Pt(50, 100))
	if diff := cmp.Diff([][]int{{0}, {1}, {2}}, w.Rows()); diff != "" {
		t.Errorf("narrow rows (-want +got):\n%s", diff)
	}

	places := w.Arrange(required)
	if diff := cmp.Diff([][]int{{0, 1}, {2}}, w.Rows()); diff != "" {
		t.Errorf("wide rows (-want +got):\n%s", diff)
	}
	want := []Placement{
		place(0, 0, 0, 40, 10),
		place(1, 40, 0, 40, 10),
		place(2, 0, 10, 40, 10),
	}
	if diff := cmp.Diff(want, places); diff != "" {
		t.Errorf("wide placements (-want +got):\n%s", diff)
	}
}
