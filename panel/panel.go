// SPDX-License-Identifier: Unlicense OR MIT

// Package panel implements toolkit independent layout engines.
//
// An engine is driven in two passes. Measure receives the desired size of
// every child, as already measured by the host, and the space available to
// the panel; it returns the size the panel requires. Arrange receives the
// size the host finally allotted and returns one Placement per visible
// child, in input order.
//
// Engines never fail: empty input, collapsed children, zero space and
// invalid sizing all resolve to well defined, possibly zero sized, results.
package panel

import (
	"github.com/panelkit/panelkit/axis"
)

// Child describes a child element to an engine.
type Child struct {
	// Key is an opaque host handle, passed back in Placement and
	// to SizingProvider.
	Key any
	// Size is the desired size of the child.
	Size axis.Point
	// Collapsed children take no space and no spacing.
	Collapsed bool
}

// Placement is the arranged position of a child.
type Placement struct {
	// Index is the position of the child in the Measure input.
	Index  int
	Key    any
	Bounds axis.Bounds
}

// Inset is space around the content of a panel.
type Inset struct {
	Left, Top, Right, Bottom float64
}

// start returns the leading inset in (U, V).
func (in Inset) start(o axis.Orientation) axis.Coord {
	return o.Coord(axis.Pt(in.Left, in.Top))
}

// end returns the trailing inset in (U, V).
func (in Inset) end(o axis.Orientation) axis.Coord {
	return o.Coord(axis.Pt(in.Right, in.Bottom))
}
