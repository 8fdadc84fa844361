// SPDX-License-Identifier: Unlicense OR MIT

package panel

import (
	"github.com/panelkit/panelkit/axis"
)

// Equal lays out children in a single line, distributing the space
// left by Auto and Fixed children among Proportional children by
// weight. Every child spans the largest cross axis extent.
type Equal struct {
	// Orientation is the flow direction.
	Orientation axis.Orientation
	// Spacing is the space between adjacent visible children.
	Spacing float64
	// Stretch makes the panel require all available flow space.
	// It has no effect when the available extent is unbounded.
	Stretch bool
	// Sizing looks up the sizing of each child. If nil, every
	// child is Proportional(1).
	Sizing SizingProvider

	children []Child
	sizings  []Sizing
	pass     passState
}

// passState holds the aggregates of a measure pass.
type passState struct {
	maxCross float64
	// reserved is the flow extent of Auto and Fixed children.
	reserved    float64
	totalWeight float64
	// unitPortion is the largest desired extent per weight unit.
	unitPortion float64
	visible     int
}

func (e *Equal) sizing(c Child) Sizing {
	if e.Sizing == nil {
		return Proportional(1)
	}
	return e.Sizing.Sizing(c.Key)
}

// Measure returns the size required by the children for the
// available space.
func (e *Equal) Measure(children []Child, available axis.Point) axis.Point {
	o := e.Orientation
	e.children = append(e.children[:0], children...)
	e.sizings = e.sizings[:0]
	e.pass = passState{}
	s := &e.pass
	for _, c := range children {
		sz := e.sizing(c)
		e.sizings = append(e.sizings, sz)
		if c.Collapsed {
			continue
		}
		s.visible++
		desired := o.Coord(c.Size)
		s.maxCross = max(s.maxCross, desired.V)
		switch sz.Mode {
		case ModeFixed:
			s.reserved += sz.value()
		case ModeAuto:
			s.reserved += max(desired.U, 0)
		case ModeProportional:
			if w := sz.value(); w > 0 {
				s.totalWeight += w
				s.unitPortion = max(s.unitPortion, desired.U/w)
			}
		}
	}
	if s.visible == 0 {
		return axis.Point{}
	}
	avail := o.Coord(available)
	if e.Stretch && !axis.Unbounded(avail.U) {
		return o.Point(axis.Coord{U: avail.U, V: s.maxCross})
	}
	u := s.unitPortion*s.totalWeight + s.reserved + e.spacing()
	return o.Point(axis.Coord{U: u, V: s.maxCross})
}

// Arrange places the children measured by the latest Measure within
// the final size.
func (e *Equal) Arrange(final axis.Point) []Placement {
	s := e.pass
	if s.visible == 0 {
		return nil
	}
	o := e.Orientation
	portion := e.portion(o.Coord(final).U)
	places := make([]Placement, 0, s.visible)
	var u float64
	for i, c := range e.children {
		if c.Collapsed {
			continue
		}
		var extent float64
		switch sz := e.sizings[i]; sz.Mode {
		case ModeFixed:
			extent = sz.value()
		case ModeAuto:
			extent = max(o.Coord(c.Size).U, 0)
		case ModeProportional:
			extent = sz.value() * portion
		}
		rect := axis.Rect{
			Orientation: o,
			Position:    axis.Coord{U: u},
			Size:        axis.Coord{U: extent, V: s.maxCross},
		}
		places = append(places, Placement{Index: i, Key: c.Key, Bounds: rect.Bounds()})
		u += extent + e.Spacing
	}
	return places
}

// portion returns the extent of one weight unit for a final flow
// extent.
func (e *Equal) portion(final float64) float64 {
	s := e.pass
	if s.totalWeight <= 0 {
		return 0
	}
	if axis.Unbounded(final) {
		return s.unitPortion
	}
	return max((final-e.spacing()-s.reserved)/s.totalWeight, 0)
}

// spacing returns the total spacing between visible children.
func (e *Equal) spacing() float64 {
	if e.pass.visible < 2 {
		return 0
	}
	return e.Spacing * float64(e.pass.visible-1)
}
