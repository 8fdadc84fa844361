// SPDX-License-Identifier: Unlicense OR MIT

package behavior

import (
	"github.com/panelkit/panelkit/axis"
)

// Stretch is the set of axes along which an item container stretches
// its content to the space it is given.
type Stretch uint8

const (
	StretchNone Stretch = iota
	StretchHorizontal
	StretchVertical
	StretchBoth
)

// Horizontal reports whether s stretches along the X axis.
func (s Stretch) Horizontal() bool {
	return s == StretchHorizontal || s == StretchBoth
}

// Vertical reports whether s stretches along the Y axis.
func (s Stretch) Vertical() bool {
	return s == StretchVertical || s == StretchBoth
}

// Apply returns the minimum size of stretched content given its
// minimum and maximum size. Unbounded axes are not stretched.
func (s Stretch) Apply(min, max axis.Point) axis.Point {
	if s.Horizontal() && !axis.Unbounded(max.X) {
		min.X = max.X
	}
	if s.Vertical() && !axis.Unbounded(max.Y) {
		min.Y = max.Y
	}
	return min
}

func (s Stretch) String() string {
	switch s {
	case StretchNone:
		return "None"
	case StretchHorizontal:
		return "Horizontal"
	case StretchVertical:
		return "Vertical"
	case StretchBoth:
		return "Both"
	default:
		panic("unreachable")
	}
}
