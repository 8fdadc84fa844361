// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"math"

	"gioui.org/layout"
	"gioui.org/op"

	"github.com/panelkit/panelkit/axis"
	"github.com/panelkit/panelkit/panel"
)

// unbounded is the constraint Gio uses for unbounded extents, such
// as the main axis of a List element.
const unbounded = 1e6

func orientation(a layout.Axis) axis.Orientation {
	if a == layout.Vertical {
		return axis.Vertical
	}
	return axis.Horizontal
}

func fromPoint(p image.Point) axis.Point {
	return axis.Pt(float64(p.X), float64(p.Y))
}

// fromMax converts a maximum constraint, mapping unbounded extents
// to +Inf.
func fromMax(p image.Point) axis.Point {
	conv := func(v int) float64 {
		if v >= unbounded {
			return math.Inf(1)
		}
		return float64(v)
	}
	return axis.Pt(conv(p.X), conv(p.Y))
}

// toPoint rounds p up, limiting unbounded or larger extents to max.
func toPoint(p axis.Point, max image.Point) image.Point {
	conv := func(v float64, max int) int {
		if axis.Unbounded(v) || v > float64(max) {
			return max
		}
		if v < 0 {
			return 0
		}
		return int(math.Ceil(v))
	}
	return image.Pt(conv(p.X, max.X), conv(p.Y, max.Y))
}

// measure records the desired size of every widget into children.
// Nil widgets are collapsed. The widgets are laid out without events
// and their operations are discarded.
func measure(gtx layout.Context, children []panel.Child, widgets []layout.Widget, max image.Point) []panel.Child {
	mgtx := gtx.Disabled()
	mgtx.Constraints = layout.Constraints{Max: max}
	for i, w := range widgets {
		c := panel.Child{Key: i, Collapsed: w == nil}
		if w != nil {
			m := op.Record(gtx.Ops)
			dims := w(mgtx)
			m.Stop()
			c.Size = fromPoint(dims.Size)
		}
		children = append(children, c)
	}
	return children
}

// arrange lays out the placed widgets at their bounds.
func arrange(gtx layout.Context, widgets []layout.Widget, places []panel.Placement) {
	for _, p := range places {
		b := p.Bounds
		min := image.Pt(round(b.X), round(b.Y))
		max := image.Pt(round(b.X+b.Width), round(b.Y+b.Height))
		cgtx := gtx
		cgtx.Constraints = layout.Exact(max.Sub(min))
		trans := op.Offset(min).Push(gtx.Ops)
		widgets[p.Index](cgtx)
		trans.Pop()
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
