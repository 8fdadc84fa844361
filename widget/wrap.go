// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"gioui.org/layout"
	"gioui.org/unit"

	"github.com/panelkit/panelkit/panel"
)

// Wrap lays out widgets in rows along Axis, starting a new row
// whenever a widget would exceed the maximum constraint.
type Wrap struct {
	Axis              layout.Axis
	HorizontalSpacing unit.Dp
	VerticalSpacing   unit.Dp
	Padding           layout.Inset
	// StretchLast stretches the last widget to the end of its row.
	StretchLast bool

	engine   panel.Wrap
	children []panel.Child
}

// Layout the widgets. Nil widgets are collapsed. Every widget is
// stretched to the thickness of its row.
func (w *Wrap) Layout(gtx layout.Context, widgets ...layout.Widget) layout.Dimensions {
	e := &w.engine
	e.Orientation = orientation(w.Axis)
	e.HorizontalSpacing = float64(gtx.Dp(w.HorizontalSpacing))
	e.VerticalSpacing = float64(gtx.Dp(w.VerticalSpacing))
	e.Padding = panel.Inset{
		Left:   float64(gtx.Dp(w.Padding.Left)),
		Top:    float64(gtx.Dp(w.Padding.Top)),
		Right:  float64(gtx.Dp(w.Padding.Right)),
		Bottom: float64(gtx.Dp(w.Padding.Bottom)),
	}
	e.StretchLast = w.StretchLast

	max := gtx.Constraints.Max
	avail := fromMax(max)
	cs := toPoint(e.ChildConstraint(avail), max)
	w.children = measure(gtx, w.children[:0], widgets, cs)
	required := e.Measure(w.children, avail)
	size := gtx.Constraints.Constrain(toPoint(required, max))
	arrange(gtx, widgets, e.Arrange(fromPoint(size)))
	return layout.Dimensions{Size: size}
}

// Rows returns the widget indexes of each row from the latest
// Layout.
func (w *Wrap) Rows() [][]int {
	return w.engine.Rows()
}
