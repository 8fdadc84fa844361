// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"gioui.org/layout"
	"gioui.org/unit"

	"github.com/panelkit/panelkit/panel"
)

// Equal lays out widgets in a line along Axis, sharing the space left
// by Auto and Fixed children among Weighted children.
type Equal struct {
	Axis    layout.Axis
	Spacing unit.Dp
	// Stretch fills the maximum constraint of the main axis.
	Stretch bool

	engine   panel.Equal
	children []panel.Child
	sizings  []panel.Sizing
	widgets  []layout.Widget
}

// EqualChild is the descriptor for an Equal child.
type EqualChild struct {
	sizing panel.Sizing
	fixed  unit.Dp
	widget layout.Widget
}

// Auto returns an Equal child sized to its content.
func Auto(w layout.Widget) EqualChild {
	return EqualChild{sizing: panel.Auto(), widget: w}
}

// Fixed returns an Equal child with a fixed main axis size.
func Fixed(size unit.Dp, w layout.Widget) EqualChild {
	return EqualChild{sizing: panel.Fixed(0), fixed: size, widget: w}
}

// Weighted returns an Equal child taking weight shares of the
// remaining space.
func Weighted(weight float32, w layout.Widget) EqualChild {
	return EqualChild{sizing: panel.Proportional(float64(weight)), widget: w}
}

// Layout the children. Children with nil widgets are collapsed.
func (q *Equal) Layout(gtx layout.Context, children ...EqualChild) layout.Dimensions {
	q.sizings = q.sizings[:0]
	q.widgets = q.widgets[:0]
	for _, c := range children {
		sz := c.sizing
		if sz.Mode == panel.ModeFixed {
			sz.Value = float64(gtx.Dp(c.fixed))
		}
		q.sizings = append(q.sizings, sz)
		q.widgets = append(q.widgets, c.widget)
	}
	e := &q.engine
	e.Orientation = orientation(q.Axis)
	e.Spacing = float64(gtx.Dp(q.Spacing))
	e.Stretch = q.Stretch
	e.Sizing = panel.SizingFunc(func(key any) panel.Sizing {
		return q.sizings[key.(int)]
	})

	max := gtx.Constraints.Max
	q.children = measure(gtx, q.children[:0], q.widgets, max)
	required := e.Measure(q.children, fromMax(max))
	size := gtx.Constraints.Constrain(toPoint(required, max))
	arrange(gtx, q.widgets, e.Arrange(fromPoint(size)))
	return layout.Dimensions{Size: size}
}
