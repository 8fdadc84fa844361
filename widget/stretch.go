// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"gioui.org/layout"

	"github.com/panelkit/panelkit/behavior"
)

// Stretch lays out w with its minimum constraints raised to the
// maximum along the axes of s. Unbounded axes are left alone.
func Stretch(gtx layout.Context, s behavior.Stretch, w layout.Widget) layout.Dimensions {
	cs := gtx.Constraints
	min := s.Apply(fromPoint(cs.Min), fromMax(cs.Max))
	gtx.Constraints.Min = toPoint(min, cs.Max)
	return w(gtx)
}
