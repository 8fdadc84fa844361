// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"math"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/panelkit/panelkit/behavior"
	"github.com/panelkit/panelkit/scroll"
)

// List is a layout.List with smooth programmatic scrolling,
// alternating row backgrounds and stretched elements.
type List struct {
	layout.List
	// Backgrounds are painted behind the elements in turn.
	Backgrounds []color.NRGBA
	// Stretch is applied to the constraints of every element.
	Stretch behavior.Stretch
	// Duration of BringIntoView scrolls. Zero jumps immediately.
	Duration time.Duration
	// Invalidate, if set, is called when the rows of an attached
	// item source change, for example app.Window.Invalidate.
	Invalidate func()

	rows      behavior.AlternationTracker
	observing bool
	pending *bringRequest
	smooth  scroll.Smooth
	// snap is the element to align exactly at the end of a
	// scroll, or -1.
	snap int
}

type bringRequest struct {
	index int
	opts  scroll.Options
}

// BringIntoView scrolls the element at index into view during the next
// Layout. Negative indexes count from the end of the list.
func (l *List) BringIntoView(index int, opts scroll.Options) {
	l.pending = &bringRequest{index: index, opts: opts}
}

// Attach follows the insertions, removals and moves of src so that
// row backgrounds stay in step with the items.
func (l *List) Attach(src behavior.ItemSource) {
	if !l.observing {
		l.observing = true
		l.rows.OnChange(func(int) {
			if l.Invalidate != nil {
				l.Invalidate()
			}
		})
	}
	l.rows.SetCount(len(l.Backgrounds))
	l.rows.Attach(src)
}

// Detach stops following the item source.
func (l *List) Detach() {
	l.rows.Detach()
}

// Scrolling reports whether a BringIntoView scroll is in progress.
func (l *List) Scrolling() bool {
	return l.smooth.Active()
}

// Layout the list like layout.List.Layout.
func (l *List) Layout(gtx layout.Context, n int, w layout.ListElement) layout.Dimensions {
	l.rows.SetCount(len(l.Backgrounds))
	if r := l.pending; r != nil {
		l.pending = nil
		l.start(gtx, n, *r)
	}
	if l.smooth.Active() {
		if l.List.Dragging() {
			l.smooth.Stop()
		} else {
			pos, active := l.smooth.Tick(gtx.Now)
			l.setPosition(pos, n)
			if active {
				gtx.Execute(op.InvalidateCmd{})
			} else if l.snap >= 0 {
				l.Position.First, l.Position.Offset = l.snap, 0
			}
		}
	}
	return l.List.Layout(gtx, n, func(gtx layout.Context, i int) layout.Dimensions {
		return l.element(gtx, i, w)
	})
}

func (l *List) element(gtx layout.Context, i int, w layout.ListElement) layout.Dimensions {
	cs := gtx.Constraints
	gtx.Constraints.Min = toPoint(l.Stretch.Apply(fromPoint(cs.Min), fromMax(cs.Max)), cs.Max)
	if len(l.Backgrounds) == 0 {
		return w(gtx, i)
	}
	m := op.Record(gtx.Ops)
	dims := w(gtx, i)
	call := m.Stop()
	paint.FillShape(gtx.Ops, l.Backgrounds[l.rows.Index(i)], clip.Rect{Max: dims.Size}.Op())
	call.Add(gtx.Ops)
	return dims
}

// itemSize estimates the main axis size of an element.
func (l *List) itemSize(n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(l.Position.Length) / float64(n)
}

// maxOffset returns the offset that shows the end of the list, or
// +Inf before the list has been laid out.
func (l *List) maxOffset(extent float64) float64 {
	if l.Position.Length <= 0 {
		return math.Inf(1)
	}
	return max(float64(l.Position.Length)-extent, 0)
}

// visible reports whether the element at index was fully visible in
// the latest layout.
func (l *List) visible(index int) bool {
	p := l.Position
	last := p.First + p.Count - 1
	switch {
	case p.Count == 0 || index < p.First || index > last:
		return false
	case index == p.First && p.Offset > 0:
		return false
	case index == last && p.OffsetLast < 0:
		return false
	}
	return true
}

func (l *List) start(gtx layout.Context, n int, r bringRequest) {
	index, ok := scroll.ResolveIndex(r.index, n)
	if !ok {
		return
	}
	if l.visible(index) && !r.opts.ScrollIfVisible {
		return
	}
	size := l.itemSize(n)
	if size <= 0 {
		// Nothing laid out yet.
		l.ScrollTo(index)
		return
	}
	extent := orientation(l.Axis).Coord(fromPoint(gtx.Constraints.Max)).U
	from := float64(l.Position.First)*size + float64(l.Position.Offset)
	view := scroll.Span{Start: from, Size: extent}
	item := scroll.Span{Start: float64(index) * size, Size: size}
	to, move := scroll.Target(view, item, l.maxOffset(extent), r.opts)
	if !move {
		return
	}
	l.snap = -1
	if r.opts.Alignment == scroll.Start && r.opts.Margin == 0 {
		l.snap = index
	}
	l.smooth.Duration = l.Duration
	l.smooth.ScrollTo(gtx.Now, from/size, to/size)
}

// setPosition scrolls to a fractional element position.
func (l *List) setPosition(pos float64, n int) {
	size := l.itemSize(n)
	first := math.Floor(pos)
	l.Position.First = int(first)
	l.Position.Offset = round((pos - first) * size)
	l.Position.BeforeEnd = true
}
