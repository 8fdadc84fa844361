// SPDX-License-Identifier: Unlicense OR MIT

// Package scroll implements bringing list items into view.
//
// Offsets and spans are measured along the scrolling axis of a viewport,
// in the same unit as the host reports them.
package scroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/constraints"

	"github.com/panelkit/panelkit/internal/fling"
)

// ErrNotRealized is returned by BringIntoView when the host did not
// realize the requested item even after scrolling to it.
var ErrNotRealized = errors.New("scroll: item not realized")

// Span is an extent along the scrolling axis.
type Span struct {
	Start, Size float64
}

// Alignment is the position of an item within the viewport after
// scrolling.
type Alignment uint8

const (
	// Nearest scrolls the minimal distance that shows the item.
	Nearest Alignment = iota
	// Start aligns the item with the start of the viewport.
	Start
	// Center centers the item in the viewport.
	Center
	// End aligns the item with the end of the viewport.
	End
)

// Options control BringIntoView.
type Options struct {
	Alignment Alignment
	// ScrollIfVisible aligns items that are already fully visible.
	ScrollIfVisible bool
	// Margin is extra space kept around the item.
	Margin float64
}

// Change is a notification of a viewport offset change.
type Change struct {
	Offset float64
	// Intermediate is set for changes of an ongoing scroll, for
	// example during an animation.
	Intermediate bool
}

// Viewport is a scrollable view provided by the host.
type Viewport interface {
	// Offset returns the current scroll offset.
	Offset() float64
	// Extent returns the visible size.
	Extent() float64
	// MaxOffset returns the largest offset the host scrolls to, or
	// +Inf if the content size is unknown.
	MaxOffset() float64
	// SetOffset requests a scroll. The host notifies subscribers
	// when the new offset is settled.
	SetOffset(offset float64)
	// ScrollToIndex scrolls an item into the realized range, for
	// hosts that virtualize their items.
	ScrollToIndex(index int)
	// Subscribe registers fn for change notifications until cancel
	// is called. fn may be called from any goroutine.
	Subscribe(fn func(Change)) (cancel func())
}

// Items locates the items of a viewport.
type Items interface {
	Len() int
	// Locate returns the span of a realized item. It returns false
	// for items that are virtualized.
	Locate(index int) (Span, bool)
}

// Smooth animates scroll offsets.
type Smooth struct {
	// Duration of a scroll animation.
	Duration time.Duration

	anim fling.Animation
}

// End returns the end of s.
func (s Span) End() float64 {
	return s.Start + s.Size
}

// ResolveIndex maps index into [0, n). Negative indexes count from
// the end, and indexes out of range are clamped. ResolveIndex reports
// false if n is zero.
func ResolveIndex[T constraints.Integer](index, n T) (T, bool) {
	if n <= 0 {
		return 0, false
	}
	if index < 0 {
		index += n
	}
	return clamp(index, 0, n-1), true
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Target returns the viewport offset that brings item into view, and
// whether it differs from the current offset. The offset is clamped to
// [0, limit]. It never moves when the item is fully visible unless
// opts.ScrollIfVisible is set.
func Target(view, item Span, limit float64, opts Options) (float64, bool) {
	lo, hi := item.Start-opts.Margin, item.End()+opts.Margin
	visible := lo >= view.Start && hi <= view.End()
	if visible && !opts.ScrollIfVisible {
		return view.Start, false
	}
	var off float64
	switch opts.Alignment {
	case Start:
		off = lo
	case Center:
		off = (lo+hi)/2 - view.Size/2
	case End:
		off = hi - view.Size
	default:
		switch {
		case visible:
			off = view.Start
		case lo < view.Start || hi-lo > view.Size:
			off = lo
		default:
			off = hi - view.Size
		}
	}
	off = clamp(off, 0, max(limit, 0))
	return off, off != view.Start
}

// BringIntoView scrolls vp until the item at index is in view, and
// waits for the host to settle the scroll. Negative indexes count from
// the end of items. BringIntoView returns immediately if no scroll is
// needed.
//
// BringIntoView blocks; it must not run on the goroutine that
// delivers the host's change notifications.
func BringIntoView(ctx context.Context, vp Viewport, items Items, index int, opts Options) error {
	index, ok := ResolveIndex(index, items.Len())
	if !ok {
		return nil
	}
	item, ok := items.Locate(index)
	if !ok {
		if err := settle(ctx, vp, func() { vp.ScrollToIndex(index) }); err != nil {
			return fmt.Errorf("scroll: bring %d into view: %w", index, err)
		}
		if item, ok = items.Locate(index); !ok {
			return fmt.Errorf("scroll: bring %d into view: %w", index, ErrNotRealized)
		}
	}
	view := Span{Start: vp.Offset(), Size: vp.Extent()}
	off, move := Target(view, item, vp.MaxOffset(), opts)
	if !move {
		return nil
	}
	if err := settle(ctx, vp, func() { vp.SetOffset(off) }); err != nil {
		return fmt.Errorf("scroll: bring %d into view: %w", index, err)
	}
	return nil
}

// settle runs change and waits for the first settled notification
// that follows.
func settle(ctx context.Context, vp Viewport, change func()) error {
	settled := make(chan struct{}, 1)
	cancel := vp.Subscribe(func(c Change) {
		if c.Intermediate {
			return
		}
		select {
		case settled <- struct{}{}:
		default:
		}
	})
	defer cancel()
	change()
	select {
	case <-settled:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ScrollTo starts animating from the offset from to the offset to.
func (s *Smooth) ScrollTo(now time.Time, from, to float64) {
	s.anim.Duration = s.Duration
	s.anim.Start(now, from, to)
}

// Tick returns the animated offset at now and whether the animation
// continues.
func (s *Smooth) Tick(now time.Time) (float64, bool) {
	return s.anim.Tick(now)
}

// Active reports whether an animation is running.
func (s *Smooth) Active() bool {
	return s.anim.Active()
}

// Stop the animation, for example when the user scrolls.
func (s *Smooth) Stop() {
	s.anim.Stop()
}

func (a Alignment) String() string {
	switch a {
	case Nearest:
		return "Nearest"
	case Start:
		return "Start"
	case Center:
		return "Center"
	case End:
		return "End"
	default:
		panic("unreachable")
	}
}
