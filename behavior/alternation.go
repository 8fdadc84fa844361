// SPDX-License-Identifier: Unlicense OR MIT

// Package behavior implements item container behaviours that hosts
// attach to list-like controls.
package behavior

// Alternation assigns rows a repeating index, for styles such as
// alternating row backgrounds.
type Alternation struct {
	// Count is the length of the cycle. Counts below two disable
	// alternation.
	Count int
}

// ItemSource is an observable item collection.
type ItemSource interface {
	Len() int
	// Subscribe registers fn for notifications of insertions,
	// removals and moves until cancel is called. from is the
	// first index affected.
	Subscribe(fn func(from int)) (cancel func())
}

// AlternationTracker keeps the alternation of a control in step with
// its items. It owns its subscription to the item source; a control
// releases it with Detach.
//
// An AlternationTracker must be used from the goroutine that delivers
// item notifications.
type AlternationTracker struct {
	alt       Alternation
	src       ItemSource
	cancel    func()
	listeners []func(from int)
}

// Index returns the alternation index of row i.
func (a Alternation) Index(i int) int {
	if a.Count < 2 || i < 0 {
		return 0
	}
	return i % a.Count
}

// Attach subscribes to src, replacing any previous source.
func (t *AlternationTracker) Attach(src ItemSource) {
	t.Detach()
	t.src = src
	t.cancel = src.Subscribe(t.itemsChanged)
	t.notify(0)
}

// Detach releases the item source subscription.
func (t *AlternationTracker) Detach() {
	if t.cancel != nil {
		t.cancel()
	}
	t.src = nil
	t.cancel = nil
}

// Attached reports whether the tracker has an item source.
func (t *AlternationTracker) Attached() bool {
	return t.src != nil
}

// SetCount changes the alternation cycle.
func (t *AlternationTracker) SetCount(n int) {
	if t.alt.Count == n {
		return
	}
	t.alt.Count = n
	t.notify(0)
}

// Count returns the alternation cycle.
func (t *AlternationTracker) Count() int {
	return t.alt.Count
}

// Index returns the alternation index of row i.
func (t *AlternationTracker) Index(i int) int {
	return t.alt.Index(i)
}

// OnChange registers fn to be told the first row whose alternation
// index may have changed.
func (t *AlternationTracker) OnChange(fn func(from int)) {
	t.listeners = append(t.listeners, fn)
}

func (t *AlternationTracker) itemsChanged(from int) {
	if t.alt.Count < 2 {
		return
	}
	t.notify(from)
}

func (t *AlternationTracker) notify(from int) {
	if t.src == nil || from >= t.src.Len() {
		return
	}
	for _, fn := range t.listeners {
		fn(from)
	}
}
