// SPDX-License-Identifier: Unlicense OR MIT

package panel

import (
	"github.com/panelkit/panelkit/axis"
)

// Wrap lays out children in order along its orientation, starting a
// new row (or column) whenever the next child would not fit the
// available extent.
type Wrap struct {
	// Orientation is the flow direction of a row.
	Orientation axis.Orientation
	// HorizontalSpacing is the space between horizontally adjacent
	// children.
	HorizontalSpacing float64
	// VerticalSpacing is the space between vertically adjacent
	// children.
	VerticalSpacing float64
	// Padding surrounds the content.
	Padding Inset
	// StretchLast stretches the last visible child to fill the
	// remainder of its row.
	StretchLast bool

	children []Child
	rows     []row
	required axis.Point
	// available is the space given to Measure.
	available axis.Point
	// packed is the flow extent the rows were packed against.
	packed float64
}

type row struct {
	cells []cell
	// size is the flow extent and the thickness of the row.
	size axis.Coord
}

type cell struct {
	index int
	pos   axis.Coord
	size  axis.Coord
}

func (r *row) add(index int, pos, size axis.Coord) {
	if len(r.cells) == 0 {
		r.size = size
	} else {
		r.size.U = pos.U + size.U - r.cells[0].pos.U
		r.size.V = max(r.size.V, size.V)
	}
	r.cells = append(r.cells, cell{index: index, pos: pos, size: size})
}

// ChildConstraint returns the space children should be measured
// against: the available space less the padding.
func (w *Wrap) ChildConstraint(available axis.Point) axis.Point {
	p := w.Padding
	return axis.Point{
		X: max(available.X-p.Left-p.Right, 0),
		Y: max(available.Y-p.Top-p.Bottom, 0),
	}
}

// Measure packs children into rows against the available space and
// returns the required size. Either available extent may be +Inf.
func (w *Wrap) Measure(children []Child, available axis.Point) axis.Point {
	w.children = append(w.children[:0], children...)
	w.available = available
	w.required = w.pack(available)
	return w.required
}

// Arrange returns the placement of every visible child within the
// final size. The rows are packed against final if it is narrower
// than the size required by Measure, and against the space given to
// Measure otherwise. Every child is stretched across the thickness
// of its row.
func (w *Wrap) Arrange(final axis.Point) []Placement {
	o := w.Orientation
	avail := w.available
	if o.Coord(final).U < o.Coord(w.required).U {
		avail = final
	}
	if u := o.Coord(avail).U; u != w.packed {
		w.pack(avail)
	}
	var places []Placement
	for _, r := range w.rows {
		for _, c := range r.cells {
			rect := axis.Rect{
				Orientation: o,
				Position:    c.pos,
				Size:        axis.Coord{U: c.size.U, V: r.size.V},
			}
			places = append(places, Placement{
				Index:  c.index,
				Key:    w.children[c.index].Key,
				Bounds: rect.Bounds(),
			})
		}
	}
	return places
}

// Rows returns the child indexes of every row from the most recent
// packing.
func (w *Wrap) Rows() [][]int {
	rows := make([][]int, len(w.rows))
	for i, r := range w.rows {
		for _, c := range r.cells {
			rows[i] = append(rows[i], c.index)
		}
	}
	return rows
}

func (w *Wrap) lastVisible() int {
	for i := len(w.children) - 1; i >= 0; i-- {
		if !w.children[i].Collapsed {
			return i
		}
	}
	return -1
}

// pack recomputes the rows for the available space and returns the
// required size.
func (w *Wrap) pack(available axis.Point) axis.Point {
	o := w.Orientation
	w.rows = w.rows[:0]
	avail := o.Coord(available)
	w.packed = avail.U
	start, end := w.Padding.start(o), w.Padding.end(o)
	last := w.lastVisible()
	if last == -1 {
		return o.Point(start.Add(end))
	}
	spacing := o.Size(w.HorizontalSpacing, w.VerticalSpacing)
	limit := avail.U - end.U
	pos := start
	extent := start.U
	var cur row
	for i, c := range w.children {
		if c.Collapsed {
			continue
		}
		size := o.Coord(c.Size)
		if len(cur.cells) > 0 && (pos.U >= limit || pos.U+size.U > limit) {
			w.rows = append(w.rows, cur)
			pos.U = start.U
			pos.V += cur.size.V + spacing.V
			cur = row{}
		}
		if i == last && w.StretchLast && !axis.Unbounded(avail.U) {
			size.U = max(limit-pos.U, 0)
		}
		cur.add(i, pos, size)
		extent = max(extent, pos.U+size.U)
		pos.U += size.U + spacing.U
	}
	w.rows = append(w.rows, cur)
	required := axis.Coord{U: extent, V: pos.V + cur.size.V}
	return o.Point(required.Add(end))
}
