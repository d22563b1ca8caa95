// Package virtual computes which rows of a long, fixed-height list intersect
// a scrolled viewport, so callers only lay out those rows.
package virtual

// Item is a materialized row: its index and its line span in the full list.
type Item struct {
	Index int
	Start int
	Size  int
}

// End is the first line after the item.
func (it Item) End() int { return it.Start + it.Size }

// Window describes a list of Count rows, each RowHeight lines tall. Overscan
// rows are materialized beyond each edge of the viewport.
type Window struct {
	Count     int
	RowHeight int
	Overscan  int
}

func (w Window) rowHeight() int {
	if w.RowHeight < 1 {
		return 1
	}
	return w.RowHeight
}

// TotalSize is the height of the whole list in lines.
func (w Window) TotalSize() int {
	if w.Count <= 0 {
		return 0
	}
	return w.Count * w.rowHeight()
}

// ClampOffset limits offset to [0, TotalSize-viewport].
func (w Window) ClampOffset(offset, viewport int) int {
	maxOffset := max(0, w.TotalSize()-max(0, viewport))
	return min(max(0, offset), maxOffset)
}

// Range returns the half-open row range [start, end) to materialize for a
// viewport of the given height scrolled to offset, overscan included.
func (w Window) Range(offset, viewport int) (start, end int) {
	if w.Count <= 0 || viewport <= 0 {
		return 0, 0
	}
	offset = w.ClampOffset(offset, viewport)
	rh := w.rowHeight()
	first := offset / rh
	last := min(w.Count-1, (offset+viewport-1)/rh)
	overscan := max(0, w.Overscan)
	return max(0, first-overscan), min(w.Count, last+1+overscan)
}

// Items lists the rows in Range with their positions.
func (w Window) Items(offset, viewport int) []Item {
	start, end := w.Range(offset, viewport)
	if start >= end {
		return nil
	}
	rh := w.rowHeight()
	out := make([]Item, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, Item{Index: i, Start: i * rh, Size: rh})
	}
	return out
}

// ScrollTo returns the offset closest to the current one that keeps row
// index fully inside the viewport.
func (w Window) ScrollTo(index, offset, viewport int) int {
	if w.Count <= 0 {
		return 0
	}
	index = min(max(0, index), w.Count-1)
	rh := w.rowHeight()
	top := index * rh
	bottom := top + rh
	switch {
	case top < offset:
		offset = top
	case bottom > offset+viewport:
		offset = bottom - viewport
	}
	return w.ClampOffset(offset, viewport)
}
