package xregion

import (
	"cmp"
	"iter"
	"slices"
)

// FromSortedRects wraps rects, which must already be a valid canonical
// rectangle sequence as produced by [Region.RectSlice], into a Region
// in O(n) without validation. The Region takes ownership of the slice;
// the caller must not modify it afterwards.
//
// This is a caller contract, not a checked condition: passing a slice
// that violates the canonical form yields a structurally invalid
// Region whose behavior is unspecified.
func FromSortedRects[T Scalar](rects []Rect[T]) Region[T] {
	if len(rects) == 0 {
		return Region[T]{}
	}
	return Region[T]{rects: rects}
}

// FromUnsortedRects builds the Region covering the union of rects. The
// rectangles may be given in any order and may overlap; empty
// rectangles contribute nothing.
func FromUnsortedRects[T Scalar](rects []Rect[T]) Region[T] {
	sorted := make([]Rect[T], 0, len(rects))
	for _, r := range rects {
		if !r.Empty() {
			sorted = append(sorted, r)
		}
	}
	slices.SortFunc(sorted, func(a, b Rect[T]) int {
		if c := cmp.Compare(a.Min.Y, b.Min.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.Min.X, b.Min.X)
	})
	return FromRectsSortedByY(sorted)
}

// FromSeq builds the Region covering the union of the rectangles
// yielded by seq.
func FromSeq[T Scalar](seq iter.Seq[Rect[T]]) Region[T] {
	return FromUnsortedRects(slices.Collect(seq))
}

// FromRectsSortedByY builds the Region covering the union of rects,
// which must be sorted by ascending top edge. No other ordering is
// required: rectangles may overlap, and their y-extents may
// interleave. Empty rectangles contribute nothing. This is the path
// for merging the rectangle streams of two canonical Regions without a
// full boolean sweep.
//
// The sweep visits the distinct top and bottom edges in ascending
// order, maintaining the set of rectangles whose y-extent covers the
// slice between one edge and the next. Each slice's row is the 1-D
// union of the open rectangles' horizontal spans; vertically adjacent
// rows with identical spans coalesce into a single band as they are
// emitted.
func FromRectsSortedByY[T Scalar](rects []Rect[T]) Region[T] {
	in := make([]Rect[T], 0, len(rects))
	ys := make([]T, 0, 2*len(rects))
	for _, r := range rects {
		if !r.Empty() {
			in = append(in, r)
			ys = append(ys, r.Min.Y, r.Max.Y)
		}
	}
	slices.Sort(ys)
	ys = slices.Compact(ys)

	var (
		out       []Rect[T]
		open      []Rect[T]
		prevStart int
		next      int
	)
	for k := 0; k+1 < len(ys); k++ {
		y1, y2 := ys[k], ys[k+1]
		for next < len(in) && in[next].Min.Y <= y1 {
			open = append(open, in[next])
			next++
		}
		open = slices.DeleteFunc(open, func(r Rect[T]) bool {
			return r.Max.Y <= y1
		})
		if len(open) == 0 {
			continue
		}

		spans := make([]span[T], 0, len(open))
		for _, r := range open {
			spans = append(spans, span[T]{r.Min.X, r.Max.X})
		}
		curStart := len(out)
		for _, s := range unionSpans(spans) {
			out = append(out, Rt(s.x1, y1, s.x2, y2))
		}
		prevStart, out = coalesce(out, prevStart, curStart)
	}
	return Region[T]{rects: out}
}

// coalesce merges the band beginning at currentStart into the band
// beginning at previousStart when the two touch vertically and carry
// identical spans, restoring band canonicality incrementally during a
// sweep. It returns the start index of the bottommost band along with
// the possibly shortened slice.
func coalesce[T Scalar](rects []Rect[T], previousStart, currentStart int) (int, []Rect[T]) {
	previousCount := currentStart - previousStart
	currentCount := len(rects) - currentStart
	if currentCount == 0 || previousCount != currentCount {
		return currentStart, rects
	}

	if rects[previousStart].Max.Y != rects[currentStart].Min.Y {
		return currentStart, rects
	}

	for i := 0; i < currentCount; i++ {
		a := rects[previousStart+i]
		b := rects[currentStart+i]
		if a.Min.X != b.Min.X || a.Max.X != b.Max.X {
			return currentStart, rects
		}
	}

	bottom := rects[currentStart].Max.Y
	for i := previousStart; i < currentStart; i++ {
		rects[i].Max.Y = bottom
	}
	return previousStart, rects[:currentStart]
}
