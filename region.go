package xregion

import (
	"iter"
	"slices"
	"strings"
)

// Region is a set of points covered by a union of axis-aligned,
// half-open rectangles.
//
// A Region is kept in canonical form: its rectangles are organized
// into horizontal bands of equal y-extent, bands are sorted by
// ascending top edge, rectangles within a band are sorted by ascending
// left edge and are pairwise disjoint and non-adjacent, and no two
// vertically adjacent bands carry identical horizontal spans. The
// canonical form is unique for any point set expressible as a finite
// union of rectangles, so two Regions cover the same points if and
// only if Equal reports true.
//
// The zero value is the empty Region. A Region is an immutable value:
// operations return new Regions and never modify storage reachable
// from an existing one, so Regions may be shared freely between
// goroutines. The in-place entry points (Translate, Scale) replace the
// receiver wholesale rather than editing shared storage.
type Region[T Scalar] struct {
	rects []Rect[T]
}

// FromRect returns the Region covering the points of r. If r is empty,
// the empty Region is returned.
func FromRect[T Scalar](r Rect[T]) Region[T] {
	if r.Empty() {
		return Region[T]{}
	}
	return Region[T]{rects: []Rect[T]{r}}
}

// IsEmpty reports whether r covers no points.
func (r Region[T]) IsEmpty() bool {
	return len(r.rects) == 0
}

// RectCount returns the number of rectangles in r's canonical form.
func (r Region[T]) RectCount() int {
	return len(r.rects)
}

// Rects returns an iterator over r's canonical rectangles, top to
// bottom band by band and left to right within a band.
func (r Region[T]) Rects() iter.Seq[Rect[T]] {
	return slices.Values(r.rects)
}

// RectSlice returns a copy of r's canonical rectangles in the same
// order as Rects. The result is suitable as input to FromSortedRects.
func (r Region[T]) RectSlice() []Rect[T] {
	return slices.Clone(r.rects)
}

// Equal reports whether r and s cover exactly the same points.
// Canonical form makes this a structural comparison of the two
// rectangle sequences.
func (r Region[T]) Equal(s Region[T]) bool {
	return slices.Equal(r.rects, s.rects)
}

// BoundingRect returns the smallest rectangle containing r, or the
// zero Rect if r is empty. Bands may differ in horizontal extent, so
// the left and right edges come from a scan of every rectangle.
func (r Region[T]) BoundingRect() Rect[T] {
	var b Rect[T]
	for _, rect := range r.rects {
		b = b.Union(rect)
	}
	return b
}

func (r Region[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, rect := range r.rects {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(rect.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// bandEnd returns the index just past the band beginning at start.
// Rectangles of one band share their y-extent, so the band ends at the
// first rectangle with a different top edge.
func (r Region[T]) bandEnd(start int) int {
	end := start + 1
	for end < len(r.rects) && r.rects[end].Min.Y == r.rects[start].Min.Y {
		end++
	}
	return end
}
