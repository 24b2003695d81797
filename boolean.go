package xregion

import "slices"

// United returns the union of r and s: every point covered by either.
func (r Region[T]) United(s Region[T]) Region[T] {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	return combine(r, s, rowUnion[T])
}

// UnitedRect returns the union of r and the single rectangle rect.
func (r Region[T]) UnitedRect(rect Rect[T]) Region[T] {
	return r.United(FromRect(rect))
}

// Intersected returns the intersection of r and s: every point covered
// by both.
func (r Region[T]) Intersected(s Region[T]) Region[T] {
	if r.IsEmpty() || s.IsEmpty() {
		return Region[T]{}
	}
	return combine(r, s, rowIntersect[T])
}

// IntersectedRect returns the intersection of r and the single
// rectangle rect.
func (r Region[T]) IntersectedRect(rect Rect[T]) Region[T] {
	return r.Intersected(FromRect(rect))
}

// Subtracted returns the points of r not covered by s.
func (r Region[T]) Subtracted(s Region[T]) Region[T] {
	if r.IsEmpty() {
		return Region[T]{}
	}
	if s.IsEmpty() {
		return r
	}
	return combine(r, s, rowSubtract[T])
}

// SubtractedRect returns the points of r not covered by the single
// rectangle rect.
func (r Region[T]) SubtractedRect(rect Rect[T]) Region[T] {
	return r.Subtracted(FromRect(rect))
}

// Xored returns the points covered by exactly one of r and s.
func (r Region[T]) Xored(s Region[T]) Region[T] {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	return combine(r, s, rowXor[T])
}

// XoredRect returns the points covered by exactly one of r and the
// single rectangle rect.
func (r Region[T]) XoredRect(rect Rect[T]) Region[T] {
	return r.Xored(FromRect(rect))
}

// combine sweeps two canonical Regions band by band. The distinct band
// boundaries of both operands split the y-axis into elementary slices;
// within one slice each operand is covered by at most one band, whose
// spans feed the 1-D row operation. Non-empty rows become candidate
// bands, coalesced on the fly to restore band canonicality.
func combine[T Scalar](a, b Region[T], op func(a, b []span[T]) []span[T]) Region[T] {
	ys := make([]T, 0, 2*(len(a.rects)+len(b.rects)))
	for i := 0; i < len(a.rects); i = a.bandEnd(i) {
		ys = append(ys, a.rects[i].Min.Y, a.rects[i].Max.Y)
	}
	for i := 0; i < len(b.rects); i = b.bandEnd(i) {
		ys = append(ys, b.rects[i].Min.Y, b.rects[i].Max.Y)
	}
	slices.Sort(ys)
	ys = slices.Compact(ys)

	var (
		out       []Rect[T]
		prevStart int
		ai, bi    int
	)
	for k := 0; k+1 < len(ys); k++ {
		y1, y2 := ys[k], ys[k+1]
		row := op(coveringSpans(a, &ai, y1), coveringSpans(b, &bi, y1))
		if len(row) == 0 {
			continue
		}
		curStart := len(out)
		for _, s := range row {
			out = append(out, Rt(s.x1, y1, s.x2, y2))
		}
		prevStart, out = coalesce(out, prevStart, curStart)
	}
	return Region[T]{rects: out}
}

// coveringSpans returns the spans of the band of r covering the
// elementary slice beginning at y1, advancing *idx past bands that end
// at or before y1. It returns nil when no band covers the slice.
func coveringSpans[T Scalar](r Region[T], idx *int, y1 T) []span[T] {
	for *idx < len(r.rects) && r.rects[*idx].Max.Y <= y1 {
		*idx = r.bandEnd(*idx)
	}
	if *idx == len(r.rects) || r.rects[*idx].Min.Y > y1 {
		return nil
	}
	end := r.bandEnd(*idx)
	spans := make([]span[T], 0, end-*idx)
	for _, rect := range r.rects[*idx:end] {
		spans = append(spans, span[T]{rect.Min.X, rect.Max.X})
	}
	return spans
}
