package xregion

import (
	"cmp"
	"slices"
)

// span is one row's horizontal extent, the half-open interval
// [x1, x2). A canonical span list is sorted by ascending x1 with its
// spans pairwise disjoint and non-adjacent.
type span[T Scalar] struct {
	x1, x2 T
}

// unionSpans sorts spans by left edge and coalesces overlapping or
// touching neighbors in place, producing a canonical span list.
func unionSpans[T Scalar](spans []span[T]) []span[T] {
	slices.SortFunc(spans, func(a, b span[T]) int {
		return cmp.Compare(a.x1, b.x1)
	})
	out := spans[:0]
	for _, s := range spans {
		if n := len(out); n > 0 && s.x1 <= out[n-1].x2 {
			out[n-1].x2 = max(out[n-1].x2, s.x2)
			continue
		}
		out = append(out, s)
	}
	return out
}

// rowUnion merges two canonical span lists into the canonical list
// covering both.
func rowUnion[T Scalar](a, b []span[T]) []span[T] {
	out := make([]span[T], 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		var s span[T]
		if j == len(b) || (i < len(a) && a[i].x1 <= b[j].x1) {
			s = a[i]
			i++
		} else {
			s = b[j]
			j++
		}
		if n := len(out); n > 0 && s.x1 <= out[n-1].x2 {
			out[n-1].x2 = max(out[n-1].x2, s.x2)
			continue
		}
		out = append(out, s)
	}
	return out
}

// rowIntersect walks two canonical span lists in lockstep, emitting
// the overlap of every overlapping pair.
func rowIntersect[T Scalar](a, b []span[T]) []span[T] {
	var out []span[T]
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		x1 := max(a[i].x1, b[j].x1)
		x2 := min(a[i].x2, b[j].x2)
		if x1 < x2 {
			out = append(out, span[T]{x1, x2})
		}
		if a[i].x2 < b[j].x2 {
			i++
		} else {
			j++
		}
	}
	return out
}

// rowSubtract clips away from a every portion covered by b, splitting
// spans of a as needed.
func rowSubtract[T Scalar](a, b []span[T]) []span[T] {
	var out []span[T]
	j := 0
	for _, s := range a {
		x1 := s.x1
		for j < len(b) && b[j].x2 <= x1 {
			j++
		}
		for k := j; k < len(b) && b[k].x1 < s.x2; k++ {
			if b[k].x1 > x1 {
				out = append(out, span[T]{x1, b[k].x1})
			}
			x1 = max(x1, b[k].x2)
			if x1 >= s.x2 {
				break
			}
		}
		if x1 < s.x2 {
			out = append(out, span[T]{x1, s.x2})
		}
	}
	return out
}

// rowXor keeps the portions covered by exactly one of the two lists.
// Both operands being canonical, the subtraction cannot leave touching
// spans behind.
func rowXor[T Scalar](a, b []span[T]) []span[T] {
	return rowSubtract(rowUnion(a, b), rowIntersect(a, b))
}
