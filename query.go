package xregion

import "sort"

// ContainsPoint reports whether p is inside r. Edges are half-open:
// a point on the top or left edge of a covered rectangle is inside,
// a point on the bottom or right edge is not.
func (r Region[T]) ContainsPoint(p Point[T]) bool {
	start, end := r.bandAt(p.Y)
	if start == end {
		return false
	}
	band := r.rects[start:end]
	i := sort.Search(len(band), func(i int) bool {
		return band[i].Max.X > p.X
	})
	return i < len(band) && band[i].Min.X <= p.X
}

// Contains reports whether every point of rect is covered by r. An
// empty rectangle is never contained.
//
// The bands of r must tile rect's y-extent without gaps, and within
// each covering band a single span must cover rect's x-extent; the
// spans of a band are non-adjacent, so no combination of spans can
// cover it otherwise.
func (r Region[T]) Contains(rect Rect[T]) bool {
	if rect.Empty() {
		return false
	}
	for y := rect.Min.Y; y < rect.Max.Y; {
		start, end := r.bandAt(y)
		if start == end {
			return false
		}
		band := r.rects[start:end]
		i := sort.Search(len(band), func(i int) bool {
			return band[i].Max.X > rect.Min.X
		})
		if i == len(band) || band[i].Min.X > rect.Min.X || band[i].Max.X < rect.Max.X {
			return false
		}
		y = band[0].Max.Y
	}
	return true
}

// IntersectsRect reports whether r and rect share any point.
func (r Region[T]) IntersectsRect(rect Rect[T]) bool {
	if rect.Empty() {
		return false
	}
	i := sort.Search(len(r.rects), func(i int) bool {
		return r.rects[i].Max.Y > rect.Min.Y
	})
	for ; i < len(r.rects); i++ {
		if r.rects[i].Min.Y >= rect.Max.Y {
			break
		}
		if r.rects[i].Overlaps(rect) {
			return true
		}
	}
	return false
}

// Intersects reports whether r and s share any point.
func (r Region[T]) Intersects(s Region[T]) bool {
	ri, si := 0, 0
	for ri < len(r.rects) && si < len(s.rects) {
		rb, sb := r.rects[ri], s.rects[si]
		if rb.Max.Y <= sb.Min.Y {
			ri = r.bandEnd(ri)
			continue
		}
		if sb.Max.Y <= rb.Min.Y {
			si = s.bandEnd(si)
			continue
		}

		// The two bands overlap in y; lockstep their spans.
		rEnd, sEnd := r.bandEnd(ri), s.bandEnd(si)
		i, j := ri, si
		for i < rEnd && j < sEnd {
			switch {
			case r.rects[i].Max.X <= s.rects[j].Min.X:
				i++
			case s.rects[j].Max.X <= r.rects[i].Min.X:
				j++
			default:
				return true
			}
		}

		// Advance past whichever band ends first.
		if rb.Max.Y <= sb.Max.Y {
			ri = rEnd
		}
		if sb.Max.Y <= rb.Max.Y {
			si = sEnd
		}
	}
	return false
}

// bandAt returns the bounds of the band of r whose y-extent contains
// y, or start == end when no band does. Band bottoms are
// non-decreasing across the rectangle list, so the band is found by
// binary search.
func (r Region[T]) bandAt(y T) (start, end int) {
	i := sort.Search(len(r.rects), func(i int) bool {
		return r.rects[i].Max.Y > y
	})
	if i == len(r.rects) || r.rects[i].Min.Y > y {
		return 0, 0
	}
	return i, r.bandEnd(i)
}
