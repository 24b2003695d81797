package xregion

import "math"

// Rounded returns the integer Region with every rectangle corner
// rounded to the nearest integer, ties away from zero.
//
// All three rounding conversions round each rectangle independently,
// which can introduce overlaps and adjacencies or collapse a rectangle
// entirely, so the results are recanonicalized through the general
// construction path.
func (r Region[T]) Rounded() Region[int] {
	return roundRects(r.rects, func(rect Rect[T]) Rect[int] {
		return Rt(
			int(math.Round(float64(rect.Min.X))),
			int(math.Round(float64(rect.Min.Y))),
			int(math.Round(float64(rect.Max.X))),
			int(math.Round(float64(rect.Max.Y))),
		)
	})
}

// RoundedIn returns a conservative integer approximation contained in
// r: each rectangle's left and top edges are rounded up and its right
// and bottom edges down. Rectangles that invert under the rounding
// contribute nothing.
func (r Region[T]) RoundedIn() Region[int] {
	return roundRects(r.rects, func(rect Rect[T]) Rect[int] {
		return Rt(
			int(math.Ceil(float64(rect.Min.X))),
			int(math.Ceil(float64(rect.Min.Y))),
			int(math.Floor(float64(rect.Max.X))),
			int(math.Floor(float64(rect.Max.Y))),
		)
	})
}

// RoundedOut returns a conservative integer approximation containing
// r: each rectangle's left and top edges are rounded down and its
// right and bottom edges up.
func (r Region[T]) RoundedOut() Region[int] {
	return roundRects(r.rects, func(rect Rect[T]) Rect[int] {
		return Rt(
			int(math.Floor(float64(rect.Min.X))),
			int(math.Floor(float64(rect.Min.Y))),
			int(math.Ceil(float64(rect.Max.X))),
			int(math.Ceil(float64(rect.Max.Y))),
		)
	})
}

func roundRects[T Scalar](rects []Rect[T], round func(Rect[T]) Rect[int]) Region[int] {
	out := make([]Rect[int], 0, len(rects))
	for _, rect := range rects {
		out = append(out, round(rect))
	}
	return FromUnsortedRects(out)
}
