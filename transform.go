package xregion

// Translated returns r shifted by (dx, dy). Translation is monotonic
// in both axes, so the canonical ordering survives unchanged.
func (r Region[T]) Translated(dx, dy T) Region[T] {
	if r.IsEmpty() {
		return r
	}
	rects := make([]Rect[T], len(r.rects))
	for i, rect := range r.rects {
		rects[i] = rect.Translated(dx, dy)
	}
	return Region[T]{rects: rects}
}

// Translate shifts r by (dx, dy), replacing the receiver.
func (r *Region[T]) Translate(dx, dy T) {
	*r = r.Translated(dx, dy)
}

// Scaled returns r with every coordinate multiplied by k. The scale
// factor must be positive; a positive factor preserves the canonical
// ordering, and the result for k <= 0 is unspecified.
func (r Region[T]) Scaled(k T) Region[T] {
	if r.IsEmpty() {
		return r
	}
	rects := make([]Rect[T], len(r.rects))
	for i, rect := range r.rects {
		rects[i] = rect.Scaled(k)
	}
	return Region[T]{rects: rects}
}

// Scale multiplies every coordinate of r by k, replacing the receiver.
// The scale factor must be positive.
func (r *Region[T]) Scale(k T) {
	*r = r.Scaled(k)
}
