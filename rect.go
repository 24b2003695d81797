package xregion

// Rect is an axis-aligned rectangle covering the half-open box
// [Min.X, Max.X) × [Min.Y, Max.Y): the top and left edges are inside
// the rectangle, the bottom and right edges are not.
//
// A Rect is empty if Min.X >= Max.X or Min.Y >= Max.Y. Inverted
// rectangles are not normalized; they are simply empty, and every
// function in this package that ingests rectangles treats them as
// contributing nothing.
type Rect[T Scalar] struct {
	Min, Max Point[T]
}

// Rt is shorthand for Rect[T]{Pt(x0, y0), Pt(x1, y1)}.
func Rt[T Scalar](x0, y0, x1, y1 T) Rect[T] {
	return Rect[T]{Point[T]{x0, y0}, Point[T]{x1, y1}}
}

// Dx returns r's width.
func (r Rect[T]) Dx() T {
	return r.Max.X - r.Min.X
}

// Dy returns r's height.
func (r Rect[T]) Dy() T {
	return r.Max.Y - r.Min.Y
}

// Empty reports whether r contains no points.
func (r Rect[T]) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Translated returns r shifted by (dx, dy).
func (r Rect[T]) Translated(dx, dy T) Rect[T] {
	d := Point[T]{dx, dy}
	return Rect[T]{r.Min.Add(d), r.Max.Add(d)}
}

// Scaled returns r with every coordinate multiplied by k.
func (r Rect[T]) Scaled(k T) Rect[T] {
	return Rect[T]{r.Min.Mul(k), r.Max.Mul(k)}
}

// Union returns the smallest rectangle containing both r and s. If
// either rectangle is empty, the other is returned.
func (r Rect[T]) Union(s Rect[T]) Rect[T] {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	return Rect[T]{
		Point[T]{min(r.Min.X, s.Min.X), min(r.Min.Y, s.Min.Y)},
		Point[T]{max(r.Max.X, s.Max.X), max(r.Max.Y, s.Max.Y)},
	}
}

// Intersect returns the largest rectangle contained by both r and s.
// If the two rectangles share no points, the zero Rect is returned.
func (r Rect[T]) Intersect(s Rect[T]) Rect[T] {
	i := Rect[T]{
		Point[T]{max(r.Min.X, s.Min.X), max(r.Min.Y, s.Min.Y)},
		Point[T]{min(r.Max.X, s.Max.X), min(r.Max.Y, s.Max.Y)},
	}
	if i.Empty() {
		return Rect[T]{}
	}
	return i
}

// Overlaps reports whether r and s share any point.
func (r Rect[T]) Overlaps(s Rect[T]) bool {
	return !r.Empty() && !s.Empty() &&
		r.Min.X < s.Max.X && s.Min.X < r.Max.X &&
		r.Min.Y < s.Max.Y && s.Min.Y < r.Max.Y
}

func (r Rect[T]) String() string {
	return r.Min.String() + "-" + r.Max.String()
}
