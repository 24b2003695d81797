// Package xregion implements an algebra of 2D regions composed of
// axis-aligned, half-open rectangles.
//
// It is patterned after image.Rectangle and image.Point, but extends
// them with a canonical multi-rectangle Region type supporting boolean
// set operations, geometric queries, affine transforms, and conversion
// to an integer grid. It is intended for damage tracking and
// clip-region computation in compositing pipelines.
package xregion

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the coordinate types that xregion types
// and functions can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}
