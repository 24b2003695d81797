package xregion_test

import (
	"deedles.dev/xregion"
)

type (
	region  = xregion.Region[float64]
	rect    = xregion.Rect[float64]
	iregion = xregion.Region[int]
	irect   = xregion.Rect[int]
)

func rt(x0, y0, x1, y1 float64) rect { return xregion.Rt(x0, y0, x1, y1) }
func irt(x0, y0, x1, y1 int) irect   { return xregion.Rt(x0, y0, x1, y1) }

// The exhaustive tests sample regions from a small grid of cells, with
// cell (x, y) assigned bit y*gridW + x of an integer pattern. Every
// pattern describes one region, and bitwise OR, AND, XOR, and ANDNOT
// on patterns mirror the corresponding set operations on the regions
// they describe, so the whole algebra can be checked against integer
// arithmetic on all small cases at once. The half-integer cell size
// keeps the coordinates fractional.
const (
	gridW = 3
	gridH = 3
	unit  = 0.5
)

// gridRegions holds the region for every cell pattern, indexed by
// pattern.
var gridRegions = enumerateRegions()

func enumerateRegions() []region {
	regions := make([]region, 1<<(gridW*gridH))
	for i := range regions {
		regions[i] = gridRegion(i)
	}
	return regions
}

// gridRegion builds the region covering the set cells of pattern. The
// canonical rectangle sequence is assembled by hand, run by run and
// row by row, so the enumeration does not depend on the
// canonicalization paths under test.
func gridRegion(pattern int) region {
	var rects []rect
	prev := 0
	for y := 0; y < gridH; y++ {
		cur := len(rects)
		run := -1
		for x := 0; x <= gridW; x++ {
			set := x < gridW && pattern&(1<<(y*gridW+x)) != 0
			switch {
			case set && run < 0:
				run = x
			case !set && run >= 0:
				rects = append(rects, rt(float64(run)*unit, float64(y)*unit, float64(x)*unit, float64(y+1)*unit))
				run = -1
			}
		}
		prev, rects = coalesceRows(rects, prev, cur)
	}
	return xregion.FromSortedRects(rects)
}

// coalesceRows merges the row of rectangles beginning at curStart into
// the previous row when both carry the same horizontal runs.
func coalesceRows(rects []rect, prevStart, curStart int) (int, []rect) {
	prevCount := curStart - prevStart
	curCount := len(rects) - curStart
	if curCount == 0 || prevCount != curCount {
		return curStart, rects
	}
	if rects[prevStart].Max.Y != rects[curStart].Min.Y {
		return curStart, rects
	}
	for i := 0; i < curCount; i++ {
		if rects[prevStart+i].Min.X != rects[curStart+i].Min.X ||
			rects[prevStart+i].Max.X != rects[curStart+i].Max.X {
			return curStart, rects
		}
	}
	bottom := rects[curStart].Max.Y
	for i := prevStart; i < curStart; i++ {
		rects[i].Max.Y = bottom
	}
	return prevStart, rects[:curStart]
}

// gridRects enumerates every single rectangle alignable to the grid,
// keyed by the pattern of cells it covers, plus the empty rectangle at
// pattern 0.
func gridRects() map[int]rect {
	rects := map[int]rect{0: {}}
	for y1 := 0; y1 < gridH; y1++ {
		for y2 := y1 + 1; y2 <= gridH; y2++ {
			for x1 := 0; x1 < gridW; x1++ {
				for x2 := x1 + 1; x2 <= gridW; x2++ {
					bits := 0
					for y := y1; y < y2; y++ {
						for x := x1; x < x2; x++ {
							bits |= 1 << (y*gridW + x)
						}
					}
					rects[bits] = rt(float64(x1)*unit, float64(y1)*unit, float64(x2)*unit, float64(y2)*unit)
				}
			}
		}
	}
	return rects
}
