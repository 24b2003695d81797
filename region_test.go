package xregion_test

import (
	"slices"
	"testing"

	"deedles.dev/xregion"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		r     rect
		empty bool
	}{
		{"zero", rt(0, 0, 0, 0), true},
		{"zero height", rt(0, 0, 0.1, 0), true},
		{"zero width", rt(0, 0, 0, 0.1), true},
		{"inverted x", rt(0.2, 0, 0.1, 0.1), true},
		{"inverted y", rt(0, 0.2, 0.1, 0.1), true},
		{"non-empty", rt(0, 0, 0.1, 0.1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.empty, xregion.FromRect(tt.r).IsEmpty())
		})
	}

	require.True(t, region{}.IsEmpty())
}

func TestEqual(t *testing.T) {
	a := rt(0.1, 0.2, 0.4, 0.6)
	b := rt(0.5, 0.6, 1.2, 1.4)

	require.True(t, region{}.Equal(region{}))
	require.False(t, xregion.FromRect(a).Equal(region{}))
	require.True(t, xregion.FromRect(a).Equal(xregion.FromRect(a)))

	ab := xregion.FromRect(a).UnitedRect(b)
	require.False(t, ab.Equal(xregion.FromRect(a)))
	require.False(t, ab.Equal(xregion.FromRect(b)))
	require.True(t, ab.Equal(xregion.FromRect(a).UnitedRect(b)))

	// Equality does not depend on the operation sequence that built
	// the region, only on the point set it denotes.
	require.True(t, xregion.FromRect(b).UnitedRect(a).Equal(ab))
}

func TestBoundingRect(t *testing.T) {
	require.Equal(t, rect{}, region{}.BoundingRect())

	simple := xregion.FromRect(rt(0.1, 0.2, 0.4, 0.6))
	require.Equal(t, rt(0.1, 0.2, 0.4, 0.6), simple.BoundingRect())

	multi := simple.UnitedRect(rt(0.5, 0.6, 1.2, 1.4))
	require.Equal(t, rt(0.1, 0.2, 1.2, 1.4), multi.BoundingRect())

	// A narrow band below a wide one: left and right must come from a
	// scan of all bands, not from the first.
	stack := xregion.FromRect(rt(2, 0, 3, 1)).UnitedRect(rt(0, 1, 9, 2))
	require.Equal(t, rt(0, 0, 9, 2), stack.BoundingRect())
}

func TestRects(t *testing.T) {
	r := gridRegions[len(gridRegions)-1]
	require.Equal(t, r.RectSlice(), slices.Collect(r.Rects()))
	require.Equal(t, r.RectCount(), len(r.RectSlice()))
	require.Empty(t, region{}.RectSlice())
}

func TestDuplicateRectsCollapse(t *testing.T) {
	r := xregion.FromUnsortedRects([]rect{
		rt(0, 0, 1, 1),
		rt(5, 5, 6, 6),
		rt(0, 0, 1, 1),
	})
	require.Equal(t, 2, r.RectCount())
}

func TestCanonicalFormUnique(t *testing.T) {
	// Every distinct pattern must produce a distinct canonical
	// rectangle sequence, and identical patterns reached through the
	// boolean engine must reproduce the enumerated sequence exactly.
	seen := make(map[string]int, len(gridRegions))
	for i, r := range gridRegions {
		s := r.String()
		if j, ok := seen[s]; ok {
			t.Fatalf("patterns %d and %d share canonical form %s", j, i, s)
		}
		seen[s] = i
	}
}
