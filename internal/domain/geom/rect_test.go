package geom

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangle_Contains(t *testing.T) {
	outer := New(0, 0, 100, 100)

	tests := []struct {
		name  string
		inner Rectangle
		want  bool
	}{
		{"fully inside", New(10, 10, 20, 20), true},
		{"same rectangle", outer, true},
		{"touching right edge", New(80, 0, 20, 100), true},
		{"zero size on corner", New(100, 100, 0, 0), true},
		{"crosses left edge", New(-1, 10, 20, 20), false},
		{"crosses bottom edge", New(10, 90, 20, 20), false},
		{"wider than outer", New(0, 0, 101, 10), false},
		{"completely outside", New(200, 200, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outer.Contains(tt.inner))
		})
	}
}

func TestRectangle_ContainsImpliesCornersInside(t *testing.T) {
	a := New(5, 5, 50, 40)
	candidates := []Rectangle{
		New(5, 5, 50, 40),
		New(10, 10, 1, 1),
		New(30, 20, 25, 25),
		New(4, 5, 10, 10),
	}

	for _, b := range candidates {
		if !a.Contains(b) {
			continue
		}
		corners := [][2]float64{{b.X, b.Y}, {b.Right(), b.Y}, {b.X, b.Bottom()}, {b.Right(), b.Bottom()}}
		for _, c := range corners {
			assert.True(t, c[0] >= a.X && c[0] <= a.Right(), "corner x %v of %v", c[0], b)
			assert.True(t, c[1] >= a.Y && c[1] <= a.Bottom(), "corner y %v of %v", c[1], b)
		}
	}
}

func TestRectangle_Overlaps(t *testing.T) {
	a := New(0, 0, 10, 10)

	tests := []struct {
		name  string
		other Rectangle
		want  bool
	}{
		{"intersecting", New(5, 5, 10, 10), true},
		{"contained", New(2, 2, 2, 2), true},
		{"touching right edge", New(10, 0, 10, 10), false},
		{"touching bottom edge", New(0, 10, 10, 10), false},
		{"touching corner", New(10, 10, 5, 5), false},
		{"disjoint", New(20, 20, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.other))
			assert.Equal(t, a.Overlaps(tt.other), tt.other.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestRectangle_MoveInside(t *testing.T) {
	parent := New(0, 0, 100, 100)

	tests := []struct {
		name   string
		r      Rectangle
		want   Rectangle
		wantOK bool
	}{
		{"clamp left", New(-10, 5, 20, 20), New(0, 5, 20, 20), true},
		{"clamp right and bottom", New(90, 95, 20, 20), New(80, 80, 20, 20), true},
		{"already inside", New(30, 40, 20, 20), New(30, 40, 20, 20), true},
		{"same size as parent", New(-5, 7, 100, 100), New(0, 0, 100, 100), true},
		{"too wide", New(0, 0, 101, 10), Rectangle{}, false},
		{"too tall", New(0, 0, 10, 101), Rectangle{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.r.MoveInside(parent)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				assert.True(t, parent.Contains(got))
			}
		})
	}
}

func TestRectangle_MoveInsideOffsetParent(t *testing.T) {
	parent := New(50, 50, 30, 30)

	got, ok := New(0, 100, 10, 10).MoveInside(parent)
	require.True(t, ok)
	assert.Equal(t, New(50, 70, 10, 10), got)
}

func TestRectangle_Transforms(t *testing.T) {
	r := New(1, 2, 3, 4)

	moved := r.Translate(10, -2)
	assert.Equal(t, New(11, 0, 3, 4), moved)
	assert.Equal(t, New(1, 2, 3, 4), r, "Translate must not mutate the receiver")

	assert.Equal(t, 4.0, r.Right())
	assert.Equal(t, 6.0, r.Bottom())
	w, h := r.Size()
	assert.Equal(t, 3.0, w)
	assert.Equal(t, 4.0, h)
}

func TestRectangle_ToNative(t *testing.T) {
	assert.Equal(t, image.Rect(64, 64, 107, 103), New(64.7, 64.2, 43, 39).ToNative())
	assert.Equal(t, image.Rect(0, 0, 0, 0), New(0, 0, 0, 0).ToNative())
}

func TestRectangle_ToNativePanicsOnNegativeSize(t *testing.T) {
	assert.Panics(t, func() { New(0, 0, -1, 10).ToNative() })
	assert.Panics(t, func() { New(0, 0, 10, -1).ToNative() })
}
