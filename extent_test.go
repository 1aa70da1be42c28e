package contiguous

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamicToFixedConversion(t *testing.T) {
	buf := make([]float64, 5)
	v := ViewOf(buf) // dynamic, runtime length 5

	fixed := v.WithExtent(5)
	require.Equal(t, Extent(5), fixed.Extent())
	require.Equal(t, 5, fixed.Size())
	require.Equal(t, v.Data(), fixed.Data())

	if checksEnabled {
		require.Panics(t, func() { v.WithExtent(4) })
		require.Panics(t, func() { v.WithExtent(-1) })
	}
}

func TestFixedSizeAlwaysMatchesExtent(t *testing.T) {
	buf := []int{1, 2, 3}
	tests := []struct {
		name string
		v    View[int]
	}{
		{"FixedOf", FixedOf(buf)},
		{"ViewOf.WithExtent", ViewOf(buf).WithExtent(3)},
		{"New.WithExtent", New(&buf[0], 3).WithExtent(3)},
		{"SubFixed of larger", FixedOf([]int{0, 1, 2, 3, 4}).SubFixed(1, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, Extent(3), tt.v.Extent())
			require.Equal(t, 3, tt.v.Size())
		})
	}
}

func TestAsDynamicWidens(t *testing.T) {
	v := FixedOf([]byte("abc"))
	d := v.AsDynamic()
	require.Equal(t, Extent(Dynamic), d.Extent())
	require.Equal(t, v.Size(), d.Size())
	require.Equal(t, v.Data(), d.Data())

	// round trip back to fixed
	require.Equal(t, Extent(3), d.WithExtent(3).Extent())
}

func TestExtentCompatible(t *testing.T) {
	tests := []struct {
		name string
		a, b Extent
		want bool
	}{
		{"both dynamic", Dynamic, Dynamic, true},
		{"dynamic to fixed", Dynamic, 4, true},
		{"fixed to dynamic", 4, Dynamic, true},
		{"equal fixed", 4, 4, true},
		{"mismatched fixed", 4, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compatible(tt.b))
		})
	}
}

func TestExtentIsFixed(t *testing.T) {
	assert.False(t, Extent(Dynamic).IsFixed())
	assert.True(t, Extent(0).IsFixed())
	assert.True(t, Extent(7).IsFixed())
}
