package dynvec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dynvec/dynvec-go/pkg/dynvec"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a    *dynvec.Vector[int]
		b    *dynvec.Vector[int]
		want bool
	}{
		{"both empty", dynvec.New[int](), dynvec.New[int](), true},
		{"same elements", dynvec.Of(1, 2, 3), dynvec.Of(1, 2, 3), true},
		{"different element", dynvec.Of(1, 2, 3), dynvec.Of(1, 2, 4), false},
		{"different length", dynvec.Of(1, 2), dynvec.Of(1, 2, 3), false},
		{"empty vs non-empty", dynvec.New[int](), dynvec.Of(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dynvec.Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, dynvec.Equal(tt.b, tt.a))
		})
	}
}

func TestEqualIgnoresCapacity(t *testing.T) {
	a := dynvec.Of(1, 2, 3)
	b := dynvec.Of(1, 2, 3)
	b.Reserve(32)

	assert.True(t, dynvec.Equal(a, b))
}

func TestCompareLexicographic(t *testing.T) {
	tests := []struct {
		name string
		a    *dynvec.Vector[int]
		b    *dynvec.Vector[int]
		want int
	}{
		{"equal", dynvec.Of(1, 2, 3), dynvec.Of(1, 2, 3), 0},
		{"both empty", dynvec.New[int](), dynvec.New[int](), 0},
		{"prefix is less", dynvec.Of(1, 2), dynvec.Of(1, 2, 3), -1},
		{"element dominates length", dynvec.Of(1, 3), dynvec.Of(1, 2, 3), 1},
		{"empty before anything", dynvec.New[int](), dynvec.Of(0), -1},
		{"first element decides", dynvec.Of(2), dynvec.Of(1, 9, 9), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dynvec.Compare(tt.a, tt.b))
			assert.Equal(t, -tt.want, dynvec.Compare(tt.b, tt.a))

			assert.Equal(t, tt.want < 0, dynvec.Less(tt.a, tt.b))
		})
	}
}

func TestEqualFunc(t *testing.T) {
	a := dynvec.Of("Alpha", "Beta")
	b := dynvec.Of("alpha", "BETA")

	assert.False(t, dynvec.Equal(a, b))
	assert.True(t, dynvec.EqualFunc(a, b, strings.EqualFold))
}

func TestCompareFunc(t *testing.T) {
	// Reverse ordering via a negated comparator.
	desc := func(x, y int) int {
		switch {
		case x > y:
			return -1
		case x < y:
			return 1
		default:
			return 0
		}
	}

	assert.Equal(t, -1, dynvec.CompareFunc(dynvec.Of(3), dynvec.Of(2), desc))
	assert.Equal(t, 1, dynvec.CompareFunc(dynvec.Of(1), dynvec.Of(2), desc))
	assert.Equal(t, -1, dynvec.CompareFunc(dynvec.Of(1), dynvec.Of(1, 1), desc),
		"prefix still orders before the longer sequence")
}
