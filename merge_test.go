package sparsebitmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intersectRef(l1, l2 []int32) []int32 {
	set := make(map[int32]bool, len(l2))
	for _, x := range l2 {
		set[x] = true
	}
	out := []int32{}
	for _, x := range l1 {
		if set[x] {
			out = append(out, x)
		}
	}
	return out
}

func uniteRef(l1, l2 []int32) []int32 {
	set := make(map[int32]bool)
	for _, x := range l1 {
		set[x] = true
	}
	for _, x := range l2 {
		set[x] = true
	}
	out := make([]int32, 0, len(set))
	for x := range set {
		out = append(out, x)
	}
	sortInt32s(out)
	return out
}

func xorRef(l1, l2 []int32) []int32 {
	count := make(map[int32]int)
	for _, x := range l1 {
		count[x]++
	}
	for _, x := range l2 {
		count[x]++
	}
	out := []int32{}
	for x, c := range count {
		if c == 1 {
			out = append(out, x)
		}
	}
	sortInt32s(out)
	return out
}

func sortInt32s(s []int32) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

func TestMergeKernelsAgainstReference(t *testing.T) {
	tests := []struct {
		name   string
		l1, l2 []int32
	}{
		{"scenario", []int32{1, 2, 100, 150, 1000, 123456}, []int32{1, 2, 3, 1000, 123456, 1234567}},
		{"disjoint", []int32{1, 2, 3}, []int32{100, 200, 300}},
		{"identical", []int32{5, 10, 15}, []int32{5, 10, 15}},
		{"one empty", []int32{}, []int32{5, 10, 15}},
		{"both empty", []int32{}, []int32{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b1, err := BitmapOf(tt.l1...)
			require.NoError(t, err)
			b2, err := BitmapOf(tt.l2...)
			require.NoError(t, err)

			require.Equal(t, intersectRef(tt.l1, tt.l2), b1.And(b2).ToArray())
			require.Equal(t, uniteRef(tt.l1, tt.l2), b1.Or(b2).ToArray())
			require.Equal(t, xorRef(tt.l1, tt.l2), b1.Xor(b2).ToArray())
		})
	}
}

func TestOr2by2TieEmitsUnion(t *testing.T) {
	b1, err := BitmapOf(1, 2)
	require.NoError(t, err)
	b2, err := BitmapOf(1, 3)
	require.NoError(t, err)

	result := New()
	or2by2(result, b1, b2)
	require.Equal(t, []int32{1, 2, 3}, result.ToArray())
}
