package sparsebitmap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitmapOfRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   []int32
	}{
		{"empty", []int32{}},
		{"single", []int32{42}},
		{"scenario1", []int32{1, 2, 100, 150, 1000, 123456}},
		{"dense run", []int32{0, 1, 2, 3, 4, 5, 31, 32, 33}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := BitmapOf(tt.in...)
			require.NoError(t, err)
			require.Equal(t, tt.in, b.ToArray())
			require.EqualValues(t, len(tt.in), b.Cardinality())
		})
	}
}

func TestSetOutOfOrder(t *testing.T) {
	b := New()
	require.NoError(t, b.Set(100))
	err := b.Set(30)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrOutOfOrder))
}

func TestSetMergesIntoTrailingWord(t *testing.T) {
	b := New()
	require.NoError(t, b.Set(10))
	require.NoError(t, b.Set(5))
	require.Equal(t, []int32{5, 10}, b.ToArray())
}

func TestBitmapString(t *testing.T) {
	b, err := BitmapOf(1, 2, 100)
	require.NoError(t, err)
	require.Equal(t, "{1,2,100}", b.String())
	require.Equal(t, "{}", New().String())
}

func TestCloneIsIndependent(t *testing.T) {
	b, err := BitmapOf(1, 2, 3)
	require.NoError(t, err)
	c := b.Clone()
	require.True(t, b.Equals(c))
	require.NoError(t, c.Set(1000))
	require.False(t, b.Equals(c))
}

func TestClearResetsToEmpty(t *testing.T) {
	b, err := BitmapOf(1, 2, 3)
	require.NoError(t, err)
	b.Clear()
	require.Empty(t, b.ToArray())
	require.EqualValues(t, 0, b.Cardinality())
	require.EqualValues(t, 0, b.SizeInBytes())
}

func TestEqualsAndHashCode(t *testing.T) {
	b1, err := BitmapOf(1, 2, 100)
	require.NoError(t, err)
	b2, err := BitmapOf(1, 2, 100)
	require.NoError(t, err)
	require.True(t, b1.Equals(b2))
	require.Equal(t, b1.HashCode(), b2.HashCode())

	b3, err := BitmapOf(1, 2, 101)
	require.NoError(t, err)
	require.False(t, b1.Equals(b3))
	require.False(t, b1.Equals(nil))
}

func TestTrimReportsByteSize(t *testing.T) {
	b, err := BitmapOf(1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, b.SizeInBytes(), b.Trim())
}

func TestSetAlgebraAgainstScenarios(t *testing.T) {
	l1 := []int32{1, 2, 100, 150, 1000, 123456}
	l2 := []int32{1, 2, 3, 1000, 123456, 1234567}

	b1, err := BitmapOf(l1...)
	require.NoError(t, err)
	b2, err := BitmapOf(l2...)
	require.NoError(t, err)

	require.Equal(t, []int32{1, 2, 1000, 123456}, b1.And(b2).ToArray())
	require.Equal(t, []int32{1, 2, 3, 100, 150, 1000, 123456, 1234567}, b1.Or(b2).ToArray())
	require.Equal(t, []int32{3, 100, 150, 1234567}, b1.Xor(b2).ToArray())
}

func TestIdempotence(t *testing.T) {
	b, err := BitmapOf(1, 2, 100, 150)
	require.NoError(t, err)

	require.True(t, b.Equals(b.And(b)))
	require.True(t, b.Equals(b.Or(b)))
	require.Empty(t, b.Xor(b).ToArray())
}

func TestEmptyOperand(t *testing.T) {
	b, err := BitmapOf(1, 2, 100, 150)
	require.NoError(t, err)
	empty := New()

	require.Equal(t, b.ToArray(), empty.Or(b).ToArray())
	require.Empty(t, empty.And(b).ToArray())
	require.Equal(t, b.ToArray(), empty.Xor(b).ToArray())
}
