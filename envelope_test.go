package sparsebitmap

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	b, err := BitmapOf(1, 2, 100, 150, 1000, 123456)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = b.Serialize(&buf)
	require.NoError(t, err)

	got, err := Deserialize(&buf)
	require.NoError(t, err)
	require.Equal(t, b.ToArray(), got.ToArray())
	require.Equal(t, b.sizeinwords, got.sizeinwords)
}

func TestSerializeEmptyBitmap(t *testing.T) {
	var buf bytes.Buffer
	_, err := New().Serialize(&buf)
	require.NoError(t, err)

	got, err := Deserialize(&buf)
	require.NoError(t, err)
	require.Empty(t, got.ToArray())
	require.EqualValues(t, 0, got.sizeinwords)
}

func TestDeserializeTruncatedStreamFails(t *testing.T) {
	_, err := Deserialize(bytes.NewReader([]byte{0, 0, 0, 5, 1, 2}))
	require.Error(t, err)
}

func TestSaveLoadCompressedRoundTrip(t *testing.T) {
	b, err := BitmapOf(1, 2, 100, 150, 1000, 123456)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, b.SaveCompressed(&buf))

	got, err := LoadCompressed(&buf)
	require.NoError(t, err)
	require.Equal(t, b.ToArray(), got.ToArray())
}
