package sparsebitmap

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"sparsebitmap/internal/buffer"
)

// Serialize writes b's backing buffer in its byte format (a 32-bit
// big-endian length followed by that many big-endian elements). It
// returns the number of bytes written.
func (b *Bitmap) Serialize(w io.Writer) (int, error) {
	return b.buf.Serialize(w)
}

// Deserialize reads a Bitmap back from Serialize's format,
// reconstructing sizeinwords as the sum of (gap+1) over every pair.
// A truncated or malformed stream is reported by wrapping the
// underlying io error.
func Deserialize(r io.Reader) (*Bitmap, error) {
	buf, err := buffer.Deserialize(r)
	if err != nil {
		return nil, err
	}
	var sizeinwords int32
	for k := int32(0); k < buf.Size(); k += 2 {
		sizeinwords += buf.Get(k) + 1
	}
	return &Bitmap{buf: buf, sizeinwords: sizeinwords}, nil
}

// SaveCompressed writes b through a zstd stream wrapping Serialize's
// plain byte format. This is an additive envelope: the plain format
// produced by Serialize is unchanged and remains independently valid.
func (b *Bitmap) SaveCompressed(w io.Writer) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("sparsebitmap: open zstd writer: %w", err)
	}
	if _, err := b.Serialize(zw); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("sparsebitmap: close zstd writer: %w", err)
	}
	return nil
}

// LoadCompressed is the inverse of SaveCompressed.
func LoadCompressed(r io.Reader) (*Bitmap, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("sparsebitmap: open zstd reader: %w", err)
	}
	defer zr.Close()
	return Deserialize(zr)
}
