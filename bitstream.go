package huffpack

import (
	"bytes"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// bitWriter packs codes into bytes MSB-first and counts the bits written,
// so the zero padding of the final partial byte can be recorded in the
// archive header.
type bitWriter struct {
	w     *bitio.Writer
	nbits uint64
}

func newBitWriter(w io.Writer) *bitWriter {
	return &bitWriter{w: bitio.NewWriter(w)}
}

// WriteCode appends the bits of hc to the stream.
func (bw *bitWriter) WriteCode(hc Code) error {
	assert.Assertf(hc.Size >= 1 && hc.Size <= maxCodeSize, "code size %d out of range 1..%d", hc.Size, maxCodeSize)
	if err := bw.w.WriteBits(hc.Bits, hc.Size); err != nil {
		return err
	}
	bw.nbits += uint64(hc.Size)
	return nil
}

// Padding returns how many zero bits Close will append to reach a byte
// boundary.
func (bw *bitWriter) Padding() byte {
	return byte((8 - bw.nbits%8) % 8)
}

// Close zero-pads the final partial byte and flushes it.
func (bw *bitWriter) Close() error {
	padding := bw.Padding()
	skipped, err := bw.w.Align()
	if err != nil {
		return err
	}
	assert.Assertf(byte(skipped) == padding, "aligned with %d bits, expected %d", skipped, padding)
	return bw.w.Close()
}

// bitReader yields the meaningful bits of a packed payload: the payload's
// bits MSB-first, minus the trailing padding recorded in the header.
type bitReader struct {
	r         *bitio.Reader
	remaining uint64
}

// newBitReader requires padding < 8, and padding == 0 when the payload is
// empty; the header parser enforces both.
func newBitReader(payload []byte, padding byte) *bitReader {
	return &bitReader{
		r:         bitio.NewReader(bytes.NewReader(payload)),
		remaining: 8*uint64(len(payload)) - uint64(padding),
	}
}

// ReadBit returns the next meaningful bit, or io.EOF once only padding is
// left.
func (br *bitReader) ReadBit() (bool, error) {
	if br.remaining == 0 {
		return false, io.EOF
	}
	bit, err := br.r.ReadBool()
	if err != nil {
		return false, err
	}
	br.remaining--
	return bit, nil
}

// Remaining returns the number of meaningful bits not yet read.
func (br *bitReader) Remaining() uint64 {
	return br.remaining
}
