package huffpack

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/chronos-tachyon/assert"
)

// magic identifies version 1 of the archive format.
var magic = [4]byte{'H', 'F', 'A', '1'}

// headerFixedSize is the size of the magic, padding, and count fields.
const headerFixedSize = 4 + 1 + 2

// entrySize is the size of one (symbol, frequency) header entry.
const entrySize = 1 + 8

// Compress encodes input as a self-contained archive: a header carrying the
// symbol frequencies and the padding count, followed by the Huffman-coded
// payload.  Decompress(Compress(x)) reproduces x exactly for every byte
// sequence x, the empty sequence included.
//
// Each call builds its own frequency table, tree, and code table; nothing
// is shared or retained between calls.
func Compress(input []byte) ([]byte, error) {
	freqs := CountBytes(input)

	var buf bytes.Buffer
	if len(input) == 0 {
		writeHeader(&buf, freqs, 0)
		return buf.Bytes(), nil
	}

	tree := NewTree(freqs)
	table, err := NewCodeTable(tree)
	if err != nil {
		return nil, err
	}

	var totalBits uint64
	for sym := 0; sym < alphabetSize; sym++ {
		totalBits += freqs[sym] * uint64(table.Code(byte(sym)).Size)
	}
	padding := byte((8 - totalBits%8) % 8)

	buf.Grow(headerFixedSize + entrySize*freqs.Distinct() + int((totalBits+7)/8))
	writeHeader(&buf, freqs, padding)

	bw := newBitWriter(&buf)
	for _, b := range input {
		if err := bw.WriteCode(table.Code(b)); err != nil {
			return nil, err
		}
	}
	assert.Assertf(bw.Padding() == padding, "padding drifted from %d to %d", padding, bw.Padding())
	if err := bw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress decodes an archive produced by Compress and returns the
// original byte sequence.  Malformed or corrupt archives fail as a whole
// with ErrBadMagic, ErrMalformedMetadata, ErrEmptyAlphabet, or
// ErrCorruptPayload; no partial output is ever returned.
func Decompress(archive []byte) ([]byte, error) {
	freqs, padding, payload, err := parseHeader(archive)
	if err != nil {
		return nil, err
	}

	if freqs.Distinct() == 0 {
		if len(payload) != 0 {
			return nil, ErrEmptyAlphabet
		}
		return []byte{}, nil
	}

	total := freqs.Total()
	if total > uint64(math.MaxInt) {
		return nil, fmt.Errorf("%w: %d symbols do not fit in memory", ErrMalformedMetadata, total)
	}

	tree := NewTree(freqs)
	table, err := NewCodeTable(tree)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, total)
	br := newBitReader(payload, padding)
	for uint64(len(out)) < total {
		sym, err := table.DecodeSymbol(br)
		if err != nil {
			return nil, err
		}
		out = append(out, sym)
	}
	if br.Remaining() != 0 {
		return nil, fmt.Errorf("%w: %d meaningful bits left over after the last symbol", ErrCorruptPayload, br.Remaining())
	}
	return out, nil
}

func writeHeader(buf *bytes.Buffer, freqs *FrequencyTable, padding byte) {
	buf.Write(magic[:])
	buf.WriteByte(padding)

	var scratch [8]byte
	binary.BigEndian.PutUint16(scratch[:2], uint16(freqs.Distinct()))
	buf.Write(scratch[:2])
	for sym := 0; sym < alphabetSize; sym++ {
		if freq := freqs[sym]; freq != 0 {
			buf.WriteByte(byte(sym))
			binary.BigEndian.PutUint64(scratch[:], freq)
			buf.Write(scratch[:])
		}
	}
}

func parseHeader(archive []byte) (*FrequencyTable, byte, []byte, error) {
	if len(archive) < headerFixedSize || !bytes.Equal(archive[:4], magic[:]) {
		return nil, 0, nil, ErrBadMagic
	}
	padding := archive[4]
	if padding > 7 {
		return nil, 0, nil, fmt.Errorf("%w: padding count %d out of range 0..7", ErrMalformedMetadata, padding)
	}
	count := int(binary.BigEndian.Uint16(archive[5:7]))
	if count > alphabetSize {
		return nil, 0, nil, fmt.Errorf("%w: %d distinct symbols, alphabet holds only %d", ErrMalformedMetadata, count, alphabetSize)
	}
	rest := archive[headerFixedSize:]
	if len(rest) < entrySize*count {
		return nil, 0, nil, fmt.Errorf("%w: header ends inside the frequency entries", ErrMalformedMetadata)
	}

	var freqs FrequencyTable
	prev := -1
	var total uint64
	for i := 0; i < count; i++ {
		sym := int(rest[0])
		freq := binary.BigEndian.Uint64(rest[1:entrySize])
		rest = rest[entrySize:]
		if sym <= prev {
			return nil, 0, nil, fmt.Errorf("%w: frequency entries not in ascending symbol order", ErrMalformedMetadata)
		}
		if freq == 0 {
			return nil, 0, nil, fmt.Errorf("%w: zero frequency recorded for symbol %d", ErrMalformedMetadata, sym)
		}
		if total+freq < total {
			return nil, 0, nil, fmt.Errorf("%w: frequency counts overflow", ErrMalformedMetadata)
		}
		total += freq
		prev = sym
		freqs[sym] = freq
	}

	if padding != 0 && len(rest) == 0 {
		return nil, 0, nil, fmt.Errorf("%w: nonzero padding with no payload", ErrMalformedMetadata)
	}
	return &freqs, padding, rest, nil
}
