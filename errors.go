package huffpack

import (
	"errors"
)

// ErrBadMagic is returned by Decompress when the input does not begin with
// the archive magic.
var ErrBadMagic = errors.New("huffpack: not a huffpack archive")

// ErrMalformedMetadata is returned by Decompress when the archive header is
// structurally inconsistent.  No bit decoding is attempted.
var ErrMalformedMetadata = errors.New("huffpack: malformed archive metadata")

// ErrEmptyAlphabet is returned by Decompress when the header declares zero
// distinct symbols but the archive carries payload bytes anyway.
var ErrEmptyAlphabet = errors.New("huffpack: empty alphabet with non-empty payload")

// ErrCorruptPayload is returned by Decompress when the packed payload cannot
// be decoded completely: the bit walk ends in the middle of a code, reaches
// a dead end, or leaves meaningful bits unconsumed.
var ErrCorruptPayload = errors.New("huffpack: truncated or corrupt payload")
