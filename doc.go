// Package huffpack implements a self-contained Huffman archive codec: it
// compresses a byte sequence into an archive that carries everything needed
// to reconstruct the original, and decompresses such archives back into a
// byte-for-byte copy of the input.
//
// Archive format, version 1:
//
//     magic   4 bytes  "HFA1"
//     padding 1 byte   zero bits appended to the final payload byte, 0..7
//     count   2 bytes  big-endian number of distinct symbols, 0..256
//     entries count records of 9 bytes each: the symbol value followed by
//             its frequency as a big-endian uint64, in strictly ascending
//             symbol order
//     payload the concatenated Huffman codes of the input symbols, packed
//             MSB-first
//
// The decoder rebuilds the exact prefix-code tree from the frequency
// entries: tree construction breaks frequency ties by node creation order,
// and both sides create leaves in ascending symbol order, so the same
// entries always produce the same tree.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffpack
