package huffpack

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps every symbol with a nonzero frequency to its prefix code.
// It retains the tree it was derived from, which serves as the inverse map
// for bit-by-bit decoding.  A CodeTable is immutable once built.
type CodeTable struct {
	tree    *Tree
	codes   [alphabetSize]Code
	minSize byte
	maxSize byte
}

// NewCodeTable derives the code for every leaf of tree by walking from the
// root, appending 0 for a left edge and 1 for a right edge.  The tree shape
// guarantees the prefix property; no code is ever a prefix of another.
//
// NewCodeTable fails if any code would exceed maxCodeSize bits, which can
// only happen with adversarially skewed frequency metadata.
func NewCodeTable(tree *Tree) (*CodeTable, error) {
	ct := &CodeTable{tree: tree}

	type stackItem struct {
		handle int32
		code   Code
	}

	stack := make([]stackItem, 0, maxCodeSize)
	stack = append(stack, stackItem{tree.root, Code{}})
	var seen bool
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := tree.nodes[top.handle]
		if node.leaf() {
			ct.codes[node.sym] = top.code
			size := top.code.Size
			if !seen {
				seen = true
				ct.minSize = size
				ct.maxSize = size
			} else if ct.minSize > size {
				ct.minSize = size
			} else if ct.maxSize < size {
				ct.maxSize = size
			}
			continue
		}

		if top.code.Size == maxCodeSize {
			return nil, fmt.Errorf("%w: code longer than %d bits", ErrMalformedMetadata, maxCodeSize)
		}
		if node.right >= 0 {
			stack = append(stack, stackItem{node.right, top.code.Append(1)})
		}
		stack = append(stack, stackItem{node.left, top.code.Append(0)})
	}
	return ct, nil
}

// Code returns the code assigned to symbol.  A symbol with zero frequency
// has a zero-size code.
func (ct *CodeTable) Code(symbol byte) Code {
	return ct.codes[symbol]
}

// MinSize is the bit length of the shortest assigned code.
func (ct *CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest assigned code.
func (ct *CodeTable) MaxSize() byte {
	return ct.maxSize
}

// DecodeSymbol consumes bits from br, walking the tree from the root until
// a leaf is reached, and returns the leaf's symbol.  Running out of bits
// mid-walk, or stepping onto a branch that does not exist, reports
// ErrCorruptPayload.
func (ct *CodeTable) DecodeSymbol(br *bitReader) (byte, error) {
	t := ct.tree
	handle := t.root
	for {
		node := t.nodes[handle]
		if node.leaf() {
			return node.sym, nil
		}
		bit, err := br.ReadBit()
		if err != nil {
			return 0, fmt.Errorf("%w: payload ends in the middle of a code", ErrCorruptPayload)
		}
		if bit {
			handle = node.right
		} else {
			handle = node.left
		}
		if handle < 0 {
			return 0, fmt.Errorf("%w: no code starts with this bit sequence", ErrCorruptPayload)
		}
	}
}

// Dump writes a programmer-readable debugging dump of the CodeTable's
// current state to the given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for sym := 0; sym < alphabetSize; sym++ {
		hc := ct.codes[sym]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tCode(%d) = %s\n", sym, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
