package huffpack

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// maxCodeSize is the longest code the codec supports.  Longer codes cannot
// be represented in Code.Bits, and producing one requires frequencies that
// grow Fibonacci-fashion across a multi-terabyte input.
const maxCodeSize = 64

// noChild marks an absent child handle.
const noChild = int32(-1)

// Tree is a Huffman prefix-code tree.  Nodes live in an arena and refer to
// their children by arena index, so the tree needs no pointers and no
// back-references.
type Tree struct {
	nodes []treeNode
	root  int32
}

// treeNode is either a leaf (both child handles negative) or an internal
// node.  Internal nodes of a multi-symbol tree always have two children;
// the synthetic root of a single-symbol tree has only a left child.
type treeNode struct {
	freq  uint64
	left  int32
	right int32
	sym   byte
}

func (n treeNode) leaf() bool { return n.left < 0 }

// NewTree builds the prefix-code tree for freqs, which must have at least
// one nonzero count.
//
// Leaves enter a min-heap in ascending symbol order; the two lowest-
// frequency nodes are repeatedly merged, first-extracted becoming the left
// child, until one root remains.  Frequency ties are broken by node
// creation order (the arena handle doubles as a creation sequence number),
// so the same frequency table always yields the same tree, whether it came
// from counting an input or from parsing archive metadata.
func NewTree(freqs *FrequencyTable) *Tree {
	distinct := freqs.Distinct()
	assert.Assertf(distinct > 0, "cannot build a tree from an empty frequency table")

	t := &Tree{nodes: make([]treeNode, 0, 2*distinct)}
	h := handleHeap{tree: t, handles: make([]int32, 0, distinct)}
	for sym := 0; sym < alphabetSize; sym++ {
		if freq := freqs[sym]; freq != 0 {
			h.handles = append(h.handles, t.add(treeNode{freq: freq, left: noChild, right: noChild, sym: byte(sym)}))
		}
	}

	if distinct == 1 {
		// A lone symbol still needs a real 1-bit code: hang the leaf
		// off a synthetic root so the walk assigns it "0".
		lone := h.handles[0]
		t.root = t.add(treeNode{freq: t.nodes[lone].freq, left: lone, right: noChild})
		return t
	}

	heap.Init(&h)
	for h.Len() > 1 {
		a := heap.Pop(&h).(int32)
		b := heap.Pop(&h).(int32)
		sum := t.nodes[a].freq + t.nodes[b].freq
		heap.Push(&h, t.add(treeNode{freq: sum, left: a, right: b}))
	}
	t.root = h.handles[0]
	return t
}

func (t *Tree) add(n treeNode) int32 {
	t.nodes = append(t.nodes, n)
	return int32(len(t.nodes) - 1)
}

// NumNodes returns the number of nodes in the tree, leaves included.
func (t *Tree) NumNodes() int {
	return len(t.nodes)
}

// type handleHeap {{{

// handleHeap is a min-heap of arena handles ordered by (frequency, handle).
// The secondary key makes the ordering total, so the pop sequence is fully
// determined by the input frequencies.
type handleHeap struct {
	tree    *Tree
	handles []int32
}

func (h *handleHeap) Len() int {
	return len(h.handles)
}

func (h *handleHeap) Swap(i, j int) {
	h.handles[i], h.handles[j] = h.handles[j], h.handles[i]
}

func (h *handleHeap) Less(i, j int) bool {
	a, b := h.handles[i], h.handles[j]
	af, bf := h.tree.nodes[a].freq, h.tree.nodes[b].freq
	if af != bf {
		return af < bf
	}
	return a < b
}

func (h *handleHeap) Push(x interface{}) {
	h.handles = append(h.handles, x.(int32))
}

func (h *handleHeap) Pop() interface{} {
	last := len(h.handles) - 1
	x := h.handles[last]
	h.handles = h.handles[:last]
	return x
}

var _ heap.Interface = (*handleHeap)(nil)

// }}}
