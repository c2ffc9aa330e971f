package huffpack

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestNewTree_Deterministic(t *testing.T) {
	freqs := CountBytes([]byte("mississippi river delta"))

	first := NewTree(freqs)
	second := NewTree(freqs)
	if !reflect.DeepEqual(first, second) {
		t.Error("building twice from the same frequency table produced different trees")
	}
}

func TestNewTree_TieBreak(t *testing.T) {
	// Four symbols with equal frequency: creation-order tie-breaking
	// pairs them off in ascending symbol order.
	var freqs FrequencyTable
	freqs['a'] = 1
	freqs['b'] = 1
	freqs['c'] = 1
	freqs['d'] = 1

	table, err := NewCodeTable(NewTree(&freqs))
	if err != nil {
		t.Fatalf("NewCodeTable failed: %v", err)
	}

	expect := map[byte]string{
		'a': "\"00\"",
		'b': "\"01\"",
		'c': "\"10\"",
		'd': "\"11\"",
	}
	for sym, want := range expect {
		if got := table.Code(sym).String(); got != want {
			t.Errorf("code for %q: expected %s, got %s", sym, want, got)
		}
	}
}

func TestNewTree_FullArity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		var freqs FrequencyTable
		distinct := 2 + rng.Intn(alphabetSize-1)
		for _, sym := range rng.Perm(alphabetSize)[:distinct] {
			freqs[sym] = uint64(1 + rng.Intn(1000))
		}

		tree := NewTree(&freqs)
		for handle, node := range tree.nodes {
			if node.leaf() {
				continue
			}
			if node.left < 0 || node.right < 0 {
				t.Fatalf("trial %d: internal node %d is missing a child", trial, handle)
			}
		}
		if leaves, want := countLeaves(tree), freqs.Distinct(); leaves != want {
			t.Fatalf("trial %d: expected %d leaves, got %d", trial, want, leaves)
		}
		if got, want := tree.NumNodes(), 2*distinct-1; got != want {
			t.Fatalf("trial %d: expected %d nodes, got %d", trial, want, got)
		}
	}
}

func TestNewTree_SingleSymbol(t *testing.T) {
	var freqs FrequencyTable
	freqs['A'] = 1000

	tree := NewTree(&freqs)
	root := tree.nodes[tree.root]
	if root.leaf() {
		t.Fatal("single-symbol root must be a synthetic internal node, not a leaf")
	}
	if root.right != noChild {
		t.Errorf("single-symbol root must have no right child, got handle %d", root.right)
	}
	leaf := tree.nodes[root.left]
	if !leaf.leaf() || leaf.sym != 'A' || leaf.freq != 1000 {
		t.Errorf("unexpected leaf under the synthetic root: %+v", leaf)
	}
}

func countLeaves(tree *Tree) int {
	var n int
	for _, node := range tree.nodes {
		if node.leaf() {
			n++
		}
	}
	return n
}
