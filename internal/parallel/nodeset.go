package parallel

import (
	"math/bits"
	"sync/atomic"
)

// NodeSet tracks which spatial-partition nodes were touched during a
// parallel phase, using an atomic bitmap. It provides lock-free,
// thread-safe marking for concurrent access.
//
// The bitmap uses one bit per node, packed into uint64 words (64 nodes per
// word). Workers mark bits during the parallel phase; the caller drains the
// set in the sequential merge phase that follows. All methods are safe for
// concurrent use without external synchronization.
type NodeSet struct {
	// words is the atomic bitmap where each bit represents one node.
	words []atomic.Uint64

	// size is the number of tracked nodes.
	size int
}

// NewNodeSet creates a set tracking n nodes, all initially unmarked.
// Returns nil if n is zero or negative.
func NewNodeSet(n int) *NodeSet {
	if n <= 0 {
		return nil
	}

	numWords := (n + 63) / 64
	return &NodeSet{
		words: make([]atomic.Uint64, numWords),
		size:  n,
	}
}

// Mark marks node i. This is a lock-free O(1) operation using atomic OR.
// Does nothing if i is out of bounds.
func (s *NodeSet) Mark(i int) {
	if i < 0 || i >= s.size {
		return
	}
	s.words[i/64].Or(1 << (i & 63))
}

// IsMarked returns true if node i has been marked.
// Returns false for out-of-bounds indexes.
func (s *NodeSet) IsMarked(i int) bool {
	if i < 0 || i >= s.size {
		return false
	}
	return s.words[i/64].Load()&(1<<(i&63)) != 0
}

// IsEmpty returns true if no node is marked.
func (s *NodeSet) IsEmpty() bool {
	for i := range s.words {
		if s.words[i].Load() != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of marked nodes.
func (s *NodeSet) Count() int {
	count := 0
	for i := range s.words {
		count += bits.OnesCount64(s.words[i].Load())
	}
	return count
}

// Clear unmarks every node.
func (s *NodeSet) Clear() {
	for i := range s.words {
		s.words[i].Store(0)
	}
}

// TakeAll atomically retrieves the indexes of all marked nodes and clears
// them, in ascending order.
func (s *NodeSet) TakeAll() []int {
	var marked []int
	for wordIdx := range s.words {
		// Atomically swap the word with 0 to get and clear.
		word := s.words[wordIdx].Swap(0)
		for word != 0 {
			bitIdx := bits.TrailingZeros64(word)
			i := wordIdx*64 + bitIdx
			if i >= s.size {
				break
			}
			marked = append(marked, i)
			word &^= 1 << bitIdx
		}
	}
	return marked
}

// ForEach calls fn for each marked node in ascending order without
// clearing the marks.
func (s *NodeSet) ForEach(fn func(i int)) {
	if fn == nil {
		return
	}
	for wordIdx := range s.words {
		word := s.words[wordIdx].Load()
		for word != 0 {
			bitIdx := bits.TrailingZeros64(word)
			i := wordIdx*64 + bitIdx
			if i >= s.size {
				break
			}
			fn(i)
			word &^= 1 << bitIdx
		}
	}
}

// Size returns the number of nodes the set tracks.
func (s *NodeSet) Size() int {
	return s.size
}
