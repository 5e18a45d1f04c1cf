// Package arena is the fixed-capacity node pool (component G) the search allocates into:
// opaque handles rather than pointers, so a handle is never dereferenced across a Clear and
// allocation failure is a plain bool rather than an out-of-memory panic.
package arena

import (
	"github.com/corrigan/deepline/pkg/board"
	"github.com/corrigan/deepline/pkg/position"
)

// Handle is an opaque reference to a Node held by an Arena. The zero Handle is never valid;
// Arena.Allocate hands out handles numbered from 1, so a zero Handle reliably means "no node"
// (it is what Allocate returns when the pool is full).
type Handle int

const noHandle Handle = 0

// Node is one arena element: the position it represents, the move that produced it from its
// parent (the zero Move for the root), the moved/captured piece kinds (NoPiece for the
// root/a quiet move respectively), its static score, a best-score-so-far once searched, and
// its children once generated.
type Node struct {
	Position position.Engine
	Move     board.Move
	Moved    board.Piece
	Captured board.Piece

	StaticScore board.Score

	hasBest   bool
	BestScore board.Score

	ChildrenComputed bool
	Children         []Handle
}

// HasBestScore reports whether Search has recorded a best-score-so-far for this node.
func (n *Node) HasBestScore() bool {
	return n.hasBest
}

// SetBestScore records the node's best-score-so-far.
func (n *Node) SetBestScore(s board.Score) {
	n.hasBest = true
	n.BestScore = s
}

// Arena is a fixed-capacity vector of optional Nodes plus a stack of free indices. Handles
// are indices, never pointers, so they survive being held across a Clear (the zero value is
// simply stale and must not be looked up after a Clear — the search never does, since a
// Clear only happens between iterations, each of which discards all of its handles).
type Arena struct {
	slots []*Node
	free  []Handle
}

// New returns an Arena that can hold at most capacity live nodes.
func New(capacity int) *Arena {
	a := &Arena{slots: make([]*Node, capacity+1)}
	a.rebuildFreeList()
	return a
}

func (a *Arena) rebuildFreeList() {
	a.free = a.free[:0]
	for i := len(a.slots) - 1; i >= 1; i-- {
		a.slots[i] = nil
		a.free = append(a.free, Handle(i))
	}
}

// Capacity returns the maximum number of live nodes the arena can hold.
func (a *Arena) Capacity() int {
	return len(a.slots) - 1
}

// Len returns the number of currently-live nodes.
func (a *Arena) Len() int {
	return len(a.slots) - 1 - len(a.free)
}

// Allocate writes n into a free slot and returns its handle. Returns (0, false) if the pool
// is full; the caller's iteration should abort and fall back to its best completed result.
func (a *Arena) Allocate(n Node) (Handle, bool) {
	if len(a.free) == 0 {
		return noHandle, false
	}
	h := a.free[len(a.free)-1]
	a.free = a.free[:len(a.free)-1]
	a.slots[h] = &n
	return h, true
}

// Get returns the node at h. Panics if h is not currently allocated — a handle used after
// Free or Clear indicates a bug in the search, not a recoverable condition.
func (a *Arena) Get(h Handle) *Node {
	if h == noHandle || int(h) >= len(a.slots) || a.slots[h] == nil {
		panic("arena: invalid handle")
	}
	return a.slots[h]
}

// Free releases h back to the pool.
func (a *Arena) Free(h Handle) {
	a.slots[h] = nil
	a.free = append(a.free, h)
}

// Clear nulls every slot and rebuilds the free stack in O(capacity). Every handle held by a
// caller becomes invalid; none may be dereferenced afterwards.
func (a *Arena) Clear() {
	a.rebuildFreeList()
}
