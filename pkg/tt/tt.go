// Package tt is the transposition table (component H): a bounded-capacity, hash-keyed cache
// of search results keyed by Zobrist key, with bound type, depth, age and a best-move hint
// for move ordering. The core is single-threaded (see the search package), so unlike a
// concurrent engine's lock-free table this one is a plain map guarded by nothing but the
// search's own exclusive ownership.
package tt

import (
	"context"
	"fmt"

	"github.com/corrigan/deepline/pkg/board"
	"github.com/corrigan/deepline/pkg/zobrist"
	"github.com/seekerror/logw"
)

// Bound classifies how a stored score relates to the true value of the node: Exact is the
// true minimax value, Lower is a fail-high (true value is at least score), Upper is a
// fail-low (true value is at most score).
type Bound uint8

const (
	Exact Bound = iota
	Lower
	Upper
)

func (b Bound) String() string {
	switch b {
	case Exact:
		return "Exact"
	case Lower:
		return "Lower"
	case Upper:
		return "Upper"
	default:
		return "?"
	}
}

// entry is one transposition-table slot. 40ish bytes; capacity bounds total memory.
type entry struct {
	hash  zobrist.Key
	best  board.Move
	score board.Score
	depth int
	bound Bound
	age   uint32
}

// val orders entries for eviction: older generations first, then shallower depths first.
func (e entry) val() int64 {
	return int64(e.age)<<32 | int64(e.depth)
}

// Table is the transposition table. Capacity is fixed at construction; once full, a Store
// evicts the entry minimizing (age, depth).
type Table struct {
	capacity int
	age      uint32
	entries  map[zobrist.Key]*entry
}

// New returns an empty table bounded to capacity entries.
func New(capacity int) *Table {
	logw.Infof(context.Background(), "tt: allocating table, capacity=%v entries", capacity)
	return &Table{capacity: capacity, entries: make(map[zobrist.Key]*entry, capacity)}
}

// NewSearch bumps the table's generation counter. Called once at the start of every
// iterative-deepening iteration, so entries from stale iterations are preferred for
// eviction over ones just written.
func (t *Table) NewSearch() {
	t.age++
}

// Probe looks up hash for a search at the given depth, ply (distance from the search root,
// for mate-score adjustment) and alpha/beta window.
//
//   - Miss, or a hit whose stored hash doesn't match (a sparse-index collision under a
//     different table organization — this map never collides on identity, but the contract
//     is kept so callers don't rely on map-specific behavior): (_, _, false, false).
//   - Hit with entry.depth < depth: the score isn't usable at this depth, but the best-move
//     hint still is: (best, 0, false, true).
//   - Hit with entry.depth >= depth: the bound is interpreted against alpha/beta; if usable,
//     (best, score, true, true), otherwise (best, 0, false, true).
func (t *Table) Probe(hash zobrist.Key, depth, ply int, alpha, beta board.Score) (best board.Move, score board.Score, scoreUsable, hasBest bool) {
	e, ok := t.entries[hash]
	if !ok || e.hash != hash {
		return board.Move{}, 0, false, false
	}
	best, hasBest = e.best, true

	if e.depth < depth {
		return best, 0, false, true
	}

	adjusted := adjustRetrieve(e.score, ply)
	switch e.bound {
	case Exact:
		return best, adjusted, true, true
	case Lower:
		return best, adjusted, adjusted >= beta, true
	case Upper:
		return best, adjusted, adjusted <= alpha, true
	default:
		return best, 0, false, true
	}
}

// Store records an entry for hash, evicting the (age, depth)-minimal existing entry if the
// table is at capacity and hash is not already present.
func (t *Table) Store(hash zobrist.Key, best board.Move, score board.Score, depth, ply int, bound Bound) {
	fresh := &entry{hash: hash, best: best, score: adjustStore(score, ply), depth: depth, bound: bound, age: t.age}

	if _, ok := t.entries[hash]; !ok && len(t.entries) >= t.capacity {
		t.evictOne()
	}
	t.entries[hash] = fresh
}

func (t *Table) evictOne() {
	var victim zobrist.Key
	var victimVal int64 = -1
	for k, e := range t.entries {
		if victimVal == -1 || e.val() < victimVal {
			victim, victimVal = k, e.val()
		}
	}
	delete(t.entries, victim)
}

// Peek returns hash's stored score regardless of depth or bound, for move ordering only
// (never for a cutoff decision — callers needing a usable score must go through Probe).
func (t *Table) Peek(hash zobrist.Key) (board.Score, bool) {
	e, ok := t.entries[hash]
	if !ok || e.hash != hash {
		return 0, false
	}
	return adjustRetrieve(e.score, 0), true
}

// Len returns the number of entries currently stored.
func (t *Table) Len() int {
	return len(t.entries)
}

func (t *Table) String() string {
	return fmt.Sprintf("tt[%v/%v entries, age=%v]", len(t.entries), t.capacity, t.age)
}

// adjustStore converts a root-relative score (as produced by the search, already subject to
// per-ply mate-distance adjustment on the way up) to a node-relative one safe to reuse from
// any ply: mate scores are pushed away from zero by the node's distance from the root.
func adjustStore(score board.Score, ply int) board.Score {
	switch {
	case score > board.MateThreshold:
		return score + board.Score(ply)
	case score < -board.MateThreshold:
		return score - board.Score(ply)
	default:
		return score
	}
}

// adjustRetrieve is the inverse of adjustStore: it re-expresses a node-relative stored mate
// score as root-relative, given the ply at which it is being reused.
func adjustRetrieve(score board.Score, ply int) board.Score {
	switch {
	case score > board.MateThreshold:
		return score - board.Score(ply)
	case score < -board.MateThreshold:
		return score + board.Score(ply)
	default:
		return score
	}
}
