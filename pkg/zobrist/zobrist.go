// Package zobrist computes the incremental 64-bit position identity used to index the
// transposition table (component D). The table is initialized once from a fixed-seed PRNG
// so hashes are stable across runs and across processes, which tests over the hash function
// rely on.
package zobrist

import (
	"math/rand"

	"github.com/corrigan/deepline/pkg/board"
	"go.uber.org/atomic"
)

// Key is a 64-bit Zobrist hash.
type Key uint64

// DefaultSeed is the fixed seed used to build the package-level Zobrist table. Tests that
// need bit-for-bit reproducibility across runs should use NewTable(DefaultSeed) rather than
// a random seed.
const DefaultSeed = 0x5EED5EED5EED5EED

// Table holds the random bitstrings XORed together to form a position's key: one per
// (piece kind, color, square), one per castling index [0,16), one per en-passant target
// square, and one for side-to-move.
type Table struct {
	pieces    [board.NumPieces][board.NumColors][board.NumSquares]Key
	castling  [board.NumCastling]Key
	enPassant [board.NumSquares]Key
	turn      [board.NumColors]Key
}

// NewTable builds a table from the given PRNG seed. Construction happens exactly once per
// process in normal use (see the package-level Default below); the table is read-only
// thereafter and safe for concurrent reads.
func NewTable(seed int64) *Table {
	t := &Table{}
	r := rand.New(rand.NewSource(seed))

	for c := board.ZeroColor; c < board.NumColors; c++ {
		for p := board.ZeroPiece; p < board.NumPieces; p++ {
			for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
				t.pieces[p][c][sq] = Key(r.Uint64())
			}
		}
		t.turn[c] = Key(r.Uint64())
	}
	for i := board.ZeroCastling; i < board.NumCastling; i++ {
		t.castling[i] = Key(r.Uint64())
	}
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		t.enPassant[sq] = Key(r.Uint64())
	}
	return t
}

var (
	defaultTable      atomic.Pointer[Table]
	defaultInitiating atomic.Bool
)

// Default returns the process-wide table, built once with DefaultSeed on first use. The
// state machine and search call this unless a test explicitly constructs its own table.
func Default() *Table {
	if t := defaultTable.Load(); t != nil {
		return t
	}
	if defaultInitiating.CAS(false, true) {
		t := NewTable(DefaultSeed)
		defaultTable.Store(t)
		return t
	}
	for {
		if t := defaultTable.Load(); t != nil {
			return t
		}
	}
}

// PieceSquare returns the bitstring for one piece occupying one square, for incremental
// updates: callers XOR it in when a piece leaves a square and XOR it in again when a piece
// (possibly of a different kind, on promotion) arrives at a square.
func (t *Table) PieceSquare(p board.Piece, c board.Color, sq board.Square) Key {
	return t.pieces[p][c][sq]
}

// Castling returns the bitstring for a 4-bit castling index (white-short | white-long<<1 |
// black-short<<2 | black-long<<3, per board.Board.CastlingIndex).
func (t *Table) Castling(idx board.Castling) Key {
	return t.castling[idx]
}

// EnPassant returns the bitstring for a single en-passant target square.
func (t *Table) EnPassant(sq board.Square) Key {
	return t.enPassant[sq]
}

// SideToMove returns the bitstring XORed in iff Black is to move (White contributes zero
// per the hashing formula: "side_to_move if Black is to move").
func (t *Table) SideToMove(c board.Color) Key {
	if c == board.Black {
		return t.turn[board.Black]
	}
	return 0
}

// Hash computes the non-incremental key of a board with the given side to move: the XOR of
// every occupied square's piece bitstring, the castling index, the en-passant target (if
// any), and side-to-move. Incremental updates performed elsewhere MUST agree with this
// formula bit-for-bit; it exists to seed a freshly loaded position and to verify agreement
// in tests.
func (t *Table) Hash(b board.Board, turn board.Color) Key {
	var h Key

	for c := board.ZeroColor; c < board.NumColors; c++ {
		side := b.Side(c)
		for p := board.Pawn; p <= board.King; p++ {
			bb := side.Pieces[p]
			for bb != 0 {
				var sq board.Square
				sq, bb = bb.PopFirst()
				h ^= t.PieceSquare(p, c, sq)
			}
		}
	}

	h ^= t.Castling(b.CastlingIndex())

	if ep := b.Sides[board.White].EnPassant | b.Sides[board.Black].EnPassant; ep != 0 {
		h ^= t.EnPassant(ep.FirstSquare())
	}

	h ^= t.SideToMove(turn)
	return h
}
