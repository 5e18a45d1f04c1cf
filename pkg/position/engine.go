// Package position implements the position/engine state machine (component E): make-move,
// castling, promotion, en-passant resolution, the own-king-safety legality filter, and full
// legal-move enumeration with prebuilt successor snapshots. It is the search's only move
// interface.
package position

import (
	"github.com/corrigan/deepline/pkg/board"
	"github.com/corrigan/deepline/pkg/board/fen"
	"github.com/corrigan/deepline/pkg/zobrist"
)

// OkKind classifies a successful Play.
type OkKind uint8

const (
	Ok OkKind = iota
	Check
	Mate
	Stalemate
	Draw
)

func (k OkKind) String() string {
	switch k {
	case Ok:
		return "ok"
	case Check:
		return "check"
	case Mate:
		return "mate"
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw"
	default:
		return "?"
	}
}

// Engine is a board, a side-to-move flag, and a half-move counter. It is created at the
// initial position or loaded from a snapshot, and mutated only by Play, which replaces the
// board wholesale by copy-modify-swap. Cloning (by value, Engine contains no pointers) is
// O(board size) and cheap — the search clones liberally rather than make/unmake.
type Engine struct {
	board    board.Board
	turn     board.Color
	halfmove int
}

// New returns an Engine at the standard starting position.
func New() Engine {
	return Engine{board: board.NewBoard(), turn: board.White}
}

// FromBoard returns an Engine wrapping an already-constructed board, side to move and
// half-move clock — the entry point a FEN-style loader (external collaborator) would use.
func FromBoard(b board.Board, turn board.Color, halfmove int) Engine {
	return Engine{board: b, turn: turn, halfmove: halfmove}
}

// Board returns the current board.
func (e Engine) Board() board.Board {
	return e.board
}

// WhiteToPlay reports whether White is to move.
func (e Engine) WhiteToPlay() bool {
	return e.turn == board.White
}

// Turn returns the side to move.
func (e Engine) Turn() board.Color {
	return e.turn
}

// HalfMoveClock returns the half-move counter.
func (e Engine) HalfMoveClock() int {
	return e.halfmove
}

// IsKingChecked reports whether the side to move's king is currently attacked: the attack
// set of the opposite side, tested against the mover's king bit.
func (e Engine) IsKingChecked() bool {
	return e.board.IsChecked(e.turn)
}

// ComputeBoardHash returns the Zobrist key of the current position, computed
// non-incrementally against the package-default table.
func (e Engine) ComputeBoardHash() zobrist.Key {
	return zobrist.Default().Hash(e.board, e.turn)
}

// ToFEN renders a FEN-style snapshot of the current position.
func (e Engine) ToFEN() string {
	return fen.Encode(e.board, e.turn, e.halfmove, e.halfmove/2+1)
}

// Play applies m. On success it replaces the engine's state wholesale and returns the
// resulting OkKind; on failure the engine is left unmodified and an error is returned.
func (e *Engine) Play(m board.Move) (OkKind, error) {
	next, err := tryPlay(*e, m)
	if err != nil {
		return 0, err
	}
	*e = next
	return classify(next), nil
}

// MoveRow is one entry of GenerateMovesWithState: a legal move, the engine it produces, and
// the piece kinds involved (NoPiece for MovedPiece never occurs; NoPiece for CapturedPiece
// means a quiet move).
type MoveRow struct {
	Engine        Engine
	Move          board.Move
	MovedPiece    board.Piece
	CapturedPiece board.Piece
}

// GenerateMovesWithState returns one row per legal move: the pseudo-legal candidates are
// each simulated through Play on a clone, and only the ones that succeed are kept. This is
// the search's only source of legal moves — it never consults the generators directly.
func (e Engine) GenerateMovesWithState() []MoveRow {
	candidates := board.GeneratePseudoLegalMoves(e.board, e.turn)
	rows := make([]MoveRow, 0, len(candidates))
	for _, m := range candidates {
		next, err := tryPlay(e, m)
		if err != nil {
			continue
		}
		rows = append(rows, MoveRow{Engine: next, Move: m, MovedPiece: m.Piece, CapturedPiece: m.Capture})
	}
	return rows
}

// HasLegalMove reports whether any pseudo-legal candidate survives Play's safety filter.
// Cheaper than GenerateMovesWithState when only terminal-node status is needed.
func (e Engine) HasLegalMove() bool {
	for _, m := range board.GeneratePseudoLegalMoves(e.board, e.turn) {
		if _, err := tryPlay(e, m); err == nil {
			return true
		}
	}
	return false
}

func classify(e Engine) OkKind {
	checked := e.IsKingChecked()
	if !e.HasLegalMove() {
		if checked {
			return Mate
		}
		return Stalemate
	}
	if e.board.InsufficientMaterial() {
		return Draw
	}
	if checked {
		return Check
	}
	return Ok
}
