// Package eval defines the static-evaluator contract the search consumes (component F) and a
// minimal material-balance implementation of it. The search treats any Evaluator as a black
// box; concrete positional heuristics beyond material counting are deliberately out of scope
// for the core.
package eval

import (
	"github.com/corrigan/deepline/pkg/board"
	"github.com/corrigan/deepline/pkg/position"
)

// Evaluator is a callable pair of pure functions: a side-agnostic static score of a position,
// and an unsigned move-ordering bonus. Both are black boxes to the search.
type Evaluator interface {
	// EvaluateEngineState returns a side-agnostic scalar for the position at the given
	// search depth (depth lets an implementation taper its heuristics by ply remaining).
	// Positive favors White; the search negates by color to stay negamax-symmetric.
	EvaluateEngineState(e position.Engine, depth int) float32

	// EvaluateHeuristicMove returns an unsigned bonus for move ordering. capture is
	// board.NoPiece for a quiet move.
	EvaluateHeuristicMove(m board.Move, moved, capture board.Piece, isKingChecked bool) float32
}

// Material is the nominal material-balance evaluator: White's piece count minus Black's,
// weighted by NominalValue, whichever side is to move. It contributes no move-ordering bonus of its own
// (zero), relying entirely on the search's built-in capture/castling/promotion/check bonuses.
type Material struct{}

func (Material) EvaluateEngineState(e position.Engine, depth int) float32 {
	b := e.Board()

	var total float32
	for p := board.Pawn; p <= board.King; p++ {
		delta := b.Side(board.White).Pieces[p].PopCount() - b.Side(board.Black).Pieces[p].PopCount()
		total += float32(delta) * float32(NominalValue(p))
	}
	return total // always White-positive; the search negates by color (side-agnostic contract)
}

func (Material) EvaluateHeuristicMove(m board.Move, moved, capture board.Piece, isKingChecked bool) float32 {
	return 0
}

// NominalValue is the absolute nominal value in pawns of a piece kind; the King has an
// arbitrary high value so king safety dominates material swings in the Material evaluator.
func NominalValue(p board.Piece) int {
	switch p {
	case board.Pawn:
		return 1
	case board.Bishop, board.Knight:
		return 3
	case board.Rook:
		return 5
	case board.Queen:
		return 9
	case board.King:
		return 100
	default:
		return 0
	}
}
