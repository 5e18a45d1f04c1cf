package search

import (
	"github.com/corrigan/deepline/pkg/arena"
	"github.com/corrigan/deepline/pkg/board"
)

// OrderingValue is the piece-ordering table used only to rank moves, distinct from any
// evaluator's material scale: pawn 10, knight 30, bishop 30, rook 50, queen 90, king 0.
func OrderingValue(p board.Piece) int {
	switch p {
	case board.Pawn:
		return 10
	case board.Knight, board.Bishop:
		return 30
	case board.Rook:
		return 50
	case board.Queen:
		return 90
	default:
		return 0
	}
}

// Built-in move-ordering bonuses, local decisions in the absence of spec-mandated numbers;
// small relative to OrderingValue's captures so MVV-LVA still dominates among tactical moves.
const (
	castlingBonus   float32 = 15
	captureBonus    float32 = 10
	checkBonus      float32 = 5
	heuristicWeight float32 = 1
)

// heuristicBonus is the unsigned move-ordering bonus for the move that produced child: the
// evaluator's own bonus plus the search's built-in castling/promotion/capture-MVV-LVA/check
// bonuses.
func (ts *TreeSearch) heuristicBonus(child *arena.Node) float32 {
	bonus := ts.evaluator.EvaluateHeuristicMove(child.Move, child.Moved, child.Captured, child.Position.IsKingChecked())

	switch {
	case child.Move.Type == board.Castling:
		bonus += castlingBonus
	case child.Move.IsPromotion():
		bonus += float32(OrderingValue(child.Move.Kind))
	}
	if child.Captured != board.NoPiece {
		bonus += captureBonus
		if delta := OrderingValue(child.Captured) - OrderingValue(child.Moved); delta > 0 {
			bonus += float32(delta)
		}
	}
	if child.Position.IsKingChecked() {
		bonus += checkBonus
	}
	return bonus
}

// orderChildren sorts children descending by base (the negation of a stored TT score for the
// child's key if available, else of the child's static score) plus its weighted heuristic
// bonus. Every child's stored or static score is in that child's own side-to-move's
// perspective, so it is negated to rank the moves from the parent's side-to-move's point of
// view, the same perspective the heuristic bonus takes. Ordering itself is the board
// package's move-priority heap, the same mechanism the teacher uses for move ordering.
func (ts *TreeSearch) orderChildren(children []arena.Handle) {
	byMove := make(map[board.Move]arena.Handle, len(children))
	moves := make([]board.Move, len(children))
	for i, h := range children {
		child := ts.arena.Get(h)
		moves[i] = child.Move
		byMove[child.Move] = h
	}

	priority := func(m board.Move) board.MovePriority {
		h := byMove[m]
		child := ts.arena.Get(h)

		base, ok := ts.tt.Peek(child.Position.ComputeBoardHash())
		if !ok {
			base = child.StaticScore
		}
		return clampPriority(-base + board.Score(ts.heuristicBonus(child)*heuristicWeight))
	}

	list := board.NewMoveList(moves, priority)
	for i := 0; list.Size() > 0; i++ {
		m, _ := list.Next()
		children[i] = byMove[m]
	}
}

// clampPriority maps a board.Score (int32, mate scores up to ~1e5) onto board.MovePriority's
// int16 range, coarsening by a constant factor rather than saturating every ordinary score.
func clampPriority(s board.Score) board.MovePriority {
	v := int32(s) / 4
	switch {
	case v > 32767:
		return 32767
	case v < -32768:
		return -32768
	default:
		return board.MovePriority(v)
	}
}
