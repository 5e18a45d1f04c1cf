package position

import "github.com/corrigan/deepline/pkg/board"

// tryPlay applies m to a copy of e and returns the resulting engine, without mutating e and
// without classifying the result (classification needs HasLegalMove, which itself calls
// tryPlay over every candidate — computing it here would make every legality probe
// recompute classification one ply deeper, which is unbounded). Callers classify once, at
// the point they actually need OkKind.
func tryPlay(e Engine, m board.Move) (Engine, error) {
	switch m.Type {
	case board.Normal:
		return tryNormal(e, m)
	case board.Promotion:
		return tryPromotion(e, m)
	case board.Castling:
		return tryCastling(e, m)
	default:
		return Engine{}, ErrIllegalMove
	}
}

// applyPieceMove performs steps 1-5 of the Normal-move algorithm: identify the piece,
// validate the destination against the raw pseudo-legal reachable set, apply it to a copy
// of the board (including en-passant resolution), and reject it if the mover's king ends up
// attacked. It does not check promotion requirements or commit side-to-move/half-move —
// callers (tryNormal, tryPromotion) finish the job differently.
func applyPieceMove(e Engine, from, to board.Square) (next board.Board, piece, captured board.Piece, enPassant bool, err error) {
	turn := e.turn
	b := e.board

	piece = b.Side(turn).PieceAt(from)
	if piece == board.NoPiece {
		return board.Board{}, board.NoPiece, board.NoPiece, false, ErrNoPieceAtSource
	}

	_, dest := board.PseudoLegalDestinations(b, turn, from)
	if !dest.IsSet(to) {
		return board.Board{}, board.NoPiece, board.NoPiece, false, ErrIllegalMove
	}

	next = b
	mover := &next.Sides[turn]
	mover.Pieces[piece] &^= board.BitMask(from)
	mover.Pieces[piece] |= board.BitMask(to)

	captured = board.NoPiece
	opp := &next.Sides[turn.Opponent()]
	for p := board.Pawn; p <= board.King; p++ {
		if opp.Pieces[p].IsSet(to) {
			captured = p
			opp.Pieces[p] &^= board.BitMask(to)
			break
		}
	}

	mover.EnPassant = 0

	if piece == board.Pawn {
		startRank, dblRank := board.PawnStartRank(turn), board.PawnDoublePushRank(turn)
		switch {
		case from.Rank() == startRank && to.Rank() == dblRank:
			crossed := board.Square((int(from) + int(to)) / 2)
			mover.EnPassant = board.BitMask(crossed)
		case captured == board.NoPiece && b.Side(turn.Opponent()).EnPassant.IsSet(to):
			enPassant = true
			captured = board.Pawn
			var behindSq board.Square
			if turn == board.White {
				behindSq = board.Square(int(to) - 8)
			} else {
				behindSq = board.Square(int(to) + 8)
			}
			opp.Pieces[board.Pawn] &^= board.BitMask(behindSq)
		}
	}

	// Opponent's en-passant target is always cleared at the end of the turn: it was only
	// ever valid for this one reply.
	opp.EnPassant = 0

	if next.IsChecked(turn) {
		return board.Board{}, board.NoPiece, board.NoPiece, false, ErrLeavesKingInCheck
	}
	return next, piece, captured, enPassant, nil
}

func tryNormal(e Engine, m board.Move) (Engine, error) {
	next, piece, _, _, err := applyPieceMove(e, m.From, m.To)
	if err != nil {
		return Engine{}, err
	}
	if piece == board.Pawn && m.To.Rank() == board.PawnPromotionRank(e.turn) {
		return Engine{}, ErrPromotionRequired
	}
	return commit(e, next), nil
}

func tryPromotion(e Engine, m board.Move) (Engine, error) {
	var valid bool
	for _, k := range board.Promotable {
		if k == m.Kind {
			valid = true
		}
	}
	if !valid {
		return Engine{}, ErrIllegalPromotion
	}

	next, piece, _, _, err := applyPieceMove(e, m.From, m.To)
	if err != nil {
		return Engine{}, err
	}
	if piece != board.Pawn || m.To.Rank() != board.PawnPromotionRank(e.turn) {
		return Engine{}, ErrIllegalPromotion
	}

	mover := &next.Sides[e.turn]
	mover.Pieces[board.Pawn] &^= board.BitMask(m.To)
	mover.Pieces[m.Kind] |= board.BitMask(m.To)

	return commit(e, next), nil
}

func tryCastling(e Engine, m board.Move) (Engine, error) {
	turn := e.turn
	b := e.board
	side := b.Side(turn)

	if !side.Castling.Allows(m.Side) {
		return Engine{}, ErrCastlingNotAllowed
	}
	if !board.CastlingCorridorEmpty(b, turn, m.Side) {
		return Engine{}, ErrCastlingNotAllowed
	}
	if b.IsChecked(turn) {
		return Engine{}, ErrCastlingNotAllowed
	}

	kingFrom, kingTo := board.CastlingKingMove(turn, m.Side)
	rookFrom, rookTo := board.CastlingRookMove(turn, m.Side)

	next := b
	mover := &next.Sides[turn]
	mover.Pieces[board.King] &^= board.BitMask(kingFrom)
	mover.Pieces[board.King] |= board.BitMask(kingTo)
	mover.Pieces[board.Rook] &^= board.BitMask(rookFrom)
	mover.Pieces[board.Rook] |= board.BitMask(rookTo)
	mover.EnPassant = 0
	next.Sides[turn.Opponent()].EnPassant = 0

	if next.IsChecked(turn) {
		return Engine{}, ErrLeavesKingInCheck
	}

	return commit(e, next), nil
}

// commit finishes a successful move: castling-rights refresh, side-to-move flip and
// half-move increment.
func commit(e Engine, next board.Board) Engine {
	next.RefreshCastlingRights()
	return Engine{board: next, turn: e.turn.Opponent(), halfmove: e.halfmove + 1}
}
