package position_test

import (
	"testing"

	"github.com/corrigan/deepline/pkg/board"
	"github.com/corrigan/deepline/pkg/position"
	"github.com/stretchr/testify/require"
)

func mustPlay(t *testing.T, e *position.Engine, moves ...string) position.OkKind {
	t.Helper()
	var last position.OkKind
	for _, s := range moves {
		m, err := board.ParseMove(s)
		require.NoError(t, err, s)
		last, err = e.Play(m)
		require.NoError(t, err, s)
	}
	return last
}

func TestFoolsMate(t *testing.T) {
	e := position.New()
	last := mustPlay(t, &e, "f2f3", "e7e5", "g2g4", "d8h4")
	require.Equal(t, position.Mate, last)
}

func TestScholarsMate(t *testing.T) {
	e := position.New()
	last := mustPlay(t, &e, "e2e4", "e7e5", "d1h5", "b8c6", "f1c4", "g8f6", "h5f7")
	require.Equal(t, position.Mate, last)
}

func TestStalemate(t *testing.T) {
	var b board.Board
	b.Sides[board.White].Pieces[board.King] = board.BitMask(board.E6)
	b.Sides[board.White].Pieces[board.Queen] = board.BitMask(board.F7)
	b.Sides[board.Black].Pieces[board.King] = board.BitMask(board.H8)

	e := position.FromBoard(b, board.White, 0)
	last := mustPlay(t, &e, "e6f6")
	require.Equal(t, position.Stalemate, last)
}

func TestEnPassantRoundTrip(t *testing.T) {
	e := position.New()
	mustPlay(t, &e, "e2e4", "a7a6", "e4e5", "d7d5")

	moves := e.GenerateMovesWithState()
	var found bool
	for _, row := range moves {
		if row.Move.From == board.E5 && row.Move.To == board.D6 {
			found = true
			require.Equal(t, board.Pawn, row.CapturedPiece)
		}
	}
	require.True(t, found, "en passant capture must be among the legal moves")

	mustPlay(t, &e, "e5d6")
	b := e.Board()
	piece, color := b.PieceAt(board.D5)
	require.Equal(t, board.NoPiece, piece, "captured pawn must be removed")
	_ = color
	piece, color = b.PieceAt(board.D6)
	require.Equal(t, board.Pawn, piece)
	require.Equal(t, board.White, color)
}

func TestCastlingRightsLostAfterRookCapture(t *testing.T) {
	var b board.Board
	b.Sides[board.White].Pieces[board.King] = board.BitMask(board.E1)
	b.Sides[board.White].Pieces[board.Rook] = board.BitMask(board.H1)
	b.Sides[board.White].Castling = board.CastlingRights{Short: true, Long: true}
	b.Sides[board.Black].Pieces[board.King] = board.BitMask(board.E8)
	b.Sides[board.Black].Pieces[board.Knight] = board.BitMask(board.F2)

	e := position.FromBoard(b, board.Black, 0)
	mustPlay(t, &e, "f2h1")

	require.False(t, e.Board().Side(board.White).Castling.Short, "white's rook was captured on h1")
}

func TestCastlingSucceedsWhenCorridorEmptyAndSafe(t *testing.T) {
	e := position.New()
	mustPlay(t, &e, "g1f3", "g8f6", "g2g3", "g7g6", "f1g2", "f8g7")

	m := board.NewCastlingMove(board.ShortCastle)
	kind, err := e.Play(m)
	require.NoError(t, err)
	require.Equal(t, position.Ok, kind)

	b := e.Board()
	piece, _ := b.PieceAt(board.G1)
	require.Equal(t, board.King, piece)
	piece, _ = b.PieceAt(board.F1)
	require.Equal(t, board.Rook, piece)
}

func TestInitialPositionHasTwentyLegalMoves(t *testing.T) {
	e := position.New()
	rows := e.GenerateMovesWithState()
	require.Len(t, rows, 20)
}

func TestCastlingRejectedWhenCorridorOccupied(t *testing.T) {
	// The initial position has rights but the short-castle corridor (f1/g1) is occupied.
	e := position.New()
	before := e.Board()

	_, err := e.Play(board.NewCastlingMove(board.ShortCastle))
	require.Error(t, err, "Play must reject castling through an occupied corridor on its own, not only via pre-filtered generation")

	after := e.Board()
	require.Equal(t, before, after, "a rejected move must leave the engine untouched")
	require.True(t, after.Disjoint(), "piece bitboards must stay pairwise disjoint")
}
