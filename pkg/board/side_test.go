package board_test

import (
	"testing"

	"github.com/corrigan/deepline/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard_Disjoint(t *testing.T) {
	b := board.NewBoard()
	assert.True(t, b.Disjoint())
	assert.Equal(t, 32, b.Occupied().PopCount())
}

func TestCastlingRights(t *testing.T) {
	r := board.CastlingRights{Short: true, Long: true}
	assert.True(t, r.Allows(board.ShortCastle))
	assert.True(t, r.Allows(board.LongCastle))

	r = r.Clear(board.ShortCastle)
	assert.False(t, r.Allows(board.ShortCastle))
	assert.True(t, r.Allows(board.LongCastle))
}

func TestRefreshCastlingRights_KingMoved(t *testing.T) {
	b := board.NewBoard()
	white := &b.Sides[board.White]
	white.Pieces[board.King] &^= board.BitMask(board.E1)
	white.Pieces[board.King] |= board.BitMask(board.E2)

	b.RefreshCastlingRights()

	assert.False(t, b.Side(board.White).Castling.Short)
	assert.False(t, b.Side(board.White).Castling.Long)
	assert.True(t, b.Side(board.Black).Castling.Short)
}

func TestRefreshCastlingRights_RookCaptured(t *testing.T) {
	b := board.NewBoard()
	black := &b.Sides[board.Black]
	black.Pieces[board.Rook] &^= board.BitMask(board.A8)

	b.RefreshCastlingRights()

	assert.True(t, b.Side(board.Black).Castling.Short)
	assert.False(t, b.Side(board.Black).Castling.Long)
}

func TestInsufficientMaterial(t *testing.T) {
	var b board.Board
	b.Sides[board.White].Pieces[board.King] = board.BitMask(board.E1)
	b.Sides[board.Black].Pieces[board.King] = board.BitMask(board.E8)
	assert.True(t, b.InsufficientMaterial())

	b.Sides[board.White].Pieces[board.Bishop] = board.BitMask(board.C1)
	assert.True(t, b.InsufficientMaterial())

	b.Sides[board.White].Pieces[board.Knight] = board.BitMask(board.G1)
	assert.False(t, b.InsufficientMaterial())
}

func TestCastlingIndex(t *testing.T) {
	b := board.NewBoard()
	idx := b.CastlingIndex()
	assert.Equal(t, board.NumCastling-1, idx)
}

func TestKingSquare_PanicsWhenMissing(t *testing.T) {
	var s board.SideState
	require.Panics(t, func() { s.KingSquare() })
}
