// Package fen writes a FEN-style snapshot of a board. Parsing a FEN string back into a
// board is deliberately out of scope for the core (see the position package's external
// interfaces): this package only ever produces the snapshot an external tool would consume.
package fen

import (
	"strconv"
	"strings"

	"github.com/corrigan/deepline/pkg/board"
)

// Initial is the standard starting position's snapshot.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Encode renders b, the side to move, the half-move clock, and the full-move number as a
// FEN string.
func Encode(b board.Board, turn board.Color, halfmoves, fullmoves int) string {
	var sb strings.Builder
	for r := int(board.Rank8); r >= int(board.Rank1); r-- {
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			piece, color := b.PieceAt(board.NewSquare(f, board.Rank(r)))
			if piece == board.NoPiece {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(printPiece(color, piece))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r != int(board.Rank1) {
			sb.WriteString("/")
		}
	}

	sb.WriteString(" ")
	sb.WriteString(printColor(turn))
	sb.WriteString(" ")
	sb.WriteString(printCastling(b))
	sb.WriteString(" ")
	sb.WriteString(printEnPassant(b))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(halfmoves))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(fullmoves))

	return sb.String()
}

func printEnPassant(b board.Board) string {
	ep := b.Sides[board.White].EnPassant | b.Sides[board.Black].EnPassant
	if ep == 0 {
		return "-"
	}
	return ep.FirstSquare().String()
}

func printCastling(b board.Board) string {
	white, black := b.Sides[board.White].Castling, b.Sides[board.Black].Castling
	if !white.Short && !white.Long && !black.Short && !black.Long {
		return "-"
	}

	var sb strings.Builder
	if white.Short {
		sb.WriteString("K")
	}
	if white.Long {
		sb.WriteString("Q")
	}
	if black.Short {
		sb.WriteString("k")
	}
	if black.Long {
		sb.WriteString("q")
	}
	return sb.String()
}

func printColor(c board.Color) string {
	if c == board.White {
		return "w"
	}
	return "b"
}

func printPiece(c board.Color, p board.Piece) rune {
	r := []rune(p.String())[0] // lowercase letter, per Piece.String
	if c == board.White {
		return []rune(strings.ToUpper(string(r)))[0]
	}
	return r
}
