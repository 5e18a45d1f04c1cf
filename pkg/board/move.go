package board

import "fmt"

// MoveType distinguishes the three move shapes of the move grammar (spec section 3/6):
// a normal from/to move (quiet or capture, including pawn pushes/jumps/en-passant captures,
// which are encoded as Normal with the EnPassant/Capture metadata set by the generator),
// a castling move identified only by side, and a promotion which additionally names the
// piece kind the pawn becomes.
type MoveType uint8

const (
	Normal MoveType = iota
	Castling
	Promotion
)

// Move represents a not-necessarily-legal move, tagged by Type. From/To are square
// indices; Side is meaningful only for Castling, Kind only for
// Promotion. Piece/Capture/EnPassant are contextual metadata attached by the generator
// (component B) and the state machine (component E); they participate in neither Equals
// nor the wire-level move identity, only in search heuristics and undo bookkeeping.
type Move struct {
	Type     MoveType
	From, To Square
	Side     CastlingSide // valid iff Type == Castling
	Kind     Piece        // desired promoted piece, valid iff Type == Promotion

	Piece     Piece // the piece kind making the move
	Capture   Piece // NoPiece if the move is not a capture
	EnPassant bool  // true iff this Normal move is a pawn capturing en passant
}

// NewNormalMove constructs a Normal move. Convenience for tests; the search/state machine
// always produces moves with Piece/Capture/EnPassant already populated.
func NewNormalMove(from, to Square) Move {
	return Move{Type: Normal, From: from, To: to}
}

// NewCastlingMove constructs a Castling move for the given side.
func NewCastlingMove(side CastlingSide) Move {
	return Move{Type: Castling, Side: side}
}

// NewPromotionMove constructs a Promotion move to the given piece kind.
func NewPromotionMove(from, to Square, kind Piece) Move {
	return Move{Type: Promotion, From: from, To: to, Kind: kind}
}

// ParseMove parses a move in pure algebraic coordinate notation, such as "e2e4" or "a7a8q".
// It does not know about castling: "e1g1" parses as a Normal king move, and castling is
// submitted as NewCastlingMove (generated castling moves carry only Side, not From/To).
func ParseMove(str string) (Move, error) {
	runes := []rune(str)
	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move: %q", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid from in %q: %w", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid to in %q: %w", str, err)
	}

	if len(runes) == 5 {
		kind, ok := ParsePiece(runes[4])
		if !ok || kind == Pawn || kind == King {
			return Move{}, fmt.Errorf("invalid promotion in %q", str)
		}
		return NewPromotionMove(from, to, kind), nil
	}
	return NewNormalMove(from, to), nil
}

// IsCapture reports whether the move, as generated, captures a piece (including en passant).
func (m Move) IsCapture() bool {
	return m.Capture != NoPiece
}

// IsPromotion reports whether the move is a Promotion.
func (m Move) IsPromotion() bool {
	return m.Type == Promotion
}

// Equals compares move identity: type, squares, castling side and promotion kind. Contextual
// metadata (Piece/Capture/EnPassant) is not part of identity.
func (m Move) Equals(o Move) bool {
	if m.Type != o.Type {
		return false
	}
	switch m.Type {
	case Castling:
		return m.Side == o.Side
	case Promotion:
		return m.From == o.From && m.To == o.To && m.Kind == o.Kind
	default:
		return m.From == o.From && m.To == o.To
	}
}

func (m Move) String() string {
	switch m.Type {
	case Castling:
		return m.Side.String()
	case Promotion:
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Kind)
	default:
		return fmt.Sprintf("%v%v", m.From, m.To)
	}
}

// FormatMoves renders a move list space-separated, for logging and PV printing.
func FormatMoves(moves []Move) string {
	var out []byte
	for i, m := range moves {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, m.String()...)
	}
	return string(out)
}
