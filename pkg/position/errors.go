package position

import "errors"

// Error taxonomy surfaced by Play. All are IllegalRequest-class: value-returned, never
// raised implicitly, and all-or-nothing — a failed Play leaves the Engine unmodified.
var (
	ErrNoPieceAtSource    = errors.New("no piece at source square")
	ErrIllegalMove        = errors.New("destination not in piece's move set")
	ErrLeavesKingInCheck  = errors.New("move would leave own king in check")
	ErrCastlingNotAllowed = errors.New("castling not allowed")
	ErrPromotionRequired  = errors.New("pawn reaching back rank requires a promotion move")
	ErrIllegalPromotion   = errors.New("promotion move is not a pawn reaching the back rank")
)
