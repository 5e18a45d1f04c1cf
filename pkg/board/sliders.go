package board

// direction is a single ray-scan step: the bit shift and the file at which the ray must
// stop because stepping further would wrap around the board edge.
type direction struct {
	shift    int
	edgeFile File // the ray must not step again once standing on this file
	useEdge  bool
}

var rookDirections = [4]direction{
	{8, 0, false},          // north: stops only at rank 8, not file-bounded
	{-8, 0, false},         // south
	{1, File(FileH), true}, // east: stop after stepping off file H
	{-1, File(FileA), true}, // west: stop after stepping off file A
}

var bishopDirections = [4]direction{
	{9, File(FileH), true},  // north-east
	{7, File(FileA), true},  // north-west
	{-7, File(FileH), true}, // south-east
	{-9, File(FileA), true}, // south-west
}

// rayAttacks scans from sq along the given directions, stopping at (and including) the
// first occupied square in each direction, or at the board edge. This yields the attack
// set; callers mask off friendly-occupied destinations separately when generating moves.
func rayAttacks(occupied Bitboard, sq Square, dirs [4]direction) Bitboard {
	var out Bitboard
	for _, d := range dirs {
		cur := sq
		for {
			if d.useEdge && cur.File() == d.edgeFile {
				break // would wrap around the board edge
			}
			if d.shift > 1 && cur.Rank() == Rank8 {
				break
			}
			if d.shift < -1 && cur.Rank() == Rank1 {
				break
			}
			cur = Square(int(cur) + d.shift)
			out |= BitMask(cur)
			if occupied.IsSet(cur) {
				break // blocked: stop, having included the blocker itself
			}
		}
	}
	return out
}

// RookAttackboard returns all potential moves/attacks for a Rook at the given square,
// given the board's combined occupancy.
func RookAttackboard(occupied Bitboard, sq Square) Bitboard {
	return rayAttacks(occupied, sq, rookDirections)
}

// BishopAttackboard returns all potential moves/attacks for a Bishop at the given square,
// given the board's combined occupancy.
func BishopAttackboard(occupied Bitboard, sq Square) Bitboard {
	return rayAttacks(occupied, sq, bishopDirections)
}

// QueenAttackboard returns all potential moves/attacks for a Queen at the given square.
// Convenience: the union of rook and bishop generation.
func QueenAttackboard(occupied Bitboard, sq Square) Bitboard {
	return RookAttackboard(occupied, sq) | BishopAttackboard(occupied, sq)
}
