package board

import "fmt"

// Score is a signed evaluation, always from the perspective of the side it is
// attributed to (White-positive by convention for static evaluation; negamax-relative
// during search). Mate scores are encoded as +/-MATE minus the distance, in plies, from
// the position that found the mate -- see IsMateScore and AdjustMateDistance.
type Score int32

const (
	// MATE is the absolute score of a position where the side to move has just been mated.
	MATE Score = 100000
	// MateThreshold: any |score| strictly above this is interpreted as encoding a mate distance.
	MateThreshold Score = MATE - 1000
	// MinScore/MaxScore bound ordinary (non-mate) evaluations.
	MinScore Score = -(MateThreshold - 1)
	MaxScore Score = MateThreshold - 1
)

// IsMateScore reports whether s encodes a forced mate (for or against the side it favors).
func (s Score) IsMateScore() bool {
	return s > MateThreshold || s < -MateThreshold
}

// AdjustMateDistance nudges a mate score one ply closer to neutral, as a score is passed up
// one level of search: a mate found deeper in the tree is one ply further from the root.
func (s Score) AdjustMateDistance() Score {
	switch {
	case s > MateThreshold:
		return s - 1
	case s < -MateThreshold:
		return s + 1
	default:
		return s
	}
}

func (s Score) String() string {
	return fmt.Sprintf("%.2f", float64(s)/100)
}
