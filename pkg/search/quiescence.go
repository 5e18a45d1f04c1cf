package search

import (
	"github.com/corrigan/deepline/pkg/arena"
	"github.com/corrigan/deepline/pkg/board"
	"github.com/corrigan/deepline/pkg/eval"
)

// deltaMargin is the local buffer added to a capture's nominal gain before comparing it
// against alpha in quiescence's deeper skip rule (step 4): no spec-mandated number, chosen
// small enough that a won exchange is never skipped.
const deltaMargin board.Score = 200

// quiescence only explores tactical continuations (captures, promotions, checks) to resolve
// the horizon effect, per the stand-pat/delta-pruning contract.
func (ts *TreeSearch) quiescence(h arena.Handle, alpha, beta board.Score, qdepth int) (board.Score, error) {
	ts.nodeCount++
	node := ts.arena.Get(h)

	standPat := ts.perspectiveScore(node.Position, -qdepth)
	if standPat >= beta {
		return beta, nil
	}
	if standPat > alpha {
		alpha = standPat
	}
	if qdepth >= ts.maxQDepth {
		node.SetBestScore(standPat)
		return standPat, nil
	}

	queenMargin := board.Score(eval.NominalValue(board.Queen) * 100)
	if standPat+queenMargin < alpha {
		return alpha, nil
	}

	if !node.ChildrenComputed {
		if err := ts.generateChildren(h); err != nil {
			return 0, err
		}
	}
	ts.orderChildren(node.Children)

	best := standPat
	for _, c := range node.Children {
		child := ts.arena.Get(c)
		if !isTactical(child) {
			continue
		}

		if qdepth > 2 {
			gain := board.Score(0)
			if child.Captured != board.NoPiece {
				gain = board.Score(eval.NominalValue(child.Captured) * 100)
			}
			if standPat+gain+deltaMargin < alpha {
				continue
			}
		}

		s, err := ts.quiescence(c, -beta, -alpha, qdepth+1)
		if err != nil {
			return 0, err
		}
		s = (-s).AdjustMateDistance()

		if s > best {
			best = s
		}
		if s > alpha {
			alpha = s
		}
		if alpha >= beta {
			break
		}
	}

	node.SetBestScore(best)
	return best, nil
}
