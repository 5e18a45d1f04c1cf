package search

import (
	"github.com/corrigan/deepline/pkg/arena"
	"github.com/corrigan/deepline/pkg/board"
)

// maxPVLength guards PV extraction against runaway recursion through the arena graph.
const maxPVLength = 256

// extractPV walks from root by repeatedly choosing the child whose best-score is minimal
// (equivalently, whose negated best-score is maximal from the parent's perspective, since
// every child's best-score is recorded from the child's own side-to-move's point of view).
func (ts *TreeSearch) extractPV(root arena.Handle) []board.Move {
	var pv []board.Move

	h := root
	for i := 0; i < maxPVLength; i++ {
		node := ts.arena.Get(h)
		if !node.ChildrenComputed || len(node.Children) == 0 {
			break
		}

		var next arena.Handle
		var best board.Score
		found := false
		for _, c := range node.Children {
			cn := ts.arena.Get(c)
			if !cn.HasBestScore() {
				continue
			}
			if !found || cn.BestScore < best {
				next, best = c, cn.BestScore
				found = true
			}
		}
		if !found {
			break
		}

		pv = append(pv, ts.arena.Get(next).Move)
		h = next
	}
	return pv
}
