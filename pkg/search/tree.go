// Package search implements iterative-deepening negamax with alpha-beta pruning and
// quiescence (components I/J): the node arena and transposition table are both owned
// exclusively by one TreeSearch for its lifetime, and the search proper is a plain recursive
// function with no suspension points, matching the core's single-threaded resource model.
package search

import (
	"context"

	"github.com/corrigan/deepline/pkg/arena"
	"github.com/corrigan/deepline/pkg/board"
	"github.com/corrigan/deepline/pkg/eval"
	"github.com/corrigan/deepline/pkg/position"
	"github.com/corrigan/deepline/pkg/tt"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

// Version identifies this package, mirroring the teacher's engine version const.
var Version = build.NewVersion(0, 1, 0)

const (
	defaultPoolCapacity = 1 << 16
	defaultMaxDepth     = 6
	defaultMaxQDepth    = 4
)

// TreeSearch is a configured search instance: an arena and transposition table sized and
// owned for its lifetime, an evaluator, and depth limits. Build one with TreeSearchBuilder
// and reuse it across calls to IterativeSearch (the TT persists across searches; the arena
// is cleared at the start of each iteration).
type TreeSearch struct {
	arena     *arena.Arena
	tt        *tt.Table
	evaluator eval.Evaluator
	maxDepth  int
	maxQDepth int

	nodeCount uint64
}

// SearchResult is the outcome of one completed iterative-deepening iteration.
type SearchResult struct {
	BestMove           board.Move
	PrincipalVariation []board.Move
	Score              board.Score
	Depth              int
	QDepth             int
	NodeCount          uint64
}

// TreeSearchBuilder configures and constructs a TreeSearch.
type TreeSearchBuilder struct {
	poolCapacity int
	evaluator    eval.Evaluator
	maxDepth     int
	maxQDepth    int
}

// NewTreeSearchBuilder returns a builder with the default pool capacity, max depth and max
// quiescence depth; Evaluator is the only required setting.
func NewTreeSearchBuilder() *TreeSearchBuilder {
	return &TreeSearchBuilder{
		poolCapacity: defaultPoolCapacity,
		maxDepth:     defaultMaxDepth,
		maxQDepth:    defaultMaxQDepth,
	}
}

// PoolCapacity sets the node arena's fixed capacity. Default defaultPoolCapacity, large
// enough to reach the default max depth — a pool of 1 could never hold a root's children.
func (b *TreeSearchBuilder) PoolCapacity(n int) *TreeSearchBuilder {
	b.poolCapacity = n
	return b
}

// Evaluator sets the static evaluator. Required.
func (b *TreeSearchBuilder) Evaluator(e eval.Evaluator) *TreeSearchBuilder {
	b.evaluator = e
	return b
}

// MaxDepth sets the iterative-deepening ceiling.
func (b *TreeSearchBuilder) MaxDepth(d int) *TreeSearchBuilder {
	b.maxDepth = d
	return b
}

// MaxQDepth sets the quiescence-search depth ceiling.
func (b *TreeSearchBuilder) MaxQDepth(q int) *TreeSearchBuilder {
	b.maxQDepth = q
	return b
}

// Build returns the configured TreeSearch, or false if no Evaluator was set.
func (b *TreeSearchBuilder) Build() (*TreeSearch, bool) {
	if b.evaluator == nil {
		return nil, false
	}
	ts := &TreeSearch{
		arena:     arena.New(b.poolCapacity),
		tt:        tt.New(b.poolCapacity),
		evaluator: b.evaluator,
		maxDepth:  b.maxDepth,
		maxQDepth: b.maxQDepth,
	}
	logw.Infof(context.Background(), "deepline %v: built tree search, pool_capacity=%v, max_depth=%v, max_q_depth=%v", Version, b.poolCapacity, b.maxDepth, b.maxQDepth)
	return ts, true
}

// IterativeSearch runs depth 1, 2, ... up to MaxDepth from pos, returning the result of the
// deepest iteration that completed. Returns false if even depth 1 could not complete (the
// pool is too small to hold the root or its children). A root with no legal move completes
// with score 0 (stalemate) or -MATE (checkmate), an empty principal variation and a zero
// BestMove.
func (ts *TreeSearch) IterativeSearch(pos position.Engine) (SearchResult, bool) {
	var last SearchResult
	var ok bool

	for depth := 1; depth <= ts.maxDepth; depth++ {
		ts.arena.Clear()
		ts.tt.NewSearch()
		ts.nodeCount = 0

		root, allocated := ts.arena.Allocate(arena.Node{Position: pos})
		if !allocated {
			break
		}

		score, err := ts.negamax(root, depth, 0, -board.MATE, board.MATE)
		if err != nil {
			logw.Errorf(context.Background(), "search halted at depth=%v after %v nodes: %v", depth, ts.nodeCount, err)
			break
		}

		pv := ts.extractPV(root)
		var best board.Move
		if len(pv) > 0 {
			best = pv[0]
		}

		last = SearchResult{
			BestMove:           best,
			PrincipalVariation: pv,
			Score:              score,
			Depth:              depth,
			QDepth:             ts.maxQDepth,
			NodeCount:          ts.nodeCount,
		}
		ok = true

		logw.Debugf(context.Background(), "searched depth=%v score=%v nodes=%v pv=%v", depth, score, ts.nodeCount, board.FormatMoves(pv))
	}
	return last, ok
}

// perspectiveScore returns the evaluator's static score of e, negated to the perspective of
// e's side to move (the Evaluator contract is always White-positive; negamax needs every
// score in the side-to-move's own perspective).
func (ts *TreeSearch) perspectiveScore(e position.Engine, depth int) board.Score {
	s := board.Score(ts.evaluator.EvaluateEngineState(e, depth) * 100)
	if e.Turn() == board.Black {
		s = -s
	}
	return s
}

// isTactical reports whether node's producing move is a capture, a promotion, or leaves the
// side to move in check.
func isTactical(node *arena.Node) bool {
	return node.Captured != board.NoPiece || node.Move.IsPromotion() || node.Position.IsKingChecked()
}

// generateChildren populates node's children from its legal moves, refusing to start (and
// reporting exhaustion) unless the whole batch fits in the remaining arena capacity — a
// partial allocation would leave live handles with no way to free just those.
func (ts *TreeSearch) generateChildren(h arena.Handle) error {
	node := ts.arena.Get(h)
	rows := node.Position.GenerateMovesWithState()

	if ts.arena.Capacity()-ts.arena.Len() < len(rows) {
		return ErrHalted
	}

	children := make([]arena.Handle, 0, len(rows))
	for _, row := range rows {
		child := arena.Node{
			Position: row.Engine,
			Move:     row.Move,
			Moved:    row.MovedPiece,
			Captured: row.CapturedPiece,
		}
		child.StaticScore = ts.perspectiveScore(row.Engine, 0)

		ch, allocated := ts.arena.Allocate(child)
		if !allocated {
			return ErrHalted
		}
		children = append(children, ch)
	}

	node.Children = children
	node.ChildrenComputed = true
	return nil
}

// negamax is the search(node, depth, alpha, beta) contract: scores are always from the side
// to move's perspective. ply is the node's distance from the iteration's root, needed only
// to relocate mate scores when consulting or populating the transposition table.
func (ts *TreeSearch) negamax(h arena.Handle, depth, ply int, alpha, beta board.Score) (board.Score, error) {
	ts.nodeCount++
	node := ts.arena.Get(h)
	hash := node.Position.ComputeBoardHash()
	origAlpha := alpha

	if depth == 0 {
		if isTactical(node) {
			return ts.quiescence(h, alpha, beta, 0)
		}
		score := ts.perspectiveScore(node.Position, 0)
		node.SetBestScore(score)
		return score, nil
	}

	if _, score, usable, _ := ts.tt.Probe(hash, depth, ply, alpha, beta); usable {
		node.SetBestScore(score)
		return score, nil
	}

	if !node.ChildrenComputed {
		if err := ts.generateChildren(h); err != nil {
			return 0, err
		}
	}

	if len(node.Children) == 0 {
		score := board.Score(0)
		if node.Position.IsKingChecked() {
			score = -board.MATE
		}
		node.SetBestScore(score)
		return score, nil
	}

	ts.orderChildren(node.Children)

	best := -board.MATE - 1
	var bestMove board.Move
	for _, c := range node.Children {
		s, err := ts.negamax(c, depth-1, ply+1, -beta, -alpha)
		if err != nil {
			return 0, err
		}
		s = (-s).AdjustMateDistance()

		if s > best {
			best = s
			bestMove = ts.arena.Get(c).Move
		}
		if s > alpha {
			alpha = s
		}
		if alpha >= beta {
			break
		}
	}

	bound := tt.Exact
	switch {
	case best <= origAlpha:
		bound = tt.Upper
	case best >= beta:
		bound = tt.Lower
	}
	ts.tt.Store(hash, bestMove, best, depth, ply, bound)

	node.SetBestScore(best)
	return best, nil
}
