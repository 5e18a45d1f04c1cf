package search_test

import (
	"testing"

	"github.com/corrigan/deepline/pkg/board"
	"github.com/corrigan/deepline/pkg/eval"
	"github.com/corrigan/deepline/pkg/position"
	"github.com/corrigan/deepline/pkg/search"
	"github.com/stretchr/testify/require"
)

func play(t *testing.T, e position.Engine, moves ...string) position.Engine {
	t.Helper()
	for _, s := range moves {
		m, err := board.ParseMove(s)
		require.NoError(t, err, s)
		_, err = e.Play(m)
		require.NoError(t, err, s)
	}
	return e
}

func TestBuild_RequiresEvaluator(t *testing.T) {
	_, ok := search.NewTreeSearchBuilder().Build()
	require.False(t, ok)
}

func TestBuild_SucceedsWithEvaluator(t *testing.T) {
	ts, ok := search.NewTreeSearchBuilder().Evaluator(eval.Material{}).Build()
	require.True(t, ok)
	require.NotNil(t, ts)
}

func TestIterativeSearch_FindsMateInOne(t *testing.T) {
	e := play(t, position.New(), "f2f3", "e7e5", "g2g4")

	ts, ok := search.NewTreeSearchBuilder().
		Evaluator(eval.Material{}).
		PoolCapacity(4096).
		MaxDepth(2).
		MaxQDepth(2).
		Build()
	require.True(t, ok)

	result, ok := ts.IterativeSearch(e)
	require.True(t, ok)

	want, err := board.ParseMove("d8h4")
	require.NoError(t, err)
	require.True(t, want.Equals(result.BestMove), "expected Qh4#, got %v", result.BestMove)
	require.True(t, result.Score.IsMateScore())
	require.Greater(t, result.Score, board.Score(0), "mate found must score positive for the side to move")
}

func TestIterativeSearch_ReachesRequestedDepth(t *testing.T) {
	ts, ok := search.NewTreeSearchBuilder().
		Evaluator(eval.Material{}).
		PoolCapacity(1 << 14).
		MaxDepth(3).
		MaxQDepth(2).
		Build()
	require.True(t, ok)

	result, ok := ts.IterativeSearch(position.New())
	require.True(t, ok)
	require.Equal(t, 3, result.Depth)
	require.NotZero(t, result.NodeCount)
	require.NotEmpty(t, result.PrincipalVariation)
}

func TestIterativeSearch_HaltsGracefullyOnTinyPool(t *testing.T) {
	ts, ok := search.NewTreeSearchBuilder().
		Evaluator(eval.Material{}).
		PoolCapacity(1).
		MaxDepth(3).
		Build()
	require.True(t, ok)

	_, ok = ts.IterativeSearch(position.New())
	require.False(t, ok, "a one-node pool cannot even generate the root's children")
}
