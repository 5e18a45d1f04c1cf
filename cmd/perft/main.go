// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/corrigan/deepline/pkg/position"
	"github.com/seekerror/logw"
)

var (
	depth  = flag.Int("depth", 4, "Search depth")
	divide = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	start := position.New()

	for i := 1; i <= *depth; i++ {
		t0 := time.Now()
		nodes := perft(start, i, *divide && i == *depth)
		duration := time.Since(t0)

		logw.Infof(ctx, "perft,%v,%v,%v", i, nodes, duration.Microseconds())
		fmt.Printf("perft,%v,%v,%v\n", i, nodes, duration.Microseconds())
	}
}

func perft(e position.Engine, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, row := range e.GenerateMovesWithState() {
		count := perft(row.Engine, depth-1, false)
		if d {
			fmt.Printf("%v: %v\n", row.Move, count)
		}
		nodes += count
	}
	return nodes
}
