package cmd

import (
	"fmt"

	"arenabtree/pkg/arena"
	"arenabtree/pkg/bptree"
)

// newDemoTree builds a fresh arena and an empty Tree[int32, int64]
// atop it, using the --fanout and --arena-bytes persistent flags. The
// caller owns the returned arena and must Close it.
func newDemoTree() (*arena.Arena, *bptree.Tree[int32, int64], error) {
	a, err := arena.New(int(arenaBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("creating arena: %w", err)
	}

	tr, err := bptree.New[int32, int64](a, fanout)
	if err != nil {
		a.Close()
		return nil, nil, fmt.Errorf("creating tree: %w", err)
	}

	return a, tr, nil
}
