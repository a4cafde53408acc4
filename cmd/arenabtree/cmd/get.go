package cmd

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/spf13/cobra"
)

var getSeedCount int

// getCmd represents the get command.
var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Look up a key in a freshly built, optionally pre-seeded tree",
	Long: `Look up a key in a tree built fresh for this invocation. Since
there is no persistence across runs, the looked-up key itself is
inserted (with the key as its value) before the lookup; pass --seed
to first populate the tree with that many random keys around it.

Example:
  arenabtree get 42 --seed 1000`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		key, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("parsing key: %w", err)
		}

		a, tr, err := newDemoTree()
		if err != nil {
			return err
		}
		defer a.Close()

		r := rand.New(rand.NewSource(int64(key)))
		for i := 0; i < getSeedCount; i++ {
			k := r.Int31()
			if err := tr.Insert(k, int64(k)); err != nil {
				return fmt.Errorf("seeding: %w", err)
			}
		}
		if err := tr.Insert(int32(key), int64(key)); err != nil {
			return fmt.Errorf("insert: %w", err)
		}

		v, ok := tr.FindBinary(int32(key))
		if !ok {
			fmt.Printf("%d: not found\n", key)
			return nil
		}
		fmt.Printf("%d -> %d\n", key, v)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().IntVar(&getSeedCount, "seed", 0, "number of random keys to insert before performing the lookup")
}
