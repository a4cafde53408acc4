package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"arenabtree/pkg/bptree"
)

// demoCmd represents the demo command.
var demoCmd = &cobra.Command{
	Use:   "demo [words...]",
	Short: "Insert digested words and check the three find variants agree",
	Long: `demo digests each word into an int32 key with DigestString,
inserts it with its sequence number as the value, then looks every
word back up via FindLinear, FindBinary, and FindSIMD and reports
whether the three answers agree.

This demonstrates the Lookup Equivalence law; it is not a timing
comparison.

Example:
  arenabtree demo apple banana cherry`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		a, tr, err := newDemoTree()
		if err != nil {
			return err
		}
		defer a.Close()

		keys := make([]int32, len(args))
		for i, word := range args {
			keys[i] = bptree.DigestString(word)
			if err := tr.Insert(keys[i], int64(i)); err != nil {
				return fmt.Errorf("insert %q: %w", word, err)
			}
		}

		allAgree := true
		for i, word := range args {
			lv, lok := tr.FindLinear(keys[i])
			bv, bok := tr.FindBinary(keys[i])
			sv, sok := tr.FindSIMD(keys[i])

			agree := lok == bok && bok == sok && (!lok || (lv == bv && bv == sv))
			if !agree {
				allAgree = false
			}
			fmt.Printf("%-12s digest=%d linear=(%d,%v) binary=(%d,%v) simd=(%d,%v) agree=%v\n",
				word, keys[i], lv, lok, bv, bok, sv, sok, agree)
		}

		if allAgree {
			fmt.Println("lookup equivalence held for all words")
		} else {
			fmt.Println("lookup equivalence VIOLATED — see disagreements above")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
