package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// insertCmd represents the insert command.
var insertCmd = &cobra.Command{
	Use:   "insert <key> <value>",
	Short: "Insert a key-value pair into a freshly built tree",
	Long: `Insert a key-value pair into a tree built fresh for this
invocation (there is no persistence across runs — durability is
outside this library's scope). Useful mainly to exercise Insert's
error paths against a chosen --fanout / --arena-bytes.

Example:
  arenabtree insert 42 100`,
	Args: cobra.ExactArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		key, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("parsing key: %w", err)
		}
		value, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("parsing value: %w", err)
		}

		a, tr, err := newDemoTree()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := tr.Insert(int32(key), value); err != nil {
			return fmt.Errorf("insert: %w", err)
		}

		fmt.Printf("inserted %d -> %d (arena used %d/%d bytes)\n", key, value, a.Used(), a.Capacity())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insertCmd)
}
