package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	fanout     int
	arenaBytes int64
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "arenabtree",
	Short: "arenabtree - in-memory arena-backed B+ tree demonstration CLI",
	Long: `arenabtree drives the pkg/bptree library: an in-memory, fixed
fan-out B+ tree backed by a bump-allocated arena, with three
interchangeable point-lookup strategies (linear, binary, SIMD).

This CLI exists to give the library an executable front door. It is
not a benchmark harness: it reports no latencies and makes no
comparison against other data structures. Every invocation builds a
fresh, empty tree — there is no persistence across runs.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(); it only needs to
// happen once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&fanout, "fanout", 256, "tree fan-out (M); must be at least 4")
	rootCmd.PersistentFlags().Int64Var(&arenaBytes, "arena-bytes", 64<<20, "capacity in bytes of the backing arena")
}
