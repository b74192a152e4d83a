// Command utxod is a demo node driving the UTXO ledger and difficulty
// controller through hostsim.Chain, structured as a single cobra-based
// entry point with one subcommand per demo operation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "utxod",
		Short: "A demo UTXO ledger and damped/clamped difficulty controller",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file")

	root.AddCommand(newGenesisCommand(&configPath))
	root.AddCommand(newSpendCommand(&configPath))
	root.AddCommand(newRunBlocksCommand(&configPath))
	root.AddCommand(newShowDifficultyCommand(&configPath))

	return root
}
