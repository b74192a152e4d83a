package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArnoldTumukunde/tumuchain/pkg/config"
	"github.com/ArnoldTumukunde/tumuchain/pkg/genesis"
)

func newRunBlocksCommand(configPath *string) *cobra.Command {
	var count int
	var authorsHex []string

	cmd := &cobra.Command{
		Use:   "run-blocks",
		Short: "Finalize N empty blocks, running the reward and difficulty hooks each time",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			authors, err := parsePublicKeys(authorsHex)
			if err != nil {
				return err
			}

			genCfg := genesis.Config{InitialDifficulty: cfg.InitialDifficultyValue(), Difficulty: cfg.DifficultyParams()}
			c, store, err := openChain(cfg, genCfg, authors)
			if err != nil {
				return err
			}
			defer store.Close()

			for i := 0; i < count; i++ {
				c.RunBlock(nil)
			}

			if err := persistChain(cfg, c); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ran %d blocks; height=%d difficulty=%s\n", count, c.Height, c.Difficulty)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 1, "number of blocks to finalize")
	cmd.Flags().StringSliceVar(&authorsHex, "author", nil, "hex-encoded 32-byte block author public key (repeatable)")

	return cmd
}
