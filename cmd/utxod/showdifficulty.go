package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArnoldTumukunde/tumuchain/pkg/config"
	"github.com/ArnoldTumukunde/tumuchain/pkg/genesis"
)

func newShowDifficultyCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show-difficulty",
		Short: "Print the current difficulty and window occupancy",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			genCfg := genesis.Config{InitialDifficulty: cfg.InitialDifficultyValue(), Difficulty: cfg.DifficultyParams()}
			c, store, err := openChain(cfg, genCfg, nil)
			if err != nil {
				return err
			}
			defer store.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "height=%d difficulty=%s window_len=%d\n", c.Height, c.Difficulty, c.Window.Len())
			return nil
		},
	}
}
