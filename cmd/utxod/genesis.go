package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArnoldTumukunde/tumuchain/pkg/config"
	"github.com/ArnoldTumukunde/tumuchain/pkg/genesis"
	"github.com/ArnoldTumukunde/tumuchain/pkg/utxo"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xcrypto"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

func newGenesisCommand(configPath *string) *cobra.Command {
	var utxoHex string
	var utxoValue uint64

	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Initialize a fresh chain with one genesis UTXO",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			pubkey, err := xtypes.PublicKeyFromHex(utxoHex)
			if err != nil {
				return fmt.Errorf("utxod: --pubkey: %w", err)
			}

			store, err := utxo.OpenLevelStore(cfg.DataDir)
			if err != nil {
				return err
			}
			defer store.Close()

			hasher := xcrypto.NewBlakeHasher()
			genCfg := genesis.Config{
				GenesisUTXOs:      []xtypes.TransactionOutput{{Value: xtypes.ValueFromUint64(utxoValue), Pubkey: pubkey}},
				InitialDifficulty: cfg.InitialDifficultyValue(),
				Difficulty:        cfg.DifficultyParams(),
			}
			initialDifficulty, err := genesis.Load(store, hasher, genCfg)
			if err != nil {
				return err
			}
			if err := saveSidecar(cfg.DataDir, &sidecar{Difficulty: initialDifficulty.Bytes32()}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "genesis initialized at %s: one UTXO of value %d for pubkey %s\n", cfg.DataDir, utxoValue, pubkey)
			return nil
		},
	}

	cmd.Flags().StringVar(&utxoHex, "pubkey", "", "hex-encoded 32-byte public key to own the genesis UTXO")
	cmd.Flags().Uint64Var(&utxoValue, "value", 100, "value of the genesis UTXO")
	cmd.MarkFlagRequired("pubkey")

	return cmd
}
