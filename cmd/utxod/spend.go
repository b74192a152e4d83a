package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArnoldTumukunde/tumuchain/pkg/chain"
	"github.com/ArnoldTumukunde/tumuchain/pkg/config"
	"github.com/ArnoldTumukunde/tumuchain/pkg/genesis"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

func newSpendCommand(configPath *string) *cobra.Command {
	var outpointHex, sigHex, signerHex string
	var outPubkeyHex string
	var outValue uint64
	var authorsHex []string

	cmd := &cobra.Command{
		Use:   "spend",
		Short: "Dispatch a single-input, single-output spend against the chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			authors, err := parsePublicKeys(authorsHex)
			if err != nil {
				return err
			}

			outpoint, err := xtypes.HashFromHex(outpointHex)
			if err != nil {
				return fmt.Errorf("utxod: --outpoint: %w", err)
			}
			var sig xtypes.Signature
			sigBytes, err := decodeHexExact(sigHex, len(sig))
			if err != nil {
				return fmt.Errorf("utxod: --sig: %w", err)
			}
			copy(sig[:], sigBytes)

			signer, err := xtypes.PublicKeyFromHex(signerHex)
			if err != nil {
				return fmt.Errorf("utxod: --signer: %w", err)
			}
			outPubkey, err := xtypes.PublicKeyFromHex(outPubkeyHex)
			if err != nil {
				return fmt.Errorf("utxod: --out-pubkey: %w", err)
			}

			genCfg := genesis.Config{InitialDifficulty: cfg.InitialDifficultyValue(), Difficulty: cfg.DifficultyParams()}
			c, store, err := openChain(cfg, genCfg, authors)
			if err != nil {
				return err
			}
			defer store.Close()

			tx := xtypes.Transaction{
				Inputs:  []xtypes.TransactionInput{{Outpoint: outpoint, Sigscript: sig}},
				Outputs: []xtypes.TransactionOutput{{Value: xtypes.ValueFromUint64(outValue), Pubkey: outPubkey}},
			}

			engine := chain.NewEngine(c.Store, c.Pool, c.Hasher, c.Verifier, c.Sink)
			if err := engine.Spend(chain.SignedOrigin{Signer: signer}, tx); err != nil {
				return err
			}

			if err := persistChain(cfg, c); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "spend applied")
			return nil
		},
	}

	cmd.Flags().StringVar(&outpointHex, "outpoint", "", "hex-encoded outpoint being spent")
	cmd.Flags().StringVar(&sigHex, "sig", "", "hex-encoded 64-byte signature")
	cmd.Flags().StringVar(&signerHex, "signer", "", "hex-encoded 32-byte signed-origin public key")
	cmd.Flags().StringVar(&outPubkeyHex, "out-pubkey", "", "hex-encoded 32-byte recipient public key")
	cmd.Flags().Uint64Var(&outValue, "out-value", 0, "output value")
	cmd.Flags().StringSliceVar(&authorsHex, "author", nil, "hex-encoded 32-byte block author public key (repeatable)")

	return cmd
}
