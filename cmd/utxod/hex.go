package main

import (
	"encoding/hex"
	"fmt"

	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

func decodeHexExact(s string, n int) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, fmt.Errorf("expected %d bytes, got %d", n, len(b))
	}
	return b, nil
}

func parsePublicKeys(hexStrs []string) ([]xtypes.PublicKey, error) {
	out := make([]xtypes.PublicKey, len(hexStrs))
	for i, s := range hexStrs {
		pk, err := xtypes.PublicKeyFromHex(s)
		if err != nil {
			return nil, fmt.Errorf("utxod: --author %q: %w", s, err)
		}
		out[i] = pk
	}
	return out, nil
}
