package wallet

import (
	"fmt"

	"github.com/ArnoldTumukunde/tumuchain/pkg/xcodec"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

// sign computes the shared signing payload for unsigned (inputs stripped
// of their sigscripts) and fills each input's sigscript with the
// corresponding owned key's signature over it.
func (w *Wallet) sign(unsigned xtypes.Transaction, inputs []owned) (xtypes.Transaction, error) {
	payload := xcodec.SigningPayload(unsigned)

	signed := unsigned
	signed.Inputs = make([]xtypes.TransactionInput, len(unsigned.Inputs))
	for i, in := range inputs {
		kp, ok := w.keys[in.output.Pubkey]
		if !ok {
			return xtypes.Transaction{}, fmt.Errorf("wallet: no key for outpoint %s", in.outpoint)
		}
		sig, err := kp.Sign(payload)
		if err != nil {
			return xtypes.Transaction{}, fmt.Errorf("wallet: sign input %d: %w", i, err)
		}
		signed.Inputs[i] = xtypes.TransactionInput{
			Outpoint:  unsigned.Inputs[i].Outpoint,
			Sigscript: sig,
		}
	}
	return signed, nil
}
