package xtypes

// MaxTransactionParts bounds both inputs and outputs of a Transaction.
const MaxTransactionParts = 100

// TransactionInput references a UTXO being spent and the signature
// authorizing the spend.
type TransactionInput struct {
	// Outpoint identifies the UTXO being spent: the content-addressed hash
	// of its creating output.
	Outpoint Hash
	// Sigscript authorizes the spend; it signs the transaction's signing
	// payload under the referenced UTXO's pubkey.
	Sigscript Signature
}

// TransactionOutput is a spendable coin: an amount locked to a public key.
// Invariant: Value > 0 for any output actually stored in the UTXO set;
// the validator enforces this before insertion.
type TransactionOutput struct {
	Value  Value
	Pubkey PublicKey
}

// Equal reports whether two outputs are byte-equal, used by the validator's
// duplicate-output check.
func (o TransactionOutput) Equal(other TransactionOutput) bool {
	return o.Value.Cmp(other.Value) == 0 && o.Pubkey == other.Pubkey
}

// Transaction moves value from existing UTXOs to new ones. Inputs and
// outputs are each bounded to MaxTransactionParts.
type Transaction struct {
	Inputs  []TransactionInput
	Outputs []TransactionOutput
}

// StripSigs returns a copy of t with every input's Sigscript replaced by the
// all-zero signature. This is the signed content the output hashes and the
// signing payload are both computed over: output identifiers
// and the message that gets signed never depend on who actually signed.
func (t Transaction) StripSigs() Transaction {
	out := Transaction{
		Inputs:  make([]TransactionInput, len(t.Inputs)),
		Outputs: make([]TransactionOutput, len(t.Outputs)),
	}
	for i, in := range t.Inputs {
		out.Inputs[i] = TransactionInput{Outpoint: in.Outpoint}
	}
	copy(out.Outputs, t.Outputs)
	return out
}
