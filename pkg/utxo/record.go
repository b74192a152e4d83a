package utxo

import (
	"bytes"

	"github.com/ArnoldTumukunde/tumuchain/pkg/xcodec"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

// encodeOutputRecord/decodeOutputRecord delegate to xcodec so the on-disk
// representation matches the canonical wire encoding exactly, rather than
// a parallel ad-hoc format.
func encodeOutputRecord(o xtypes.TransactionOutput) []byte {
	return xcodec.EncodeOutput(o)
}

func decodeOutputRecord(data []byte) (xtypes.TransactionOutput, error) {
	return xcodec.DecodeOutput(bytes.NewReader(data))
}
