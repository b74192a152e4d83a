package utxo

import (
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

// LevelStore persists the UTXO set to a LevelDB database, for a
// long-running node that must survive restarts. Keys are xtypes.Hash
// outpoints under a namespacing prefix; values are xcodec's canonical
// output encoding.
type LevelStore struct {
	db *leveldb.DB
}

// OpenLevelStore opens (or creates) a LevelDB-backed UTXO store at path,
// with Snappy compression enabled.
func OpenLevelStore(path string) (*LevelStore, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{Compression: opt.SnappyCompression})
	if err != nil {
		return nil, fmt.Errorf("utxo: open store: %w", err)
	}
	return &LevelStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *LevelStore) Close() error {
	return s.db.Close()
}

// utxoKey namespaces outpoint keys under a 'u' prefix so the UTXO set can
// share a database with other keyspaces.
func utxoKey(outpoint xtypes.Hash) []byte {
	key := make([]byte, 1+len(outpoint))
	key[0] = 'u'
	copy(key[1:], outpoint[:])
	return key
}

func (s *LevelStore) Get(outpoint xtypes.Hash) (xtypes.TransactionOutput, bool, error) {
	value, err := s.db.Get(utxoKey(outpoint), nil)
	if err == leveldb.ErrNotFound {
		return xtypes.TransactionOutput{}, false, nil
	}
	if err != nil {
		return xtypes.TransactionOutput{}, false, err
	}
	out, err := decodeOutputRecord(value)
	if err != nil {
		return xtypes.TransactionOutput{}, false, err
	}
	return out, true, nil
}

func (s *LevelStore) Contains(outpoint xtypes.Hash) (bool, error) {
	return s.db.Has(utxoKey(outpoint), nil)
}

func (s *LevelStore) Insert(outpoint xtypes.Hash, output xtypes.TransactionOutput) error {
	return s.db.Put(utxoKey(outpoint), encodeOutputRecord(output), nil)
}

func (s *LevelStore) Remove(outpoint xtypes.Hash) error {
	return s.db.Delete(utxoKey(outpoint), nil)
}
