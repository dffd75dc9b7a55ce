package store

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
)

func heightKey(height uint64) []byte {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], height)
	return k[:]
}

// blockKey is height(8) || hash(32); height-first so scans run in height order.
func blockKey(height uint64, hash chainhash.Hash) []byte {
	k := make([]byte, 0, 8+chainhash.HashSize)
	k = append(k, heightKey(height)...)
	return append(k, hash[:]...)
}

func bufferKey(uploader model.Account, height uint64, hash chainhash.Hash) []byte {
	k := make([]byte, 0, len(uploader)+1+8+chainhash.HashSize)
	k = append(k, uploader...)
	k = append(k, 0)
	return append(k, blockKey(height, hash)...)
}

func chunkKey(bucketID uint64, chunkID uint8) []byte {
	return append(heightKey(bucketID), chunkID)
}

func seqKey(height uint64, hash chainhash.Hash, seq uint64) []byte {
	return append(blockKey(height, hash), heightKey(seq)...)
}

func outpointKey(txid chainhash.Hash, index uint32) []byte {
	k := make([]byte, 0, chainhash.HashSize+4)
	k = append(k, txid[:]...)
	return binary.BigEndian.AppendUint32(k, index)
}

func spentKey(height uint64, txid chainhash.Hash, index uint32) []byte {
	return append(heightKey(height), outpointKey(txid, index)...)
}

// AccountKey is the key of per-account ledger rows.
func AccountKey(account model.Account) []byte {
	return []byte(account)
}

// HeightKey is the key of per-height ledger rows.
func HeightKey(height uint64) []byte {
	return heightKey(height)
}
