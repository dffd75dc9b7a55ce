package verifier

import (
	"errors"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/codec"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/store"
)

// maxVarIntSize is the largest compact size encoding.
const maxVarIntSize = 9

// verifyMerkle runs the header check on the first call and then up to budget
// transactions. A non-empty reason means the block is rejected.
func (v *Verifier) verifyMerkle(tx *store.Tx, b *model.UploadBuffer, budget uint64) (model.FailureReason, error) {
	if b.Status == model.StatusComplete || b.Cursor == nil {
		reason, err := v.verifyHeader(tx, b)
		if err != nil || reason != "" {
			return reason, err
		}
	}
	cur := b.Cursor

	batchSize := v.cfg.TxsPerVerification()
	batches := budget / batchSize
	if batches == 0 {
		batches = 1
	}

	data, err := v.reader.ReadRange(tx, b, cur.Offset, b.Size)
	if err != nil {
		return "", err
	}
	var pos int
	for ; batches > 0 && cur.TxProcessed < cur.TxCount; batches-- {
		rows := min(batchSize, cur.TxCount-cur.TxProcessed)
		txs := make([]*wire.MsgTx, 0, rows)
		for i := uint64(0); i < rows; i++ {
			if pos >= len(data) {
				return model.ReasonDataExceeds, nil
			}
			msg, n, err := codec.DecodeTx(data[pos:])
			if err != nil {
				if errors.Is(err, codec.ErrTruncated) {
					return model.ReasonDataExceeds, nil
				}
				return model.ReasonInvalidTransaction, nil
			}
			pos += n
			txs = append(txs, msg)
		}

		first := cur.TxProcessed == 0
		if first {
			if reason, err := v.inspectCoinbase(tx, cur, txs[0]); err != nil || reason != "" {
				return reason, err
			}
		}
		for i, msg := range txs {
			if (i > 0 || !first) && msg.HasWitness() {
				cur.HasWitness = true
			}
		}

		txids, wtxids := codec.Leaves(txs, first)
		txRoot := codec.MerkleRoot(txids)
		witnessRoot := codec.MerkleRoot(wtxids)
		if cur.TxCount > batchSize && rows < batchSize {
			txRoot = codec.RaiseToLayer(txRoot, rows, v.cfg.MerkleLayers)
			witnessRoot = codec.RaiseToLayer(witnessRoot, rows, v.cfg.MerkleLayers)
		}
		cur.TxLayer = append(cur.TxLayer, txRoot)
		cur.WitnessLayer = append(cur.WitnessLayer, witnessRoot)
		cur.TxProcessed += rows
		cur.Offset += uint32(pos)
		data = data[pos:]
		pos = 0
	}

	if cur.TxProcessed < cur.TxCount {
		return "", nil
	}
	return v.finishMerkle(b)
}

func (v *Verifier) verifyHeader(tx *store.Tx, b *model.UploadBuffer) (model.FailureReason, error) {
	data, err := v.reader.ReadRange(tx, b, 0, min(b.Size, model.HeaderSize+maxVarIntSize))
	if err != nil {
		return "", err
	}
	header, err := codec.DecodeHeader(data)
	if err != nil {
		return model.ReasonDataExceeds, nil
	}
	if header.BlockHash() != b.Hash {
		return model.ReasonHashMismatch, nil
	}
	if !codec.CheckProofOfWork(&header) {
		return model.ReasonInvalidTarget, nil
	}
	count, n, err := codec.ReadVarInt(data[model.HeaderSize:])
	if err != nil {
		return model.ReasonDataExceeds, nil
	}
	if count == 0 {
		return model.ReasonTxSizeLimits, nil
	}
	b.Cursor = &model.VerificationCursor{
		PrevHash:   header.PrevBlock,
		MerkleRoot: header.MerkleRoot,
		Work:       codec.Work(header.Bits),
		TxCount:    count,
		Offset:     uint32(model.HeaderSize + n),
	}
	b.Status = model.StatusVerifyingMerkle
	return "", nil
}

func (v *Verifier) inspectCoinbase(tx *store.Tx, cur *model.VerificationCursor, coinbase *wire.MsgTx) (model.FailureReason, error) {
	if !codec.IsCoinbase(coinbase) {
		return model.ReasonCoinbaseMissing, nil
	}
	cur.WitnessReserve, _ = codec.WitnessReserve(coinbase)
	cur.WitnessCommitment, _ = codec.WitnessCommitment(coinbase)

	if miner, ok := codec.CoinbaseMiner(coinbase); ok {
		cur.Miner = miner
		return "", nil
	}
	if v.miners == nil {
		return "", nil
	}
	for _, address := range codec.PayoutAddresses(coinbase, v.params) {
		miner, found, err := v.miners.ResolveAddress(tx, address)
		if err != nil {
			return "", err
		}
		if found {
			cur.Miner = miner
			break
		}
	}
	return "", nil
}

func (v *Verifier) finishMerkle(b *model.UploadBuffer) (model.FailureReason, error) {
	cur := b.Cursor
	if cur.Offset < b.Size {
		return model.ReasonMissingBlockData, nil
	}
	if root := codec.MerkleRoot(cur.TxLayer); root != cur.MerkleRoot {
		return model.ReasonMerkleInvalid, nil
	}
	if cur.WitnessCommitment != nil || cur.HasWitness {
		if cur.WitnessCommitment == nil || cur.WitnessReserve == nil {
			return model.ReasonWitnessMerkleInvalid, nil
		}
		root := codec.MerkleRoot(cur.WitnessLayer)
		if !codec.WitnessCommitmentMatches(root, *cur.WitnessReserve, *cur.WitnessCommitment) {
			return model.ReasonWitnessMerkleInvalid, nil
		}
	}
	cur.TxLayer = nil
	cur.WitnessLayer = nil
	cur.WitnessReserve, cur.WitnessCommitment = nil, nil
	b.Status = model.StatusVerifyingParent
	return "", nil
}
