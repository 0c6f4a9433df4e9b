package syncer

import (
	"encoding/json"

	"github.com/goodnatureofminers/codechain-indexer/internal/chain"
	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/goodnatureofminers/codechain-indexer/pkg/safe"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

func blockRow(block *chain.Block, missed []string) model.Block {
	count, err := safe.Uint32(len(block.Transactions))
	if err != nil {
		count = 0
	}
	return model.Block{
		Number:              block.Number,
		Hash:                block.Hash,
		ParentHash:          block.ParentHash,
		Timestamp:           block.Timestamp,
		Author:              block.Author,
		TransactionsCount:   count,
		MissedSignersOfPrev: missed,
		IntermediateRewards: decimal.Zero,
	}
}

type actionEnvelope struct {
	Type model.TransactionType `json:"type"`
	Data chain.Action          `json:"data"`
}

// transactionRow builds the stored form of t. A nil blockNumber makes it pending.
func transactionRow(t *chain.Transaction, blockNumber *uint64, blockHash string, timestamp uint64) (model.Transaction, error) {
	action, err := json.Marshal(actionEnvelope{Type: t.Action.Type(), Data: t.Action})
	if err != nil {
		return model.Transaction{}, errors.Wrapf(err, "encode action of %s", t.Hash)
	}
	return model.Transaction{
		Hash:             t.Hash,
		Type:             t.Action.Type(),
		Tracker:          t.Tracker(),
		BlockNumber:      blockNumber,
		BlockHash:        blockHash,
		TransactionIndex: t.Index,
		Signer:           t.Signer,
		FeePayer:         t.Payer(),
		Fee:              model.DecimalFromUint256(t.Fee),
		Seq:              t.Seq,
		NetworkID:        t.NetworkID,
		Pending:          blockNumber == nil,
		Success:          !t.Failed,
		ErrorHint:        t.ErrorHint,
		Timestamp:        timestamp,
		Action:           action,
	}, nil
}

func platformAddresses(logs []model.AddressLog) []string {
	out := make([]string, 0, len(logs))
	for _, l := range logs {
		if l.Role.IsPlatform() {
			out = append(out, l.Address)
		}
	}
	return out
}
