package codechain

import (
	"encoding/json"
	"fmt"

	"github.com/goodnatureofminers/codechain-indexer/internal/chain"
	"github.com/goodnatureofminers/codechain-indexer/internal/model"
)

var actionFactories = map[model.TransactionType]func() chain.Action{
	model.TransactionMintAsset:           func() chain.Action { return &chain.MintAsset{} },
	model.TransactionTransferAsset:       func() chain.Action { return &chain.TransferAsset{} },
	model.TransactionComposeAsset:        func() chain.Action { return &chain.ComposeAsset{} },
	model.TransactionDecomposeAsset:      func() chain.Action { return &chain.DecomposeAsset{} },
	model.TransactionIncreaseAssetSupply: func() chain.Action { return &chain.IncreaseAssetSupply{} },
	model.TransactionWrapCCC:             func() chain.Action { return &chain.WrapCCC{} },
	model.TransactionUnwrapCCC:           func() chain.Action { return &chain.UnwrapCCC{} },
	model.TransactionPay:                 func() chain.Action { return &chain.Pay{} },
	model.TransactionSetRegularKey:       func() chain.Action { return &chain.SetRegularKey{} },
	model.TransactionCreateShard:         func() chain.Action { return &chain.CreateShard{} },
	model.TransactionSetShardOwners:      func() chain.Action { return &chain.SetShardOwners{} },
	model.TransactionSetShardUsers:       func() chain.Action { return &chain.SetShardUsers{} },
	model.TransactionStore:               func() chain.Action { return &chain.Store{} },
	model.TransactionRemove:              func() chain.Action { return &chain.Remove{} },
}

func decodeAction(raw json.RawMessage) (chain.Action, error) {
	var head struct {
		Type model.TransactionType `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, fmt.Errorf("decode action type: %w", err)
	}
	if head.Type == model.TransactionCustom {
		return decodeCustom(raw)
	}
	factory, ok := actionFactories[head.Type]
	if !ok {
		return nil, fmt.Errorf("unknown action type %q: %w", head.Type, model.ErrInvalidTransaction)
	}
	action := factory()
	if err := json.Unmarshal(raw, action); err != nil {
		return nil, fmt.Errorf("decode %s action: %w", head.Type, err)
	}
	return action, nil
}

func decodeCustom(raw json.RawMessage) (*chain.Custom, error) {
	var dto customDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, fmt.Errorf("decode custom action: %w", err)
	}
	custom := &chain.Custom{HandlerID: dto.HandlerID, Bytes: dto.Bytes}
	if dto.HandlerID == StakeHandlerID {
		stake, err := decodeStakeAction(dto.Bytes)
		if err != nil {
			return nil, err
		}
		custom.Stake = stake
	}
	return custom, nil
}

func (c *Client) convertTransaction(dto transactionDTO) (chain.Transaction, error) {
	action, err := decodeAction(dto.Action)
	if err != nil {
		return chain.Transaction{}, fmt.Errorf("transaction %s: %w", dto.Hash, err)
	}
	networkID := dto.NetworkID
	if networkID == "" {
		networkID = c.networkID
	}
	signer, err := PlatformAddressFromPublic(networkID, dto.SignerPublic)
	if err != nil {
		return chain.Transaction{}, fmt.Errorf("signer of %s: %w", dto.Hash, err)
	}
	return chain.Transaction{
		Hash:         dto.Hash,
		Index:        dto.TransactionIndex,
		Signer:       signer,
		SignerPublic: dto.SignerPublic,
		Seq:          dto.Seq,
		Fee:          dto.Fee.value(),
		NetworkID:    networkID,
		Action:       action,
	}, nil
}

func (c *Client) convertBlock(dto blockDTO) (*chain.Block, error) {
	block := &chain.Block{
		Number:       dto.Number,
		Hash:         dto.Hash,
		ParentHash:   dto.ParentHash,
		Timestamp:    dto.Timestamp,
		Author:       dto.Author,
		Seal:         make([][]byte, 0, len(dto.Seal)),
		Transactions: make([]chain.Transaction, 0, len(dto.Transactions)),
	}
	for _, field := range dto.Seal {
		block.Seal = append(block.Seal, field)
	}
	for _, t := range dto.Transactions {
		tx, err := c.convertTransaction(t)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", dto.Number, err)
		}
		block.Transactions = append(block.Transactions, tx)
	}
	return block, nil
}
