package codechain

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/goodnatureofminers/codechain-indexer/internal/chain"
	"github.com/goodnatureofminers/codechain-indexer/pkg/workerpool"
	"github.com/holiman/uint256"
)

// StakeHandlerID is the custom action handler of the staking module.
const StakeHandlerID uint64 = 2

const (
	stakeTagSelfNominate     uint8 = 4
	stakeTagReportDoubleVote uint8 = 5
)

type (
	selfNominateRLP struct {
		Tag      uint8
		Deposit  *uint256.Int
		Metadata []byte
	}

	voteStepRLP struct {
		Height uint64
		View   uint64
		Step   uint8
	}

	voteOnRLP struct {
		Step      voteStepRLP
		BlockHash rlp.RawValue
	}

	consensusMessageRLP struct {
		On          voteOnRLP
		Signature   []byte
		SignerIndex uint64
	}

	reportDoubleVoteRLP struct {
		Tag      uint8
		Message1 consensusMessageRLP
		Message2 consensusMessageRLP
	}

	candidateRLP struct {
		PublicKey        []byte
		Deposit          *uint256.Int
		NominationEndsAt uint64
		Metadata         []byte
	}

	prisonerRLP struct {
		AccountID    []byte
		Deposit      *uint256.Int
		CustodyUntil uint64
		ReleasedAt   uint64
	}

	validatorRLP struct {
		Weight     *uint256.Int
		Delegation *uint256.Int
		Deposit    *uint256.Int
		PublicKey  []byte
	}

	delegationRLP struct {
		Delegatee []byte
		Quantity  *uint256.Int
	}
)

func decodeStakeAction(data []byte) (chain.StakeAction, error) {
	var items []rlp.RawValue
	if err := rlp.DecodeBytes(data, &items); err != nil {
		return nil, fmt.Errorf("decode stake action: %w", err)
	}
	if len(items) == 0 {
		return nil, errors.New("empty stake action")
	}
	var tag uint8
	if err := rlp.DecodeBytes(items[0], &tag); err != nil {
		return nil, fmt.Errorf("decode stake action tag: %w", err)
	}

	switch tag {
	case stakeTagSelfNominate:
		var v selfNominateRLP
		if err := rlp.DecodeBytes(data, &v); err != nil {
			return nil, fmt.Errorf("decode self nominate: %w", err)
		}
		return chain.SelfNominate{Deposit: v.Deposit, Metadata: v.Metadata}, nil
	case stakeTagReportDoubleVote:
		var v reportDoubleVoteRLP
		if err := rlp.DecodeBytes(data, &v); err != nil {
			return nil, fmt.Errorf("decode double vote report: %w", err)
		}
		return chain.ReportDoubleVote{
			Height:      v.Message1.On.Step.Height,
			SignerIndex: v.Message1.SignerIndex,
		}, nil
	default:
		return chain.OtherStakeAction{Tag: tag}, nil
	}
}

// StakeOracle reads staking state through the custom action data of the staking handler.
type StakeOracle struct {
	client      *Client
	concurrency int
}

// NewStakeOracle builds a StakeOracle. concurrency bounds the per-holder lookups of Stakeholders.
func NewStakeOracle(client *Client, concurrency int) *StakeOracle {
	return &StakeOracle{client: client, concurrency: concurrency}
}

// actionData decodes the value stored under key. It reports false for absent keys.
func (o *StakeOracle) actionData(ctx context.Context, blockNumber uint64, out any, key ...any) (bool, error) {
	encodedKey, err := rlp.EncodeToBytes(key)
	if err != nil {
		return false, fmt.Errorf("encode stake key: %w", err)
	}
	var data hexutil.Bytes
	found, err := o.client.call(ctx, "engine_getCustomActionData", &data, StakeHandlerID, hexutil.Bytes(encodedKey), blockNumber)
	if err != nil || !found {
		return false, err
	}
	if err := rlp.DecodeBytes(data, out); err != nil {
		return false, fmt.Errorf("decode stake data %v at %d: %w", key[0], blockNumber, err)
	}
	return true, nil
}

func (o *StakeOracle) address(accountID []byte) (string, error) {
	return EncodePlatformAddress(o.client.networkID, accountID)
}

func (o *StakeOracle) addressOfKey(publicKey []byte) (string, error) {
	id, err := AccountID(publicKey)
	if err != nil {
		return "", err
	}
	return o.address(id)
}

func (o *StakeOracle) Candidates(ctx context.Context, blockNumber uint64) ([]chain.Candidate, error) {
	var records []candidateRLP
	if _, err := o.actionData(ctx, blockNumber, &records, "Candidates"); err != nil {
		return nil, err
	}
	out := make([]chain.Candidate, 0, len(records))
	for _, r := range records {
		address, err := o.addressOfKey(r.PublicKey)
		if err != nil {
			return nil, err
		}
		out = append(out, chain.Candidate{
			Address:          address,
			Deposit:          r.Deposit,
			NominationEndsAt: r.NominationEndsAt,
			Metadata:         r.Metadata,
		})
	}
	return out, nil
}

func (o *StakeOracle) Jailed(ctx context.Context, blockNumber uint64) ([]chain.Prisoner, error) {
	var records []prisonerRLP
	if _, err := o.actionData(ctx, blockNumber, &records, "Jailed"); err != nil {
		return nil, err
	}
	out := make([]chain.Prisoner, 0, len(records))
	for _, r := range records {
		address, err := o.address(r.AccountID)
		if err != nil {
			return nil, err
		}
		out = append(out, chain.Prisoner{
			Address:      address,
			Deposit:      r.Deposit,
			CustodyUntil: r.CustodyUntil,
			ReleasedAt:   r.ReleasedAt,
		})
	}
	return out, nil
}

func (o *StakeOracle) Banned(ctx context.Context, blockNumber uint64) ([]string, error) {
	var ids [][]byte
	if _, err := o.actionData(ctx, blockNumber, &ids, "Banned"); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		address, err := o.address(id)
		if err != nil {
			return nil, err
		}
		out = append(out, address)
	}
	return out, nil
}

func (o *StakeOracle) Validators(ctx context.Context, blockNumber uint64) ([]chain.Validator, error) {
	var records []validatorRLP
	if _, err := o.actionData(ctx, blockNumber, &records, "Validators"); err != nil {
		return nil, err
	}
	out := make([]chain.Validator, 0, len(records))
	for _, r := range records {
		address, err := o.addressOfKey(r.PublicKey)
		if err != nil {
			return nil, err
		}
		out = append(out, chain.Validator{
			Address:    address,
			Weight:     r.Weight,
			Delegation: r.Delegation,
			Deposit:    r.Deposit,
			PublicKey:  hexutil.Encode(r.PublicKey),
		})
	}
	return out, nil
}

// Stakeholders returns every holder of stake tokens with a non-zero undelegated plus
// delegated-out balance.
func (o *StakeOracle) Stakeholders(ctx context.Context, blockNumber uint64) ([]chain.Stakeholder, error) {
	var ids [][]byte
	if _, err := o.actionData(ctx, blockNumber, &ids, "StakeholderAddresses"); err != nil {
		return nil, err
	}

	holders, err := workerpool.Map(ctx, o.concurrency, ids, func(ctx context.Context, id []byte) (chain.Stakeholder, error) {
		stake := new(uint256.Int)
		if _, err := o.actionData(ctx, blockNumber, stake, "Account", id); err != nil {
			return chain.Stakeholder{}, err
		}
		var delegations []delegationRLP
		if _, err := o.actionData(ctx, blockNumber, &delegations, "Delegation", id); err != nil {
			return chain.Stakeholder{}, err
		}
		for _, d := range delegations {
			if d.Quantity != nil {
				stake.Add(stake, d.Quantity)
			}
		}
		address, err := o.address(id)
		if err != nil {
			return chain.Stakeholder{}, err
		}
		return chain.Stakeholder{Address: address, Stake: stake}, nil
	})
	if err != nil {
		return nil, err
	}

	out := holders[:0]
	for _, h := range holders {
		if !h.Stake.IsZero() {
			out = append(out, h)
		}
	}
	return out, nil
}
