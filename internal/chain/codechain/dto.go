package codechain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/holiman/uint256"
)

// quantity is an unsigned amount encoded as a JSON number, a decimal string or a 0x
// prefixed hex string.
type quantity struct {
	uint256.Int
}

func (q *quantity) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	v, err := parseQuantity(s)
	if err != nil {
		return err
	}
	q.Int = *v
	return nil
}

func (q *quantity) value() *uint256.Int {
	if q == nil {
		return new(uint256.Int)
	}
	return new(uint256.Int).Set(&q.Int)
}

func parseQuantity(s string) (*uint256.Int, error) {
	if s == "" {
		return nil, errors.New("empty quantity")
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits := strings.TrimLeft(s[2:], "0")
		if digits == "" {
			return new(uint256.Int), nil
		}
		v, err := uint256.FromHex("0x" + digits)
		if err != nil {
			return nil, fmt.Errorf("hex quantity %q: %w", s, err)
		}
		return v, nil
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("decimal quantity %q: %w", s, err)
	}
	return v, nil
}

type blockDTO struct {
	Number       uint64           `json:"number"`
	Hash         string           `json:"hash"`
	ParentHash   string           `json:"parentHash"`
	Timestamp    uint64           `json:"timestamp"`
	Author       string           `json:"author"`
	Seal         []hexutil.Bytes  `json:"seal"`
	Transactions []transactionDTO `json:"transactions"`
}

type transactionDTO struct {
	Hash             string          `json:"hash"`
	TransactionIndex uint32          `json:"transactionIndex"`
	SignerPublic     string          `json:"signerPublic"`
	Seq              uint64          `json:"seq"`
	Fee              quantity        `json:"fee"`
	NetworkID        string          `json:"networkId"`
	Action           json.RawMessage `json:"action"`
}

type pendingDTO struct {
	Transactions []transactionDTO `json:"transactions"`
}

type commonParamsDTO struct {
	TermSeconds uint64                             `json:"termSeconds"`
	MinFees     map[model.TransactionType]quantity `json:"minFees"`
}

type customDTO struct {
	HandlerID uint64        `json:"handlerId"`
	Bytes     hexutil.Bytes `json:"bytes"`
}
