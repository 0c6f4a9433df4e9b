package settlement

import (
	"sort"

	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// ledger collects the CCC changes of one block in emission order.
type ledger struct {
	block   uint64
	changes []model.CCCChange
}

func newLedger(block uint64) *ledger {
	return &ledger{block: block}
}

func (l *ledger) credit(address string, amount *uint256.Int, reason model.Reason, txHash string) {
	if address == "" || amount == nil || amount.IsZero() {
		return
	}
	l.add(address, model.DecimalFromUint256(amount), reason, txHash)
}

func (l *ledger) debit(address string, amount *uint256.Int, reason model.Reason, txHash string) {
	if address == "" || amount == nil || amount.IsZero() {
		return
	}
	l.add(address, model.NegDecimalFromUint256(amount), reason, txHash)
}

func (l *ledger) add(address string, change decimal.Decimal, reason model.Reason, txHash string) {
	l.changes = append(l.changes, model.CCCChange{
		Address:         address,
		Change:          change,
		BlockNumber:     l.block,
		Reason:          reason,
		TransactionHash: txHash,
	})
}

// addresses lists every address with an entry, sorted.
func (l *ledger) addresses() []string {
	set := make(map[string]struct{}, len(l.changes))
	for _, c := range l.changes {
		set[c.Address] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for a := range set {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

func sum(values ...*uint256.Int) *uint256.Int {
	total := new(uint256.Int)
	for _, v := range values {
		if v != nil {
			total.Add(total, v)
		}
	}
	return total
}
