package model

import "github.com/shopspring/decimal"

// Account is the balance/seq snapshot of an address as of BlockNumber.
type Account struct {
	Address     string
	Balance     decimal.Decimal
	Seq         uint64
	BlockNumber uint64
}

// Reason tags a CCC balance change.
type Reason string

const (
	ReasonFee                 Reason = "fee"
	ReasonAuthor              Reason = "author"
	ReasonStake               Reason = "stake"
	ReasonTx                  Reason = "tx"
	ReasonInitialDistribution Reason = "initial_distribution"
	ReasonDeposit             Reason = "deposit"
	ReasonValidator           Reason = "validator"
	ReasonReport              Reason = "report"
)

// CCCChange is one signed entry of the native coin balance-change ledger.
type CCCChange struct {
	Address         string
	Change          decimal.Decimal
	BlockNumber     uint64
	Reason          Reason
	TransactionHash string
}
