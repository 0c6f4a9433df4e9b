package model

import "github.com/shopspring/decimal"

// UTXOSpend records the transaction that consumed an output.
type UTXOSpend struct {
	TransactionHash string
	BlockNumber     uint64
}

// UTXO is an asset output identified by (TransactionHash, TransactionOutputIndex).
type UTXO struct {
	Address                string
	AssetType              string
	ShardID                uint16
	Quantity               decimal.Decimal
	OrderHash              string
	TransactionHash        string
	TransactionTracker     string
	TransactionOutputIndex uint32
	TransactionIndex       uint32
	BlockNumber            uint64
	Used                   *UTXOSpend
}

// UTXOFilter narrows read-side UTXO listings.
type UTXOFilter struct {
	Address   string
	AssetType string
	ShardID   *uint16
	// OnlyConfirmed applies the confirmation-aware rule against the tip and ConfirmThreshold.
	OnlyConfirmed    bool
	ConfirmThreshold uint64
	Limit            int
}

// AssetScheme describes an asset type and its total supply.
type AssetScheme struct {
	AssetType           string
	ShardID             uint16
	Supply              decimal.Decimal
	Approver            string
	Registrar           string
	AllowedScriptHashes []string
	Metadata            string
	TransactionHash     string
	BlockNumber         uint64
}

// Confirmed reports whether a block at number is at least threshold blocks below tip.
func Confirmed(number, tip, threshold uint64) bool {
	return number <= tip && tip-number >= threshold
}

// IsConfirmedUnspent reports whether the output counts as available under "only confirmed"
// listings: its producing block is confirmed and it is unused or spent in a block that can
// still be retracted.
func (u UTXO) IsConfirmedUnspent(tip, threshold uint64) bool {
	if !Confirmed(u.BlockNumber, tip, threshold) {
		return false
	}
	if u.Used == nil {
		return true
	}
	return !Confirmed(u.Used.BlockNumber, tip, threshold)
}
