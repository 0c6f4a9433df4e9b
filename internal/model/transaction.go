package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// TransactionType tags the action carried by a transaction.
type TransactionType string

const (
	TransactionMintAsset           TransactionType = "mintAsset"
	TransactionTransferAsset       TransactionType = "transferAsset"
	TransactionComposeAsset        TransactionType = "composeAsset"
	TransactionDecomposeAsset      TransactionType = "decomposeAsset"
	TransactionIncreaseAssetSupply TransactionType = "increaseAssetSupply"
	TransactionWrapCCC             TransactionType = "wrapCCC"
	TransactionUnwrapCCC           TransactionType = "unwrapCCC"
	TransactionPay                 TransactionType = "pay"
	TransactionSetRegularKey       TransactionType = "setRegularKey"
	TransactionCreateShard         TransactionType = "createShard"
	TransactionSetShardOwners      TransactionType = "setShardOwners"
	TransactionSetShardUsers       TransactionType = "setShardUsers"
	TransactionStore               TransactionType = "store"
	TransactionRemove              TransactionType = "remove"
	TransactionCustom              TransactionType = "custom"
)

// Transaction is an indexed transaction. Pending transactions have no block data.
type Transaction struct {
	Hash             string
	Type             TransactionType
	Tracker          string
	BlockNumber      *uint64
	BlockHash        string
	TransactionIndex uint32
	Signer           string
	FeePayer         string
	Fee              decimal.Decimal
	Seq              uint64
	NetworkID        string
	Pending          bool
	Success          bool
	ErrorHint        string
	Timestamp        uint64
	Action           json.RawMessage
}

// AddressRole is the part an address plays in a transaction.
type AddressRole string

const (
	RoleSigner     AddressRole = "signer"
	RoleFeePayer   AddressRole = "fee_payer"
	RoleReceiver   AddressRole = "receiver"
	RoleRegularKey AddressRole = "regular_key_owner"
	RoleShardOwner AddressRole = "shard_owner"
	RoleShardUser  AddressRole = "shard_user"
	RoleCertifier  AddressRole = "certifier"
	RoleApprover   AddressRole = "approver"
	RoleRegistrar  AddressRole = "registrar"
	RoleAssetOwner AddressRole = "asset_owner"
)

// IsPlatform reports whether the role names a platform account, i.e. one with a balance and seq.
func (r AddressRole) IsPlatform() bool {
	switch r {
	case RoleAssetOwner:
		return false
	default:
		return true
	}
}

// AddressLog links an address to a transaction it touches.
type AddressLog struct {
	Address          string
	TransactionHash  string
	BlockNumber      *uint64
	TransactionIndex uint32
	Role             AddressRole
	Pending          bool
}
