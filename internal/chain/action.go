package chain

import (
	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/holiman/uint256"
)

// Action is the closed set of transaction payloads. New variants must be added to
// ActionVisitor, which makes every dispatch site fail to compile until it handles them.
type Action interface {
	Type() model.TransactionType
	Accept(v ActionVisitor) error
	action()
}

// ActionVisitor dispatches over every Action variant.
type ActionVisitor interface {
	VisitMintAsset(a *MintAsset) error
	VisitTransferAsset(a *TransferAsset) error
	VisitComposeAsset(a *ComposeAsset) error
	VisitDecomposeAsset(a *DecomposeAsset) error
	VisitIncreaseAssetSupply(a *IncreaseAssetSupply) error
	VisitWrapCCC(a *WrapCCC) error
	VisitUnwrapCCC(a *UnwrapCCC) error
	VisitPay(a *Pay) error
	VisitSetRegularKey(a *SetRegularKey) error
	VisitCreateShard(a *CreateShard) error
	VisitSetShardOwners(a *SetShardOwners) error
	VisitSetShardUsers(a *SetShardUsers) error
	VisitStore(a *Store) error
	VisitRemove(a *Remove) error
	VisitCustom(a *Custom) error
}

// AssetAction is implemented by actions that carry an asset tracker.
type AssetAction interface {
	Action
	AssetTracker() string
}

// AssetTx holds the tracker shared by asset actions.
type AssetTx struct {
	Tracker string `json:"tracker"`
}

// AssetTracker returns the asset lineage id.
func (a AssetTx) AssetTracker() string { return a.Tracker }

// AssetOutPoint references an output by the tracker of its producing transaction.
type AssetOutPoint struct {
	Tracker   string       `json:"tracker"`
	Index     uint32       `json:"index"`
	AssetType string       `json:"assetType"`
	ShardID   uint16       `json:"shardId"`
	Quantity  *uint256.Int `json:"quantity"`
}

// AssetInput spends an output.
type AssetInput struct {
	PrevOut AssetOutPoint `json:"prevOut"`
}

// AssetOutput creates an output owned by Owner.
type AssetOutput struct {
	Owner     string       `json:"owner"`
	AssetType string       `json:"assetType"`
	ShardID   uint16       `json:"shardId"`
	Quantity  *uint256.Int `json:"quantity"`
	OrderHash string       `json:"orderHash"`
}

// AssetSchemeParams are the scheme fields of mint and compose.
type AssetSchemeParams struct {
	ShardID             uint16   `json:"shardId"`
	Metadata            string   `json:"metadata"`
	Approver            string   `json:"approver"`
	Registrar           string   `json:"registrar"`
	AllowedScriptHashes []string `json:"allowedScriptHashes"`
}

type (
	MintAsset struct {
		AssetTx
		Scheme    AssetSchemeParams `json:"scheme"`
		AssetType string            `json:"assetType"`
		Output    AssetOutput       `json:"output"`
	}

	TransferAsset struct {
		AssetTx
		Inputs  []AssetInput  `json:"inputs"`
		Burns   []AssetInput  `json:"burns"`
		Outputs []AssetOutput `json:"outputs"`
	}

	ComposeAsset struct {
		AssetTx
		Scheme    AssetSchemeParams `json:"scheme"`
		AssetType string            `json:"assetType"`
		Inputs    []AssetInput      `json:"inputs"`
		Output    AssetOutput       `json:"output"`
	}

	DecomposeAsset struct {
		AssetTx
		Input   AssetInput    `json:"input"`
		Outputs []AssetOutput `json:"outputs"`
	}

	IncreaseAssetSupply struct {
		AssetTx
		AssetType string      `json:"assetType"`
		Output    AssetOutput `json:"output"`
	}

	WrapCCC struct {
		AssetTx
		Payer  string      `json:"payer"`
		Output AssetOutput `json:"output"`
	}

	UnwrapCCC struct {
		AssetTx
		Burn     AssetInput `json:"burn"`
		Receiver string     `json:"receiver"`
	}

	Pay struct {
		Receiver string       `json:"receiver"`
		Quantity *uint256.Int `json:"quantity"`
	}

	SetRegularKey struct {
		Key   string `json:"key"`
		Owner string `json:"owner"`
	}

	CreateShard struct {
		Users []string `json:"users"`
	}

	SetShardOwners struct {
		ShardID uint16   `json:"shardId"`
		Owners  []string `json:"owners"`
	}

	SetShardUsers struct {
		ShardID uint16   `json:"shardId"`
		Users   []string `json:"users"`
	}

	Store struct {
		Content   string `json:"content"`
		Certifier string `json:"certifier"`
	}

	Remove struct {
		Hash string `json:"hash"`
	}

	Custom struct {
		HandlerID uint64 `json:"handlerId"`
		Bytes     []byte `json:"bytes"`
		// Stake is the decoded staking action, nil for other handlers.
		Stake StakeAction `json:"stake"`
	}
)

func (*MintAsset) Type() model.TransactionType           { return model.TransactionMintAsset }
func (*TransferAsset) Type() model.TransactionType       { return model.TransactionTransferAsset }
func (*ComposeAsset) Type() model.TransactionType        { return model.TransactionComposeAsset }
func (*DecomposeAsset) Type() model.TransactionType      { return model.TransactionDecomposeAsset }
func (*IncreaseAssetSupply) Type() model.TransactionType { return model.TransactionIncreaseAssetSupply }
func (*WrapCCC) Type() model.TransactionType             { return model.TransactionWrapCCC }
func (*UnwrapCCC) Type() model.TransactionType           { return model.TransactionUnwrapCCC }
func (*Pay) Type() model.TransactionType                 { return model.TransactionPay }
func (*SetRegularKey) Type() model.TransactionType       { return model.TransactionSetRegularKey }
func (*CreateShard) Type() model.TransactionType         { return model.TransactionCreateShard }
func (*SetShardOwners) Type() model.TransactionType      { return model.TransactionSetShardOwners }
func (*SetShardUsers) Type() model.TransactionType       { return model.TransactionSetShardUsers }
func (*Store) Type() model.TransactionType               { return model.TransactionStore }
func (*Remove) Type() model.TransactionType              { return model.TransactionRemove }
func (*Custom) Type() model.TransactionType              { return model.TransactionCustom }

func (a *MintAsset) Accept(v ActionVisitor) error           { return v.VisitMintAsset(a) }
func (a *TransferAsset) Accept(v ActionVisitor) error       { return v.VisitTransferAsset(a) }
func (a *ComposeAsset) Accept(v ActionVisitor) error        { return v.VisitComposeAsset(a) }
func (a *DecomposeAsset) Accept(v ActionVisitor) error      { return v.VisitDecomposeAsset(a) }
func (a *IncreaseAssetSupply) Accept(v ActionVisitor) error { return v.VisitIncreaseAssetSupply(a) }
func (a *WrapCCC) Accept(v ActionVisitor) error             { return v.VisitWrapCCC(a) }
func (a *UnwrapCCC) Accept(v ActionVisitor) error           { return v.VisitUnwrapCCC(a) }
func (a *Pay) Accept(v ActionVisitor) error                 { return v.VisitPay(a) }
func (a *SetRegularKey) Accept(v ActionVisitor) error       { return v.VisitSetRegularKey(a) }
func (a *CreateShard) Accept(v ActionVisitor) error         { return v.VisitCreateShard(a) }
func (a *SetShardOwners) Accept(v ActionVisitor) error      { return v.VisitSetShardOwners(a) }
func (a *SetShardUsers) Accept(v ActionVisitor) error       { return v.VisitSetShardUsers(a) }
func (a *Store) Accept(v ActionVisitor) error               { return v.VisitStore(a) }
func (a *Remove) Accept(v ActionVisitor) error              { return v.VisitRemove(a) }
func (a *Custom) Accept(v ActionVisitor) error              { return v.VisitCustom(a) }

func (*MintAsset) action()           {}
func (*TransferAsset) action()       {}
func (*ComposeAsset) action()        {}
func (*DecomposeAsset) action()      {}
func (*IncreaseAssetSupply) action() {}
func (*WrapCCC) action()             {}
func (*UnwrapCCC) action()           {}
func (*Pay) action()                 {}
func (*SetRegularKey) action()       {}
func (*CreateShard) action()         {}
func (*SetShardOwners) action()      {}
func (*SetShardUsers) action()       {}
func (*Store) action()               {}
func (*Remove) action()              {}
func (*Custom) action()              {}

// StakeAction is a decoded action of the staking custom handler.
type StakeAction interface {
	stakeAction()
}

type (
	// SelfNominate locks Deposit from the signer's balance.
	SelfNominate struct {
		Deposit  *uint256.Int `json:"deposit"`
		Metadata []byte       `json:"metadata"`
	}

	// ReportDoubleVote reports a validator that signed two votes at Height.
	ReportDoubleVote struct {
		Height      uint64 `json:"height"`
		SignerIndex uint64 `json:"signerIndex"`
	}

	// OtherStakeAction is any staking action without balance effects tracked here.
	OtherStakeAction struct {
		Tag uint8 `json:"tag"`
	}
)

func (SelfNominate) stakeAction()     {}
func (ReportDoubleVote) stakeAction() {}
func (OtherStakeAction) stakeAction() {}
