package syncer

import (
	"github.com/goodnatureofminers/codechain-indexer/internal/chain"
	"github.com/goodnatureofminers/codechain-indexer/internal/model"
)

// addressLogs lists every address t touches with its role, without duplicates.
func addressLogs(t *chain.Transaction, blockNumber *uint64, pending bool) []model.AddressLog {
	c := &roleCollector{
		tx:          t,
		blockNumber: blockNumber,
		pending:     pending,
		seen:        make(map[string]struct{}),
	}
	c.add(t.Signer, model.RoleSigner)
	c.add(t.Payer(), model.RoleFeePayer)
	// roleCollector never fails
	_ = t.Action.Accept(c)
	return c.logs
}

type roleCollector struct {
	tx          *chain.Transaction
	blockNumber *uint64
	pending     bool
	seen        map[string]struct{}
	logs        []model.AddressLog
}

var _ chain.ActionVisitor = (*roleCollector)(nil)

func (c *roleCollector) add(address string, role model.AddressRole) {
	if address == "" {
		return
	}
	key := address + "/" + string(role)
	if _, ok := c.seen[key]; ok {
		return
	}
	c.seen[key] = struct{}{}
	c.logs = append(c.logs, model.AddressLog{
		Address:          address,
		TransactionHash:  c.tx.Hash,
		BlockNumber:      c.blockNumber,
		TransactionIndex: c.tx.Index,
		Role:             role,
		Pending:          c.pending,
	})
}

func (c *roleCollector) scheme(p chain.AssetSchemeParams) {
	c.add(p.Approver, model.RoleApprover)
	c.add(p.Registrar, model.RoleRegistrar)
}

func (c *roleCollector) outputs(outs ...chain.AssetOutput) {
	for _, o := range outs {
		c.add(o.Owner, model.RoleAssetOwner)
	}
}

func (c *roleCollector) VisitMintAsset(a *chain.MintAsset) error {
	c.scheme(a.Scheme)
	c.outputs(a.Output)
	return nil
}

func (c *roleCollector) VisitTransferAsset(a *chain.TransferAsset) error {
	c.outputs(a.Outputs...)
	return nil
}

func (c *roleCollector) VisitComposeAsset(a *chain.ComposeAsset) error {
	c.scheme(a.Scheme)
	c.outputs(a.Output)
	return nil
}

func (c *roleCollector) VisitDecomposeAsset(a *chain.DecomposeAsset) error {
	c.outputs(a.Outputs...)
	return nil
}

func (c *roleCollector) VisitIncreaseAssetSupply(a *chain.IncreaseAssetSupply) error {
	c.outputs(a.Output)
	return nil
}

func (c *roleCollector) VisitWrapCCC(a *chain.WrapCCC) error {
	c.add(a.Payer, model.RoleFeePayer)
	c.outputs(a.Output)
	return nil
}

func (c *roleCollector) VisitUnwrapCCC(a *chain.UnwrapCCC) error {
	c.add(a.Receiver, model.RoleReceiver)
	return nil
}

func (c *roleCollector) VisitPay(a *chain.Pay) error {
	c.add(a.Receiver, model.RoleReceiver)
	return nil
}

func (c *roleCollector) VisitSetRegularKey(a *chain.SetRegularKey) error {
	c.add(a.Owner, model.RoleRegularKey)
	return nil
}

func (c *roleCollector) VisitCreateShard(a *chain.CreateShard) error {
	for _, u := range a.Users {
		c.add(u, model.RoleShardUser)
	}
	return nil
}

func (c *roleCollector) VisitSetShardOwners(a *chain.SetShardOwners) error {
	for _, o := range a.Owners {
		c.add(o, model.RoleShardOwner)
	}
	return nil
}

func (c *roleCollector) VisitSetShardUsers(a *chain.SetShardUsers) error {
	for _, u := range a.Users {
		c.add(u, model.RoleShardUser)
	}
	return nil
}

func (c *roleCollector) VisitStore(a *chain.Store) error {
	c.add(a.Certifier, model.RoleCertifier)
	return nil
}

func (c *roleCollector) VisitRemove(*chain.Remove) error { return nil }
func (c *roleCollector) VisitCustom(*chain.Custom) error { return nil }
