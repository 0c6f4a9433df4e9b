//go:build integration

package postgres

import (
	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/goodnatureofminers/codechain-indexer/internal/store"
	"github.com/shopspring/decimal"
)

func (s *StoreSuite) seedAssets(blocks uint64) {
	s.Require().NoError(s.withTx(func(tx store.Tx) error {
		for n := uint64(1); n <= blocks; n++ {
			s.Require().NoError(tx.InsertBlock(s.testCtx, newBlock(n)))
		}
		one := uint64(1)
		s.Require().NoError(tx.InsertTransaction(s.testCtx, newTransaction("0xmint", model.TransactionMintAsset, "0xt1", &one, 0)))
		return tx.InsertAssetScheme(s.testCtx, model.AssetScheme{
			AssetType: "gold", Supply: decimal.NewFromInt(10), TransactionHash: "0xmint", BlockNumber: 1,
		})
	}))
}

func (s *StoreSuite) TestInsertUTXO() {
	s.seedAssets(1)
	u := model.UTXO{
		Address: "A", AssetType: "gold", ShardID: 3, Quantity: decimal.NewFromInt(10),
		TransactionHash: "0xmint", TransactionTracker: "0xt1", BlockNumber: 1,
	}
	s.Require().NoError(s.withTx(func(tx store.Tx) error {
		return tx.InsertUTXO(s.testCtx, u)
	}))

	err := s.withTx(func(tx store.Tx) error {
		return tx.InsertUTXO(s.testCtx, u)
	})
	s.ErrorIs(err, model.ErrAlreadyExists)

	u.AssetType = "silver"
	u.TransactionOutputIndex = 1
	err = s.withTx(func(tx store.Tx) error {
		return tx.InsertUTXO(s.testCtx, u)
	})
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *StoreSuite) TestMarkUTXOUsed_Once() {
	s.seedAssets(2)
	s.Require().NoError(s.withTx(func(tx store.Tx) error {
		return tx.InsertUTXO(s.testCtx, model.UTXO{
			Address: "A", AssetType: "gold", Quantity: decimal.NewFromInt(10),
			TransactionHash: "0xmint", TransactionTracker: "0xt1", BlockNumber: 1,
		})
	}))

	spend := model.UTXOSpend{TransactionHash: "0xspend", BlockNumber: 2}
	s.Require().NoError(s.withTx(func(tx store.Tx) error {
		return tx.MarkUTXOUsed(s.testCtx, "0xmint", 0, spend)
	}))
	err := s.withTx(func(tx store.Tx) error {
		return tx.MarkUTXOUsed(s.testCtx, "0xmint", 0, spend)
	})
	s.ErrorIs(err, model.ErrInvalidUTXO)
}

func (s *StoreSuite) TestListUTXOs_ConfirmationRule() {
	s.seedAssets(5)
	s.Require().NoError(s.withTx(func(tx store.Tx) error {
		for i, number := range []uint64{1, 2, 4} {
			n := number
			hash := []string{"0xa", "0xb", "0xc"}[i]
			s.Require().NoError(tx.InsertTransaction(s.testCtx, newTransaction(hash, model.TransactionTransferAsset, hash, &n, 0)))
			s.Require().NoError(tx.InsertUTXO(s.testCtx, model.UTXO{
				Address: "A", AssetType: "gold", Quantity: decimal.NewFromInt(1),
				TransactionHash: hash, TransactionTracker: hash, BlockNumber: number,
			}))
		}
		// 0xa spent in a confirmed block, 0xb spent at the tip
		s.Require().NoError(tx.MarkUTXOUsed(s.testCtx, "0xa", 0, model.UTXOSpend{TransactionHash: "0xx", BlockNumber: 2}))
		return tx.MarkUTXOUsed(s.testCtx, "0xb", 0, model.UTXOSpend{TransactionHash: "0xy", BlockNumber: 5})
	}))

	unused, err := s.store.ListUTXOs(s.testCtx, model.UTXOFilter{Address: "A"})
	s.Require().NoError(err)
	s.Require().Len(unused, 1)
	s.Equal("0xc", unused[0].TransactionHash)

	// tip 5, threshold 2: blocks <= 3 are confirmed
	confirmed, err := s.store.ListUTXOs(s.testCtx, model.UTXOFilter{Address: "A", OnlyConfirmed: true, ConfirmThreshold: 2})
	s.Require().NoError(err)
	s.Require().Len(confirmed, 1)
	s.Equal("0xb", confirmed[0].TransactionHash)
	s.Require().NotNil(confirmed[0].Used)

	limited, err := s.store.ListUTXOs(s.testCtx, model.UTXOFilter{AssetType: "gold", OnlyConfirmed: true, Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(limited, 1)
	s.Equal("0xc", limited[0].TransactionHash)
}

func (s *StoreSuite) TestPendingTransactions() {
	s.seedAssets(1)
	s.Require().NoError(s.withTx(func(tx store.Tx) error {
		for _, hash := range []string{"0xp2", "0xp1"} {
			s.Require().NoError(tx.InsertTransaction(s.testCtx, newTransaction(hash, model.TransactionPay, "", nil, 0)))
			s.Require().NoError(tx.InsertAddressLogs(s.testCtx, []model.AddressLog{
				{Address: "A", TransactionHash: hash, Role: model.RoleSigner, Pending: true},
				{Address: "A", TransactionHash: hash, Role: model.RoleSigner, Pending: true},
			}))
		}
		return nil
	}))
	s.Equal(2, s.countRows("address_logs"))

	s.Require().NoError(s.withTx(func(tx store.Tx) error {
		hashes, err := tx.PendingTransactionHashes(s.testCtx)
		s.Require().NoError(err)
		s.Equal([]string{"0xp1", "0xp2"}, hashes)

		s.ErrorIs(tx.InsertTransaction(s.testCtx, newTransaction("0xp1", model.TransactionPay, "", nil, 0)), model.ErrAlreadyExists)

		one := uint64(1)
		confirmed := newTransaction("0xp1", model.TransactionPay, "", &one, 3)
		s.Require().NoError(tx.ConfirmPendingTransaction(s.testCtx, confirmed))
		return tx.DeletePendingTransactions(s.testCtx, []string{"0xp1", "0xp2"})
	}))

	s.Require().NoError(s.withTx(func(tx store.Tx) error {
		got, err := tx.Transaction(s.testCtx, "0xp1")
		s.Require().NoError(err)
		s.Require().NotNil(got)
		s.False(got.Pending)
		s.Equal(uint32(3), got.TransactionIndex)
		s.JSONEq(`{"type":"pay"}`, string(got.Action))

		gone, err := tx.Transaction(s.testCtx, "0xp2")
		s.Require().NoError(err)
		s.Nil(gone)

		err = tx.ConfirmPendingTransaction(s.testCtx, *got)
		s.ErrorIs(err, model.ErrNotFound)
		return nil
	}))
	s.Equal(0, s.countRows("address_logs"))
}

func (s *StoreSuite) TestLatestTransactionByTracker() {
	s.seedAssets(3)
	s.Require().NoError(s.withTx(func(tx store.Tx) error {
		two, three := uint64(2), uint64(3)
		s.Require().NoError(tx.InsertTransaction(s.testCtx, newTransaction("0xold", model.TransactionTransferAsset, "0xtr", &two, 0)))
		failed := newTransaction("0xfailed", model.TransactionTransferAsset, "0xtr", &three, 1)
		failed.Success = false
		failed.ErrorHint = "InvalidTransaction: AssetNotFound"
		s.Require().NoError(tx.InsertTransaction(s.testCtx, failed))

		got, err := tx.LatestTransactionByTracker(s.testCtx, "0xtr")
		s.Require().NoError(err)
		s.Equal("0xold", got.Hash)

		stored, err := tx.Transaction(s.testCtx, "0xfailed")
		s.Require().NoError(err)
		s.False(stored.Success)
		s.Equal("InvalidTransaction: AssetNotFound", stored.ErrorHint)

		none, err := tx.LatestTransactionByTracker(s.testCtx, "0xunknown")
		s.Require().NoError(err)
		s.Nil(none)
		return nil
	}))
}

func (s *StoreSuite) TestTouchedAddresses() {
	s.seedAssets(1)
	one := uint64(1)
	s.Require().NoError(s.withTx(func(tx store.Tx) error {
		s.Require().NoError(tx.InsertAddressLogs(s.testCtx, []model.AddressLog{
			{Address: "signer", TransactionHash: "0xmint", BlockNumber: &one, Role: model.RoleSigner},
			{Address: "holder", TransactionHash: "0xmint", BlockNumber: &one, Role: model.RoleAssetOwner},
		}))
		s.Require().NoError(tx.InsertCCCChanges(s.testCtx, []model.CCCChange{
			{Address: "staker", Change: decimal.NewFromInt(1), BlockNumber: 1, Reason: model.ReasonStake},
		}))

		got, err := tx.TouchedAddresses(s.testCtx, 1)
		s.Require().NoError(err)
		s.Equal([]string{"miner", "signer", "staker"}, got)
		return nil
	}))
}

func (s *StoreSuite) TestAccountsAndChanges() {
	s.seedAssets(2)
	s.Require().NoError(s.withTx(func(tx store.Tx) error {
		s.Require().NoError(tx.UpsertAccounts(s.testCtx, []model.Account{
			{Address: "A", Balance: decimal.NewFromInt(5), Seq: 1, BlockNumber: 1},
		}))
		s.Require().NoError(tx.UpsertAccounts(s.testCtx, []model.Account{
			{Address: "A", Balance: decimal.NewFromInt(7), Seq: 2, BlockNumber: 2},
			{Address: "B", Balance: decimal.NewFromInt(1), BlockNumber: 2},
		}))
		s.Require().NoError(tx.InsertCCCChanges(s.testCtx, []model.CCCChange{
			{Address: "A", Change: decimal.NewFromInt(5), BlockNumber: 1, Reason: model.ReasonInitialDistribution},
			{Address: "A", Change: decimal.NewFromInt(2), BlockNumber: 2, Reason: model.ReasonTx, TransactionHash: "0xmint"},
		}))
		return tx.DeleteAccounts(s.testCtx, []string{"B"})
	}))

	a, err := s.store.Account(s.testCtx, "A")
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(7).Equal(a.Balance))
	s.Equal(uint64(2), a.Seq)

	b, err := s.store.Account(s.testCtx, "B")
	s.Require().NoError(err)
	s.Nil(b)

	changes, err := s.store.CCCChanges(s.testCtx, "A", 1)
	s.Require().NoError(err)
	s.Require().Len(changes, 1)
	s.Equal(model.ReasonTx, changes[0].Reason)
	s.Equal("0xmint", changes[0].TransactionHash)

	err = s.withTx(func(tx store.Tx) error {
		return tx.InsertCCCChanges(s.testCtx, []model.CCCChange{
			{Address: "A", Change: decimal.NewFromInt(1), BlockNumber: 9, Reason: model.ReasonFee},
		})
	})
	s.ErrorIs(err, model.ErrNotFound)
}
