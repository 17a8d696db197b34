package memstore

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/go-petr/mcba-ledger/internal/domain"
	"github.com/go-petr/mcba-ledger/internal/ledgerstore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) *Store {
	t.Helper()

	s := New()
	s.AddCustomer(domain.Customer{CustomerID: 2100, Name: "Matthew Bolger", FreeTransactions: 2})
	s.AddAccount(domain.Account{AccountNumber: 4100, AccountType: domain.AccountTypeSavings, CustomerID: 2100})
	s.AddAccount(domain.Account{AccountNumber: 4101, AccountType: domain.AccountTypeChecking, CustomerID: 2100})
	s.AddPayee(domain.Payee{PayeeID: 1, Name: "Telstra"})
	s.AddTransaction(domain.Transaction{AccountNumber: 4100, Kind: domain.KindDeposit, Amount: decimal.New(100, 0)})

	return s
}

func deposit(number int32, amount int64) domain.Transaction {
	return domain.Transaction{AccountNumber: number, Kind: domain.KindDeposit, Amount: decimal.New(amount, 0)}
}

func TestExecTxCommits(t *testing.T) {
	s := seed(t)
	ctx := context.Background()

	err := s.ExecTx(ctx, func(tx ledgerstore.Tx) error {
		if _, err := tx.LoadAccount(ctx, 4100); err != nil {
			return err
		}

		got, err := tx.AppendTransaction(ctx, deposit(4100, 50))
		require.NoError(t, err)
		require.NotZero(t, got.TransactionID)

		// Staged rows are visible inside the unit of work.
		balance, err := tx.Balance(ctx, 4100)
		require.NoError(t, err)
		require.True(t, balance.Equal(decimal.New(150, 0)))

		return nil
	})
	require.NoError(t, err)

	n, err := s.CountTransactions(ctx, 4100)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	a, err := s.GetAccount(ctx, 4100)
	require.NoError(t, err)
	require.Equal(t, int64(1), a.Version)
}

func TestExecTxRollsBackOnError(t *testing.T) {
	s := seed(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.ExecTx(ctx, func(tx ledgerstore.Tx) error {
		if _, err := tx.LoadAccount(ctx, 4100); err != nil {
			return err
		}

		if _, err := tx.AppendTransaction(ctx, deposit(4100, 50)); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	n, err := s.CountTransactions(ctx, 4100)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestExecTxDetectsAccountConflict(t *testing.T) {
	s := seed(t)
	ctx := context.Background()

	err := s.ExecTx(ctx, func(tx ledgerstore.Tx) error {
		if _, err := tx.LoadAccount(ctx, 4100); err != nil {
			return err
		}

		// Another unit of work appends to the same account meanwhile.
		require.NoError(t, s.ExecTx(ctx, func(other ledgerstore.Tx) error {
			if _, err := other.LoadAccount(ctx, 4100); err != nil {
				return err
			}
			_, err := other.AppendTransaction(ctx, deposit(4100, 1))
			return err
		}))

		_, err := tx.AppendTransaction(ctx, deposit(4100, 50))
		return err
	})
	require.ErrorIs(t, err, domain.ErrConflict)

	n, err := s.CountTransactions(ctx, 4100)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
}

func TestExecTxDetectsCustomerConflict(t *testing.T) {
	s := seed(t)
	ctx := context.Background()

	err := s.ExecTx(ctx, func(tx ledgerstore.Tx) error {
		c, err := tx.LoadCustomer(ctx, 2100)
		if err != nil {
			return err
		}

		require.NoError(t, s.ExecTx(ctx, func(other ledgerstore.Tx) error {
			oc, err := other.LoadCustomer(ctx, 2100)
			if err != nil {
				return err
			}
			oc.FreeTransactions--
			return other.SaveCustomer(ctx, oc)
		}))

		c.FreeTransactions--
		return tx.SaveCustomer(ctx, c)
	})
	require.ErrorIs(t, err, domain.ErrConflict)

	c, err := s.GetCustomer(ctx, 2100)
	require.NoError(t, err)
	require.Equal(t, int32(1), c.FreeTransactions)
}

func TestAppendRequiresLoadedAccount(t *testing.T) {
	s := seed(t)
	ctx := context.Background()

	err := s.ExecTx(ctx, func(tx ledgerstore.Tx) error {
		_, err := tx.AppendTransaction(ctx, deposit(4100, 50))
		return err
	})
	require.Error(t, err)
}

func TestLoadNotFound(t *testing.T) {
	s := seed(t)
	ctx := context.Background()

	err := s.ExecTx(ctx, func(tx ledgerstore.Tx) error {
		_, err := tx.LoadAccount(ctx, 9999)
		require.ErrorIs(t, err, domain.ErrAccountNotFound)

		_, err = tx.LoadCustomer(ctx, 9999)
		require.ErrorIs(t, err, domain.ErrCustomerNotFound)

		_, err = tx.LoadPayee(ctx, 9999)
		require.ErrorIs(t, err, domain.ErrPayeeNotFound)

		_, err = tx.LoadBillPay(ctx, 9999)
		require.ErrorIs(t, err, domain.ErrBillPayNotFound)

		return nil
	})
	require.NoError(t, err)
}

func TestListTransactionsNewestFirst(t *testing.T) {
	s := seed(t)
	ctx := context.Background()

	for i := int64(1); i <= 5; i++ {
		s.AddTransaction(deposit(4101, i))
	}

	page, err := s.ListTransactions(ctx, 4101, 4, 0)
	require.NoError(t, err)
	require.Len(t, page, 4)
	require.True(t, page[0].Amount.Equal(decimal.New(5, 0)))
	require.True(t, page[3].Amount.Equal(decimal.New(2, 0)))

	page, err = s.ListTransactions(ctx, 4101, 4, 4)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.True(t, page[0].Amount.Equal(decimal.New(1, 0)))

	for _, offset := range []int32{5, math.MaxInt32, -8} {
		page, err = s.ListTransactions(ctx, 4101, 4, offset)
		require.NoError(t, err)
		require.Empty(t, page)
	}
}

func TestLoadDueBillPays(t *testing.T) {
	s := seed(t)
	ctx := context.Background()
	now := time.Date(2024, time.February, 9, 12, 0, 0, 0, time.UTC)

	newBillPay := func(at time.Time, status domain.PaymentStatus) domain.BillPay {
		b, err := s.CreateBillPay(ctx, domain.BillPay{
			AccountNumber:   4100,
			PayeeID:         1,
			Amount:          decimal.New(10, 0),
			ScheduleTimeUtc: at,
			Period:          domain.PeriodMonthly,
			Status:          status,
		})
		require.NoError(t, err)
		return b
	}

	later := newBillPay(now.Add(-time.Minute), domain.StatusPending)
	earlier := newBillPay(now.Add(-time.Hour), domain.StatusPending)
	newBillPay(now.Add(time.Minute), domain.StatusPending)
	newBillPay(now.Add(-time.Hour), domain.StatusFailed)
	exact := newBillPay(now, domain.StatusPending)

	due, err := s.LoadDueBillPays(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 3)
	require.Equal(t, earlier.BillPayID, due[0].BillPayID)
	require.Equal(t, later.BillPayID, due[1].BillPayID)
	require.Equal(t, exact.BillPayID, due[2].BillPayID)
}

func TestCreateBillPayChecksReferences(t *testing.T) {
	s := seed(t)
	ctx := context.Background()

	_, err := s.CreateBillPay(ctx, domain.BillPay{AccountNumber: 9999, PayeeID: 1})
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = s.CreateBillPay(ctx, domain.BillPay{AccountNumber: 4100, PayeeID: 9999})
	require.ErrorIs(t, err, domain.ErrPayeeNotFound)
}
