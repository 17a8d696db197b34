// Package ledgerstore defines the persistence boundary of the ledger core.
//
// Every logical operation runs inside Store.ExecTx. The function passed to
// ExecTx sees a consistent Tx; all rows it appends or saves are committed
// together or not at all. Rows that were changed by somebody else since they
// were read in the same Tx make the commit fail with domain.ErrConflict.
package ledgerstore

import (
	"context"
	"time"

	"github.com/go-petr/mcba-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// Tx is a unit of work against the ledger.
type Tx interface {
	LoadAccount(ctx context.Context, accountNumber int32) (domain.Account, error)
	LoadCustomer(ctx context.Context, customerID int32) (domain.Customer, error)
	LoadPayee(ctx context.Context, payeeID int32) (domain.Payee, error)
	LoadBillPay(ctx context.Context, billPayID int32) (domain.BillPay, error)

	// Balance returns the account balance including rows appended in this Tx.
	Balance(ctx context.Context, accountNumber int32) (decimal.Decimal, error)

	// AppendTransaction adds t to its account's log and returns it with its id.
	// The account must have been loaded in the same Tx.
	AppendTransaction(ctx context.Context, t domain.Transaction) (domain.Transaction, error)
	SaveCustomer(ctx context.Context, c domain.Customer) error
	SaveBillPay(ctx context.Context, b domain.BillPay) error
}

// Store runs units of work and answers the scheduler's due query.
type Store interface {
	ExecTx(ctx context.Context, fn func(Tx) error) error
	LoadDueBillPays(ctx context.Context, now time.Time) ([]domain.BillPay, error)
}
