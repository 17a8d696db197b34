package memstore

import (
	"context"
	"fmt"

	"github.com/go-petr/mcba-ledger/internal/domain"
	"github.com/go-petr/mcba-ledger/pkg/errorspkg"
	"github.com/shopspring/decimal"
)

// memTx records the versions it read and stages its writes until commit.
type memTx struct {
	s *Store

	accountVersions  map[int32]int64
	customerVersions map[int32]int64
	billPayVersions  map[int32]int64

	appended       []domain.Transaction
	touched        map[int32]struct{}
	savedCustomers map[int32]domain.Customer
	savedBillPays  map[int32]domain.BillPay
}

func newTx(s *Store) *memTx {
	return &memTx{
		s:                s,
		accountVersions:  make(map[int32]int64),
		customerVersions: make(map[int32]int64),
		billPayVersions:  make(map[int32]int64),
		touched:          make(map[int32]struct{}),
		savedCustomers:   make(map[int32]domain.Customer),
		savedBillPays:    make(map[int32]domain.BillPay),
	}
}

func (tx *memTx) LoadAccount(ctx context.Context, accountNumber int32) (domain.Account, error) {
	tx.s.mu.Lock()
	defer tx.s.mu.Unlock()

	a, ok := tx.s.accounts[accountNumber]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	if v, seen := tx.accountVersions[accountNumber]; seen {
		a.Version = v
	} else {
		tx.accountVersions[accountNumber] = a.Version
	}

	return a, nil
}

func (tx *memTx) LoadCustomer(ctx context.Context, customerID int32) (domain.Customer, error) {
	if c, ok := tx.savedCustomers[customerID]; ok {
		return c, nil
	}

	tx.s.mu.Lock()
	defer tx.s.mu.Unlock()

	c, ok := tx.s.customers[customerID]
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}

	if _, seen := tx.customerVersions[customerID]; !seen {
		tx.customerVersions[customerID] = c.Version
	}

	return c, nil
}

func (tx *memTx) LoadPayee(ctx context.Context, payeeID int32) (domain.Payee, error) {
	tx.s.mu.Lock()
	defer tx.s.mu.Unlock()

	p, ok := tx.s.payees[payeeID]
	if !ok {
		return domain.Payee{}, domain.ErrPayeeNotFound
	}

	return p, nil
}

func (tx *memTx) LoadBillPay(ctx context.Context, billPayID int32) (domain.BillPay, error) {
	if b, ok := tx.savedBillPays[billPayID]; ok {
		return b, nil
	}

	tx.s.mu.Lock()
	defer tx.s.mu.Unlock()

	b, ok := tx.s.billPays[billPayID]
	if !ok {
		return domain.BillPay{}, domain.ErrBillPayNotFound
	}

	if _, seen := tx.billPayVersions[billPayID]; !seen {
		tx.billPayVersions[billPayID] = b.Version
	}

	return b, nil
}

func (tx *memTx) Balance(ctx context.Context, accountNumber int32) (decimal.Decimal, error) {
	tx.s.mu.Lock()
	balance := tx.s.book.Balance(accountNumber)
	tx.s.mu.Unlock()

	for _, t := range tx.appended {
		if t.AccountNumber == accountNumber {
			balance = balance.Add(t.Signed())
		}
	}

	return balance, nil
}

func (tx *memTx) AppendTransaction(ctx context.Context, t domain.Transaction) (domain.Transaction, error) {
	if _, ok := tx.accountVersions[t.AccountNumber]; !ok {
		return t, fmt.Errorf("append to account %d: %w", t.AccountNumber, errorspkg.ErrInternal)
	}

	t.TransactionID = tx.s.lastTransactionID.Add(1)
	tx.appended = append(tx.appended, t)
	tx.touched[t.AccountNumber] = struct{}{}

	return t, nil
}

func (tx *memTx) SaveCustomer(ctx context.Context, c domain.Customer) error {
	v, ok := tx.customerVersions[c.CustomerID]
	if !ok {
		return fmt.Errorf("save customer %d: %w", c.CustomerID, errorspkg.ErrInternal)
	}

	if c.Version != v {
		return domain.ErrConflict
	}

	tx.savedCustomers[c.CustomerID] = c

	return nil
}

func (tx *memTx) SaveBillPay(ctx context.Context, b domain.BillPay) error {
	v, ok := tx.billPayVersions[b.BillPayID]
	if !ok {
		return fmt.Errorf("save bill payment %d: %w", b.BillPayID, errorspkg.ErrInternal)
	}

	if b.Version != v {
		return domain.ErrConflict
	}

	tx.savedBillPays[b.BillPayID] = b

	return nil
}
