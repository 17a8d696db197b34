// Package memstore is an in-memory ledger store.
//
// Transaction logs live in a ledger.Book arena keyed by account number. Units of
// work stage their writes and validate the versions they read when they commit,
// so concurrent operations on the same account or customer conflict instead of
// overwriting each other.
package memstore

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-petr/mcba-ledger/internal/domain"
	"github.com/go-petr/mcba-ledger/internal/ledger"
	"github.com/go-petr/mcba-ledger/internal/ledgerstore"
)

// Store keeps the whole ledger in memory. It is safe for concurrent use.
type Store struct {
	mu        sync.Mutex
	accounts  map[int32]domain.Account
	customers map[int32]domain.Customer
	logins    map[string]domain.Login
	payees    map[int32]domain.Payee
	billPays  map[int32]domain.BillPay
	book      *ledger.Book

	lastTransactionID atomic.Int64
	lastBillPayID     atomic.Int32
}

var _ ledgerstore.Store = (*Store)(nil)

// New returns an empty Store.
func New() *Store {
	return &Store{
		accounts:  make(map[int32]domain.Account),
		customers: make(map[int32]domain.Customer),
		logins:    make(map[string]domain.Login),
		payees:    make(map[int32]domain.Payee),
		billPays:  make(map[int32]domain.BillPay),
		book:      ledger.NewBook(),
	}
}

// AddCustomer stores c as onboarded.
func (s *Store) AddCustomer(c domain.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers[c.CustomerID] = c
}

// AddLogin stores the login of a customer.
func (s *Store) AddLogin(l domain.Login) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logins[l.LoginID] = l
}

// AddAccount stores a as onboarded.
func (s *Store) AddAccount(a domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts[a.AccountNumber] = a
}

// AddPayee stores p.
func (s *Store) AddPayee(p domain.Payee) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.payees[p.PayeeID] = p
}

// AddTransaction appends an opening row outside of any unit of work and returns it with its id.
func (s *Store) AddTransaction(t domain.Transaction) domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.TransactionID = s.lastTransactionID.Add(1)
	s.book.Append(t)

	return t
}

// ExecTx runs fn in a unit of work and commits its staged writes.
func (s *Store) ExecTx(ctx context.Context, fn func(ledgerstore.Tx) error) error {
	tx := newTx(s)

	if err := fn(tx); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return s.commit(tx)
}

func (s *Store) commit(tx *memTx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for number := range tx.touched {
		if s.accounts[number].Version != tx.accountVersions[number] {
			return domain.ErrConflict
		}
	}

	for id := range tx.savedCustomers {
		if s.customers[id].Version != tx.customerVersions[id] {
			return domain.ErrConflict
		}
	}

	for id := range tx.savedBillPays {
		cur, ok := s.billPays[id]
		if !ok || cur.Version != tx.billPayVersions[id] {
			return domain.ErrConflict
		}
	}

	for _, t := range tx.appended {
		s.book.Append(t)
	}

	for number := range tx.touched {
		a := s.accounts[number]
		a.Version++
		s.accounts[number] = a
	}

	for id, c := range tx.savedCustomers {
		c.Version = s.customers[id].Version + 1
		s.customers[id] = c
	}

	for id, b := range tx.savedBillPays {
		b.Version = s.billPays[id].Version + 1
		s.billPays[id] = b
	}

	return nil
}

// LoadDueBillPays returns pending bill payments scheduled at or before now and
// not executed at or after now, oldest first.
func (s *Store) LoadDueBillPays(ctx context.Context, now time.Time) ([]domain.BillPay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	due := []domain.BillPay{}

	for _, b := range s.billPays {
		if b.IsDue(now) {
			due = append(due, b)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if !due[i].ScheduleTimeUtc.Equal(due[j].ScheduleTimeUtc) {
			return due[i].ScheduleTimeUtc.Before(due[j].ScheduleTimeUtc)
		}
		return due[i].BillPayID < due[j].BillPayID
	})

	return due, nil
}
