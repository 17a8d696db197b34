package memstore

import (
	"context"
	"sort"

	"github.com/go-petr/mcba-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// GetAccount returns the account with the given number.
func (s *Store) GetAccount(ctx context.Context, accountNumber int32) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[accountNumber]
	if !ok {
		return a, domain.ErrAccountNotFound
	}

	return a, nil
}

// GetCustomer returns the customer with the given id.
func (s *Store) GetCustomer(ctx context.Context, customerID int32) (domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers[customerID]
	if !ok {
		return c, domain.ErrCustomerNotFound
	}

	return c, nil
}

// ListAccounts returns the customer's accounts ordered by number.
func (s *Store) ListAccounts(ctx context.Context, customerID int32) ([]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := []domain.Account{}

	for _, a := range s.accounts {
		if a.CustomerID == customerID {
			items = append(items, a)
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].AccountNumber < items[j].AccountNumber })

	return items, nil
}

// AccountBalance returns the balance of the account's committed log.
func (s *Store) AccountBalance(ctx context.Context, accountNumber int32) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[accountNumber]; !ok {
		return decimal.Zero, domain.ErrAccountNotFound
	}

	return s.book.Balance(accountNumber), nil
}

// ListTransactions returns a page of the account's log, newest first.
func (s *Store) ListTransactions(ctx context.Context, accountNumber, limit, offset int32) ([]domain.Transaction, error) {
	s.mu.Lock()
	log := s.book.Transactions(accountNumber)
	s.mu.Unlock()

	items := []domain.Transaction{}
	if offset < 0 || int(offset) >= len(log) {
		return items, nil
	}

	for i := len(log) - 1 - int(offset); i >= 0 && len(items) < int(limit); i-- {
		items = append(items, log[i])
	}

	return items, nil
}

// CountTransactions returns the number of rows in the account's log.
func (s *Store) CountTransactions(ctx context.Context, accountNumber int32) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return int64(s.book.Len(accountNumber)), nil
}

// GetLogin returns the login with the given id.
func (s *Store) GetLogin(ctx context.Context, loginID string) (domain.Login, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.logins[loginID]
	if !ok {
		return l, domain.ErrLoginNotFound
	}

	return l, nil
}

// GetPayee returns the payee with the given id.
func (s *Store) GetPayee(ctx context.Context, payeeID int32) (domain.Payee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.payees[payeeID]
	if !ok {
		return p, domain.ErrPayeeNotFound
	}

	return p, nil
}

// CreateBillPay stores a new bill payment and returns it with its id.
func (s *Store) CreateBillPay(ctx context.Context, b domain.BillPay) (domain.BillPay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[b.AccountNumber]; !ok {
		return b, domain.ErrAccountNotFound
	}

	if _, ok := s.payees[b.PayeeID]; !ok {
		return b, domain.ErrPayeeNotFound
	}

	b.BillPayID = s.lastBillPayID.Add(1)
	b.Version = 0
	s.billPays[b.BillPayID] = b

	return b, nil
}

// GetBillPay returns the bill payment with the given id.
func (s *Store) GetBillPay(ctx context.Context, billPayID int32) (domain.BillPay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.billPays[billPayID]
	if !ok {
		return b, domain.ErrBillPayNotFound
	}

	return b, nil
}

// ListBillPays returns the bill payments paid from the customer's accounts.
func (s *Store) ListBillPays(ctx context.Context, customerID int32) ([]domain.BillPay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := []domain.BillPay{}

	for _, b := range s.billPays {
		if s.accounts[b.AccountNumber].CustomerID == customerID {
			items = append(items, b)
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].BillPayID < items[j].BillPayID })

	return items, nil
}

// DeleteBillPay removes the bill payment with the given id.
func (s *Store) DeleteBillPay(ctx context.Context, billPayID int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.billPays[billPayID]; !ok {
		return domain.ErrBillPayNotFound
	}

	delete(s.billPays, billPayID)

	return nil
}
