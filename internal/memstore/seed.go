package memstore

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-petr/mcba-ledger/internal/domain"
	"github.com/go-petr/mcba-ledger/pkg/passpkg"
)

// SeedFreeTransactions is the quota every seeded customer starts with.
const SeedFreeTransactions = 2

type seedFile struct {
	Customers []seedCustomer `json:"customers"`
	Payees    []domain.Payee `json:"payees"`
}

type seedCustomer struct {
	domain.Customer
	Login    seedLogin     `json:"login"`
	Accounts []seedAccount `json:"accounts"`
}

type seedLogin struct {
	LoginID  string `json:"login_id"`
	Password string `json:"password"`
}

type seedAccount struct {
	AccountNumber int32              `json:"account_number"`
	AccountType   domain.AccountType `json:"account_type"`
	Transactions  []seedTransaction  `json:"transactions"`
}

type seedTransaction struct {
	Amount             decimal.Decimal `json:"amount"`
	Comment            string          `json:"comment"`
	TransactionTimeUtc time.Time       `json:"transaction_time_utc"`
}

// Seed loads customers, their logins, accounts and opening deposits, and payees
// from a JSON document. Seeded customers get SeedFreeTransactions free transactions.
func (s *Store) Seed(r io.Reader) error {
	var f seedFile

	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return fmt.Errorf("decode seed: %w", err)
	}

	for _, c := range f.Customers {
		hash, err := passpkg.Hash(c.Login.Password)
		if err != nil {
			return err
		}

		customer := c.Customer
		customer.FreeTransactions = SeedFreeTransactions

		s.AddCustomer(customer)
		s.AddLogin(domain.Login{LoginID: c.Login.LoginID, CustomerID: customer.CustomerID, PasswordHash: hash})

		for _, a := range c.Accounts {
			if !a.AccountType.Valid() {
				return fmt.Errorf("account %d: unknown account type %q", a.AccountNumber, a.AccountType)
			}

			s.AddAccount(domain.Account{AccountNumber: a.AccountNumber, AccountType: a.AccountType, CustomerID: customer.CustomerID})

			for _, t := range a.Transactions {
				s.AddTransaction(domain.Transaction{
					AccountNumber:      a.AccountNumber,
					Kind:               domain.KindDeposit,
					Amount:             t.Amount,
					Comment:            t.Comment,
					TransactionTimeUtc: t.TransactionTimeUtc.UTC(),
				})
			}
		}
	}

	for _, p := range f.Payees {
		s.AddPayee(p)
	}

	return nil
}
