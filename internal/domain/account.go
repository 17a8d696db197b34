// Package domain provides defenitions of all entities.
package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountType distinguishes checking from savings accounts.
type AccountType string

// Supported account types. The values are the persisted codes.
const (
	AccountTypeChecking AccountType = "C"
	AccountTypeSavings  AccountType = "S"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	return t == AccountTypeChecking || t == AccountTypeSavings
}

// String returns the human readable account type.
func (t AccountType) String() string {
	switch t {
	case AccountTypeChecking:
		return "Checking"
	case AccountTypeSavings:
		return "Savings"
	}

	return fmt.Sprintf("AccountType(%q)", string(t))
}

// Account holds the identity of a ledger account. Its balance is never stored,
// it is derived from the account's transactions.
type Account struct {
	AccountNumber int32       `json:"account_number"`
	AccountType   AccountType `json:"account_type"`
	CustomerID    int32       `json:"customer_id"`
	Version       int64       `json:"-"`
}

// OwnedBy reports whether the account belongs to the customer.
func (a Account) OwnedBy(customerID int32) bool {
	return a.CustomerID == customerID
}

// AccountSummary is an account together with its derived balances.
type AccountSummary struct {
	Account
	Balance          decimal.Decimal `json:"balance"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
}

// StatementPage is one page of an account's transactions, newest first.
type StatementPage struct {
	AccountNumber int32         `json:"account_number"`
	Transactions  []Transaction `json:"transactions"`
	Page          int32         `json:"page"`
	TotalPages    int32         `json:"total_pages"`
}
