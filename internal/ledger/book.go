package ledger

import (
	"github.com/go-petr/mcba-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// Book is an arena of transaction logs keyed by account number.
//
// Balances are computed on demand and cached until the next append to the
// same account. Book is not safe for concurrent use.
type Book struct {
	logs     map[int32][]domain.Transaction
	balances map[int32]decimal.Decimal
}

// NewBook returns an empty Book.
func NewBook() *Book {
	return &Book{
		logs:     make(map[int32][]domain.Transaction),
		balances: make(map[int32]decimal.Decimal),
	}
}

// Append adds t at the end of its account's log.
func (b *Book) Append(t domain.Transaction) {
	b.logs[t.AccountNumber] = append(b.logs[t.AccountNumber], t)
	delete(b.balances, t.AccountNumber)
}

// Transactions returns a copy of the account's log in insertion order.
func (b *Book) Transactions(accountNumber int32) []domain.Transaction {
	log := b.logs[accountNumber]

	out := make([]domain.Transaction, len(log))
	copy(out, log)

	return out
}

// Len returns the number of transactions of the account.
func (b *Book) Len(accountNumber int32) int {
	return len(b.logs[accountNumber])
}

// Balance returns the account's balance.
func (b *Book) Balance(accountNumber int32) decimal.Decimal {
	if balance, ok := b.balances[accountNumber]; ok {
		return balance
	}

	balance := Balance(b.logs[accountNumber])
	b.balances[accountNumber] = balance

	return balance
}
