// Package ledger derives balances from transaction logs and applies the minimum balance policy.
package ledger

import (
	"strings"

	"github.com/go-petr/mcba-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	checkingMinimum = decimal.New(300, 0)
	savingsMinimum  = decimal.Zero
)

// Balance folds the transactions into the account balance. An empty log has a zero balance.
func Balance(txs []domain.Transaction) decimal.Decimal {
	balance := decimal.Zero

	for _, t := range txs {
		balance = balance.Add(t.Signed())
	}

	return balance
}

// MinimumAmount returns the balance that must stay on an account of the given type.
func MinimumAmount(t domain.AccountType) decimal.Decimal {
	if t == domain.AccountTypeChecking {
		return checkingMinimum
	}

	return savingsMinimum
}

// Available returns the part of balance that may be spent.
func Available(t domain.AccountType, balance decimal.Decimal) decimal.Decimal {
	return balance.Sub(MinimumAmount(t))
}

// AvailableBalance returns the spendable balance of an account with the given log.
func AvailableBalance(t domain.AccountType, txs []domain.Transaction) decimal.Decimal {
	return Available(t, Balance(txs))
}

// HasValidPrecision reports whether amount has at most two decimal places.
// Trailing zeros do not count, 1.500 is valid.
func HasValidPrecision(amount decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(2))
}

// ParseAmount parses a money amount. It must be a positive decimal with at most
// two decimal places.
func ParseAmount(amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return decimal.Zero, domain.ErrInvalidAmount
	}

	if !d.IsPositive() {
		return decimal.Zero, domain.ErrNonPositiveAmount
	}

	if !HasValidPrecision(d) {
		return decimal.Zero, domain.ErrTooManyDecimals
	}

	return d, nil
}

// Summarize returns the account with its balances.
func Summarize(a domain.Account, balance decimal.Decimal) domain.AccountSummary {
	return domain.AccountSummary{
		Account:          a,
		Balance:          balance,
		AvailableBalance: Available(a.AccountType, balance),
	}
}
