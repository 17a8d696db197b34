// Package feepolicy decides whether a movement consumes a free transaction or incurs a flat fee.
package feepolicy

import (
	"time"

	"github.com/go-petr/mcba-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// ServiceChargeComment is the comment of every service charge row.
const ServiceChargeComment = "Service Charge"

// Flat fees of the fee bearing movements.
var (
	WithdrawalFee = decimal.New(5, -2)
	TransferFee   = decimal.New(10, -2)
)

// FeeFor returns the fee charged for a movement of the given kind when no free
// transaction is left. Deposits are free.
func FeeFor(kind domain.TransactionKind) decimal.Decimal {
	switch kind {
	case domain.KindWithdraw:
		return WithdrawalFee
	case domain.KindTransfer, domain.KindBillPay:
		return TransferFee
	}

	return decimal.Zero
}

// HasFreeTransaction reports whether the customer still has free transactions.
func HasFreeTransaction(c domain.Customer) bool {
	return c.FreeTransactions > 0
}

// Outcome is the result of applying the policy to one movement.
type Outcome struct {
	Customer            domain.Customer
	ServiceCharge       *domain.Transaction
	UsedFreeTransaction bool
}

// Apply consumes one free transaction of the customer if there is any. Otherwise
// it returns a service charge of fee for the account and leaves the quota untouched.
func Apply(c domain.Customer, accountNumber int32, fee decimal.Decimal, at time.Time) Outcome {
	if HasFreeTransaction(c) {
		c.FreeTransactions--
		return Outcome{Customer: c, UsedFreeTransaction: true}
	}

	return Outcome{
		Customer: c,
		ServiceCharge: &domain.Transaction{
			AccountNumber:      accountNumber,
			Kind:               domain.KindServiceCharge,
			Amount:             fee,
			Comment:            ServiceChargeComment,
			TransactionTimeUtc: at,
		},
	}
}

// SpendingLimit returns the most the customer may move out of an account with
// the given available balance, keeping room for the fee when it will be charged.
func SpendingLimit(c domain.Customer, available, fee decimal.Decimal) decimal.Decimal {
	if HasFreeTransaction(c) {
		return available
	}

	return available.Sub(fee)
}
