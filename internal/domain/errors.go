package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the ledger core wraps exactly one of them,
// so callers can branch with errors.Is.
var (
	// ErrValidation indicates a request that was rejected before anything was attempted.
	ErrValidation = errors.New("validation failed")
	// ErrInsufficientFunds indicates that the available balance does not cover the movement.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrConflict indicates that a row changed since it was read. The whole operation may be retried.
	ErrConflict = errors.New("concurrent update conflict")
	// ErrNotFound indicates a missing account, customer, payee or bill payment.
	ErrNotFound = errors.New("not found")
)

var (
	// ErrInvalidAmount indicates an amount that is not a decimal number.
	ErrInvalidAmount = fmt.Errorf("%w: invalid amount", ErrValidation)
	// ErrNonPositiveAmount indicates a zero or negative amount.
	ErrNonPositiveAmount = fmt.Errorf("%w: amount must be positive", ErrValidation)
	// ErrTooManyDecimals indicates an amount with more than two decimal places.
	ErrTooManyDecimals = fmt.Errorf("%w: amount cannot have more than 2 decimal places", ErrValidation)
	// ErrCommentTooLong indicates a comment longer than MaxCommentLength.
	ErrCommentTooLong = fmt.Errorf("%w: comment is too long", ErrValidation)
	// ErrInvalidDestination indicates a transfer to an account that does not exist.
	ErrInvalidDestination = fmt.Errorf("%w: destination account is invalid", ErrValidation)
	// ErrSelfTransfer indicates a transfer whose destination is its source.
	ErrSelfTransfer = fmt.Errorf("%w: cannot transfer to the same account", ErrValidation)
	// ErrAccountNotOwned indicates that the customer does not own the account.
	ErrAccountNotOwned = fmt.Errorf("%w: account does not belong to the customer", ErrValidation)
	// ErrInvalidPeriod indicates an unknown bill payment period.
	ErrInvalidPeriod = fmt.Errorf("%w: invalid period", ErrValidation)
	// ErrInvalidPage indicates a statement page below one.
	ErrInvalidPage = fmt.Errorf("%w: invalid page", ErrValidation)
	// ErrInvalidSchedule indicates a zero bill payment schedule time.
	ErrInvalidSchedule = fmt.Errorf("%w: invalid schedule time", ErrValidation)
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = fmt.Errorf("account %w", ErrNotFound)
	// ErrCustomerNotFound indicates that the customer is not found.
	ErrCustomerNotFound = fmt.Errorf("customer %w", ErrNotFound)
	// ErrPayeeNotFound indicates that the payee is not found.
	ErrPayeeNotFound = fmt.Errorf("payee %w", ErrNotFound)
	// ErrBillPayNotFound indicates that the bill payment is not found.
	ErrBillPayNotFound = fmt.Errorf("bill payment %w", ErrNotFound)
	// ErrLoginNotFound indicates that the login is not found.
	ErrLoginNotFound = fmt.Errorf("login %w", ErrNotFound)
)

// ErrWrongPassword indicates the wrong password for the given login.
var ErrWrongPassword = errors.New("wrong password")
