// Package transferservice manages business logic layer of money movements.
//
// Deposits, withdrawals, transfers and bill payments each run as one unit of
// work: the balance check, the new transaction rows and the quota update are
// committed together or not at all.
package transferservice

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/mcba-ledger/internal/domain"
	"github.com/go-petr/mcba-ledger/internal/feepolicy"
	"github.com/go-petr/mcba-ledger/internal/ledger"
	"github.com/go-petr/mcba-ledger/internal/ledgerstore"
)

// BillPayComment is the comment of every bill payment row.
const BillPayComment = "BillPay"

// Service facilitates money movement service layer logic.
type Service struct {
	store ledgerstore.Store
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock makes the Service timestamp rows with now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New returns transfer service struct to manage money movements.
func New(store ledgerstore.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Deposit appends a deposit to the account.
func (s *Service) Deposit(ctx context.Context, arg domain.DepositParams) (domain.MovementResult, error) {
	return s.deposit(ctx, nil, arg)
}

// DepositToOwnAccount appends a deposit to one of the customer's accounts.
func (s *Service) DepositToOwnAccount(ctx context.Context, customerID int32, arg domain.DepositParams) (domain.MovementResult, error) {
	return s.deposit(ctx, &customerID, arg)
}

func (s *Service) deposit(ctx context.Context, customerID *int32, arg domain.DepositParams) (domain.MovementResult, error) {
	var result domain.MovementResult

	amount, err := ledger.ParseAmount(arg.Amount)
	if err == nil {
		err = validComment(arg.Comment)
	}

	if err != nil {
		logFailure(ctx, "deposit", err)
		return result, err
	}

	err = s.store.ExecTx(ctx, func(tx ledgerstore.Tx) error {
		account, err := tx.LoadAccount(ctx, arg.AccountNumber)
		if err != nil {
			return err
		}

		if customerID != nil && !account.OwnedBy(*customerID) {
			return domain.ErrAccountNotOwned
		}

		t, err := tx.AppendTransaction(ctx, domain.Transaction{
			AccountNumber:      account.AccountNumber,
			Kind:               domain.KindDeposit,
			Amount:             amount,
			Comment:            arg.Comment,
			TransactionTimeUtc: s.now(),
		})
		if err != nil {
			return err
		}

		result.Transactions = append(result.Transactions, t)

		return nil
	})
	if err != nil {
		logFailure(ctx, "deposit", err)
		return domain.MovementResult{}, err
	}

	return result, nil
}

// Withdraw takes amount out of the customer's account and charges the withdrawal
// fee unless the customer has a free transaction left.
func (s *Service) Withdraw(ctx context.Context, customerID int32, arg domain.WithdrawParams) (domain.MovementResult, error) {
	var result domain.MovementResult

	amount, err := ledger.ParseAmount(arg.Amount)
	if err == nil {
		err = validComment(arg.Comment)
	}

	if err != nil {
		logFailure(ctx, "withdraw", err)
		return result, err
	}

	err = s.store.ExecTx(ctx, func(tx ledgerstore.Tx) error {
		account, err := loadOwnedAccount(ctx, tx, customerID, arg.AccountNumber)
		if err != nil {
			return err
		}

		customer, err := tx.LoadCustomer(ctx, customerID)
		if err != nil {
			return err
		}

		fee := feepolicy.FeeFor(domain.KindWithdraw)

		if err := checkFunds(ctx, tx, account, customer, amount, fee); err != nil {
			return err
		}

		at := s.now()

		t, err := tx.AppendTransaction(ctx, domain.Transaction{
			AccountNumber:      account.AccountNumber,
			Kind:               domain.KindWithdraw,
			Amount:             amount,
			Comment:            arg.Comment,
			TransactionTimeUtc: at,
		})
		if err != nil {
			return err
		}

		charges, err := applyFee(ctx, tx, customer, account.AccountNumber, fee, at)
		if err != nil {
			return err
		}

		result.Transactions = append([]domain.Transaction{t}, charges...)

		return nil
	})
	if err != nil {
		logFailure(ctx, "withdraw", err)
		return domain.MovementResult{}, err
	}

	return result, nil
}

// Transfer moves amount between two ledger accounts. Both legs share one
// timestamp and transfer id and are committed together with the fee.
func (s *Service) Transfer(ctx context.Context, customerID int32, arg domain.TransferParams) (domain.MovementResult, error) {
	var result domain.MovementResult

	err := s.store.ExecTx(ctx, func(tx ledgerstore.Tx) error {
		source, err := loadOwnedAccount(ctx, tx, customerID, arg.SourceAccountNumber)
		if err != nil {
			return err
		}

		destination, err := tx.LoadAccount(ctx, arg.DestinationAccountNumber)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInvalidDestination
		}

		if err != nil {
			return err
		}

		if destination.AccountNumber == source.AccountNumber {
			return domain.ErrSelfTransfer
		}

		amount, err := ledger.ParseAmount(arg.Amount)
		if err != nil {
			return err
		}

		if err := validComment(arg.Comment); err != nil {
			return err
		}

		customer, err := tx.LoadCustomer(ctx, customerID)
		if err != nil {
			return err
		}

		fee := feepolicy.FeeFor(domain.KindTransfer)

		if err := checkFunds(ctx, tx, source, customer, amount, fee); err != nil {
			return err
		}

		at := s.now()
		transferID := uuid.New()
		destinationNumber := destination.AccountNumber

		outgoing := domain.Transaction{
			AccountNumber:            source.AccountNumber,
			Kind:                     domain.KindTransfer,
			Direction:                domain.DirectionOutgoing,
			Amount:                   amount,
			Comment:                  arg.Comment,
			TransactionTimeUtc:       at,
			DestinationAccountNumber: &destinationNumber,
			TransferID:               transferID,
		}

		incoming := domain.Transaction{
			AccountNumber:      destination.AccountNumber,
			Kind:               domain.KindTransfer,
			Direction:          domain.DirectionIncoming,
			Amount:             amount,
			Comment:            arg.Comment,
			TransactionTimeUtc: at,
			TransferID:         transferID,
		}

		// To avoid deadlocks append legs in consistent account order.
		legs := []domain.Transaction{outgoing, incoming}
		if destination.AccountNumber < source.AccountNumber {
			legs = []domain.Transaction{incoming, outgoing}
		}

		for _, leg := range legs {
			t, err := tx.AppendTransaction(ctx, leg)
			if err != nil {
				return err
			}

			result.Transactions = append(result.Transactions, t)
		}

		charges, err := applyFee(ctx, tx, customer, source.AccountNumber, fee, at)
		if err != nil {
			return err
		}

		result.Transactions = append(result.Transactions, charges...)

		return nil
	})
	if err != nil {
		logFailure(ctx, "transfer", err)
		return domain.MovementResult{}, err
	}

	return result, nil
}

// PayBill debits a due bill payment from its account inside the caller's unit of work.
//
// The payee is outside the ledger, so only the debit row is written. The fee
// policy of transfers applies to the account owner.
func (s *Service) PayBill(ctx context.Context, tx ledgerstore.Tx, entry domain.BillPay, now time.Time) ([]domain.Transaction, error) {
	if !entry.Amount.IsPositive() {
		return nil, domain.ErrNonPositiveAmount
	}

	if !ledger.HasValidPrecision(entry.Amount) {
		return nil, domain.ErrTooManyDecimals
	}

	account, err := tx.LoadAccount(ctx, entry.AccountNumber)
	if err != nil {
		return nil, err
	}

	if _, err := tx.LoadPayee(ctx, entry.PayeeID); err != nil {
		return nil, err
	}

	customer, err := tx.LoadCustomer(ctx, account.CustomerID)
	if err != nil {
		return nil, err
	}

	fee := feepolicy.FeeFor(domain.KindBillPay)

	if err := checkFunds(ctx, tx, account, customer, entry.Amount, fee); err != nil {
		return nil, err
	}

	t, err := tx.AppendTransaction(ctx, domain.Transaction{
		AccountNumber:      account.AccountNumber,
		Kind:               domain.KindBillPay,
		Amount:             entry.Amount,
		Comment:            BillPayComment,
		TransactionTimeUtc: now,
	})
	if err != nil {
		return nil, err
	}

	charges, err := applyFee(ctx, tx, customer, account.AccountNumber, fee, now)
	if err != nil {
		return nil, err
	}

	return append([]domain.Transaction{t}, charges...), nil
}

func validComment(comment string) error {
	if utf8.RuneCountInString(comment) > domain.MaxCommentLength {
		return domain.ErrCommentTooLong
	}

	return nil
}

func loadOwnedAccount(ctx context.Context, tx ledgerstore.Tx, customerID, accountNumber int32) (domain.Account, error) {
	account, err := tx.LoadAccount(ctx, accountNumber)
	if err != nil {
		return account, err
	}

	if !account.OwnedBy(customerID) {
		return domain.Account{}, domain.ErrAccountNotOwned
	}

	return account, nil
}

// checkFunds rejects amount when it exceeds the available balance less the fee
// that will be charged.
func checkFunds(ctx context.Context, tx ledgerstore.Tx, account domain.Account, customer domain.Customer, amount, fee decimal.Decimal) error {
	balance, err := tx.Balance(ctx, account.AccountNumber)
	if err != nil {
		return err
	}

	limit := feepolicy.SpendingLimit(customer, ledger.Available(account.AccountType, balance), fee)
	if amount.GreaterThan(limit) {
		return domain.ErrInsufficientFunds
	}

	return nil
}

func applyFee(ctx context.Context, tx ledgerstore.Tx, customer domain.Customer, accountNumber int32, fee decimal.Decimal, at time.Time) ([]domain.Transaction, error) {
	outcome := feepolicy.Apply(customer, accountNumber, fee, at)

	if outcome.ServiceCharge == nil {
		return nil, tx.SaveCustomer(ctx, outcome.Customer)
	}

	t, err := tx.AppendTransaction(ctx, *outcome.ServiceCharge)
	if err != nil {
		return nil, err
	}

	return []domain.Transaction{t}, nil
}

func logFailure(ctx context.Context, op string, err error) {
	l := zerolog.Ctx(ctx)

	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrConflict):
		l.Info().Err(err).Str("op", op).Send()
	default:
		l.Error().Err(err).Str("op", op).Send()
	}
}
