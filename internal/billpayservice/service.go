// Package billpayservice manages business logic layer of scheduled bill payments.
package billpayservice

//go:generate mockgen -source service.go -destination service_mock.go -package billpayservice

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/mcba-ledger/internal/domain"
	"github.com/go-petr/mcba-ledger/internal/ledger"
	"github.com/go-petr/mcba-ledger/internal/ledgerstore"
)

// Repo provides data access layer interface needed by bill payment service layer.
type Repo interface {
	GetAccount(ctx context.Context, accountNumber int32) (domain.Account, error)
	GetPayee(ctx context.Context, payeeID int32) (domain.Payee, error)
	CreateBillPay(ctx context.Context, b domain.BillPay) (domain.BillPay, error)
	GetBillPay(ctx context.Context, billPayID int32) (domain.BillPay, error)
	ListBillPays(ctx context.Context, customerID int32) ([]domain.BillPay, error)
	DeleteBillPay(ctx context.Context, billPayID int32) error
}

// Payer debits a due bill payment inside a unit of work.
type Payer interface {
	PayBill(ctx context.Context, tx ledgerstore.Tx, entry domain.BillPay, now time.Time) ([]domain.Transaction, error)
}

// Service facilitates bill payment service layer logic.
type Service struct {
	store ledgerstore.Store
	repo  Repo
	payer Payer
}

// New returns bill payment service struct to manage bill payments.
func New(store ledgerstore.Store, repo Repo, payer Payer) *Service {
	return &Service{
		store: store,
		repo:  repo,
		payer: payer,
	}
}

var errNotDue = errors.New("bill payment is not due")

// Create schedules a new pending bill payment from one of the customer's accounts.
func (s *Service) Create(ctx context.Context, customerID int32, arg domain.CreateBillPayParams) (domain.BillPay, error) {
	l := zerolog.Ctx(ctx)

	amount, err := validate(arg.Amount, arg.ScheduleTimeUtc, arg.Period)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.BillPay{}, err
	}

	if _, err := s.ownedAccount(ctx, customerID, arg.AccountNumber); err != nil {
		return domain.BillPay{}, err
	}

	if _, err := s.repo.GetPayee(ctx, arg.PayeeID); err != nil {
		return domain.BillPay{}, err
	}

	return s.repo.CreateBillPay(ctx, domain.BillPay{
		AccountNumber:   arg.AccountNumber,
		PayeeID:         arg.PayeeID,
		Amount:          amount,
		ScheduleTimeUtc: arg.ScheduleTimeUtc.UTC(),
		Period:          arg.Period,
		Status:          domain.StatusPending,
	})
}

// List returns the bill payments of the customer.
func (s *Service) List(ctx context.Context, customerID int32) ([]domain.BillPay, error) {
	return s.repo.ListBillPays(ctx, customerID)
}

// Get returns the customer's bill payment with the given id.
func (s *Service) Get(ctx context.Context, customerID, billPayID int32) (domain.BillPay, error) {
	b, err := s.repo.GetBillPay(ctx, billPayID)
	if err != nil {
		return domain.BillPay{}, err
	}

	if _, err := s.ownedAccount(ctx, customerID, b.AccountNumber); err != nil {
		return domain.BillPay{}, err
	}

	return b, nil
}

// Update changes the payee, amount, schedule and period of the customer's bill
// payment and makes it pending again.
func (s *Service) Update(ctx context.Context, customerID int32, arg domain.UpdateBillPayParams) (domain.BillPay, error) {
	var updated domain.BillPay

	amount, err := validate(arg.Amount, arg.ScheduleTimeUtc, arg.Period)
	if err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Send()
		return updated, err
	}

	err = s.store.ExecTx(ctx, func(tx ledgerstore.Tx) error {
		b, err := tx.LoadBillPay(ctx, arg.BillPayID)
		if err != nil {
			return err
		}

		account, err := tx.LoadAccount(ctx, b.AccountNumber)
		if err != nil {
			return err
		}

		if !account.OwnedBy(customerID) {
			return domain.ErrAccountNotOwned
		}

		if _, err := tx.LoadPayee(ctx, arg.PayeeID); err != nil {
			return err
		}

		b.PayeeID = arg.PayeeID
		b.Amount = amount
		b.ScheduleTimeUtc = arg.ScheduleTimeUtc.UTC()
		b.Period = arg.Period
		b.Status = domain.StatusPending

		if err := tx.SaveBillPay(ctx, b); err != nil {
			return err
		}

		updated = b

		return nil
	})
	if err != nil {
		return domain.BillPay{}, err
	}

	return updated, nil
}

// Delete removes the customer's bill payment.
func (s *Service) Delete(ctx context.Context, customerID, billPayID int32) error {
	if _, err := s.Get(ctx, customerID, billPayID); err != nil {
		return err
	}

	return s.repo.DeleteBillPay(ctx, billPayID)
}

// ProcessDueBillPays pays every bill payment that is pending and due at now.
//
// The due entries are read once up front. Each entry is then handled in its own
// unit of work, so one failing entry never affects another. A paid entry records
// now as its last execution; an entry rescheduled into the past is paid again
// only by a later call with a later now, so replaying the same instant is a no-op.
func (s *Service) ProcessDueBillPays(ctx context.Context, now time.Time) (domain.BillPayCounts, error) {
	var counts domain.BillPayCounts

	due, err := s.store.LoadDueBillPays(ctx, now)
	if err != nil {
		return counts, err
	}

	for _, entry := range due {
		if err := ctx.Err(); err != nil {
			return counts, err
		}

		switch s.processEntry(ctx, entry.BillPayID, now) {
		case domain.StatusSuccess:
			counts.Succeeded++
		case domain.StatusFailed:
			counts.Failed++
		default:
			counts.Skipped++
		}
	}

	return counts, nil
}

// processEntry returns the status the entry went through, or an empty status
// when it was skipped.
func (s *Service) processEntry(ctx context.Context, billPayID int32, now time.Time) domain.PaymentStatus {
	l := zerolog.Ctx(ctx).With().Int32("billpay_id", billPayID).Logger()

	err := s.store.ExecTx(ctx, func(tx ledgerstore.Tx) error {
		b, err := loadDue(ctx, tx, billPayID, now)
		if err != nil {
			return err
		}

		if _, err := s.payer.PayBill(ctx, tx, b, now); err != nil {
			return err
		}

		return tx.SaveBillPay(ctx, b.Succeeded(now))
	})

	switch {
	case err == nil:
		return domain.StatusSuccess
	case errors.Is(err, errNotDue), errors.Is(err, domain.ErrBillPayNotFound):
		l.Debug().Err(err).Msg("skipped")
		return ""
	case isPaymentFailure(err):
		if err := s.markFailed(ctx, billPayID, now); err != nil {
			l.Warn().Err(err).Msg("cannot mark as failed")
			return ""
		}

		l.Info().Err(err).Msg("failed")

		return domain.StatusFailed
	case errors.Is(err, domain.ErrConflict):
		l.Info().Err(err).Msg("skipped")
		return ""
	default:
		l.Error().Err(err).Msg("skipped")
		return ""
	}
}

func (s *Service) markFailed(ctx context.Context, billPayID int32, now time.Time) error {
	return s.store.ExecTx(ctx, func(tx ledgerstore.Tx) error {
		b, err := loadDue(ctx, tx, billPayID, now)
		if err != nil {
			return err
		}

		return tx.SaveBillPay(ctx, b.Failed())
	})
}

func (s *Service) ownedAccount(ctx context.Context, customerID, accountNumber int32) (domain.Account, error) {
	account, err := s.repo.GetAccount(ctx, accountNumber)
	if err != nil {
		return account, err
	}

	if !account.OwnedBy(customerID) {
		return domain.Account{}, domain.ErrAccountNotOwned
	}

	return account, nil
}

func loadDue(ctx context.Context, tx ledgerstore.Tx, billPayID int32, now time.Time) (domain.BillPay, error) {
	b, err := tx.LoadBillPay(ctx, billPayID)
	if err != nil {
		return b, err
	}

	if !b.IsDue(now) {
		return b, errNotDue
	}

	return b, nil
}

// isPaymentFailure reports whether err means the payment itself cannot be made.
func isPaymentFailure(err error) bool {
	return errors.Is(err, domain.ErrInsufficientFunds) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrNotFound)
}

func validate(amount string, scheduleTime time.Time, period domain.Period) (decimal.Decimal, error) {
	d, err := ledger.ParseAmount(amount)
	if err != nil {
		return d, err
	}

	if scheduleTime.IsZero() {
		return d, domain.ErrInvalidSchedule
	}

	if !period.Valid() {
		return d, domain.ErrInvalidPeriod
	}

	return d, nil
}
