// Package ledgerrepo manages the Postgres repository layer of the ledger.
//
// Accounts, customers and bill payments carry a version column. Writes are
// guarded by the version read in the same unit of work and fail with
// domain.ErrConflict when the row changed in between.
package ledgerrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/mcba-ledger/internal/domain"
	"github.com/go-petr/mcba-ledger/internal/ledgerstore"
	"github.com/go-petr/mcba-ledger/pkg/errorspkg"
)

// RepoPGS facilitates ledger repository layer logic.
type RepoPGS struct {
	conn *sql.DB
	q    queries
}

var _ ledgerstore.Store = (*RepoPGS)(nil)

// NewRepoPGS returns ledger RepoPGS.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		conn: db,
		q:    queries{db: db},
	}
}

// ExecTx runs fn within a database transaction and commits it when fn succeeds.
func (r *RepoPGS) ExecTx(ctx context.Context, fn func(ledgerstore.Tx) error) error {
	l := zerolog.Ctx(ctx)

	sqlTx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		return storeError(ctx, err)
	}

	defer func() {
		if err := sqlTx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			l.Error().Err(err).Send()
		}
	}()

	if err := fn(newTx(sqlTx)); err != nil {
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return storeError(ctx, err)
	}

	return nil
}

const loadDueBillPaysQuery = `
SELECT
	billpay_id, account_number, payee_id, amount, schedule_time_utc, period, status, last_executed_utc, version
FROM billpays
WHERE status = 'pending' AND schedule_time_utc <= $1
	AND (last_executed_utc IS NULL OR last_executed_utc < $1)
ORDER BY schedule_time_utc, billpay_id
`

// LoadDueBillPays returns pending bill payments scheduled at or before now and
// not executed at or after now, oldest first.
func (r *RepoPGS) LoadDueBillPays(ctx context.Context, now time.Time) ([]domain.BillPay, error) {
	return r.q.listBillPays(ctx, loadDueBillPaysQuery, now.UTC())
}

// GetAccount returns the account with the given number.
func (r *RepoPGS) GetAccount(ctx context.Context, accountNumber int32) (domain.Account, error) {
	return r.q.getAccount(ctx, accountNumber)
}

// GetCustomer returns the customer with the given id.
func (r *RepoPGS) GetCustomer(ctx context.Context, customerID int32) (domain.Customer, error) {
	return r.q.getCustomer(ctx, customerID)
}

const listAccountsQuery = `
SELECT account_number, account_type, customer_id, version
FROM accounts
WHERE customer_id = $1
ORDER BY account_number
`

// ListAccounts returns the customer's accounts ordered by number.
func (r *RepoPGS) ListAccounts(ctx context.Context, customerID int32) ([]domain.Account, error) {
	rows, err := r.q.db.QueryContext(ctx, listAccountsQuery, customerID)
	if err != nil {
		return nil, storeError(ctx, err)
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.AccountNumber, &a.AccountType, &a.CustomerID, &a.Version); err != nil {
			return nil, storeError(ctx, err)
		}

		items = append(items, a)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError(ctx, err)
	}

	return items, nil
}

// AccountBalance returns the balance of the account's committed log.
func (r *RepoPGS) AccountBalance(ctx context.Context, accountNumber int32) (decimal.Decimal, error) {
	if _, err := r.q.getAccount(ctx, accountNumber); err != nil {
		return decimal.Zero, err
	}

	return r.q.balance(ctx, accountNumber)
}

const listTransactionsQuery = `
SELECT
	transaction_id, account_number, transaction_type, direction, amount, comment,
	transaction_time_utc, destination_account_number, transfer_id
FROM transactions
WHERE account_number = $1
ORDER BY transaction_id DESC
LIMIT $2 OFFSET $3
`

// ListTransactions returns a page of the account's log, newest first.
func (r *RepoPGS) ListTransactions(ctx context.Context, accountNumber, limit, offset int32) ([]domain.Transaction, error) {
	rows, err := r.q.db.QueryContext(ctx, listTransactionsQuery, accountNumber, limit, offset)
	if err != nil {
		return nil, storeError(ctx, err)
	}
	defer rows.Close()

	items := []domain.Transaction{}

	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, storeError(ctx, err)
		}

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError(ctx, err)
	}

	return items, nil
}

const countTransactionsQuery = `SELECT count(*) FROM transactions WHERE account_number = $1`

// CountTransactions returns the number of rows in the account's log.
func (r *RepoPGS) CountTransactions(ctx context.Context, accountNumber int32) (int64, error) {
	var n int64

	if err := r.q.db.QueryRowContext(ctx, countTransactionsQuery, accountNumber).Scan(&n); err != nil {
		return 0, storeError(ctx, err)
	}

	return n, nil
}

const getLoginQuery = `
SELECT login_id, customer_id, password_hash
FROM logins
WHERE login_id = $1
`

// GetLogin returns the login with the given id.
func (r *RepoPGS) GetLogin(ctx context.Context, loginID string) (domain.Login, error) {
	var l domain.Login

	err := r.q.db.QueryRowContext(ctx, getLoginQuery, loginID).Scan(&l.LoginID, &l.CustomerID, &l.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return l, domain.ErrLoginNotFound
		}

		return l, storeError(ctx, err)
	}

	return l, nil
}

// GetPayee returns the payee with the given id.
func (r *RepoPGS) GetPayee(ctx context.Context, payeeID int32) (domain.Payee, error) {
	return r.q.getPayee(ctx, payeeID)
}

const createBillPayQuery = `
INSERT INTO
	billpays (account_number, payee_id, amount, schedule_time_utc, period, status)
VALUES
	($1, $2, $3, $4, $5, $6)
RETURNING billpay_id, version
`

// CreateBillPay stores a new bill payment and returns it with its id.
func (r *RepoPGS) CreateBillPay(ctx context.Context, b domain.BillPay) (domain.BillPay, error) {
	row := r.q.db.QueryRowContext(ctx, createBillPayQuery,
		b.AccountNumber,
		b.PayeeID,
		b.Amount,
		b.ScheduleTimeUtc.UTC(),
		b.Period,
		b.Status,
	)

	if err := row.Scan(&b.BillPayID, &b.Version); err != nil {
		switch foreignKey(err) {
		case "billpays_account_number_fkey":
			return b, domain.ErrAccountNotFound
		case "billpays_payee_id_fkey":
			return b, domain.ErrPayeeNotFound
		}

		return b, storeError(ctx, err)
	}

	b.ScheduleTimeUtc = b.ScheduleTimeUtc.UTC()

	return b, nil
}

// GetBillPay returns the bill payment with the given id.
func (r *RepoPGS) GetBillPay(ctx context.Context, billPayID int32) (domain.BillPay, error) {
	return r.q.getBillPay(ctx, billPayID)
}

const listBillPaysQuery = `
SELECT
	b.billpay_id, b.account_number, b.payee_id, b.amount, b.schedule_time_utc, b.period, b.status,
	b.last_executed_utc, b.version
FROM billpays b
JOIN accounts a ON a.account_number = b.account_number
WHERE a.customer_id = $1
ORDER BY b.billpay_id
`

// ListBillPays returns the bill payments paid from the customer's accounts.
func (r *RepoPGS) ListBillPays(ctx context.Context, customerID int32) ([]domain.BillPay, error) {
	return r.q.listBillPays(ctx, listBillPaysQuery, customerID)
}

const deleteBillPayQuery = `DELETE FROM billpays WHERE billpay_id = $1`

// DeleteBillPay removes the bill payment with the given id.
func (r *RepoPGS) DeleteBillPay(ctx context.Context, billPayID int32) error {
	res, err := r.q.db.ExecContext(ctx, deleteBillPayQuery, billPayID)
	if err != nil {
		return storeError(ctx, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return storeError(ctx, err)
	}

	if n == 0 {
		return domain.ErrBillPayNotFound
	}

	return nil
}

// storeError maps a database error to the error kinds of the ledger core.
func storeError(ctx context.Context, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	if isRetryable(err) {
		return domain.ErrConflict
	}

	zerolog.Ctx(ctx).Error().Err(err).Send()

	return errorspkg.ErrInternal
}
