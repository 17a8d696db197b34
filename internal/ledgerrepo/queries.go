package ledgerrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/go-petr/mcba-ledger/internal/domain"
	"github.com/go-petr/mcba-ledger/pkg/dbpkg"
)

// queries are shared by the repository and its units of work.
type queries struct {
	db dbpkg.SQLInterface
}

const getAccountQuery = `
SELECT account_number, account_type, customer_id, version
FROM accounts
WHERE account_number = $1
`

func (q queries) getAccount(ctx context.Context, accountNumber int32) (domain.Account, error) {
	var a domain.Account

	err := q.db.QueryRowContext(ctx, getAccountQuery, accountNumber).
		Scan(&a.AccountNumber, &a.AccountType, &a.CustomerID, &a.Version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return a, domain.ErrAccountNotFound
		}

		return a, storeError(ctx, err)
	}

	return a, nil
}

const getCustomerQuery = `
SELECT
	customer_id, name, COALESCE(tfn, ''), COALESCE(address, ''), COALESCE(city, ''),
	COALESCE(state, ''), COALESCE(postcode, ''), COALESCE(mobile, ''), free_transactions, version
FROM customers
WHERE customer_id = $1
`

func (q queries) getCustomer(ctx context.Context, customerID int32) (domain.Customer, error) {
	var (
		c    domain.Customer
		free sql.NullInt32
	)

	err := q.db.QueryRowContext(ctx, getCustomerQuery, customerID).Scan(
		&c.CustomerID,
		&c.Name,
		&c.TFN,
		&c.Address,
		&c.City,
		&c.State,
		&c.Postcode,
		&c.Mobile,
		&free,
		&c.Version,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c, domain.ErrCustomerNotFound
		}

		return c, storeError(ctx, err)
	}

	// A customer without a quota has no free transactions.
	c.FreeTransactions = free.Int32

	return c, nil
}

const getPayeeQuery = `
SELECT
	payee_id, name, COALESCE(address, ''), COALESCE(city, ''), COALESCE(state, ''),
	COALESCE(postcode, ''), COALESCE(phone, '')
FROM payees
WHERE payee_id = $1
`

func (q queries) getPayee(ctx context.Context, payeeID int32) (domain.Payee, error) {
	var p domain.Payee

	err := q.db.QueryRowContext(ctx, getPayeeQuery, payeeID).
		Scan(&p.PayeeID, &p.Name, &p.Address, &p.City, &p.State, &p.Postcode, &p.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, domain.ErrPayeeNotFound
		}

		return p, storeError(ctx, err)
	}

	return p, nil
}

const getBillPayQuery = `
SELECT
	billpay_id, account_number, payee_id, amount, schedule_time_utc, period, status, last_executed_utc, version
FROM billpays
WHERE billpay_id = $1
`

func (q queries) getBillPay(ctx context.Context, billPayID int32) (domain.BillPay, error) {
	b, err := scanBillPay(q.db.QueryRowContext(ctx, getBillPayQuery, billPayID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return b, domain.ErrBillPayNotFound
		}

		return b, storeError(ctx, err)
	}

	return b, nil
}

func (q queries) listBillPays(ctx context.Context, query string, args ...interface{}) ([]domain.BillPay, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeError(ctx, err)
	}
	defer rows.Close()

	items := []domain.BillPay{}

	for rows.Next() {
		b, err := scanBillPay(rows)
		if err != nil {
			return nil, storeError(ctx, err)
		}

		items = append(items, b)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError(ctx, err)
	}

	return items, nil
}

const balanceQuery = `
SELECT COALESCE(SUM(
	CASE
		WHEN transaction_type = 'D' OR (transaction_type = 'T' AND direction = 'I') THEN amount
		ELSE -amount
	END
), 0)
FROM transactions
WHERE account_number = $1
`

func (q queries) balance(ctx context.Context, accountNumber int32) (decimal.Decimal, error) {
	var b decimal.Decimal

	if err := q.db.QueryRowContext(ctx, balanceQuery, accountNumber).Scan(&b); err != nil {
		return decimal.Zero, storeError(ctx, err)
	}

	return b, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBillPay(s scanner) (domain.BillPay, error) {
	var (
		b            domain.BillPay
		lastExecuted sql.NullTime
	)

	err := s.Scan(
		&b.BillPayID,
		&b.AccountNumber,
		&b.PayeeID,
		&b.Amount,
		&b.ScheduleTimeUtc,
		&b.Period,
		&b.Status,
		&lastExecuted,
		&b.Version,
	)

	b.ScheduleTimeUtc = b.ScheduleTimeUtc.UTC()

	if lastExecuted.Valid {
		at := lastExecuted.Time.UTC()
		b.LastExecutedUtc = &at
	}

	return b, err
}

var directionCodes = map[domain.Direction]string{
	domain.DirectionIncoming: "I",
	domain.DirectionOutgoing: "O",
}

func scanTransaction(s scanner) (domain.Transaction, error) {
	var (
		t          domain.Transaction
		code       string
		direction  sql.NullString
		dest       sql.NullInt32
		transferID uuid.NullUUID
	)

	err := s.Scan(
		&t.TransactionID,
		&t.AccountNumber,
		&code,
		&direction,
		&t.Amount,
		&t.Comment,
		&t.TransactionTimeUtc,
		&dest,
		&transferID,
	)
	if err != nil {
		return t, err
	}

	if t.Kind, err = domain.ParseTransactionKind(code); err != nil {
		return t, err
	}

	for dir, c := range directionCodes {
		if direction.Valid && direction.String == c {
			t.Direction = dir
		}
	}

	if dest.Valid {
		n := dest.Int32
		t.DestinationAccountNumber = &n
	}

	t.TransferID = transferID.UUID
	t.TransactionTimeUtc = t.TransactionTimeUtc.UTC()

	return t, nil
}

// isRetryable reports whether err is a serialization failure or a deadlock,
// after which the whole unit of work may be retried.
func isRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	switch pqErr.Code.Name() {
	case "serialization_failure", "deadlock_detected":
		return true
	}

	return false
}

// foreignKey returns the violated foreign key constraint of err, if any.
func foreignKey(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
		return pqErr.Constraint
	}

	return ""
}
