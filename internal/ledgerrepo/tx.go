package ledgerrepo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/go-petr/mcba-ledger/internal/domain"
	"github.com/go-petr/mcba-ledger/pkg/errorspkg"
)

// pgTx is a unit of work over a database transaction. The version of every
// account it loads is remembered so the first append to an account can claim it.
type pgTx struct {
	q queries

	accountVersions map[int32]int64
	claimed         map[int32]struct{}
}

func newTx(sqlTx *sql.Tx) *pgTx {
	return &pgTx{
		q:               queries{db: sqlTx},
		accountVersions: make(map[int32]int64),
		claimed:         make(map[int32]struct{}),
	}
}

func (tx *pgTx) LoadAccount(ctx context.Context, accountNumber int32) (domain.Account, error) {
	a, err := tx.q.getAccount(ctx, accountNumber)
	if err != nil {
		return a, err
	}

	if v, seen := tx.accountVersions[accountNumber]; seen {
		a.Version = v
	} else {
		tx.accountVersions[accountNumber] = a.Version
	}

	return a, nil
}

func (tx *pgTx) LoadCustomer(ctx context.Context, customerID int32) (domain.Customer, error) {
	return tx.q.getCustomer(ctx, customerID)
}

func (tx *pgTx) LoadPayee(ctx context.Context, payeeID int32) (domain.Payee, error) {
	return tx.q.getPayee(ctx, payeeID)
}

func (tx *pgTx) LoadBillPay(ctx context.Context, billPayID int32) (domain.BillPay, error) {
	return tx.q.getBillPay(ctx, billPayID)
}

func (tx *pgTx) Balance(ctx context.Context, accountNumber int32) (decimal.Decimal, error) {
	return tx.q.balance(ctx, accountNumber)
}

const claimAccountQuery = `
UPDATE accounts
SET version = version + 1
WHERE account_number = $1 AND version = $2
`

const appendTransactionQuery = `
INSERT INTO
	transactions (account_number, transaction_type, direction, amount, comment,
		transaction_time_utc, destination_account_number, transfer_id)
VALUES
	($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING transaction_id
`

func (tx *pgTx) AppendTransaction(ctx context.Context, t domain.Transaction) (domain.Transaction, error) {
	version, ok := tx.accountVersions[t.AccountNumber]
	if !ok {
		return t, fmt.Errorf("append to account %d: %w", t.AccountNumber, errorspkg.ErrInternal)
	}

	if _, claimed := tx.claimed[t.AccountNumber]; !claimed {
		if err := tx.guardedUpdate(ctx, claimAccountQuery, t.AccountNumber, version); err != nil {
			return t, err
		}

		tx.claimed[t.AccountNumber] = struct{}{}
	}

	code, ok := directionCodes[t.Direction]
	direction := sql.NullString{String: code, Valid: ok}

	var dest sql.NullInt32
	if t.DestinationAccountNumber != nil {
		dest = sql.NullInt32{Int32: *t.DestinationAccountNumber, Valid: true}
	}

	row := tx.q.db.QueryRowContext(ctx, appendTransactionQuery,
		t.AccountNumber,
		t.Kind.Code(),
		direction,
		t.Amount,
		t.Comment,
		t.TransactionTimeUtc.UTC(),
		dest,
		uuid.NullUUID{UUID: t.TransferID, Valid: t.TransferID != uuid.Nil},
	)

	if err := row.Scan(&t.TransactionID); err != nil {
		return t, storeError(ctx, err)
	}

	return t, nil
}

const saveCustomerQuery = `
UPDATE customers
SET free_transactions = $2, version = version + 1
WHERE customer_id = $1 AND version = $3
`

func (tx *pgTx) SaveCustomer(ctx context.Context, c domain.Customer) error {
	return tx.guardedUpdate(ctx, saveCustomerQuery, c.CustomerID, c.FreeTransactions, c.Version)
}

const saveBillPayQuery = `
UPDATE billpays
SET payee_id = $2, amount = $3, schedule_time_utc = $4, period = $5, status = $6,
	last_executed_utc = $7, version = version + 1
WHERE billpay_id = $1 AND version = $8
`

func (tx *pgTx) SaveBillPay(ctx context.Context, b domain.BillPay) error {
	var lastExecuted sql.NullTime
	if b.LastExecutedUtc != nil {
		lastExecuted = sql.NullTime{Time: b.LastExecutedUtc.UTC(), Valid: true}
	}

	return tx.guardedUpdate(ctx, saveBillPayQuery,
		b.BillPayID,
		b.PayeeID,
		b.Amount,
		b.ScheduleTimeUtc.UTC(),
		b.Period,
		b.Status,
		lastExecuted,
		b.Version,
	)
}

// guardedUpdate runs an update whose WHERE clause checks a version and reports
// domain.ErrConflict when no row matched.
func (tx *pgTx) guardedUpdate(ctx context.Context, query string, args ...interface{}) error {
	res, err := tx.q.db.ExecContext(ctx, query, args...)
	if err != nil {
		return storeError(ctx, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return storeError(ctx, err)
	}

	if n == 0 {
		return domain.ErrConflict
	}

	return nil
}
