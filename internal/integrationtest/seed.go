package integrationtest

import (
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-petr/mcba-ledger/internal/domain"
	"github.com/go-petr/mcba-ledger/pkg/passpkg"
)

// SeedCustomer inserts a customer. A negative quota is stored as NULL.
func SeedCustomer(t *testing.T, db *sql.DB, customerID int32, name string, freeTransactions int32) domain.Customer {
	t.Helper()

	quota := sql.NullInt32{Int32: freeTransactions, Valid: freeTransactions >= 0}

	_, err := db.Exec(`INSERT INTO customers (customer_id, name, free_transactions) VALUES ($1, $2, $3)`,
		customerID, name, quota)
	if err != nil {
		t.Fatalf("SeedCustomer(%d) returned error: %v", customerID, err)
	}

	return domain.Customer{CustomerID: customerID, Name: name, FreeTransactions: quota.Int32}
}

// SeedLogin inserts a login with the bcrypt hash of password.
func SeedLogin(t *testing.T, db *sql.DB, loginID string, customerID int32, password string) domain.Login {
	t.Helper()

	hash, err := passpkg.Hash(password)
	if err != nil {
		t.Fatalf("passpkg.Hash returned error: %v", err)
	}

	_, err = db.Exec(`INSERT INTO logins (login_id, customer_id, password_hash) VALUES ($1, $2, $3)`,
		loginID, customerID, hash)
	if err != nil {
		t.Fatalf("SeedLogin(%s) returned error: %v", loginID, err)
	}

	return domain.Login{LoginID: loginID, CustomerID: customerID, PasswordHash: hash}
}

// SeedAccount inserts an account.
func SeedAccount(t *testing.T, db *sql.DB, accountNumber int32, accountType domain.AccountType, customerID int32) domain.Account {
	t.Helper()

	_, err := db.Exec(`INSERT INTO accounts (account_number, account_type, customer_id) VALUES ($1, $2, $3)`,
		accountNumber, accountType, customerID)
	if err != nil {
		t.Fatalf("SeedAccount(%d) returned error: %v", accountNumber, err)
	}

	return domain.Account{AccountNumber: accountNumber, AccountType: accountType, CustomerID: customerID}
}

// SeedDeposit inserts an opening deposit into the account's log.
func SeedDeposit(t *testing.T, db *sql.DB, accountNumber int32, amount string, at time.Time) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO transactions (account_number, transaction_type, amount, transaction_time_utc)
		VALUES ($1, 'D', $2, $3)`,
		accountNumber, decimal.RequireFromString(amount), at.UTC())
	if err != nil {
		t.Fatalf("SeedDeposit(%d) returned error: %v", accountNumber, err)
	}
}

// SeedPayee inserts a payee.
func SeedPayee(t *testing.T, db *sql.DB, payeeID int32, name string) domain.Payee {
	t.Helper()

	_, err := db.Exec(`INSERT INTO payees (payee_id, name) VALUES ($1, $2)`, payeeID, name)
	if err != nil {
		t.Fatalf("SeedPayee(%d) returned error: %v", payeeID, err)
	}

	return domain.Payee{PayeeID: payeeID, Name: name}
}
