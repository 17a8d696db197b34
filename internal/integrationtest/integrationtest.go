// Package integrationtest provides Postgres helpers used in integration tests.
package integrationtest

import (
	"context"
	"database/sql"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/go-petr/mcba-ledger/pkg/dbpkg"

	// Postgres driver for database/sql.
	_ "github.com/lib/pq"
)

// SchemaPath returns the path of the SQL schema the Postgres store runs against.
func SchemaPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "ledgerrepo", "testdata", "schema.sql")
}

// StartPostgres starts a disposable Postgres container with the ledger schema
// and returns its connection string. The container is terminated with the test.
func StartPostgres(t *testing.T) string {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("mcba"),
		tcpostgres.WithUsername("root"),
		tcpostgres.WithPassword("secret"),
		tcpostgres.WithInitScripts(SchemaPath()),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("tcpostgres.Run returned error: %v", err)
	}

	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Errorf("TerminateContainer returned error: %v", err)
		}
	})

	source, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("container.ConnectionString returned error: %v", err)
	}

	return source
}

// SetupDB starts Postgres and connects to it. All tables are flushed and the
// connection is closed once the test is done.
func SetupDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := dbpkg.Setup("postgres", StartPostgres(t))
	if err != nil {
		t.Fatalf("db initialization failed. err: %v", err)
	}

	t.Cleanup(func() {
		Flush(t, db)

		if err := db.Close(); err != nil {
			t.Errorf("db cleanup failed. err: %v", err)
		}
	})

	return db
}

// Flush flushes all db tables without droping.
func Flush(t *testing.T, db *sql.DB) {
	t.Helper()

	var tables string

	const query = `
	SELECT string_agg(table_name, ', ')
	FROM information_schema.tables
	WHERE table_schema='public';`

	if err := db.QueryRow(query).Scan(&tables); err != nil {
		t.Fatalf("db cleanup failed. err: %v", err)
	}

	if _, err := db.Exec(`TRUNCATE TABLE ` + tables + " RESTART IDENTITY CASCADE"); err != nil {
		t.Fatalf("db cleanup failed. err: %v", err)
	}
}
