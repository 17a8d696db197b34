package integrationtest

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/mcba-ledger/cmd/httpserver"
	"github.com/go-petr/mcba-ledger/internal/ledgerrepo"
	"github.com/go-petr/mcba-ledger/pkg/configpkg"
)

// SetupServer returns a test server backed by a fresh Postgres database, and the
// database to seed it with.
func SetupServer(t *testing.T) (*httpserver.Server, *sql.DB) {
	t.Helper()

	db := SetupDB(t)

	config := configpkg.Config{
		DBDriver:            "postgres",
		TokenSymmetricKey:   strings.Repeat("k", 32),
		AccessTokenDuration: time.Minute,
		StoreDriver:         configpkg.StorePostgres,
		BillPayPollInterval: time.Second,
	}

	gin.SetMode(gin.ReleaseMode)

	server, err := httpserver.New(ledgerrepo.NewRepoPGS(db), zerolog.Nop(), config)
	if err != nil {
		t.Fatalf(`httpserver.New returned error: %v`, err)
	}

	return server, db
}
