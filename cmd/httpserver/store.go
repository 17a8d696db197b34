package httpserver

import (
	"fmt"
	"os"

	"github.com/go-petr/mcba-ledger/internal/accountservice"
	"github.com/go-petr/mcba-ledger/internal/billpayservice"
	"github.com/go-petr/mcba-ledger/internal/ledgerrepo"
	"github.com/go-petr/mcba-ledger/internal/ledgerstore"
	"github.com/go-petr/mcba-ledger/internal/loginservice"
	"github.com/go-petr/mcba-ledger/internal/memstore"
	"github.com/go-petr/mcba-ledger/pkg/configpkg"
	"github.com/go-petr/mcba-ledger/pkg/dbpkg"
)

// Store is everything the services need from a ledger store.
type Store interface {
	ledgerstore.Store
	accountservice.Repo
	loginservice.Repo
	billpayservice.Repo
}

var (
	_ Store = (*ledgerrepo.RepoPGS)(nil)
	_ Store = (*memstore.Store)(nil)
)

// OpenStore returns the store selected by config.StoreDriver and a function
// releasing its resources.
func OpenStore(config configpkg.Config) (Store, func() error, error) {
	switch config.StoreDriver {
	case configpkg.StorePostgres:
		db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot connect to database: %w", err)
		}

		return ledgerrepo.NewRepoPGS(db), db.Close, nil
	case configpkg.StoreMemory:
		s := memstore.New()

		if config.SeedFile != "" {
			f, err := os.Open(config.SeedFile)
			if err != nil {
				return nil, nil, err
			}
			defer f.Close()

			if err := s.Seed(f); err != nil {
				return nil, nil, fmt.Errorf("cannot seed memory store: %w", err)
			}
		}

		return s, func() error { return nil }, nil
	}

	return nil, nil, fmt.Errorf("unsupported store driver %q", config.StoreDriver)
}
