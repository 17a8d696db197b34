// Package accountservice manages business logic layer of accounts.
package accountservice

//go:generate mockgen -source service.go -destination service_mock.go -package accountservice

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/go-petr/mcba-ledger/internal/domain"
	"github.com/go-petr/mcba-ledger/internal/ledger"
)

// StatementPageSize is the number of transactions on one statement page.
const StatementPageSize = 4

// Repo provides data access layer interface needed by account service layer.
type Repo interface {
	GetAccount(ctx context.Context, accountNumber int32) (domain.Account, error)
	ListAccounts(ctx context.Context, customerID int32) ([]domain.Account, error)
	AccountBalance(ctx context.Context, accountNumber int32) (decimal.Decimal, error)
	ListTransactions(ctx context.Context, accountNumber, limit, offset int32) ([]domain.Transaction, error)
	CountTransactions(ctx context.Context, accountNumber int32) (int64, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account bussines logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// List returns the accounts of the customer with their balances.
func (s *Service) List(ctx context.Context, customerID int32) ([]domain.AccountSummary, error) {
	accounts, err := s.repo.ListAccounts(ctx, customerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.AccountSummary, 0, len(accounts))

	for _, a := range accounts {
		balance, err := s.repo.AccountBalance(ctx, a.AccountNumber)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, ledger.Summarize(a, balance))
	}

	return summaries, nil
}

// Get returns the customer's account with its balances.
func (s *Service) Get(ctx context.Context, customerID, accountNumber int32) (domain.AccountSummary, error) {
	account, err := s.ownedAccount(ctx, customerID, accountNumber)
	if err != nil {
		return domain.AccountSummary{}, err
	}

	balance, err := s.repo.AccountBalance(ctx, account.AccountNumber)
	if err != nil {
		return domain.AccountSummary{}, err
	}

	return ledger.Summarize(account, balance), nil
}

// Statement returns the given page of the account's transactions, newest first.
// Pages start at one.
func (s *Service) Statement(ctx context.Context, customerID, accountNumber, pageID int32) (domain.StatementPage, error) {
	if pageID < 1 {
		return domain.StatementPage{}, domain.ErrInvalidPage
	}

	account, err := s.ownedAccount(ctx, customerID, accountNumber)
	if err != nil {
		return domain.StatementPage{}, err
	}

	total, err := s.repo.CountTransactions(ctx, account.AccountNumber)
	if err != nil {
		return domain.StatementPage{}, err
	}

	page := domain.StatementPage{
		AccountNumber: account.AccountNumber,
		Transactions:  []domain.Transaction{},
		Page:          pageID,
		TotalPages:    int32((total + StatementPageSize - 1) / StatementPageSize),
	}

	// Pages past the end are empty.
	offset := int64(pageID-1) * StatementPageSize
	if offset >= total {
		return page, nil
	}

	txs, err := s.repo.ListTransactions(ctx, account.AccountNumber, StatementPageSize, int32(offset))
	if err != nil {
		return domain.StatementPage{}, err
	}

	page.Transactions = txs

	return page, nil
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
