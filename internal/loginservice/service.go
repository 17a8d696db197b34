// Package loginservice manages business logic layer of customer logins.
package loginservice

//go:generate mockgen -source service.go -destination service_mock.go -package loginservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/mcba-ledger/internal/domain"
	"github.com/go-petr/mcba-ledger/pkg/passpkg"
)

// Repo provides data access layer interface needed by login service layer.
type Repo interface {
	GetLogin(ctx context.Context, loginID string) (domain.Login, error)
}

// Service facilitates login service layer logic.
type Service struct {
	repo Repo
}

// New returns login service struct to manage logins.
func New(lr Repo) *Service {
	return &Service{repo: lr}
}

// CheckPassword returns the login when password matches its stored hash.
func (s *Service) CheckPassword(ctx context.Context, loginID, password string) (domain.Login, error) {
	login, err := s.repo.GetLogin(ctx, loginID)
	if err != nil {
		return domain.Login{}, err
	}

	if err := passpkg.Check(password, login.PasswordHash); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Str("login_id", loginID).Send()
		return domain.Login{}, domain.ErrWrongPassword
	}

	return login, nil
}
