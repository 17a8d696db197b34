// Package logindelivery manages delivery layer of customer logins.
package logindelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/mcba-ledger/internal/domain"
	"github.com/go-petr/mcba-ledger/pkg/errorspkg"
	"github.com/go-petr/mcba-ledger/pkg/tokenpkg"
	"github.com/go-petr/mcba-ledger/pkg/web"
)

// ErrBadCredentials is returned for an unknown login or a wrong password.
var ErrBadCredentials = errors.New("login id and/or password is incorrect")

// Service provides service layer interface needed by login delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package logindelivery
type Service interface {
	CheckPassword(ctx context.Context, loginID, password string) (domain.Login, error)
}

// Handler facilitates login delivery layer logic.
type Handler struct {
	service             Service
	tokenMaker          tokenpkg.Maker
	accessTokenDuration time.Duration
}

// NewHandler returns login handler.
func NewHandler(ls Service, tokenMaker tokenpkg.Maker, accessTokenDuration time.Duration) *Handler {
	return &Handler{
		service:             ls,
		tokenMaker:          tokenMaker,
		accessTokenDuration: accessTokenDuration,
	}
}

type request struct {
	LoginID  string `json:"login_id" binding:"required,len=8,numeric"`
	Password string `json:"password" binding:"required"`
}

type data struct {
	CustomerID int32 `json:"customer_id"`
}

// Login handles http request to log a customer in and issue an access token.
func (h *Handler) Login(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req request
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(err)})

		return
	}

	login, err := h.service.CheckPassword(ctx, req.LoginID, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrWrongPassword) || errors.Is(err, domain.ErrNotFound) {
			gctx.JSON(http.StatusUnauthorized, web.Error(ErrBadCredentials))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	accessToken, payload, err := h.tokenMaker.CreateToken(login.CustomerID, login.LoginID, h.accessTokenDuration)
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: payload.ExpiredAt.UTC().Format(time.RFC3339),
		Data:                 data{CustomerID: login.CustomerID},
	})
}
