// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/mcba-ledger/internal/domain"
	"github.com/go-petr/mcba-ledger/internal/middleware"
	"github.com/go-petr/mcba-ledger/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	List(ctx context.Context, customerID int32) ([]domain.AccountSummary, error)
	Get(ctx context.Context, customerID, accountNumber int32) (domain.AccountSummary, error)
	Statement(ctx context.Context, customerID, accountNumber, pageID int32) (domain.StatementPage, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) *Handler {
	return &Handler{service: as}
}

type accountURI struct {
	AccountNumber int32 `uri:"number" binding:"required,min=1"`
}

type statementQuery struct {
	PageID int32 `form:"page_id" binding:"omitempty,min=1"`
}

// List handles http request to list the accounts of the customer.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	accounts, err := h.service.List(ctx, middleware.CustomerID(gctx))
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: accounts})
}

// Get handles http request to get one account of the customer.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(err)})

		return
	}

	account, err := h.service.Get(ctx, middleware.CustomerID(gctx), uri.AccountNumber)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: account})
}

// Statement handles http request to get a page of the account's transactions.
func (h *Handler) Statement(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(err)})

		return
	}

	var query statementQuery
	if err := gctx.ShouldBindQuery(&query); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(err)})

		return
	}

	if query.PageID == 0 {
		query.PageID = 1
	}

	page, err := h.service.Statement(ctx, middleware.CustomerID(gctx), uri.AccountNumber, query.PageID)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: page})
}

func respondError(gctx *gin.Context, err error) {
	status, res := web.ErrorResponse(err)

	l := zerolog.Ctx(gctx.Request.Context())
	if status == http.StatusInternalServerError {
		l.Error().Err(err).Send()
	} else {
		l.Info().Err(err).Send()
	}

	gctx.JSON(status, res)
}
