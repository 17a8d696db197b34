// Package transferdelivery manages delivery layer of money movements.
package transferdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/mcba-ledger/internal/domain"
	"github.com/go-petr/mcba-ledger/internal/middleware"
	"github.com/go-petr/mcba-ledger/pkg/web"
)

// Service provides service layer interface needed by transfer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transferdelivery
type Service interface {
	DepositToOwnAccount(ctx context.Context, customerID int32, arg domain.DepositParams) (domain.MovementResult, error)
	Withdraw(ctx context.Context, customerID int32, arg domain.WithdrawParams) (domain.MovementResult, error)
	Transfer(ctx context.Context, customerID int32, arg domain.TransferParams) (domain.MovementResult, error)
}

// Handler facilitates transfer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transfer handler.
func NewHandler(ts Service) *Handler {
	return &Handler{
		service: ts,
	}
}

type accountURI struct {
	AccountNumber int32 `uri:"number" binding:"required,min=1"`
}

type movementRequest struct {
	Amount  string `json:"amount" binding:"required"`
	Comment string `json:"comment" binding:"max=30"`
}

type transferRequest struct {
	DestinationAccountNumber int32  `json:"destination_account_number" binding:"required,min=1"`
	Amount                   string `json:"amount" binding:"required"`
	Comment                  string `json:"comment" binding:"max=30"`
}

// Deposit handles http request to deposit money into one of the customer's accounts.
func (h *Handler) Deposit(gctx *gin.Context) {
	var (
		uri accountURI
		req movementRequest
	)

	if !bind(gctx, &uri, &req) {
		return
	}

	result, err := h.service.DepositToOwnAccount(gctx.Request.Context(), middleware.CustomerID(gctx), domain.DepositParams{
		AccountNumber: uri.AccountNumber,
		Amount:        req.Amount,
		Comment:       req.Comment,
	})

	respond(gctx, result, err)
}

// Withdraw handles http request to withdraw money from one of the customer's accounts.
func (h *Handler) Withdraw(gctx *gin.Context) {
	var (
		uri accountURI
		req movementRequest
	)

	if !bind(gctx, &uri, &req) {
		return
	}

	result, err := h.service.Withdraw(gctx.Request.Context(), middleware.CustomerID(gctx), domain.WithdrawParams{
		AccountNumber: uri.AccountNumber,
		Amount:        req.Amount,
		Comment:       req.Comment,
	})

	respond(gctx, result, err)
}

// Transfer handles http request to move money from one of the customer's accounts
// to any ledger account.
func (h *Handler) Transfer(gctx *gin.Context) {
	var (
		uri accountURI
		req transferRequest
	)

	if !bind(gctx, &uri, &req) {
		return
	}

	result, err := h.service.Transfer(gctx.Request.Context(), middleware.CustomerID(gctx), domain.TransferParams{
		SourceAccountNumber:      uri.AccountNumber,
		DestinationAccountNumber: req.DestinationAccountNumber,
		Amount:                   req.Amount,
		Comment:                  req.Comment,
	})

	respond(gctx, result, err)
}

func bind(gctx *gin.Context, uri, body any) bool {
	err := gctx.ShouldBindUri(uri)
	if err == nil {
		err = gctx.ShouldBindJSON(body)
	}

	if err != nil {
		zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(err)})

		return false
	}

	return true
}

func respond(gctx *gin.Context, result domain.MovementResult, err error) {
	if err != nil {
		status, res := web.ErrorResponse(err)

		l := zerolog.Ctx(gctx.Request.Context())
		if status == http.StatusInternalServerError {
			l.Error().Err(err).Send()
		} else {
			l.Info().Err(err).Send()
		}

		gctx.JSON(status, res)

		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: result})
}
