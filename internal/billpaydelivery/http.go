// Package billpaydelivery manages delivery layer of scheduled bill payments.
package billpaydelivery

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/mcba-ledger/internal/domain"
	"github.com/go-petr/mcba-ledger/internal/middleware"
	"github.com/go-petr/mcba-ledger/pkg/web"
)

// Service provides service layer interface needed by bill payment delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package billpaydelivery
type Service interface {
	Create(ctx context.Context, customerID int32, arg domain.CreateBillPayParams) (domain.BillPay, error)
	List(ctx context.Context, customerID int32) ([]domain.BillPay, error)
	Get(ctx context.Context, customerID, billPayID int32) (domain.BillPay, error)
	Update(ctx context.Context, customerID int32, arg domain.UpdateBillPayParams) (domain.BillPay, error)
	Delete(ctx context.Context, customerID, billPayID int32) error
}

// Handler facilitates bill payment delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns bill payment handler.
func NewHandler(bs Service) *Handler {
	return &Handler{service: bs}
}

type billPayURI struct {
	BillPayID int32 `uri:"id" binding:"required,min=1"`
}

type createRequest struct {
	AccountNumber   int32     `json:"account_number" binding:"required,min=1"`
	PayeeID         int32     `json:"payee_id" binding:"required,min=1"`
	Amount          string    `json:"amount" binding:"required"`
	ScheduleTimeUtc time.Time `json:"schedule_time_utc" binding:"required"`
	Period          string    `json:"period" binding:"required,period"`
}

type updateRequest struct {
	PayeeID         int32     `json:"payee_id" binding:"required,min=1"`
	Amount          string    `json:"amount" binding:"required"`
	ScheduleTimeUtc time.Time `json:"schedule_time_utc" binding:"required"`
	Period          string    `json:"period" binding:"required,period"`
}

// Create handles http request to schedule a bill payment.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	b, err := h.service.Create(ctx, middleware.CustomerID(gctx), domain.CreateBillPayParams{
		AccountNumber:   req.AccountNumber,
		PayeeID:         req.PayeeID,
		Amount:          req.Amount,
		ScheduleTimeUtc: req.ScheduleTimeUtc,
		Period:          domain.Period(req.Period),
	})
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: b})
}

// List handles http request to list the customer's bill payments.
func (h *Handler) List(gctx *gin.Context) {
	billPays, err := h.service.List(gctx.Request.Context(), middleware.CustomerID(gctx))
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: billPays})
}

// Get handles http request to get one of the customer's bill payments.
func (h *Handler) Get(gctx *gin.Context) {
	var uri billPayURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, err)
		return
	}

	b, err := h.service.Get(gctx.Request.Context(), middleware.CustomerID(gctx), uri.BillPayID)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: b})
}

// Update handles http request to edit a bill payment. A failed payment becomes
// pending again.
func (h *Handler) Update(gctx *gin.Context) {
	var uri billPayURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, err)
		return
	}

	var req updateRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	b, err := h.service.Update(gctx.Request.Context(), middleware.CustomerID(gctx), domain.UpdateBillPayParams{
		BillPayID:       uri.BillPayID,
		PayeeID:         req.PayeeID,
		Amount:          req.Amount,
		ScheduleTimeUtc: req.ScheduleTimeUtc,
		Period:          domain.Period(req.Period),
	})
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: b})
}

// Delete handles http request to remove a bill payment.
func (h *Handler) Delete(gctx *gin.Context) {
	var uri billPayURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, err)
		return
	}

	if err := h.service.Delete(gctx.Request.Context(), middleware.CustomerID(gctx), uri.BillPayID); err != nil {
		respondError(gctx, err)
		return
	}

	gctx.Status(http.StatusNoContent)
}

func badRequest(gctx *gin.Context, err error) {
	zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
	gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(err)})
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
