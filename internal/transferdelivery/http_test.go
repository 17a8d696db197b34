package transferdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/go-petr/mcba-ledger/internal/domain"
	"github.com/go-petr/mcba-ledger/internal/middleware"
	"github.com/go-petr/mcba-ledger/pkg/errorspkg"
	"github.com/go-petr/mcba-ledger/pkg/randompkg"
	"github.com/go-petr/mcba-ledger/pkg/tokenpkg"
	"github.com/go-petr/mcba-ledger/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var testTime = time.Date(2024, time.February, 9, 12, 0, 0, 0, time.UTC)

func newServer(t *testing.T, tokenMaker tokenpkg.Maker, service *MockService) *gin.Engine {
	t.Helper()

	handler := NewHandler(service)

	server := gin.New()
	auth := server.Group("/").Use(middleware.AuthMiddleware(tokenMaker))
	auth.POST("/accounts/:number/deposits", handler.Deposit)
	auth.POST("/accounts/:number/withdrawals", handler.Withdraw)
	auth.POST("/accounts/:number/transfers", handler.Transfer)

	return server
}

func newTokenMaker(t *testing.T) tokenpkg.Maker {
	t.Helper()

	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	return tokenMaker
}

type testCase struct {
	name           string
	url            string
	body           gin.H
	authorize      bool
	buildStubs     func(service *MockService)
	wantStatusCode int
	wantError      string
	wantResult     domain.MovementResult
}

func runTestCases(t *testing.T, customerID int32, testCases []testCase) {
	t.Helper()

	tokenMaker := newTokenMaker(t)

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			body, err := json.Marshal(tc.body)
			if err != nil {
				t.Fatalf("json.Marshal(%v) returned error: %v", tc.body, err)
			}

			req := httptest.NewRequest(http.MethodPost, tc.url, bytes.NewReader(body))
			if tc.authorize {
				err := middleware.AddAuthorization(req, tokenMaker, middleware.AuthTypeBearer, customerID, randompkg.LoginID(), time.Minute)
				if err != nil {
					t.Fatalf("middleware.AddAuthorization returned error: %v", err)
				}
			}

			recorder := httptest.NewRecorder()
			newServer(t, tokenMaker, service).ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			var got domain.MovementResult

			res := web.Response{Data: &got}
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusCreated {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			if diff := cmp.Diff(tc.wantResult, got); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeposit(t *testing.T) {
	customerID := randompkg.IntBetween(1000, 9999)
	result := domain.MovementResult{
		Transactions: []domain.Transaction{
			{
				TransactionID:      1,
				AccountNumber:      4100,
				Kind:               domain.KindDeposit,
				Amount:             decimal.RequireFromString("100.5"),
				Comment:            "pay day",
				TransactionTimeUtc: testTime,
			},
		},
	}

	runTestCases(t, customerID, []testCase{
		{
			name:      "OK",
			url:       "/accounts/4100/deposits",
			body:      gin.H{"amount": "100.50", "comment": "pay day"},
			authorize: true,
			buildStubs: func(service *MockService) {
				arg := domain.DepositParams{AccountNumber: 4100, Amount: "100.50", Comment: "pay day"}
				service.EXPECT().DepositToOwnAccount(gomock.Any(), gomock.Eq(customerID), gomock.Eq(arg)).
					Times(1).
					Return(result, nil)
			},
			wantStatusCode: http.StatusCreated,
			wantResult:     result,
		},
		{
			name: "NoAuthorization",
			url:  "/accounts/4100/deposits",
			body: gin.H{"amount": "100"},
			buildStubs: func(service *MockService) {
				service.EXPECT().DepositToOwnAccount(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      middleware.ErrAuthHeaderNotFound.Error(),
		},
		{
			name:      "MissingAmount",
			url:       "/accounts/4100/deposits",
			body:      gin.H{"comment": "pay day"},
			authorize: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().DepositToOwnAccount(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Amount field is required",
		},
		{
			name:      "CommentTooLong",
			url:       "/accounts/4100/deposits",
			body:      gin.H{"amount": "1", "comment": strings.Repeat("a", 31)},
			authorize: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().DepositToOwnAccount(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Comment must be at most 30 characters long",
		},
		{
			name:      "InvalidAccountNumber",
			url:       "/accounts/abc/deposits",
			body:      gin.H{"amount": "1"},
			authorize: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().DepositToOwnAccount(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request",
		},
		{
			name:      "TooManyDecimals",
			url:       "/accounts/4100/deposits",
			body:      gin.H{"amount": "1.001"},
			authorize: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().DepositToOwnAccount(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.MovementResult{}, domain.ErrTooManyDecimals)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrTooManyDecimals.Error(),
		},
		{
			name:      "NotOwned",
			url:       "/accounts/4200/deposits",
			body:      gin.H{"amount": "1"},
			authorize: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().DepositToOwnAccount(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.MovementResult{}, domain.ErrAccountNotOwned)
			},
			wantStatusCode: http.StatusForbidden,
			wantError:      domain.ErrAccountNotOwned.Error(),
		},
	})
}

func TestWithdraw(t *testing.T) {
	customerID := randompkg.IntBetween(1000, 9999)
	result := domain.MovementResult{
		Transactions: []domain.Transaction{
			{
				TransactionID:      2,
				AccountNumber:      4100,
				Kind:               domain.KindWithdraw,
				Amount:             decimal.New(50, 0),
				TransactionTimeUtc: testTime,
			},
			{
				TransactionID:      3,
				AccountNumber:      4100,
				Kind:               domain.KindServiceCharge,
				Amount:             decimal.RequireFromString("0.05"),
				TransactionTimeUtc: testTime,
			},
		},
	}

	runTestCases(t, customerID, []testCase{
		{
			name:      "OK",
			url:       "/accounts/4100/withdrawals",
			body:      gin.H{"amount": "50"},
			authorize: true,
			buildStubs: func(service *MockService) {
				arg := domain.WithdrawParams{AccountNumber: 4100, Amount: "50"}
				service.EXPECT().Withdraw(gomock.Any(), gomock.Eq(customerID), gomock.Eq(arg)).
					Times(1).
					Return(result, nil)
			},
			wantStatusCode: http.StatusCreated,
			wantResult:     result,
		},
		{
			name:      "InsufficientFunds",
			url:       "/accounts/4100/withdrawals",
			body:      gin.H{"amount": "5000"},
			authorize: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().Withdraw(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.MovementResult{}, domain.ErrInsufficientFunds)
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      domain.ErrInsufficientFunds.Error(),
		},
		{
			name:      "Conflict",
			url:       "/accounts/4100/withdrawals",
			body:      gin.H{"amount": "5"},
			authorize: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().Withdraw(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.MovementResult{}, domain.ErrConflict)
			},
			wantStatusCode: http.StatusConflict,
			wantError:      domain.ErrConflict.Error(),
		},
		{
			name:      "AccountNotFound",
			url:       "/accounts/9999/withdrawals",
			body:      gin.H{"amount": "5"},
			authorize: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().Withdraw(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.MovementResult{}, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrAccountNotFound.Error(),
		},
		{
			name:      "InternalError",
			url:       "/accounts/4100/withdrawals",
			body:      gin.H{"amount": "5"},
			authorize: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().Withdraw(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.MovementResult{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	})
}

func TestTransfer(t *testing.T) {
	customerID := randompkg.IntBetween(1000, 9999)
	transferID := uuid.New()
	destination := int32(4200)
	result := domain.MovementResult{
		Transactions: []domain.Transaction{
			{
				TransactionID:            4,
				AccountNumber:            4100,
				Kind:                     domain.KindTransfer,
				Direction:                domain.DirectionOutgoing,
				Amount:                   decimal.New(100, 0),
				TransactionTimeUtc:       testTime,
				DestinationAccountNumber: &destination,
				TransferID:               transferID,
			},
			{
				TransactionID:      5,
				AccountNumber:      4200,
				Kind:               domain.KindTransfer,
				Direction:          domain.DirectionIncoming,
				Amount:             decimal.New(100, 0),
				TransactionTimeUtc: testTime,
				TransferID:         transferID,
			},
		},
	}

	runTestCases(t, customerID, []testCase{
		{
			name:      "OK",
			url:       "/accounts/4100/transfers",
			body:      gin.H{"destination_account_number": 4200, "amount": "100", "comment": "rent"},
			authorize: true,
			buildStubs: func(service *MockService) {
				arg := domain.TransferParams{
					SourceAccountNumber:      4100,
					DestinationAccountNumber: 4200,
					Amount:                   "100",
					Comment:                  "rent",
				}
				service.EXPECT().Transfer(gomock.Any(), gomock.Eq(customerID), gomock.Eq(arg)).
					Times(1).
					Return(result, nil)
			},
			wantStatusCode: http.StatusCreated,
			wantResult:     result,
		},
		{
			name:      "MissingDestination",
			url:       "/accounts/4100/transfers",
			body:      gin.H{"amount": "100"},
			authorize: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "DestinationAccountNumber field is required",
		},
		{
			name:      "SelfTransfer",
			url:       "/accounts/4100/transfers",
			body:      gin.H{"destination_account_number": 4100, "amount": "100"},
			authorize: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.MovementResult{}, domain.ErrSelfTransfer)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrSelfTransfer.Error(),
		},
		{
			name:      "InvalidDestination",
			url:       "/accounts/4100/transfers",
			body:      gin.H{"destination_account_number": 9999, "amount": "100"},
			authorize: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.MovementResult{}, domain.ErrInvalidDestination)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInvalidDestination.Error(),
		},
	})
}
