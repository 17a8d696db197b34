package billpaydelivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
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

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("period", ValidPeriod); err != nil {
			fmt.Fprintf(os.Stderr, "RegisterValidation: %v\n", err)
			os.Exit(1)
		}
	}

	os.Exit(m.Run())
}

var testSchedule = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	customerID int32
	tokenMaker tokenpkg.Maker
	billPay    domain.BillPay
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	return fixture{
		customerID: randompkg.IntBetween(1000, 9999),
		tokenMaker: tokenMaker,
		billPay: domain.BillPay{
			BillPayID:       7,
			AccountNumber:   4100,
			PayeeID:         1,
			Amount:          decimal.RequireFromString("55.20"),
			ScheduleTimeUtc: testSchedule,
			Period:          domain.PeriodMonthly,
			Status:          domain.StatusPending,
		},
	}
}

func (f fixture) do(t *testing.T, service *MockService, method, url string, body gin.H) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = http.NoBody

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json.Marshal(%v) returned error: %v", body, err)
		}

		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, url, reader)

	err := middleware.AddAuthorization(req, f.tokenMaker, middleware.AuthTypeBearer, f.customerID, randompkg.LoginID(), time.Minute)
	if err != nil {
		t.Fatalf("middleware.AddAuthorization returned error: %v", err)
	}

	handler := NewHandler(service)

	server := gin.New()
	auth := server.Group("/").Use(middleware.AuthMiddleware(f.tokenMaker))
	auth.GET("/billpays", handler.List)
	auth.POST("/billpays", handler.Create)
	auth.GET("/billpays/:id", handler.Get)
	auth.PUT("/billpays/:id", handler.Update)
	auth.DELETE("/billpays/:id", handler.Delete)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder, data any) web.Response {
	t.Helper()

	res := web.Response{Data: data}
	if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
		t.Fatalf("Decoding response body error: %v", err)
	}

	return res
}

func TestCreate(t *testing.T) {
	f := newFixture(t)

	validBody := func() gin.H {
		return gin.H{
			"account_number":    4100,
			"payee_id":          1,
			"amount":            "55.20",
			"schedule_time_utc": testSchedule,
			"period":            "monthly",
		}
	}

	testCases := []struct {
		name           string
		body           func() gin.H
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			body: validBody,
			buildStubs: func(service *MockService) {
				arg := domain.CreateBillPayParams{
					AccountNumber:   4100,
					PayeeID:         1,
					Amount:          "55.20",
					ScheduleTimeUtc: testSchedule,
					Period:          domain.PeriodMonthly,
				}
				service.EXPECT().Create(gomock.Any(), gomock.Eq(f.customerID), gomock.Eq(arg)).
					Times(1).
					Return(f.billPay, nil)
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "UnknownPeriod",
			body: func() gin.H {
				b := validBody()
				b["period"] = "fortnightly"
				return b
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Period must be one of daily, weekly, biweekly, monthly, quarterly, annually",
		},
		{
			name: "MissingSchedule",
			body: func() gin.H {
				b := validBody()
				delete(b, "schedule_time_utc")
				return b
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "ScheduleTimeUtc field is required",
		},
		{
			name: "PayeeNotFound",
			body: validBody,
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.BillPay{}, domain.ErrPayeeNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrPayeeNotFound.Error(),
		},
		{
			name: "NotOwned",
			body: validBody,
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.BillPay{}, domain.ErrAccountNotOwned)
			},
			wantStatusCode: http.StatusForbidden,
			wantError:      domain.ErrAccountNotOwned.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			recorder := f.do(t, service, http.MethodPost, "/billpays", tc.body())

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			var got domain.BillPay

			res := decode(t, recorder, &got)

			if tc.wantStatusCode != http.StatusCreated {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			if diff := cmp.Diff(f.billPay, got); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestList(t *testing.T) {
	f := newFixture(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	service.EXPECT().List(gomock.Any(), gomock.Eq(f.customerID)).
		Times(1).
		Return([]domain.BillPay{f.billPay}, nil)

	recorder := f.do(t, service, http.MethodGet, "/billpays", nil)

	if got := recorder.Code; got != http.StatusOK {
		t.Fatalf("Status code: got %v, want %v", got, http.StatusOK)
	}

	var got []domain.BillPay

	decode(t, recorder, &got)

	if diff := cmp.Diff([]domain.BillPay{f.billPay}, got); diff != "" {
		t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
	}
}

func TestGet(t *testing.T) {
	f := newFixture(t)

	testCases := []struct {
		name           string
		id             string
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			id:   "7",
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Eq(f.customerID), gomock.Eq(int32(7))).
					Times(1).
					Return(f.billPay, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "InvalidID",
			id:   "0",
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "BillPayID field is required",
		},
		{
			name: "NotFound",
			id:   "8",
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Eq(int32(8))).
					Times(1).
					Return(domain.BillPay{}, domain.ErrBillPayNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrBillPayNotFound.Error(),
		},
		{
			name: "InternalError",
			id:   "7",
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.BillPay{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			recorder := f.do(t, service, http.MethodGet, "/billpays/"+tc.id, nil)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			var got domain.BillPay

			res := decode(t, recorder, &got)

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			if diff := cmp.Diff(f.billPay, got); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	f := newFixture(t)

	updated := f.billPay
	updated.Amount = decimal.New(60, 0)
	updated.Period = domain.PeriodQuarterly

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)

	arg := domain.UpdateBillPayParams{
		BillPayID:       7,
		PayeeID:         1,
		Amount:          "60",
		ScheduleTimeUtc: testSchedule,
		Period:          domain.PeriodQuarterly,
	}
	service.EXPECT().Update(gomock.Any(), gomock.Eq(f.customerID), gomock.Eq(arg)).
		Times(1).
		Return(updated, nil)

	recorder := f.do(t, service, http.MethodPut, "/billpays/7", gin.H{
		"payee_id":          1,
		"amount":            "60",
		"schedule_time_utc": testSchedule,
		"period":            "quarterly",
	})

	if got := recorder.Code; got != http.StatusOK {
		t.Fatalf("Status code: got %v, want %v", got, http.StatusOK)
	}

	var got domain.BillPay

	decode(t, recorder, &got)

	if diff := cmp.Diff(updated, got); diff != "" {
		t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
	}
}

func TestDelete(t *testing.T) {
	f := newFixture(t)

	testCases := []struct {
		name           string
		err            error
		wantStatusCode int
	}{
		{name: "OK", wantStatusCode: http.StatusNoContent},
		{name: "NotOwned", err: domain.ErrAccountNotOwned, wantStatusCode: http.StatusForbidden},
		{name: "NotFound", err: domain.ErrBillPayNotFound, wantStatusCode: http.StatusNotFound},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			service.EXPECT().Delete(gomock.Any(), gomock.Eq(f.customerID), gomock.Eq(int32(7))).
				Times(1).
				Return(tc.err)

			recorder := f.do(t, service, http.MethodDelete, "/billpays/7", nil)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}
		})
	}
}
