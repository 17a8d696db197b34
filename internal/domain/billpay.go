package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is the recurrence of a bill payment.
type Period string

// Supported periods.
const (
	PeriodDaily     Period = "daily"
	PeriodWeekly    Period = "weekly"
	PeriodBiWeekly  Period = "biweekly"
	PeriodMonthly   Period = "monthly"
	PeriodQuarterly Period = "quarterly"
	PeriodAnnually  Period = "annually"
)

// Valid reports whether p is a supported period.
func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodBiWeekly, PeriodMonthly, PeriodQuarterly, PeriodAnnually:
		return true
	}

	return false
}

// Next returns t advanced by one period. Month based periods keep the day of month
// and clamp it to the last day of the target month.
func (p Period) Next(t time.Time) time.Time {
	switch p {
	case PeriodDaily:
		return t.AddDate(0, 0, 1)
	case PeriodWeekly:
		return t.AddDate(0, 0, 7)
	case PeriodBiWeekly:
		return t.AddDate(0, 0, 14)
	case PeriodMonthly:
		return addMonths(t, 1)
	case PeriodQuarterly:
		return addMonths(t, 3)
	case PeriodAnnually:
		return addMonths(t, 12)
	}

	return t
}

func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())

	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}

	return first.AddDate(0, 0, d-1)
}

// PaymentStatus is the state of a bill payment.
type PaymentStatus string

// Payment statuses. Pending is both the initial and the re-entrant state.
const (
	StatusPending PaymentStatus = "pending"
	StatusSuccess PaymentStatus = "success"
	StatusFailed  PaymentStatus = "failed"
)

// BillPay is a recurring payment from a ledger account to a payee.
type BillPay struct {
	BillPayID       int32           `json:"billpay_id"`
	AccountNumber   int32           `json:"account_number"`
	PayeeID         int32           `json:"payee_id"`
	Amount          decimal.Decimal `json:"amount"`
	ScheduleTimeUtc time.Time       `json:"schedule_time_utc"`
	Period          Period          `json:"period"`
	Status          PaymentStatus   `json:"status"`
	LastExecutedUtc *time.Time      `json:"last_executed_utc,omitempty"`
	Version         int64           `json:"-"`
}

// IsDue reports whether the payment is pending, scheduled at or before now and
// not already executed at or after now.
func (b BillPay) IsDue(now time.Time) bool {
	if b.LastExecutedUtc != nil && !b.LastExecutedUtc.Before(now) {
		return false
	}

	return b.Status == StatusPending && !b.ScheduleTimeUtc.After(now)
}

// Succeeded returns the payment after a successful execution at now: it passes
// through Success and is immediately rescheduled one period later as Pending.
func (b BillPay) Succeeded(now time.Time) BillPay {
	executed := now.UTC()

	b.Status = StatusSuccess
	b.LastExecutedUtc = &executed

	return b.Reschedule()
}

// Reschedule moves a successful payment to its next due time.
func (b BillPay) Reschedule() BillPay {
	if b.Status != StatusSuccess {
		return b
	}

	b.ScheduleTimeUtc = b.Period.Next(b.ScheduleTimeUtc)
	b.Status = StatusPending

	return b
}

// Failed returns the payment marked as failed. The schedule is left unchanged.
func (b BillPay) Failed() BillPay {
	b.Status = StatusFailed
	return b
}

// BillPayCounts is the outcome of one processing cycle.
type BillPayCounts struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// Total returns the number of entries looked at.
func (c BillPayCounts) Total() int {
	return c.Succeeded + c.Failed + c.Skipped
}

// CreateBillPayParams is the input data to schedule a bill payment.
type CreateBillPayParams struct {
	AccountNumber   int32     `json:"account_number"`
	PayeeID         int32     `json:"payee_id"`
	Amount          string    `json:"amount"`
	ScheduleTimeUtc time.Time `json:"schedule_time_utc"`
	Period          Period    `json:"period"`
}

// UpdateBillPayParams is the input data to edit a bill payment.
type UpdateBillPayParams struct {
	BillPayID       int32     `json:"billpay_id"`
	PayeeID         int32     `json:"payee_id"`
	Amount          string    `json:"amount"`
	ScheduleTimeUtc time.Time `json:"schedule_time_utc"`
	Period          Period    `json:"period"`
}
