package billpaydelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/go-petr/mcba-ledger/internal/domain"
)

// ValidPeriod validates whether the bill payment period is supported.
var ValidPeriod validator.Func = func(fl validator.FieldLevel) bool {
	return domain.Period(fl.Field().String()).Valid()
}
