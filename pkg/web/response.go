// Package web defines common components for a web application.
package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/go-petr/mcba-ledger/internal/domain"
	"github.com/go-petr/mcba-ledger/pkg/errorspkg"
)

// Response holds the common response type for all APIs.
type Response struct {
	AccessToken          string `json:"access_token,omitempty"`
	AccessTokenExpiresAt string `json:"access_token_expires_at,omitempty"`
	Data                 any    `json:"data,omitempty"`
	Error                string `json:"error,omitempty"`
}

// Error wraps a given err into json friendly response.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// ErrorResponse maps err to its status code and response. Errors of unknown
// kind are reported as internal without details.
func ErrorResponse(err error) (int, Response) {
	switch {
	case errors.Is(err, domain.ErrAccountNotOwned):
		return http.StatusForbidden, Error(err)
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, Error(err)
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity, Error(err)
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, Error(err)
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, Error(err)
	}

	return http.StatusInternalServerError, Error(errorspkg.ErrInternal)
}

// GetErrorMsg returns a human readable message for the first failed validation.
func GetErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return "invalid request"
	}

	fe := ve[0]

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s field is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	case "period":
		return fmt.Sprintf("%s must be one of daily, weekly, biweekly, monthly, quarterly, annually", fe.Field())
	}

	return fmt.Sprintf("%s is invalid", fe.Field())
}
