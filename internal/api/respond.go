package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/COMS4153EcommerceProject/Order-Service/internal/apperr"
)

// errorJSON writes the error body shared by all endpoints: a machine
// readable kind plus a human readable detail.
func errorJSON(c echo.Context, status int, kind, detail string) error {
	return c.JSON(status, map[string]string{"kind": kind, "detail": detail})
}

func validationFailed(c echo.Context, detail string) error {
	return errorJSON(c, http.StatusUnprocessableEntity, "validation_failed", detail)
}

func mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return errorJSON(c, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, apperr.ErrNotImplemented):
		return errorJSON(c, http.StatusNotImplemented, "not_implemented", "NOT IMPLEMENTED")
	case errors.Is(err, apperr.ErrIdempotencyConflict):
		return errorJSON(c, http.StatusConflict, "idempotency_conflict", err.Error())
	default:
		return errorJSON(c, http.StatusInternalServerError, "internal", err.Error())
	}
}
