package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/COMS4153EcommerceProject/Order-Service/internal/etag"
)

// The conditional request protocol is entity-agnostic: the helpers below
// wrap any get/update pair and are shared by orders, payments and order
// details.

// conditionalGet answers a read. When the client's If-None-Match matches
// the current validator the body is omitted and 304 is returned; either
// way the response carries the current ETag.
func conditionalGet[T any](c echo.Context, current T) error {
	validator := etag.Compute(current)
	c.Response().Header().Set("ETag", validator)

	if inm := c.Request().Header.Get("If-None-Match"); inm != "" && etag.Match(inm, validator) {
		return c.NoContent(http.StatusNotModified)
	}
	return c.JSON(http.StatusOK, current)
}

// conditionalPut gates a write on If-Match. A missing header is 428, a
// stale one 412; both carry the current validator so the client can
// re-sync. Only a match lets apply run, and the response ETag reflects
// the updated representation (guaranteed to differ via updated_at).
func conditionalPut[T any](c echo.Context, current T, apply func() (T, error)) error {
	validator := etag.Compute(current)

	ifMatch := c.Request().Header.Get("If-Match")
	if ifMatch == "" {
		c.Response().Header().Set("ETag", validator)
		return errorJSON(c, http.StatusPreconditionRequired, "precondition_required",
			"If-Match header is required for updates")
	}
	if !etag.Match(ifMatch, validator) {
		c.Response().Header().Set("ETag", validator)
		return errorJSON(c, http.StatusPreconditionFailed, "precondition_failed",
			"If-Match does not match the current resource state")
	}

	updated, err := apply()
	if err != nil {
		return mapError(c, err)
	}

	c.Response().Header().Set("ETag", etag.Compute(updated))
	return c.JSON(http.StatusOK, updated)
}
