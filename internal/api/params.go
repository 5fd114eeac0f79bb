package api

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/COMS4153EcommerceProject/Order-Service/internal/repository"
)

func parsePage(c echo.Context) (repository.Page, error) {
	var page repository.Page

	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return page, fmt.Errorf("limit must be a positive integer")
		}
		page.Limit = n
	}
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return page, fmt.Errorf("offset must be a non-negative integer")
		}
		page.Offset = n
	}
	return page, nil
}

// parseSort accepts any sort_by value; unknown field names are ignored
// downstream. Only the order direction is validated.
func parseSort(c echo.Context) (repository.Sort, error) {
	s := repository.Sort{By: c.QueryParam("sort_by")}

	switch order := c.QueryParam("order"); order {
	case "", "asc":
	case "desc":
		s.Desc = true
	default:
		return s, fmt.Errorf("order must be asc or desc")
	}
	return s, nil
}

func queryUUID(c echo.Context, name string) (*uuid.UUID, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, fmt.Errorf("%s must be a valid UUID", name)
	}
	return &id, nil
}

func queryString(c echo.Context, name string) *string {
	v := c.QueryParam(name)
	if v == "" {
		return nil
	}
	return &v
}

func queryDecimal(c echo.Context, name string) (*decimal.Decimal, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, fmt.Errorf("%s must be a decimal number", name)
	}
	return &d, nil
}

func queryInt(c echo.Context, name string) (*int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	return &n, nil
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s must be a valid UUID", name)
	}
	return id, nil
}
