package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/COMS4153EcommerceProject/Order-Service/internal/entity"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/etag"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/repository"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/service"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
}

func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreatePayment handles POST /payments
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	in := entity.PaymentCreate{}
	if err := c.Bind(&in); err != nil {
		return validationFailed(c, "Invalid request payload")
	}
	if err := in.Validate(); err != nil {
		return validationFailed(c, err.Error())
	}

	payment := h.paymentService.CreatePayment(in)

	c.Response().Header().Set("Location", fmt.Sprintf("/payments/%s", payment.PaymentID))
	c.Response().Header().Set("ETag", etag.Compute(payment))
	return c.JSON(http.StatusCreated, payment)
}

// ListPayments handles GET /payments
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	orderID, err := queryUUID(c, "order_id")
	if err != nil {
		return validationFailed(c, err.Error())
	}
	minAmount, err := queryDecimal(c, "min_amount")
	if err != nil {
		return validationFailed(c, err.Error())
	}
	maxAmount, err := queryDecimal(c, "max_amount")
	if err != nil {
		return validationFailed(c, err.Error())
	}
	sort, err := parseSort(c)
	if err != nil {
		return validationFailed(c, err.Error())
	}
	page, err := parsePage(c)
	if err != nil {
		return validationFailed(c, err.Error())
	}

	filter := repository.PaymentFilter{
		OrderID:       orderID,
		PaymentMethod: queryString(c, "payment_method"),
		MinAmount:     minAmount,
		MaxAmount:     maxAmount,
	}
	return c.JSON(http.StatusOK, h.paymentService.ListPayments(filter, sort, page))
}

// GetPayment handles GET /payments/:id with If-None-Match support
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return validationFailed(c, err.Error())
	}

	payment, err := h.paymentService.GetPayment(id)
	if err != nil {
		return mapError(c, err)
	}
	return conditionalGet(c, payment)
}

// UpdatePayment handles PUT /payments/:id, gated on If-Match
func (h *PaymentHandler) UpdatePayment(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return validationFailed(c, err.Error())
	}

	in := entity.PaymentUpdate{}
	if err := c.Bind(&in); err != nil {
		return validationFailed(c, "Invalid request payload")
	}
	if err := in.Validate(); err != nil {
		return validationFailed(c, err.Error())
	}

	current, err := h.paymentService.GetPayment(id)
	if err != nil {
		return mapError(c, err)
	}

	return conditionalPut(c, current, func() (entity.Payment, error) {
		return h.paymentService.UpdatePayment(id, in)
	})
}

// DeletePayment handles DELETE /payments/:id (reserved)
func (h *PaymentHandler) DeletePayment(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return validationFailed(c, err.Error())
	}
	return mapError(c, h.paymentService.DeletePayment(id))
}
