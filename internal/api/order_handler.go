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

type OrderHandler struct {
	orderService *service.OrderService
	taskService  *service.TaskService
}

func NewOrderHandler(orderService *service.OrderService, taskService *service.TaskService) *OrderHandler {
	return &OrderHandler{orderService: orderService, taskService: taskService}
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	in := entity.OrderCreate{}
	if err := c.Bind(&in); err != nil {
		return validationFailed(c, "Invalid request payload")
	}
	if err := in.Validate(); err != nil {
		return validationFailed(c, err.Error())
	}

	order, err := h.orderService.CreateOrder(c.Request().Context(), in, c.Request().Header.Get("Idempotent-Key"))
	if err != nil {
		return mapError(c, err)
	}

	c.Response().Header().Set("Location", fmt.Sprintf("/orders/%s", order.OrderID))
	c.Response().Header().Set("ETag", etag.Compute(order))
	return c.JSON(http.StatusCreated, order)
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, err := queryUUID(c, "user_id")
	if err != nil {
		return validationFailed(c, err.Error())
	}
	minPrice, err := queryDecimal(c, "min_total_price")
	if err != nil {
		return validationFailed(c, err.Error())
	}
	maxPrice, err := queryDecimal(c, "max_total_price")
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

	filter := repository.OrderFilter{
		UserID:        userID,
		Status:        queryString(c, "status"),
		MinTotalPrice: minPrice,
		MaxTotalPrice: maxPrice,
	}
	return c.JSON(http.StatusOK, h.orderService.ListOrders(filter, sort, page))
}

// GetOrder handles GET /orders/:id with If-None-Match support
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return validationFailed(c, err.Error())
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		return mapError(c, err)
	}
	return conditionalGet(c, order)
}

// UpdateOrder handles PUT /orders/:id, gated on If-Match
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return validationFailed(c, err.Error())
	}

	in := entity.OrderUpdate{}
	if err := c.Bind(&in); err != nil {
		return validationFailed(c, "Invalid request payload")
	}
	if err := in.Validate(); err != nil {
		return validationFailed(c, err.Error())
	}

	current, err := h.orderService.GetOrder(id)
	if err != nil {
		return mapError(c, err)
	}

	return conditionalPut(c, current, func() (entity.Order, error) {
		return h.orderService.UpdateOrder(c.Request().Context(), id, in)
	})
}

// DeleteOrder handles DELETE /orders/:id (reserved)
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return validationFailed(c, err.Error())
	}
	return mapError(c, h.orderService.DeleteOrder(id))
}

// ProcessOrder handles POST /orders/process: schedules background
// creation and answers 202 with the poll URL.
func (h *OrderHandler) ProcessOrder(c echo.Context) error {
	in := entity.OrderCreate{}
	if err := c.Bind(&in); err != nil {
		return validationFailed(c, "Invalid request payload")
	}
	if err := in.Validate(); err != nil {
		return validationFailed(c, err.Error())
	}

	accepted := h.taskService.StartOrderProcessing(in)

	c.Response().Header().Set("Location", accepted.StatusURL)
	return c.JSON(http.StatusAccepted, accepted)
}
