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

type OrderDetailHandler struct {
	detailService *service.OrderDetailService
}

func NewOrderDetailHandler(detailService *service.OrderDetailService) *OrderDetailHandler {
	return &OrderDetailHandler{detailService: detailService}
}

func detailKey(c echo.Context) (entity.OrderDetailKey, error) {
	orderID, err := pathUUID(c, "order_id")
	if err != nil {
		return entity.OrderDetailKey{}, err
	}
	prodID, err := pathUUID(c, "prod_id")
	if err != nil {
		return entity.OrderDetailKey{}, err
	}
	return entity.OrderDetailKey{OrderID: orderID, ProdID: prodID}, nil
}

// CreateOrderDetail handles POST /order-details
func (h *OrderDetailHandler) CreateOrderDetail(c echo.Context) error {
	in := entity.OrderDetailCreate{}
	if err := c.Bind(&in); err != nil {
		return validationFailed(c, "Invalid request payload")
	}
	if err := in.Validate(); err != nil {
		return validationFailed(c, err.Error())
	}

	detail := h.detailService.CreateOrderDetail(in)

	c.Response().Header().Set("Location", fmt.Sprintf("/order-details/%s/%s", detail.OrderID, detail.ProdID))
	c.Response().Header().Set("ETag", etag.Compute(detail))
	return c.JSON(http.StatusCreated, detail)
}

// ListOrderDetails handles GET /order-details
func (h *OrderDetailHandler) ListOrderDetails(c echo.Context) error {
	orderID, err := queryUUID(c, "order_id")
	if err != nil {
		return validationFailed(c, err.Error())
	}
	prodID, err := queryUUID(c, "prod_id")
	if err != nil {
		return validationFailed(c, err.Error())
	}
	minQuantity, err := queryInt(c, "min_quantity")
	if err != nil {
		return validationFailed(c, err.Error())
	}
	maxQuantity, err := queryInt(c, "max_quantity")
	if err != nil {
		return validationFailed(c, err.Error())
	}
	minSubtotal, err := queryDecimal(c, "min_subtotal")
	if err != nil {
		return validationFailed(c, err.Error())
	}
	maxSubtotal, err := queryDecimal(c, "max_subtotal")
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

	filter := repository.OrderDetailFilter{
		OrderID:     orderID,
		ProdID:      prodID,
		MinQuantity: minQuantity,
		MaxQuantity: maxQuantity,
		MinSubtotal: minSubtotal,
		MaxSubtotal: maxSubtotal,
	}
	return c.JSON(http.StatusOK, h.detailService.ListOrderDetails(filter, sort, page))
}

// GetOrderDetail handles GET /order-details/:order_id/:prod_id
func (h *OrderDetailHandler) GetOrderDetail(c echo.Context) error {
	key, err := detailKey(c)
	if err != nil {
		return validationFailed(c, err.Error())
	}

	detail, err := h.detailService.GetOrderDetail(key)
	if err != nil {
		return mapError(c, err)
	}
	return conditionalGet(c, detail)
}

// UpdateOrderDetail handles PUT /order-details/:order_id/:prod_id
func (h *OrderDetailHandler) UpdateOrderDetail(c echo.Context) error {
	key, err := detailKey(c)
	if err != nil {
		return validationFailed(c, err.Error())
	}

	in := entity.OrderDetailUpdate{}
	if err := c.Bind(&in); err != nil {
		return validationFailed(c, "Invalid request payload")
	}
	if err := in.Validate(); err != nil {
		return validationFailed(c, err.Error())
	}

	current, err := h.detailService.GetOrderDetail(key)
	if err != nil {
		return mapError(c, err)
	}

	return conditionalPut(c, current, func() (entity.OrderDetail, error) {
		return h.detailService.UpdateOrderDetail(key, in)
	})
}

// DeleteOrderDetail handles DELETE /order-details/:order_id/:prod_id (reserved)
func (h *OrderDetailHandler) DeleteOrderDetail(c echo.Context) error {
	key, err := detailKey(c)
	if err != nil {
		return validationFailed(c, err.Error())
	}
	return mapError(c, h.detailService.DeleteOrderDetail(key))
}
