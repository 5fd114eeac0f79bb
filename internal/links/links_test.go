package links_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/COMS4153EcommerceProject/Order-Service/internal/links"
)

func TestForOrder(t *testing.T) {
	orderID := uuid.New()

	got := links.ForOrder(orderID)

	require.Equal(t, map[string]string{
		"self":          fmt.Sprintf("/orders/%s", orderID),
		"payments":      fmt.Sprintf("/payments?order_id=%s", orderID),
		"order_details": fmt.Sprintf("/order-details?order_id=%s", orderID),
	}, got)
}

func TestForPayment(t *testing.T) {
	paymentID := uuid.New()
	orderID := uuid.New()

	got := links.ForPayment(paymentID, orderID)

	require.Equal(t, map[string]string{
		"self":  fmt.Sprintf("/payments/%s", paymentID),
		"order": fmt.Sprintf("/orders/%s", orderID),
	}, got)
}

func TestForOrderDetail(t *testing.T) {
	orderID := uuid.New()
	prodID := uuid.New()

	got := links.ForOrderDetail(orderID, prodID)

	require.Equal(t, map[string]string{
		"self":  fmt.Sprintf("/order-details/%s/%s", orderID, prodID),
		"order": fmt.Sprintf("/orders/%s", orderID),
	}, got)
}

func TestForTask(t *testing.T) {
	taskID := uuid.New()

	got := links.ForTask(taskID)

	require.Equal(t, map[string]string{
		"self":   fmt.Sprintf("/tasks/%s", taskID),
		"status": fmt.Sprintf("/tasks/%s/status", taskID),
	}, got)
	assert.Equal(t, got["status"], links.TaskStatusURL(taskID))
}

func TestIdempotent(t *testing.T) {
	orderID := uuid.New()
	prodID := uuid.New()

	assert.Equal(t, links.ForOrder(orderID), links.ForOrder(orderID))
	assert.Equal(t, links.ForPayment(prodID, orderID), links.ForPayment(prodID, orderID))
	assert.Equal(t, links.ForOrderDetail(orderID, prodID), links.ForOrderDetail(orderID, prodID))
}
