// Package links builds the relative navigation links attached to every
// resource representation. All functions are pure: the same identity
// always yields the same mapping.
package links

import (
	"fmt"

	"github.com/google/uuid"
)

func ForOrder(orderID uuid.UUID) map[string]string {
	return map[string]string{
		"self":          fmt.Sprintf("/orders/%s", orderID),
		"payments":      fmt.Sprintf("/payments?order_id=%s", orderID),
		"order_details": fmt.Sprintf("/order-details?order_id=%s", orderID),
	}
}

func ForPayment(paymentID, orderID uuid.UUID) map[string]string {
	return map[string]string{
		"self":  fmt.Sprintf("/payments/%s", paymentID),
		"order": fmt.Sprintf("/orders/%s", orderID),
	}
}

func ForOrderDetail(orderID, prodID uuid.UUID) map[string]string {
	return map[string]string{
		"self":  fmt.Sprintf("/order-details/%s/%s", orderID, prodID),
		"order": fmt.Sprintf("/orders/%s", orderID),
	}
}

func ForTask(taskID uuid.UUID) map[string]string {
	return map[string]string{
		"self":   fmt.Sprintf("/tasks/%s", taskID),
		"status": fmt.Sprintf("/tasks/%s/status", taskID),
	}
}

// TaskStatusURL is the poll URL handed back on 202 responses.
func TaskStatusURL(taskID uuid.UUID) string {
	return fmt.Sprintf("/tasks/%s/status", taskID)
}
