package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (env *testEnv) createOrderDetail(t *testing.T, orderID, prodID string, quantity int, subtotal float64) (map[string]any, string) {
	t.Helper()
	rec := env.do(http.MethodPost, "/order-details", map[string]any{
		"order_id": orderID,
		"prod_id":  prodID,
		"quantity": quantity,
		"subtotal": subtotal,
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody(t, rec), rec.Header().Get("ETag")
}

func TestCreateOrderDetailReturns201(t *testing.T) {
	env := newTestEnv()
	orderID := uuid.NewString()
	prodID := uuid.NewString()

	detail, _ := env.createOrderDetail(t, orderID, prodID, 2, 199.98)

	links := detail["links"].(map[string]any)
	assert.Equal(t, fmt.Sprintf("/order-details/%s/%s", orderID, prodID), links["self"])
	assert.Equal(t, fmt.Sprintf("/orders/%s", orderID), links["order"])
}

func TestCreateOrderDetailValidation(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "zero quantity", body: map[string]any{"order_id": uuid.NewString(), "prod_id": uuid.NewString(), "quantity": 0, "subtotal": 1.0}},
		{name: "missing prod_id", body: map[string]any{"order_id": uuid.NewString(), "quantity": 1, "subtotal": 1.0}},
		{name: "negative subtotal", body: map[string]any{"order_id": uuid.NewString(), "prod_id": uuid.NewString(), "quantity": 1, "subtotal": -1.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(http.MethodPost, "/order-details", tt.body, nil)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}
}

// A second create on the same (order_id, prod_id) replaces the row.
func TestOrderDetailCompositeKeyOverwrite(t *testing.T) {
	env := newTestEnv()
	orderID := uuid.NewString()
	prodID := uuid.NewString()

	env.createOrderDetail(t, orderID, prodID, 2, 199.98)
	env.createOrderDetail(t, orderID, prodID, 5, 499.95)

	rec := env.do(http.MethodGet, fmt.Sprintf("/order-details/%s/%s", orderID, prodID), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5.0, decodeBody(t, rec)["quantity"])

	list := env.do(http.MethodGet, "/order-details?order_id="+orderID, nil, nil)
	var listed []map[string]any
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)
}

func TestOrderDetailConditionalPut(t *testing.T) {
	env := newTestEnv()
	orderID := uuid.NewString()
	prodID := uuid.NewString()
	_, currentETag := env.createOrderDetail(t, orderID, prodID, 2, 199.98)
	path := fmt.Sprintf("/order-details/%s/%s", orderID, prodID)
	update := map[string]any{"quantity": 3, "subtotal": 299.97}

	rec := env.do(http.MethodPut, path, update, nil)
	require.Equal(t, http.StatusPreconditionRequired, rec.Code)

	rec = env.do(http.MethodPut, path, update, map[string]string{"If-Match": currentETag})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, 3.0, body["quantity"])
	assert.NotEqual(t, currentETag, rec.Header().Get("ETag"))
}

func TestOrderDetailNotFound(t *testing.T) {
	env := newTestEnv()

	rec := env.do(http.MethodGet, fmt.Sprintf("/order-details/%s/%s", uuid.NewString(), uuid.NewString()), nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteOrderDetailNotImplemented(t *testing.T) {
	env := newTestEnv()
	orderID := uuid.NewString()
	prodID := uuid.NewString()
	env.createOrderDetail(t, orderID, prodID, 1, 10.00)

	rec := env.do(http.MethodDelete, fmt.Sprintf("/order-details/%s/%s", orderID, prodID), nil, nil)
	require.Equal(t, http.StatusNotImplemented, rec.Code)
}
