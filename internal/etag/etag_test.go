package etag_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/COMS4153EcommerceProject/Order-Service/internal/entity"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/etag"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/links"
)

func sampleOrder() entity.Order {
	now := time.Date(2025, 1, 16, 10, 20, 30, 0, time.UTC)
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	return entity.Order{
		OrderID:    id,
		UserID:     uuid.MustParse("660e8400-e29b-41d4-a716-446655440001"),
		OrderDate:  now,
		TotalPrice: decimal.RequireFromString("199.99"),
		Status:     "pending",
		CreatedAt:  now,
		UpdatedAt:  now,
		Links:      links.ForOrder(id),
	}
}

func TestComputeDeterministic(t *testing.T) {
	order := sampleOrder()

	first := etag.Compute(order)
	second := etag.Compute(order)

	require.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, `W/"`), "validator must be weak: %s", first)
	assert.True(t, strings.HasSuffix(first, `"`))
}

func TestComputeFieldOrderIndependent(t *testing.T) {
	a := map[string]any{"status": "pending", "total_price": 199.99}
	b := map[string]any{"total_price": 199.99, "status": "pending"}

	assert.Equal(t, etag.Compute(a), etag.Compute(b))
}

func TestComputeChangesWithContent(t *testing.T) {
	base := sampleOrder()

	shipped := base
	shipped.Status = "shipped"
	assert.NotEqual(t, etag.Compute(base), etag.Compute(shipped))

	touched := base
	touched.UpdatedAt = base.UpdatedAt.Add(time.Second)
	assert.NotEqual(t, etag.Compute(base), etag.Compute(touched))
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "identical weak", a: `W/"abc"`, b: `W/"abc"`, want: true},
		{name: "weak vs strong", a: `W/"abc"`, b: `"abc"`, want: true},
		{name: "weak vs bare", a: `W/"abc"`, b: "abc", want: true},
		{name: "different digests", a: `W/"abc"`, b: `W/"def"`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, etag.Match(tt.a, tt.b))
		})
	}
}
