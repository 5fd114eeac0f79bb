// Package sharding routes keys to a fixed set of stripes. The in-memory
// stores use it to pick the write lock for a key, so writers on the
// same key serialize while writers on different keys proceed in
// parallel.
package sharding

import (
	"fmt"
	"hash/fnv"
)

type StripeRouter struct {
	StripeCount int
}

func NewStripeRouter(stripeCount int) *StripeRouter {
	if stripeCount < 1 {
		stripeCount = 1
	}
	return &StripeRouter{StripeCount: stripeCount}
}

// GetStripe hashes the key and returns its stripe index.
func (r *StripeRouter) GetStripe(key any) int {
	h := fnv.New64a()
	fmt.Fprintf(h, "%v", key)
	return int(h.Sum64() % uint64(r.StripeCount))
}
