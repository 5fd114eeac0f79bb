// Package etag derives weak HTTP validators from resource content and
// compares validators supplied in conditional request headers.
package etag

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// Compute serializes v canonically and returns a weak validator of the
// form W/"<md5 hex>". The representation is first round-tripped through
// a generic JSON document so object keys are emitted in sorted order:
// two values with identical field content hash identically no matter
// how the underlying struct or map is laid out. Any field change,
// including a refreshed updated_at, produces a different validator.
func Compute(v any) string {
	canonical, err := canonicalJSON(v)
	if err != nil {
		// Resource types are plain data; marshal failures mean a
		// programming error, not bad input.
		panic(fmt.Sprintf("etag: cannot serialize resource: %v", err))
	}

	sum := md5.Sum(canonical)
	return fmt.Sprintf(`W/"%s"`, hex.EncodeToString(sum[:]))
}

func canonicalJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	// encoding/json writes map keys in sorted order, so re-encoding the
	// generic document yields a canonical byte form.
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// Normalize strips the weak prefix and surrounding quotes so strong and
// weak forms of the same digest compare equal.
func Normalize(validator string) string {
	validator = strings.TrimPrefix(validator, "W/")
	return strings.Trim(validator, `"`)
}

// Match reports whether two validators identify the same content.
func Match(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
