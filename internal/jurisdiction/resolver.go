// Package jurisdiction maps free-text jurisdiction hints ("California", "ca")
// to the registry's jurisdiction codes ("us_ca").
package jurisdiction

import "strings"

// Resolver performs case-insensitive hint lookups against an immutable table
// injected at construction. It holds no mutable state and does no I/O.
type Resolver struct {
	codes map[string]string
}

// NewResolver creates a resolver over the given hint-to-code table. The table
// is copied so later mutation by the caller cannot leak into lookups.
func NewResolver(codes map[string]string) *Resolver {
	owned := make(map[string]string, len(codes))
	for hint, code := range codes {
		owned[strings.ToLower(hint)] = code
	}
	return &Resolver{codes: owned}
}

// Resolve returns the jurisdiction code for a hint. The second return value
// is false for empty or unknown hints; callers must treat that as "do not
// filter by jurisdiction", never as an error.
func (r *Resolver) Resolve(hint string) (string, bool) {
	hint = strings.ToLower(strings.TrimSpace(hint))
	if hint == "" {
		return "", false
	}
	code, ok := r.codes[hint]
	return code, ok
}
