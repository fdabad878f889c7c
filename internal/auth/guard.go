package auth

import "strings"

// HeaderName carries the admin secret on privileged requests. Header
// lookup is case-insensitive; the value is not.
const HeaderName = "X-Admin-Secret"

// Guard checks a caller-supplied credential against the configured
// admin secret. The secret is injected at construction and read-only
// afterwards.
type Guard struct {
	secret string
}

func NewGuard(secret string) *Guard {
	return &Guard{secret: strings.TrimSpace(secret)}
}

// Authorize reports whether the supplied credential matches the
// configured secret. Comparison is case-sensitive after trimming;
// a missing credential is indistinguishable from a wrong one.
func (g *Guard) Authorize(supplied string) bool {
	return strings.TrimSpace(supplied) == g.secret
}
