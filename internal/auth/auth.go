package auth

import (
	"errors"
	"strings"
)

const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"

	MethodPassword = "password"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// Principal is the authenticated user of a request. Every user belongs to
// exactly one tenant.
type Principal struct {
	UserID     int64
	TenantID   int64
	TenantSlug string
	Email      string
	Role       string // "admin" or "viewer"
	Method     string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanAccessTenant reports whether p may act within the tenant identified by slug.
func (p Principal) CanAccessTenant(slug string) bool {
	slug = strings.TrimSpace(slug)
	return p.TenantID > 0 && slug != "" && strings.EqualFold(p.TenantSlug, slug)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NormalizeRole(role string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleViewer:
		return RoleViewer, true
	default:
		return "", false
	}
}
