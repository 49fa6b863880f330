// file: internals/helpers/auth_claims.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the AuthJWT middleware.
const (
	LocUserID = "user_id"
	LocOrgID  = "org_id"
	LocRoles  = "roles"
)

// GetUserID reads the authenticated user id from locals.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocUserID, "user scope missing from token")
}

// GetOrgID reads the active organization id from locals. Every domain query
// is scoped by it.
func GetOrgID(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocOrgID, "organization scope missing from token")
}

func localUUID(c *fiber.Ctx, key, msg string) (uuid.UUID, error) {
	v := c.Locals(key)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, msg)
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, msg)
	}
	return id, nil
}

// GetRoles returns the role list hydrated from token claims.
func GetRoles(c *fiber.Ctx) []string {
	switch v := c.Locals(LocRoles).(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, it := range v {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// HasAnyRole reports whether the caller carries at least one of the wanted
// roles.
func HasAnyRole(c *fiber.Ctx, wanted ...string) bool {
	roles := GetRoles(c)
	for _, w := range wanted {
		for _, r := range roles {
			if strings.EqualFold(r, w) {
				return true
			}
		}
	}
	return false
}
