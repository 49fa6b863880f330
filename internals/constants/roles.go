// file: internals/constants/roles.go
package constants

import "fmt"

const (
	RoleViewer    = "viewer"
	RoleCommander = "commander"
	RoleAdmin     = "admin"
)

// Role guard message templates
const (
	ErrOnlyCommandersCanAccess = "❌ Only commanders or admins may access %s."
	ErrOnlyAdminsCanAccess     = "❌ Only admins may access %s."
)

func RoleErrorCommander(feature string) string {
	return fmt.Sprintf(ErrOnlyCommandersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleViewer,
		RoleCommander,
		RoleAdmin,
	}

	CommanderAndAbove = []string{
		RoleCommander,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
