package constants

import "fmt"

const (
	RoleStudent   = "student"
	RolePrincipal = "principal"
	RoleStaff     = "staff"
)

// Template pesan error role
const (
	ErrOnlyStaffCanAccess     = "❌ Hanya staff atau principal yang boleh mengakses fitur %s."
	ErrOnlyPrincipalCanAccess = "❌ Hanya principal yang boleh mengakses fitur %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorPrincipal(feature string) string {
	return fmt.Sprintf(ErrOnlyPrincipalCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleStaff,
		RolePrincipal,
	}

	StaffAndAbove = []string{
		RoleStaff,
		RolePrincipal,
	}

	PrincipalOnly = []string{
		RolePrincipal,
	}
)
