package constants

import "fmt"

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// Role error message templates
const (
	ErrOnlyStaffCanAccess      = "Only admin or super admin may access %s."
	ErrOnlySuperAdminCanAccess = "Only super admin may access %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleSuperAdmin,
	}

	SuperAdminOnly = []string{
		RoleSuperAdmin,
	}
)
