package domain

// Role enumerates the portal's permission classes. Exactly one role per
// session; the role determines the entire reachable page set.
type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RoleTechnician Role = "TECHNICIAN"
	RoleStaff      Role = "STAFF"
	RoleManager    Role = "MANAGER"
	RoleFinance    Role = "FINANCE"
	RoleAdmin      Role = "ADMIN"
)

// AllRoles lists every known role. Keep stable; role names are part of the
// token and access-table contracts.
func AllRoles() []Role {
	return []Role{RoleCustomer, RoleTechnician, RoleStaff, RoleManager, RoleFinance, RoleAdmin}
}

// ParseRole validates a role string against the closed enumeration.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleTechnician, RoleStaff, RoleManager, RoleFinance, RoleAdmin:
		return Role(s), true
	}
	return "", false
}
