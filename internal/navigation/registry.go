package navigation

import (
	"github.com/autofuellanka/portal-service/internal/domain"
)

// accessTable is the single source of truth for page access: every role's
// reachable page set, consulted by the router, the guard and menu building.
// Roles absent from a page's list are denied; pages absent from the table do
// not exist. Keep menu item lists in menu.go consistent with this table
// (registry_test enforces the invariant).
var accessTable = map[PageKey][]domain.Role{
	PageHome: domain.AllRoles(),

	PageMyVehicles:     {domain.RoleCustomer},
	PageServices:       {domain.RoleCustomer},
	PageServiceBooking: {domain.RoleCustomer},
	PageMyBookings:     {domain.RoleCustomer},
	PageProfile:        {domain.RoleCustomer},

	PageJobManagement: {domain.RoleTechnician},
	PageCurrentJobs:   {domain.RoleTechnician},
	PageTechnicians:   {domain.RoleTechnician},
	PagePendingJobs:   {domain.RoleTechnician},

	PageUserManagement: {domain.RoleStaff, domain.RoleAdmin},
	PageCustomers:      {domain.RoleStaff, domain.RoleAdmin},
	PageVehicles:       {domain.RoleStaff, domain.RoleAdmin},
	PageBookings:       {domain.RoleStaff, domain.RoleManager, domain.RoleAdmin},
	PageServiceTypes:   {domain.RoleStaff, domain.RoleAdmin},
	PageInventory:      {domain.RoleStaff, domain.RoleAdmin},
	PageInventoryNew:   {domain.RoleStaff, domain.RoleAdmin},
	PageInventoryMoves: {domain.RoleStaff, domain.RoleAdmin},
	PageVehicleTypes:   {domain.RoleStaff, domain.RoleAdmin},

	PageOperationsDashboard: {domain.RoleStaff, domain.RoleManager, domain.RoleAdmin},

	PageInvoices:      {domain.RoleFinance},
	PageInvoiceDetail: {domain.RoleFinance},
	PageFinanceLedger: {domain.RoleFinance},
}

// Known reports whether the key names an existing page.
func Known(key PageKey) bool {
	_, ok := accessTable[key]
	return ok
}

// AllowedRoles returns the roles permitted to open the page. Nil for unknown
// pages.
func AllowedRoles(key PageKey) []domain.Role {
	roles := accessTable[key]
	out := make([]domain.Role, len(roles))
	copy(out, roles)
	return out
}

// Accessible reports whether the role may open the page. Unknown roles and
// unknown pages are denied.
func Accessible(role domain.Role, key PageKey) bool {
	for _, r := range accessTable[key] {
		if r == role {
			return true
		}
	}
	return false
}

// AccessiblePages returns every page the role may open. Order is not
// guaranteed; callers needing order should sort.
func AccessiblePages(role domain.Role) []PageKey {
	var pages []PageKey
	for key, roles := range accessTable {
		for _, r := range roles {
			if r == role {
				pages = append(pages, key)
				break
			}
		}
	}
	return pages
}
