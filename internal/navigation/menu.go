package navigation

import (
	"fmt"

	"github.com/autofuellanka/portal-service/internal/domain"
)

// MenuItem is one navigation link offered to the current role.
type MenuItem struct {
	Page  PageKey `json:"page"`
	Label string  `json:"label"`
	Badge int     `json:"badge,omitempty"`
	Pulse bool    `json:"pulse,omitempty"`
}

// MenuFor enumerates the navigation links for the exact role. There is no
// role hierarchy: each role's menu is listed independently, and a role
// matching no branch gets only home. pendingJobs feeds the technician badge.
func MenuFor(role domain.Role, pendingJobs int) []MenuItem {
	items := []MenuItem{{Page: PageHome, Label: "Home"}}

	switch role {
	case domain.RoleCustomer:
		items = append(items,
			MenuItem{Page: PageMyVehicles, Label: "My Vehicles"},
			MenuItem{Page: PageServices, Label: "Services"},
			MenuItem{Page: PageMyBookings, Label: "My Bookings"},
			MenuItem{Page: PageProfile, Label: "Profile"},
		)
	case domain.RoleTechnician:
		pending := MenuItem{Page: PagePendingJobs, Label: "Pending"}
		if pendingJobs > 0 {
			pending.Label = fmt.Sprintf("Pending (%d)", pendingJobs)
			pending.Badge = pendingJobs
			pending.Pulse = true
		}
		items = append(items,
			MenuItem{Page: PageJobManagement, Label: "Job Management"},
			MenuItem{Page: PageCurrentJobs, Label: "Current Jobs"},
			MenuItem{Page: PageTechnicians, Label: "Technicians"},
			pending,
		)
	case domain.RoleStaff:
		items = append(items,
			MenuItem{Page: PageOperationsDashboard, Label: "Operations Dashboard"},
		)
	case domain.RoleManager:
		items = append(items,
			MenuItem{Page: PageOperationsDashboard, Label: "Operations Dashboard"},
			MenuItem{Page: PageBookings, Label: "Bookings"},
		)
	case domain.RoleFinance:
		items = append(items,
			MenuItem{Page: PageInvoices, Label: "Invoices"},
			MenuItem{Page: PageFinanceLedger, Label: "Finance Ledger"},
		)
	case domain.RoleAdmin:
		items = append(items,
			MenuItem{Page: PageUserManagement, Label: "User Management"},
			MenuItem{Page: PageOperationsDashboard, Label: "Operations Dashboard"},
		)
	}

	return items
}
