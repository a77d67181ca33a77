package navigation

import (
	"testing"

	"github.com/autofuellanka/portal-service/internal/domain"
)

func TestMenuStartsWithHome(t *testing.T) {
	for _, role := range domain.AllRoles() {
		items := MenuFor(role, 0)
		if len(items) == 0 || items[0].Page != PageHome {
			t.Errorf("menu for %s must start with home", role)
		}
	}
}

func TestUnknownRoleGetsOnlyHome(t *testing.T) {
	items := MenuFor(domain.Role("INTERN"), 0)
	if len(items) != 1 || items[0].Page != PageHome {
		t.Fatalf("unknown role menu = %v", items)
	}
}

func TestTechnicianBadge(t *testing.T) {
	var pending *MenuItem
	for _, item := range MenuFor(domain.RoleTechnician, 4) {
		if item.Page == PagePendingJobs {
			it := item
			pending = &it
		}
	}
	if pending == nil {
		t.Fatal("technician menu must include pending-jobs")
	}
	if pending.Badge != 4 || !pending.Pulse {
		t.Fatalf("badge = %d pulse = %v", pending.Badge, pending.Pulse)
	}
	if pending.Label != "Pending (4)" {
		t.Fatalf("label = %q", pending.Label)
	}
}

func TestTechnicianBadgeQuietWhenZero(t *testing.T) {
	for _, item := range MenuFor(domain.RoleTechnician, 0) {
		if item.Page == PagePendingJobs {
			if item.Pulse || item.Badge != 0 || item.Label != "Pending" {
				t.Fatalf("zero pending should render a quiet item, got %+v", item)
			}
			return
		}
	}
	t.Fatal("pending-jobs item missing")
}

func TestMenusAreExactMatchNotHierarchical(t *testing.T) {
	// Staff and admin menus are enumerated independently; admin does not
	// inherit the staff list.
	staff := MenuFor(domain.RoleStaff, 0)
	admin := MenuFor(domain.RoleAdmin, 0)
	hasUserManagement := func(items []MenuItem) bool {
		for _, it := range items {
			if it.Page == PageUserManagement {
				return true
			}
		}
		return false
	}
	if hasUserManagement(staff) {
		t.Error("staff menu should not offer user-management")
	}
	if !hasUserManagement(admin) {
		t.Error("admin menu should offer user-management")
	}
}
