package navigation

import (
	"testing"

	"github.com/autofuellanka/portal-service/internal/domain"
)

func TestGuardSingleRole(t *testing.T) {
	finance := &Session{UserID: 1, Role: domain.RoleFinance}
	customer := &Session{UserID: 2, Role: domain.RoleCustomer}

	if d := Check(finance, false, domain.RoleFinance); !d.Allowed() {
		t.Fatalf("finance session should pass a FINANCE guard, got %s", d.Kind)
	}
	d := Check(customer, false, domain.RoleFinance)
	if d.Kind != DecisionDenied {
		t.Fatalf("customer session should be denied, got %s", d.Kind)
	}
	if len(d.Required) != 1 || d.Required[0] != domain.RoleFinance {
		t.Fatalf("denial should name the required role, got %v", d.Required)
	}
}

func TestGuardRoleSet(t *testing.T) {
	required := []domain.Role{domain.RoleStaff, domain.RoleManager}

	for _, role := range required {
		if d := Check(&Session{UserID: 1, Role: role}, false, required...); !d.Allowed() {
			t.Fatalf("%s should pass a STAFF/MANAGER guard, got %s", role, d.Kind)
		}
	}
	for _, role := range []domain.Role{domain.RoleCustomer, domain.RoleTechnician, domain.RoleFinance, domain.RoleAdmin} {
		if d := Check(&Session{UserID: 1, Role: role}, false, required...); d.Kind != DecisionDenied {
			t.Fatalf("%s should be denied by a STAFF/MANAGER guard, got %s", role, d.Kind)
		}
	}
}

func TestGuardSignedOutRendersNothing(t *testing.T) {
	if d := Check(nil, false, domain.RoleFinance); d.Kind != DecisionSignedOut {
		t.Fatalf("no session should be SIGNED_OUT, got %s", d.Kind)
	}
}

func TestGuardLoadingPrecedesEverything(t *testing.T) {
	if d := Check(nil, true, domain.RoleFinance); d.Kind != DecisionLoading {
		t.Fatalf("loading state should win, got %s", d.Kind)
	}
}

func TestGuardEmptyRequirementOnlyNeedsAuth(t *testing.T) {
	if d := Check(&Session{UserID: 1, Role: domain.RoleCustomer}, false); !d.Allowed() {
		t.Fatalf("authenticated session should pass an empty guard, got %s", d.Kind)
	}
}

func TestCheckPageUsesRegistry(t *testing.T) {
	staff := &Session{UserID: 1, Role: domain.RoleStaff}
	admin := &Session{UserID: 2, Role: domain.RoleAdmin}
	customer := &Session{UserID: 3, Role: domain.RoleCustomer}

	if d := CheckPage(staff, false, PageUserManagement); !d.Allowed() {
		t.Fatalf("staff should pass user-management, got %s", d.Kind)
	}
	if d := CheckPage(admin, false, PageUserManagement); !d.Allowed() {
		t.Fatalf("admin should pass user-management, got %s", d.Kind)
	}
	if d := CheckPage(customer, false, PageUserManagement); d.Kind != DecisionDenied {
		t.Fatalf("customer should be denied user-management, got %s", d.Kind)
	}
}
