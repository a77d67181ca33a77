package navigation

import (
	"testing"

	"github.com/autofuellanka/portal-service/internal/domain"
)

func newTestRouter(role domain.Role) (*Router, *MemoryHistory) {
	history := NewMemoryHistory()
	router := NewRouter(history, nil)
	router.SetSession(&Session{UserID: 1, Email: "t@example.com", Role: role})
	return router, history
}

func TestNavigateToAllowedPage(t *testing.T) {
	router, history := newTestRouter(domain.RoleStaff)

	res := router.NavigateTo(Page{Key: PageBookings}, Params{"filter": "today"})
	if res.Redirected {
		t.Fatal("staff navigating to bookings should not redirect")
	}
	if router.Page().Key != PageBookings {
		t.Fatalf("page = %s", router.Page().Key)
	}
	if history.Fragment() != "#/bookings" {
		t.Fatalf("fragment = %q", history.Fragment())
	}
	if router.Params()["filter"] != "today" {
		t.Fatal("params not stored")
	}
}

func TestDeniedNavigationRedirectsHome(t *testing.T) {
	router, history := newTestRouter(domain.RoleCustomer)

	res := router.NavigateTo(Page{Key: PageUserManagement}, Params{"x": "y"})
	if !res.Redirected {
		t.Fatal("customer opening user-management must redirect")
	}
	if router.Page().Key != PageHome {
		t.Fatalf("page = %s, want home", router.Page().Key)
	}
	if history.Fragment() != "#/home" {
		t.Fatalf("fragment = %q, want #/home", history.Fragment())
	}
	if router.Params() != nil {
		t.Fatal("params must be cleared on redirect")
	}
}

func TestFragmentWriteIsIdempotent(t *testing.T) {
	router, history := newTestRouter(domain.RoleFinance)

	router.NavigateTo(Page{Key: PageInvoices}, nil)
	pushes := history.Pushes()
	router.NavigateTo(Page{Key: PageInvoices}, nil)
	if history.Pushes() != pushes {
		t.Fatalf("repeat navigation pushed history: %d -> %d", pushes, history.Pushes())
	}
}

func TestRestoreAdoptsAccessibleFragment(t *testing.T) {
	router, _ := newTestRouter(domain.RoleFinance)

	res := router.Restore("#/invoice-detail-42")
	if res.Redirected {
		t.Fatal("finance deep link to invoice detail should be adopted")
	}
	page := router.Page()
	if page.Key != PageInvoiceDetail || page.InvoiceID != 42 {
		t.Fatalf("page = %+v", page)
	}
}

func TestRestoreRedirectsInaccessibleDeepLink(t *testing.T) {
	router, history := newTestRouter(domain.RoleCustomer)

	res := router.Restore("#/finance-ledger")
	if !res.Redirected {
		t.Fatal("customer deep link to finance-ledger must redirect")
	}
	if history.Fragment() != "#/home" {
		t.Fatalf("fragment = %q", history.Fragment())
	}
}

func TestRestoreRedirectsMalformedFragment(t *testing.T) {
	router, _ := newTestRouter(domain.RoleAdmin)

	res := router.Restore("#/invoice-detail-abc")
	if !res.Redirected || router.Page().Key != PageHome {
		t.Fatalf("malformed fragment should land home, got %+v", router.Page())
	}
}

func TestNoSessionDeniesEverything(t *testing.T) {
	history := NewMemoryHistory()
	router := NewRouter(history, nil)

	if router.IsPageAccessible(PageHome) {
		t.Fatal("no session should deny even home")
	}

	// Redirect target already equals home, so no loop and a single push.
	router.NavigateTo(Home(), nil)
	router.NavigateTo(Home(), nil)
	if router.Page().Key != PageHome {
		t.Fatalf("page = %s", router.Page().Key)
	}
	if history.Pushes() != 1 {
		t.Fatalf("pushes = %d, want 1", history.Pushes())
	}
}

func TestRoleChangeRechecksCurrentPage(t *testing.T) {
	router, history := newTestRouter(domain.RoleFinance)
	router.NavigateTo(Page{Key: PageFinanceLedger}, nil)

	// Re-login as a customer: the finance ledger is no longer reachable.
	router.SetSession(&Session{UserID: 2, Email: "c@example.com", Role: domain.RoleCustomer})
	if router.Page().Key != PageHome {
		t.Fatalf("page after role change = %s, want home", router.Page().Key)
	}
	if history.Fragment() != "#/home" {
		t.Fatalf("fragment = %q", history.Fragment())
	}
}

func TestIsPageAccessibleFollowsAllowList(t *testing.T) {
	router, _ := newTestRouter(domain.RoleTechnician)

	if !router.IsPageAccessible(PagePendingJobs) {
		t.Fatal("technician should reach pending-jobs")
	}
	if router.IsPageAccessible(PageInvoices) {
		t.Fatal("technician should not reach invoices")
	}
}
