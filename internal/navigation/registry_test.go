package navigation

import (
	"testing"

	"github.com/autofuellanka/portal-service/internal/domain"
)

func TestAccessibleMatchesAllowList(t *testing.T) {
	for key, roles := range accessTable {
		allowed := make(map[domain.Role]bool, len(roles))
		for _, r := range roles {
			allowed[r] = true
		}
		for _, role := range domain.AllRoles() {
			if got := Accessible(role, key); got != allowed[role] {
				t.Errorf("Accessible(%s, %s) = %v, want %v", role, key, got, allowed[role])
			}
		}
	}
}

func TestUnknownRoleAndPageDenied(t *testing.T) {
	if Accessible(domain.Role("INTERN"), PageHome) {
		t.Error("unknown role should map to an empty allow-list")
	}
	if Accessible(domain.RoleAdmin, PageKey("secret")) {
		t.Error("unknown page should be denied for every role")
	}
}

func TestHomeAccessibleToEveryRole(t *testing.T) {
	for _, role := range domain.AllRoles() {
		if !Accessible(role, PageHome) {
			t.Errorf("home should be accessible to %s", role)
		}
	}
}

// Every page a role's menu offers must be in that role's allow-list,
// otherwise the link would silently redirect home.
func TestMenuItemsAreAccessible(t *testing.T) {
	for _, role := range domain.AllRoles() {
		for _, item := range MenuFor(role, 3) {
			if !Accessible(role, item.Page) {
				t.Errorf("menu for %s offers %s which its allow-list denies", role, item.Page)
			}
		}
	}
}

func TestAccessiblePagesConsistent(t *testing.T) {
	for _, role := range domain.AllRoles() {
		for _, key := range AccessiblePages(role) {
			if !Accessible(role, key) {
				t.Errorf("AccessiblePages(%s) returned inaccessible %s", role, key)
			}
		}
	}
}
