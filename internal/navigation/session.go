package navigation

import "github.com/autofuellanka/portal-service/internal/domain"

// Session is the authenticated caller as seen by the navigation core. It is
// produced by the auth layer and treated as read-only here; lifecycle
// (login, logout, expiry) belongs to the auth collaborator.
type Session struct {
	UserID    int64
	Email     string
	FirstName string
	Role      domain.Role
}

// SessionFromUser derives a navigation session from a loaded account.
func SessionFromUser(u *domain.User) *Session {
	if u == nil {
		return nil
	}
	return &Session{
		UserID:    u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		Role:      u.Role,
	}
}
