package domain

import "time"

// User is the domain model for every portal account: customers, technicians,
// staff, managers, finance officers and admins share one table distinguished
// by Role.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Phone        string
	Address      string
	City         string
	PostalCode   string
	Role         Role
	Enabled      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last names for display.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
