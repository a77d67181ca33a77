package dto

import "github.com/autofuellanka/portal-service/internal/navigation"

// MenuResponse is the role-scoped navigation menu.
type MenuResponse struct {
	Items []navigation.MenuItem `json:"items"`
}

// PageAccessResponse answers "may the caller open this page".
type PageAccessResponse struct {
	Page       string   `json:"page"`
	Accessible bool     `json:"accessible"`
	Required   []string `json:"required_roles,omitempty"`
}

// RestoreResponse resolves a stored fragment into the page the caller lands
// on, mirroring deep-link restoration on reload.
type RestoreResponse struct {
	Fragment   string `json:"fragment"`
	Page       string `json:"page"`
	InvoiceID  int64  `json:"invoice_id,omitempty"`
	Redirected bool   `json:"redirected"`
}
