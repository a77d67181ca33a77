package dto

import "github.com/autofuellanka/portal-service/internal/domain"

// ServiceTypeRequest payload for catalog management.
type ServiceTypeRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	BasePrice   string `json:"base_price"`
	IsActive    *bool  `json:"is_active"`
}

// ServiceTypeResponse is the API view of a catalog entry.
type ServiceTypeResponse struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	BasePrice   string `json:"base_price"`
	IsActive    bool   `json:"is_active"`
}

// NewServiceTypeResponse maps a catalog entry.
func NewServiceTypeResponse(st *domain.ServiceType) ServiceTypeResponse {
	return ServiceTypeResponse{
		ID:          st.ID,
		Code:        st.Code,
		Name:        st.Name,
		Description: st.Description,
		BasePrice:   st.BasePrice.StringFixed(2),
		IsActive:    st.IsActive,
	}
}

// LocationResponse is the API view of a bookable site.
type LocationResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Type    string `json:"type"`
}

// NewLocationResponse maps a location.
func NewLocationResponse(loc *domain.Location) LocationResponse {
	return LocationResponse{
		ID:      loc.ID,
		Name:    loc.Name,
		Address: loc.Address,
		Type:    string(loc.Type),
	}
}
