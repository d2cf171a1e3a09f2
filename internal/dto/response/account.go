package response

import (
	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
)

// AccountResponse is the public view of an admin, driver or user
type AccountResponse struct {
	ID     uint        `json:"_id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Mobile string      `json:"mobile,omitempty"`
	City   string      `json:"city,omitempty"`
	Role   entity.Role `json:"role,omitempty"`
}

// SessionResponse is returned by signup and login. The token is delivered
// only as a cookie.
type SessionResponse struct {
	Account *AccountResponse `json:"account"`
	Token   string           `json:"-"`
}

// FromAdmin creates an AccountResponse from an admin
func FromAdmin(a *entity.Admin) *AccountResponse {
	return &AccountResponse{ID: a.ID, Name: a.Name, Email: a.Email, Mobile: a.Mobile, City: a.City, Role: entity.RoleAdmin}
}

// FromUser creates an AccountResponse from a user
func FromUser(u *entity.User) *AccountResponse {
	return &AccountResponse{ID: u.ID, Name: u.Name, Email: u.Email, Mobile: u.Mobile, City: u.City, Role: entity.RoleUser}
}

// FromDriver creates an AccountResponse from a driver
func FromDriver(d *entity.Driver) *AccountResponse {
	return &AccountResponse{ID: d.ID, Name: d.Name, Email: d.Email, Mobile: d.Mobile, Role: entity.RoleDriver}
}

// BinUpdateResponse reports which address query located the bin
type BinUpdateResponse struct {
	Bin      *entity.Bin `json:"bin"`
	Fallback bool        `json:"fallback"`
	Query    string      `json:"query"`
}
