package models

import "time"

// Tenant is an independent business account owning its own appointment data.
// Tenants are created and deactivated by external account management; this
// service only reads them.
type Tenant struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Currency  string    `json:"currency"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactEmail returns the tenant's contact address or "" when unset.
func (t *Tenant) ContactEmail() string {
	if t.Email == nil {
		return ""
	}
	return *t.Email
}
