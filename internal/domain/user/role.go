// Package user holds the caller-facing identity values: who placed an
// order and what they may do.
package user

import "strings"

// Role is carried in access tokens. Customers own carts and orders; admins
// curate the catalogue and drive fulfilment.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

func NewRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleCustomer, RoleAdmin:
		return r, nil
	}
	return "", ErrInvalidRole
}

func (r Role) String() string { return string(r) }

func (r Role) IsAdmin() bool { return r == RoleAdmin }
