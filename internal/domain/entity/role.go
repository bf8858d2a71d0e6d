// Package entity contains the core business objects of the project.
package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Role represents the type of role a user can have in the marketplace.
type Role string

const (
	// RoleCustomer indicates a shopper who owns orders.
	RoleCustomer Role = "customer"
	// RoleVendor indicates a seller who owns products.
	RoleVendor Role = "vendor"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

// Actor is the identity issuing a request. The set of implementations is closed:
// only Customer, VendorActor and Admin satisfy it.
type Actor interface {
	UserID() uuid.UUID
	Role() Role
	sealed()
}

// Customer is a shopper acting on their own orders.
type Customer struct {
	ID uuid.UUID
}

func (a Customer) UserID() uuid.UUID { return a.ID }
func (Customer) Role() Role          { return RoleCustomer }
func (Customer) sealed()             {}

// VendorActor is a user acting on behalf of the vendor they are linked to.
type VendorActor struct {
	ID       uuid.UUID
	VendorID uuid.UUID
}

func (a VendorActor) UserID() uuid.UUID { return a.ID }
func (VendorActor) Role() Role          { return RoleVendor }
func (VendorActor) sealed()             {}

// Admin is a platform administrator.
type Admin struct {
	ID uuid.UUID
}

func (a Admin) UserID() uuid.UUID { return a.ID }
func (Admin) Role() Role          { return RoleAdmin }
func (Admin) sealed()             {}
