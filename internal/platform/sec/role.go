// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level carried by an access token.
//
// Artistly issues tokens to the single dashboard manager only. Visitors stay
// anonymous and are told apart by their X-Client-ID, so [RoleMember] exists
// for tokens minted by tests and future visitor accounts.
type UserRole string

const (
	// Reviews artist submissions on the dashboard
	RoleManager UserRole = "manager"

	// Visitors booking artists or onboarding themselves
	RoleMember UserRole = "member"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
// Unknown roles rank below every known one.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// Known reports whether r is one of the issued roles.
func (r UserRole) Known() bool {
	return r.level() > 0
}

func (r UserRole) level() int {
	switch r {
	case RoleManager:
		return 20
	case RoleMember:
		return 10
	default:
		return 0
	}
}
