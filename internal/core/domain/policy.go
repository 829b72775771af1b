package domain

// Access policy: pure predicates mapping a role to permitted actions. Page
// and route gates compose these; no state is consulted here.

// CanManageUsers reports whether the role may change other users' roles.
// Reserved for the top admin tier.
func CanManageUsers(r Role) bool {
	return r == RoleL0Admin
}

// CanManageClients reports whether the role may create clients and change
// client assignments.
func CanManageClients(r Role) bool {
	return r == RoleL0Admin || r == RoleL1Admin || r == RoleManager
}

// CanViewClients reports whether the role may read client records. Every
// valid role qualifies, viewer included; the enumeration only separates
// managing from not managing.
func CanViewClients(r Role) bool {
	return r.Valid()
}

// IsAdminRole reports whether the role is one of the two admin tiers.
func IsAdminRole(r Role) bool {
	return r == RoleL0Admin || r == RoleL1Admin
}
