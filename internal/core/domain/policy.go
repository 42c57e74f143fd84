package domain

// Policy is a named authorization rule evaluated against the role claim.
// The set is closed: policies are compiled in, not configured at runtime.
type Policy string

const (
	// PolicyAdminOnly allows only the Admin role.
	PolicyAdminOnly Policy = "AdminOnly"
	// PolicyUserOrAdmin allows any authenticated account with a known role.
	PolicyUserOrAdmin Policy = "UserOrAdmin"
)

// policyRoles defines which roles satisfy each policy.
var policyRoles = map[Policy][]string{
	PolicyAdminOnly:   {RoleAdmin},
	PolicyUserOrAdmin: {RoleUser, RoleAdmin},
}

// AllowsRole reports whether role alone satisfies the policy. Unknown
// policies allow nothing.
func (p Policy) AllowsRole(role string) bool {
	for _, r := range policyRoles[p] {
		if r == role {
			return true
		}
	}
	return false
}
