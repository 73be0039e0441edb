package models

// Role is one of the four secret identities dealt each round
type Role string

const (
	// RoleRaja is the king, worth the highest base points
	RoleRaja Role = "raja"

	// RoleMantri is the minister
	RoleMantri Role = "mantri"

	// RoleChor is the thief the sipahi must identify
	RoleChor Role = "chor"

	// RoleSipahi is the guard who guesses the chor
	RoleSipahi Role = "sipahi"

	// RoleUnassigned means no role has been dealt yet
	RoleUnassigned Role = ""
)

// Roles lists the four roles dealt every round, in canonical order
var Roles = [4]Role{RoleRaja, RoleMantri, RoleChor, RoleSipahi}

// IsPublic reports whether a role is visible to every viewer as soon as
// it is dealt. Raja and Sipahi announce themselves; Mantri and Chor stay
// hidden until the reveal.
func (r Role) IsPublic() bool {
	return r == RoleRaja || r == RoleSipahi
}
