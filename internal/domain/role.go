package domain

// Role enumerates dashboard user roles. The lowercase snake_case string is
// the canonical representation, on the wire and in storage.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleClubAdmin  Role = "club_admin"
	RoleCoach      Role = "coach"
	RoleAnalyst    Role = "analyst"
	RolePlayer     Role = "player"
)

// AllRoles lists every known role.
func AllRoles() []Role {
	return []Role{RoleSuperAdmin, RoleClubAdmin, RoleCoach, RoleAnalyst, RolePlayer}
}

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleClubAdmin, RoleCoach, RoleAnalyst, RolePlayer:
		return true
	}
	return false
}
