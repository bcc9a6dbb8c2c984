package models

// GuildMember is one member in a guild snapshot.
type GuildMember struct {
	// ID is the Discord user ID of the member.
	ID string

	// DisplayName is the server nickname, falling back to the account name.
	DisplayName string

	// RoleIDs is the set of role IDs the member holds.
	RoleIDs []string
}

// HasRole reports whether the member holds the given role.
func (m *GuildMember) HasRole(roleID string) bool {
	for _, id := range m.RoleIDs {
		if id == roleID {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the member holds at least one of the given
// roles.
func (m *GuildMember) HasAnyRole(roleIDs []string) bool {
	for _, id := range roleIDs {
		if m.HasRole(id) {
			return true
		}
	}
	return false
}

// GuildSnapshot is a fetched, point-in-time view of a guild's members and
// roles. It is never persisted; each request owns its own snapshot.
type GuildSnapshot struct {
	GuildID      string
	GuildName    string
	GuildIconURL string

	// Roles maps role ID to role name.
	Roles map[string]string

	Members []*GuildMember
}

// RoleName returns the name for a role ID, and whether the role still
// exists in the guild.
func (s *GuildSnapshot) RoleName(roleID string) (string, bool) {
	name, ok := s.Roles[roleID]
	return name, ok
}
