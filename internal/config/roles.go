package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TimezoneRole pairs a guild role with its UTC offset.
type TimezoneRole struct {
	RoleID      string `yaml:"role_id"`
	OffsetHours int    `yaml:"offset_hours"`
}

// RoleSet is the boot-time role configuration. The timezone role list is
// ordered; when a member holds more than one timezone role, the first one
// in this list wins. There is no runtime mutation path for timezone
// roles, a known limitation carried over from the original deployment.
type RoleSet struct {
	TimezoneRoles []TimezoneRole `yaml:"timezone_roles"`

	// PronounRoles seeds pronouns.json on first start. After that the
	// persisted list is authoritative.
	PronounRoles []string `yaml:"pronoun_roles"`
}

// LoadRoles parses a RoleSet from a yaml file.
func LoadRoles(path string) (*RoleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roles file %s: %w", path, err)
	}

	var roles RoleSet
	if err := yaml.Unmarshal(data, &roles); err != nil {
		return nil, fmt.Errorf("failed to parse roles file %s: %w", path, err)
	}

	seen := make(map[string]bool, len(roles.TimezoneRoles))
	for _, tz := range roles.TimezoneRoles {
		if tz.RoleID == "" {
			return nil, fmt.Errorf("roles file %s: timezone role with empty role_id", path)
		}
		if seen[tz.RoleID] {
			return nil, fmt.Errorf("roles file %s: duplicate timezone role %s", path, tz.RoleID)
		}
		seen[tz.RoleID] = true
	}

	return &roles, nil
}

// TimezoneRoleIDs returns the configured timezone role IDs in list order.
func (r *RoleSet) TimezoneRoleIDs() []string {
	ids := make([]string, 0, len(r.TimezoneRoles))
	for _, tz := range r.TimezoneRoles {
		ids = append(ids, tz.RoleID)
	}
	return ids
}

// Offset returns the UTC offset in hours for a timezone role, and whether
// the role is configured at all.
func (r *RoleSet) Offset(roleID string) (int, bool) {
	for _, tz := range r.TimezoneRoles {
		if tz.RoleID == roleID {
			return tz.OffsetHours, true
		}
	}
	return 0, false
}
