package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRolesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRoles(t *testing.T) {
	path := writeRolesFile(t, `
timezone_roles:
  - role_id: "role-est"
    offset_hours: -5
  - role_id: "role-pst"
    offset_hours: -8
pronoun_roles:
  - "role-she"
  - "role-they"
`)

	roles, err := LoadRoles(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"role-est", "role-pst"}, roles.TimezoneRoleIDs())
	assert.Equal(t, []string{"role-she", "role-they"}, roles.PronounRoles)

	offset, ok := roles.Offset("role-pst")
	require.True(t, ok)
	assert.Equal(t, -8, offset)

	_, ok = roles.Offset("role-unknown")
	assert.False(t, ok)
}

func TestLoadRolesRejectsDuplicates(t *testing.T) {
	path := writeRolesFile(t, `
timezone_roles:
  - role_id: "role-est"
    offset_hours: -5
  - role_id: "role-est"
    offset_hours: -6
`)

	_, err := LoadRoles(path)
	assert.Error(t, err)
}

func TestLoadRolesRejectsEmptyRoleID(t *testing.T) {
	path := writeRolesFile(t, `
timezone_roles:
  - role_id: ""
    offset_hours: -5
`)

	_, err := LoadRoles(path)
	assert.Error(t, err)
}

func TestLoadRolesMissingFile(t *testing.T) {
	_, err := LoadRoles(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
