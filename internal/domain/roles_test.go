package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoleCategoryAliases(t *testing.T) {
	cases := map[string]RoleCategory{
		"administrator": RoleAdmin,
		"admin":         RoleAdmin,
		"moderator":     RoleModerator,
		"mod":           RoleModerator,
		"supporter":     RoleSupporter,
		"supp":          RoleSupporter,
		"team":          RoleTeam,
		"Mute":          RoleMute,
	}
	for in, want := range cases {
		got, err := ParseRoleCategory(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseRoleCategory("owner")
	assert.Error(t, err)
}

func TestSettingsKeys(t *testing.T) {
	var keys []string
	for _, c := range AllRoleCategories {
		assert.True(t, c.Valid())
		keys = append(keys, c.SettingsKey())
	}
	assert.Equal(t, []string{"admin_role", "mod_role", "supp_role", "team_role", "mute_role"}, keys)
	assert.False(t, RoleCategory("owner").Valid())
}

func TestPermissionLevelOrder(t *testing.T) {
	assert.True(t, LevelAdministrator.Allows(LevelSupporter))
	assert.True(t, LevelSupporter.Allows(LevelSupporter))
	assert.False(t, LevelPublic.Allows(LevelSupporter))
	assert.False(t, LevelModerator.Allows(LevelAdministrator))
	assert.Equal(t, "administrator", LevelAdministrator.String())
}
