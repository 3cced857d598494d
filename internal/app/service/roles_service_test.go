package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/modtools-bot/internal/domain"
)

func TestSetThenQueryEveryCategory(t *testing.T) {
	for _, cat := range domain.AllRoleCategories {
		t.Run(string(cat), func(t *testing.T) {
			settings, platform := newFakeSettings(), newFakePlatform()
			svc := NewRoleService(settings, platform, nullLogger())
			role := platform.addRole(555, "Staff "+string(cat))

			setResp := &fakeResponder{}
			require.NoError(t, svc.ConfigureRole(context.Background(), invocation(setResp), domain.SetRole{Category: cat, Role: role}))
			assert.Equal(t, []string{msgRoleSet}, setResp.replies)
			require.Len(t, platform.changelog, 1)
			assert.Contains(t, platform.changelog[0], role.Name)
			assert.Contains(t, platform.changelog[0], role.ID)

			getResp := &fakeResponder{}
			require.NoError(t, svc.ConfigureRole(context.Background(), invocation(getResp), domain.RoleQuery{Category: cat}))
			require.Len(t, getResp.replies, 1)
			assert.Equal(t, "`@Staff "+string(cat)+"` (555)", getResp.replies[0])
			assert.Len(t, platform.changelog, 1, "query must not emit changelog")
		})
	}
}

func TestQueryNeverSet(t *testing.T) {
	settings := newFakeSettings()
	svc := NewRoleService(settings, newFakePlatform(), nullLogger())
	resp := &fakeResponder{}

	err := svc.ConfigureRole(context.Background(), invocation(resp), domain.RoleQuery{Category: domain.RoleMute})
	require.NoError(t, err)
	assert.Equal(t, []string{msgNoRoleSet}, resp.replies)
	assert.Zero(t, settings.writes)
}

func TestQueryStaleRole(t *testing.T) {
	settings := newFakeSettings()
	settings.values["100/mod_role"] = 777
	svc := NewRoleService(settings, newFakePlatform(), nullLogger())
	resp := &fakeResponder{}

	require.NoError(t, svc.ConfigureRole(context.Background(), invocation(resp), domain.RoleQuery{Category: domain.RoleModerator}))
	require.Len(t, resp.replies, 1)
	assert.Equal(t, fmtStaleRole("777"), resp.replies[0])
	assert.NotEqual(t, msgNoRoleSet, resp.replies[0])
}

func TestSetOverwritesAndIsIdempotent(t *testing.T) {
	settings, platform := newFakeSettings(), newFakePlatform()
	svc := NewRoleService(settings, platform, nullLogger())
	first := platform.addRole(1, "Old")
	second := platform.addRole(2, "New")
	ctx := context.Background()

	require.NoError(t, svc.ConfigureRole(ctx, invocation(&fakeResponder{}), domain.SetRole{Category: domain.RoleTeam, Role: first}))
	require.NoError(t, svc.ConfigureRole(ctx, invocation(&fakeResponder{}), domain.SetRole{Category: domain.RoleTeam, Role: second}))
	require.NoError(t, svc.ConfigureRole(ctx, invocation(&fakeResponder{}), domain.SetRole{Category: domain.RoleTeam, Role: second}))

	assert.Equal(t, int64(2), settings.values["100/team_role"])
	assert.Len(t, settings.values, 1)
	assert.Equal(t, 3, settings.writes)
	assert.Len(t, platform.changelog, 3)
}

func TestSetKeysAreIndependentPerCategory(t *testing.T) {
	settings, platform := newFakeSettings(), newFakePlatform()
	svc := NewRoleService(settings, platform, nullLogger())
	ctx := context.Background()

	require.NoError(t, svc.ConfigureRole(ctx, invocation(&fakeResponder{}), domain.SetRole{Category: domain.RoleAdmin, Role: platform.addRole(10, "A")}))
	require.NoError(t, svc.ConfigureRole(ctx, invocation(&fakeResponder{}), domain.SetRole{Category: domain.RoleSupporter, Role: platform.addRole(20, "S")}))

	assert.Equal(t, map[string]int64{"100/admin_role": 10, "100/supp_role": 20}, settings.values)
}

func TestSetPersistenceFailurePropagates(t *testing.T) {
	settings, platform := newFakeSettings(), newFakePlatform()
	settings.err = errors.New("db down")
	svc := NewRoleService(settings, platform, nullLogger())
	resp := &fakeResponder{}

	err := svc.ConfigureRole(context.Background(), invocation(resp), domain.SetRole{Category: domain.RoleAdmin, Role: platform.addRole(1, "A")})
	assert.EqualError(t, err, "db down")
	assert.Empty(t, resp.replies)
	assert.Empty(t, platform.changelog)
}

func TestChangelogFormatterPerCategory(t *testing.T) {
	for _, cat := range domain.AllRoleCategories {
		f, ok := changelogRoleSet[cat]
		require.True(t, ok, cat)
		assert.Contains(t, f("Helpers", "42"), "`@Helpers` (42)")
	}
	assert.NotEqual(t, changelogRoleSet[domain.RoleAdmin]("x", "1"), changelogRoleSet[domain.RoleMute]("x", "1"))
}

func TestInvalidCategory(t *testing.T) {
	svc := NewRoleService(newFakeSettings(), newFakePlatform(), nullLogger())
	err := svc.ConfigureRole(context.Background(), invocation(&fakeResponder{}), domain.RoleQuery{Category: "owner"})
	assert.Error(t, err)
}
