package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleOwner.IsValid())
	assert.True(t, RoleUser.IsValid())
	assert.False(t, Role("SUPERADMIN").IsValid())
	assert.False(t, Role("admin").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestAllowed(t *testing.T) {
	allOps := []Operation{
		OpCreateUser, OpListUsers, OpViewDashboard, OpCreateStore,
		OpListStores, OpViewOwnRatings, OpBrowseStores, OpRateStore,
	}

	permitted := map[Role]map[Operation]bool{
		RoleAdmin: {
			OpCreateUser:    true,
			OpListUsers:     true,
			OpViewDashboard: true,
			OpCreateStore:   true,
			OpListStores:    true,
		},
		RoleOwner: {
			OpViewOwnRatings: true,
		},
		RoleUser: {
			OpBrowseStores: true,
			OpRateStore:    true,
		},
	}

	for role, ops := range permitted {
		for _, op := range allOps {
			assert.Equal(t, ops[op], Allowed(role, op),
				"role %s op %s", role, op)
		}
	}
}

func TestAllowed_UnknownRoleDeniesEverything(t *testing.T) {
	for _, op := range []Operation{OpCreateUser, OpBrowseStores, OpViewOwnRatings} {
		assert.False(t, Allowed(Role("GUEST"), op))
		assert.False(t, Allowed(Role(""), op))
	}
}
