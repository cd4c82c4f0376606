package access_test

import (
	"testing"

	"library-service/internal/domain/access"

	"github.com/stretchr/testify/assert"
)

func TestDecisionTable(t *testing.T) {
	testCases := []struct {
		resource access.Resource
		action   access.Action
		anon     bool
		authed   bool
		staff    bool
	}{
		{access.ResourceBooks, access.ActionRead, true, true, true},
		{access.ResourceBooks, access.ActionCreate, false, false, true},
		{access.ResourceBooks, access.ActionUpdate, false, false, true},
		{access.ResourceBooks, access.ActionDelete, false, false, true},

		{access.ResourceBorrowings, access.ActionRead, false, true, true},
		{access.ResourceBorrowings, access.ActionCreate, false, true, true},
		{access.ResourceBorrowings, access.ActionReturn, false, true, true},
		{access.ResourceBorrowings, access.ActionNotify, false, false, true},

		{access.ResourcePayments, access.ActionRead, false, true, true},
		{access.ResourcePayments, access.ActionCreate, false, true, true},
	}

	for _, tt := range testCases {
		name := string(tt.resource) + "." + string(tt.action)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.anon, access.Allowed(access.RoleAnonymous, tt.resource, tt.action), "anonymous")
			assert.Equal(t, tt.authed, access.Allowed(access.RoleAuthenticated, tt.resource, tt.action), "authenticated")
			assert.Equal(t, tt.staff, access.Allowed(access.RoleStaff, tt.resource, tt.action), "staff")
		})
	}
}

func TestUnlistedOperationsAreStaffOnly(t *testing.T) {
	assert.False(t, access.Allowed(access.RoleAnonymous, access.ResourcePayments, access.ActionDelete))
	assert.False(t, access.Allowed(access.RoleAuthenticated, access.ResourcePayments, access.ActionDelete))
	assert.True(t, access.Allowed(access.RoleStaff, access.ResourcePayments, access.ActionDelete))
}
