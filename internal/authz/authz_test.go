package authz

import (
	"testing"

	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCheckAccess(t *testing.T) {
	perms := []Permission{
		PermCreateMultipleAccounts,
		PermAddCommentToRecord,
		PermEditCommentToRecord,
		PermDeleteCommentToRecord,
		PermGetCommentsOfRecord,
	}

	for _, perm := range perms {
		assert.True(t, CheckAccess(domain.RoleAdmin, perm), "admin denied %s", perm)
		assert.True(t, CheckAccess(domain.RoleSuperUser, perm), "superuser denied %s", perm)
		assert.False(t, CheckAccess(domain.RoleUser, perm), "user granted %s", perm)
	}
}

func TestCheckAccessDeniesByDefault(t *testing.T) {
	assert.False(t, CheckAccess(domain.RoleAdmin, Permission("DROP_ALL_TABLES")))
	assert.False(t, CheckAccess(domain.RoleSuperUser, Permission("")))
	assert.False(t, CheckAccess(domain.UserRole("owner"), PermAddCommentToRecord))
	assert.False(t, CheckAccess(domain.UserRole(""), PermGetCommentsOfRecord))
}
