// Package authz implements the static role-to-permission policy consulted
// before privileged operations. The policy table is fixed at compile time;
// unknown permissions and unknown roles are denied.
package authz

import "github.com/saiharsha-plivo/money-manager/internal/core/domain"

// Permission names a privileged operation gated by role.
type Permission string

const (
	PermCreateMultipleAccounts Permission = "CREATE_MULTIPLE_ACCOUNTS"
	PermAddCommentToRecord     Permission = "ADD_COMMENT_TO_RECORD"
	PermEditCommentToRecord    Permission = "EDIT_COMMENT_TO_RECORD"
	PermDeleteCommentToRecord  Permission = "DELETE_COMMENT_TO_RECORD"
	PermGetCommentsOfRecord    Permission = "GET_COMMENTS_OF_RECORD"
)

var policy = map[Permission][]domain.UserRole{
	PermCreateMultipleAccounts: {domain.RoleAdmin, domain.RoleSuperUser},
	PermAddCommentToRecord:     {domain.RoleAdmin, domain.RoleSuperUser},
	PermEditCommentToRecord:    {domain.RoleAdmin, domain.RoleSuperUser},
	PermDeleteCommentToRecord:  {domain.RoleAdmin, domain.RoleSuperUser},
	PermGetCommentsOfRecord:    {domain.RoleAdmin, domain.RoleSuperUser},
}

// CheckAccess reports whether the given role holds the given permission.
// Deny is the default: a permission absent from the policy table grants
// nothing, regardless of role.
func CheckAccess(role domain.UserRole, perm Permission) bool {
	allowed, ok := policy[perm]
	if !ok {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
