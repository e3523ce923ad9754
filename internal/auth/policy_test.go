package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"field-ministry/campo/internal/constants"
	"field-ministry/campo/internal/errs"
)

func session(id string, role constants.UserRole) UserClaims {
	return &SessionClaims{UserUUID: id, RoleValue: role}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		claims   UserClaims
		action   Action
		resource Resource
		owner    string
		want     error
	}{
		{"member reads own participations", session("u1", constants.RoleMember), ActionRead, ResourceUserParticipations, "u1", nil},
		{"member reads other participations", session("u1", constants.RoleMember), ActionRead, ResourceUserParticipations, "u2", errs.ErrForbidden},
		{"leader reads other participations", session("u1", constants.RoleLeader), ActionRead, ResourceUserParticipations, "u2", errs.ErrForbidden},
		{"admin reads other participations", session("u1", constants.RoleAdmin), ActionRead, ResourceUserParticipations, "u2", nil},
		{"member reads own notifications", session("u1", constants.RoleMember), ActionRead, ResourceUserNotifications, "u1", nil},
		{"coordinator reads other notifications", session("u1", constants.RoleCoordinator), ActionRead, ResourceUserNotifications, "u2", errs.ErrForbidden},
		{"member joins self", session("u1", constants.RoleMember), ActionCreate, ResourceParticipation, "u1", nil},
		{"member adds other", session("u1", constants.RoleMember), ActionCreate, ResourceParticipation, "u2", errs.ErrForbidden},
		{"leader adds other", session("u1", constants.RoleLeader), ActionCreate, ResourceParticipation, "u2", nil},
		{"coordinator adds other", session("u1", constants.RoleCoordinator), ActionCreate, ResourceParticipation, "u2", nil},
		{"member creates notification", session("u1", constants.RoleMember), ActionCreate, ResourceNotification, "", errs.ErrForbidden},
		{"leader creates notification", session("u1", constants.RoleLeader), ActionCreate, ResourceNotification, "", errs.ErrForbidden},
		{"coordinator creates notification", session("u1", constants.RoleCoordinator), ActionCreate, ResourceNotification, "", nil},
		{"member updates self", session("u1", constants.RoleMember), ActionUpdate, ResourceUser, "u1", errs.ErrForbidden},
		{"admin deletes user", session("u1", constants.RoleAdmin), ActionDelete, ResourceUser, "u2", nil},
		{"unlisted pair needs only a caller", session("u1", constants.RoleMember), ActionCreate, Resource("territory"), "", nil},
		{"no caller", nil, ActionCreate, Resource("territory"), "", errs.ErrUnauthorized},
		{"api key owner", &APIKeyClaims{UserUUID: "svc", RoleValue: constants.RoleMember}, ActionRead, ResourceUserNotifications, "svc", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.claims, tt.action, tt.resource, tt.owner)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRuleFor(t *testing.T) {
	rule, ok := RuleFor(ActionCreate, ResourceNotification)
	require.True(t, ok)
	require.False(t, rule.OwnerAllowed)
	require.ElementsMatch(t, []constants.UserRole{constants.RoleAdmin, constants.RoleCoordinator}, rule.Roles)

	_, ok = RuleFor(ActionUpdate, Resource("territory"))
	require.False(t, ok)
}
