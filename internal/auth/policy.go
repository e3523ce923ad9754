package auth

import (
	"field-ministry/campo/internal/constants"
	"field-ministry/campo/internal/errs"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Resource string

const (
	ResourceUserParticipations Resource = "user-participations"
	ResourceUserNotifications  Resource = "user-notifications"
	ResourceParticipation      Resource = "participation"
	ResourceNotification       Resource = "notification"
	ResourceUser               Resource = "user"
)

// Rule allows a request when the caller holds one of Roles, or when
// OwnerAllowed is set and the caller is the target user.
type Rule struct {
	Roles        []constants.UserRole
	OwnerAllowed bool
}

type policyKey struct {
	action   Action
	resource Resource
}

// Pairs missing from the table only need an authenticated caller.
var policyTable = map[policyKey]Rule{
	{ActionRead, ResourceUserParticipations}: {
		Roles:        []constants.UserRole{constants.RoleAdmin},
		OwnerAllowed: true,
	},
	{ActionRead, ResourceUserNotifications}: {
		Roles:        []constants.UserRole{constants.RoleAdmin},
		OwnerAllowed: true,
	},
	{ActionCreate, ResourceParticipation}: {
		Roles:        []constants.UserRole{constants.RoleAdmin, constants.RoleCoordinator, constants.RoleLeader},
		OwnerAllowed: true,
	},
	{ActionCreate, ResourceNotification}: {
		Roles: []constants.UserRole{constants.RoleAdmin, constants.RoleCoordinator},
	},
	{ActionUpdate, ResourceUser}: {
		Roles: []constants.UserRole{constants.RoleAdmin},
	},
	{ActionDelete, ResourceUser}: {
		Roles: []constants.UserRole{constants.RoleAdmin},
	},
}

// RuleFor returns the rule for (action, resource) and whether one exists.
func RuleFor(action Action, resource Resource) (Rule, bool) {
	rule, ok := policyTable[policyKey{action, resource}]
	return rule, ok
}

// Authorize decides whether claims may perform action on resource. ownerID is
// the user the request targets, or "" when it targets no particular user.
// It returns errs.ErrUnauthorized without claims and errs.ErrForbidden on DENY.
func Authorize(claims UserClaims, action Action, resource Resource, ownerID string) error {
	if claims == nil {
		return errs.ErrUnauthorized
	}

	rule, ok := RuleFor(action, resource)
	if !ok {
		return nil
	}

	if rule.OwnerAllowed && ownerID != "" && claims.UserID() == ownerID {
		return nil
	}
	for _, role := range rule.Roles {
		if claims.Role() == role {
			return nil
		}
	}
	return errs.ErrForbidden
}
