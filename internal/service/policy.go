package service

import (
	"github.com/savi-dev/savi/shared/domain"
	"github.com/savi-dev/savi/shared/errors"
)

// Action enumerates the mutating operations subject to role gating.
type Action int

const (
	ActionCreateThread Action = iota
	ActionAddComment
	ActionResolveRegistration
	ActionManageNotifications
	ActionVote
)

// Policy is the single role gate. Every mutating service consults it before
// touching state, so no screen re-derives its own gating rules.
type Policy struct{}

// allowedRoles maps each gated action to the roles that may invoke it.
// A nil entry means no gate at all (anonymous included).
var allowedRoles = map[Action][]domain.Role{
	ActionCreateThread:        {domain.RoleCustomer},
	ActionAddComment:          {domain.RoleCustomer, domain.RoleTechnician, domain.RoleAdmin},
	ActionResolveRegistration: {domain.RoleAdmin},
	ActionManageNotifications: {domain.RoleCustomer, domain.RoleTechnician, domain.RoleAdmin},
	ActionVote:                nil,
}

// Check returns nil when the user (nil for anonymous) may invoke the action.
// Anonymous denials carry RedirectToLogin so the UI can route to the login
// page; authenticated denials are silent blocks.
func (Policy) Check(user *domain.User, action Action) error {
	roles, gated := allowedRoles[action]
	if !gated || roles == nil {
		return nil
	}

	if user == nil {
		return &errors.AuthorizationDenied{Message: "Please sign-in", RedirectToLogin: true}
	}

	for _, r := range roles {
		if user.Role == r {
			return nil
		}
	}
	return &errors.AuthorizationDenied{Message: "Your role is not allowed to perform this action"}
}
