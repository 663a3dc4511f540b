package service

import (
	"testing"

	"github.com/savi-dev/savi/shared/domain"
	internal_errors "github.com/savi-dev/savi/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyCheck(t *testing.T) {
	policy := Policy{}

	userWithRole := func(role domain.Role) *domain.User {
		return &domain.User{Name: "Test User", Email: "test@example.com", Role: role}
	}

	tests := []struct {
		name    string
		user    *domain.User
		action  Action
		allowed bool
	}{
		{"customer can create thread", userWithRole(domain.RoleCustomer), ActionCreateThread, true},
		{"technician cannot create thread", userWithRole(domain.RoleTechnician), ActionCreateThread, false},
		{"admin cannot create thread", userWithRole(domain.RoleAdmin), ActionCreateThread, false},
		{"anonymous cannot create thread", nil, ActionCreateThread, false},

		{"customer can comment", userWithRole(domain.RoleCustomer), ActionAddComment, true},
		{"technician can comment", userWithRole(domain.RoleTechnician), ActionAddComment, true},
		{"admin can comment", userWithRole(domain.RoleAdmin), ActionAddComment, true},
		{"anonymous cannot comment", nil, ActionAddComment, false},

		{"admin can resolve registration", userWithRole(domain.RoleAdmin), ActionResolveRegistration, true},
		{"customer cannot resolve registration", userWithRole(domain.RoleCustomer), ActionResolveRegistration, false},
		{"technician cannot resolve registration", userWithRole(domain.RoleTechnician), ActionResolveRegistration, false},
		{"anonymous cannot resolve registration", nil, ActionResolveRegistration, false},

		{"customer can manage notifications", userWithRole(domain.RoleCustomer), ActionManageNotifications, true},
		{"anonymous cannot manage notifications", nil, ActionManageNotifications, false},

		{"anonymous can vote", nil, ActionVote, true},
		{"customer can vote", userWithRole(domain.RoleCustomer), ActionVote, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Check(tt.user, tt.action)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				var denied *internal_errors.AuthorizationDenied
				require.ErrorAs(t, err, &denied)
			}
		})
	}
}

func TestPolicyCheck_AnonymousDenialRedirectsToLogin(t *testing.T) {
	policy := Policy{}

	err := policy.Check(nil, ActionCreateThread)
	var denied *internal_errors.AuthorizationDenied
	require.ErrorAs(t, err, &denied)
	assert.True(t, denied.RedirectToLogin)
}

func TestPolicyCheck_RoleDenialIsSilent(t *testing.T) {
	policy := Policy{}

	technician := &domain.User{Email: "tech@example.com", Role: domain.RoleTechnician}
	err := policy.Check(technician, ActionCreateThread)
	var denied *internal_errors.AuthorizationDenied
	require.ErrorAs(t, err, &denied)
	assert.False(t, denied.RedirectToLogin)
}
