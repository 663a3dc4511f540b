package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/savi-dev/savi/shared/domain"
	"github.com/savi-dev/savi/shared/errors"
	"github.com/savi-dev/savi/shared/logger"
)

type NotificationService interface {
	// For loads the user's notification list, seeding the role-specific set on
	// first access. Returns the list and the unread count.
	For(ctx context.Context, user *domain.User) ([]domain.Notification, int, error)
	MarkRead(ctx context.Context, user *domain.User, id domain.NotificationId) error
	MarkAllRead(ctx context.Context, user *domain.User) error
	Remove(ctx context.Context, user *domain.User, id domain.NotificationId) error
	// ResolveRegistration approves or rejects a pending technician
	// registration. The notification is removed and a notice for the toast
	// surface is returned.
	ResolveRegistration(ctx context.Context, admin *domain.User, id domain.NotificationId, action domain.NotificationAction) (string, error)

	Push(ctx context.Context, recipient domain.Email, n domain.Notification) error
	NotifyThreadReply(ctx context.Context, recipient domain.Email, replierName, threadTitle string) error
	NotifyPasswordChanged(ctx context.Context, recipient domain.Email) error
	NotifyRegistrationRequest(ctx context.Context, applicant domain.User) error
}

type NotificationStorage interface {
	Load(ctx context.Context, email domain.Email) ([]domain.Notification, bool, error)
	Save(ctx context.Context, email domain.Email, list []domain.Notification) error
}

// AccountResolver is the slice of the account store the notification engine
// needs: listing admins for registration fan-out and settling pending
// technician accounts.
type AccountResolver interface {
	UserByEmail(ctx context.Context, email domain.Email) (domain.User, error)
	AdminUsers(ctx context.Context) ([]domain.User, error)
	Activate(ctx context.Context, email domain.Email) error
	DeleteUser(ctx context.Context, email domain.Email) error
}

type Notification struct {
	storage  NotificationStorage
	accounts AccountResolver
	policy   Policy
}

func NewNotification(storage NotificationStorage, accounts AccountResolver) *Notification {
	return &Notification{storage: storage, accounts: accounts}
}

// list loads the user's notifications, seeding on first access so every role
// starts with its fixed set.
func (s *Notification) list(ctx context.Context, user *domain.User) ([]domain.Notification, error) {
	notifications, ok, err := s.storage.Load(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if !ok {
		notifications = SeedNotifications(user.Role)
		if err := s.storage.Save(ctx, user.Email, notifications); err != nil {
			return nil, err
		}
	}
	return notifications, nil
}

func (s *Notification) For(ctx context.Context, user *domain.User) ([]domain.Notification, int, error) {
	if err := s.policy.Check(user, ActionManageNotifications); err != nil {
		return nil, 0, err
	}

	notifications, err := s.list(ctx, user)
	if err != nil {
		return nil, 0, err
	}

	unread := 0
	for _, n := range notifications {
		if !n.IsRead {
			unread++
		}
	}
	return notifications, unread, nil
}

func (s *Notification) MarkRead(ctx context.Context, user *domain.User, id domain.NotificationId) error {
	if err := s.policy.Check(user, ActionManageNotifications); err != nil {
		return err
	}

	notifications, err := s.list(ctx, user)
	if err != nil {
		return err
	}

	// No-op when the id is unknown; the list is still re-persisted as a whole.
	for i := range notifications {
		if notifications[i].Id == id {
			notifications[i].IsRead = true
			break
		}
	}
	return s.storage.Save(ctx, user.Email, notifications)
}

func (s *Notification) MarkAllRead(ctx context.Context, user *domain.User) error {
	if err := s.policy.Check(user, ActionManageNotifications); err != nil {
		return err
	}

	notifications, err := s.list(ctx, user)
	if err != nil {
		return err
	}

	for i := range notifications {
		notifications[i].IsRead = true
	}
	return s.storage.Save(ctx, user.Email, notifications)
}

func (s *Notification) Remove(ctx context.Context, user *domain.User, id domain.NotificationId) error {
	if err := s.policy.Check(user, ActionManageNotifications); err != nil {
		return err
	}

	notifications, err := s.list(ctx, user)
	if err != nil {
		return err
	}

	kept := notifications[:0]
	for _, n := range notifications {
		if n.Id != id {
			kept = append(kept, n)
		}
	}
	return s.storage.Save(ctx, user.Email, kept)
}

func (s *Notification) ResolveRegistration(ctx context.Context, admin *domain.User, id domain.NotificationId, action domain.NotificationAction) (string, error) {
	if err := s.policy.Check(admin, ActionResolveRegistration); err != nil {
		return "", err
	}

	notifications, err := s.list(ctx, admin)
	if err != nil {
		return "", err
	}

	var target *domain.Notification
	for i := range notifications {
		if notifications[i].Id == id {
			target = &notifications[i]
			break
		}
	}
	if target == nil || target.Type != domain.NotificationRegistration || target.ActionData == nil {
		return "", errors.NotFound
	}
	data := *target.ActionData

	// Settle the pending account. Seeded requests reference applicants that
	// never signed up; missing accounts are fine.
	var notice string
	switch action {
	case domain.ActionApprove:
		if err := s.accounts.Activate(ctx, data.UserEmail); err != nil && !errors.IsNotFound(err) {
			return "", err
		}
		notice = fmt.Sprintf("Approval email sent to %s. %s is now registered as a technician.", data.UserName, data.UserEmail)
	case domain.ActionReject:
		if err := s.accounts.DeleteUser(ctx, data.UserEmail); err != nil && !errors.IsNotFound(err) {
			return "", err
		}
		notice = fmt.Sprintf("Rejection email sent to %s. The technician registration was declined.", data.UserName)
	default:
		return "", &errors.ValidationError{Message: "action must be approve or reject"}
	}

	kept := notifications[:0]
	for _, n := range notifications {
		if n.Id != id {
			kept = append(kept, n)
		}
	}
	if err := s.storage.Save(ctx, admin.Email, kept); err != nil {
		return "", err
	}

	logger.Log.Info("registration resolved", "admin", admin.Email, "applicant", data.UserEmail, "action", action)
	return notice, nil
}

// Push prepends a notification to the recipient's list. The recipient's list
// is seeded first if this is their first notification access.
func (s *Notification) Push(ctx context.Context, recipient domain.Email, n domain.Notification) error {
	notifications, ok, err := s.storage.Load(ctx, recipient)
	if err != nil {
		return err
	}
	if !ok {
		// First delivery before the owner's first read: seed their role set so
		// the pushed notification lands on top of it instead of replacing it.
		if user, err := s.accounts.UserByEmail(ctx, recipient); err == nil {
			notifications = SeedNotifications(user.Role)
		}
	}

	if n.Id == "" {
		n.Id = uuid.NewString()
	}
	if n.Time == "" {
		n.Time = "Just now"
	}

	notifications = append([]domain.Notification{n}, notifications...)
	return s.storage.Save(ctx, recipient, notifications)
}

func (s *Notification) NotifyThreadReply(ctx context.Context, recipient domain.Email, replierName, threadTitle string) error {
	return s.Push(ctx, recipient, domain.Notification{
		Type:    domain.NotificationForum,
		Title:   "Your thread got a reply",
		Message: fmt.Sprintf("%s replied to thread %q", replierName, threadTitle),
	})
}

func (s *Notification) NotifyPasswordChanged(ctx context.Context, recipient domain.Email) error {
	return s.Push(ctx, recipient, domain.Notification{
		Type:    domain.NotificationSecurity,
		Title:   "Password changed",
		Message: "Your account password was changed. Use the new password for your next login.",
	})
}

// NotifyRegistrationRequest fans a pending technician registration out to
// every admin inbox.
func (s *Notification) NotifyRegistrationRequest(ctx context.Context, applicant domain.User) error {
	admins, err := s.accounts.AdminUsers(ctx)
	if err != nil {
		return err
	}

	for _, admin := range admins {
		n := domain.Notification{
			Type:       domain.NotificationRegistration,
			Title:      "Technician registration request",
			Message:    fmt.Sprintf("%s applied to register as a technician", applicant.Name),
			ActionType: domain.ActionApprove,
			ActionData: &domain.RegistrationData{
				UserId:    uuid.NewString(),
				UserName:  applicant.Name,
				UserEmail: applicant.Email,
			},
		}
		if err := s.Push(ctx, admin.Email, n); err != nil {
			return err
		}
	}
	return nil
}
