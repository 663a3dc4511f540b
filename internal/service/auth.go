package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/savi-dev/savi/internal/storage/users"
	"github.com/savi-dev/savi/shared/config"
	"github.com/savi-dev/savi/shared/domain"
	"github.com/savi-dev/savi/shared/errors"
	"github.com/savi-dev/savi/shared/logger"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	SignUp(ctx context.Context, name, email, password string, role domain.Role) (domain.User, error)
	// SignIn returns the identity and a signed access token.
	SignIn(ctx context.Context, email, password string, rememberMe bool) (domain.User, string, error)
	ChangePassword(ctx context.Context, user *domain.User, oldPassword, newPassword string) error
	RememberedEmail(ctx context.Context) (domain.Email, error)
}

type AuthStorage interface {
	SaveUser(ctx context.Context, rec users.Record) error
	User(ctx context.Context, email domain.Email) (users.Record, error)
	SetRememberedEmail(ctx context.Context, email domain.Email) error
	RememberedEmail(ctx context.Context) (domain.Email, error)
	ClearRememberedEmail(ctx context.Context) error
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

// RegistrationNotifier announces pending technician sign-ups to admins and
// password changes to the account owner.
type RegistrationNotifier interface {
	NotifyRegistrationRequest(ctx context.Context, applicant domain.User) error
	NotifyPasswordChanged(ctx context.Context, recipient domain.Email) error
}

type Auth struct {
	storage  AuthStorage
	jwt      Jwt
	notifier RegistrationNotifier
	cfg      *config.Public
	now      func() time.Time
}

func NewAuth(storage AuthStorage, jwt Jwt, notifier RegistrationNotifier, cfg *config.Public) *Auth {
	return &Auth{storage: storage, jwt: jwt, notifier: notifier, cfg: cfg, now: time.Now}
}

func (a *Auth) validatePassword(password string) error {
	if len(password) < a.cfg.MinPasswordLen {
		return &errors.ProviderError{Kind: errors.KindWeakPassword, Message: "Password is too short"}
	}
	return nil
}

func validateEmail(email domain.Email) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return &errors.ProviderError{Kind: errors.KindInvalidEmail, Message: "Email address is invalid"}
	}
	return nil
}

func (a *Auth) SignUp(ctx context.Context, name, email, password string, role domain.Role) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	if name == "" {
		return domain.User{}, &errors.ValidationError{Message: "name cannot be empty"}
	}
	if err := validateEmail(email); err != nil {
		return domain.User{}, err
	}
	if err := a.validatePassword(password); err != nil {
		return domain.User{}, err
	}
	// Self-service sign-up covers customers and technicians only; admins are
	// provisioned out of band.
	if role != domain.RoleCustomer && role != domain.RoleTechnician {
		return domain.User{}, &errors.ValidationError{Message: "role must be customer or technician"}
	}

	if _, err := a.storage.User(ctx, email); err == nil {
		return domain.User{}, &errors.ProviderError{Kind: errors.KindEmailInUse, Message: "An account with this email already exists"}
	} else if !errors.IsNotFound(err) {
		return domain.User{}, err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.User{}, err
	}

	user := domain.User{
		Name:    name,
		Email:   email,
		Role:    role,
		Joined:  a.now(),
		Pending: role == domain.RoleTechnician,
	}
	if err := a.storage.SaveUser(ctx, users.Record{User: user, PassHash: string(passHash)}); err != nil {
		return domain.User{}, err
	}

	// Technician accounts wait for an admin decision; every admin gets a
	// registration notification with approve/reject actions.
	if user.Pending && a.notifier != nil {
		if err := a.notifier.NotifyRegistrationRequest(ctx, user); err != nil {
			logger.Log.Warn("failed to notify admins about registration", "applicant", email, "error", err)
		}
	}

	logger.Log.Info("user registered", "email", email, "role", role, "pending", user.Pending)
	return user, nil
}

func (a *Auth) SignIn(ctx context.Context, email, password string, rememberMe bool) (domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return domain.User{}, "", err
	}

	rec, err := a.storage.User(ctx, email)
	if errors.IsNotFound(err) {
		return domain.User{}, "", &errors.ProviderError{Kind: errors.KindUserNotFound, Message: "No account found for this email"}
	}
	if err != nil {
		return domain.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PassHash), []byte(password)); err != nil {
		return domain.User{}, "", &errors.ProviderError{Kind: errors.KindWrongPassword, Message: "Bad password"}
	}

	if rec.Pending {
		return domain.User{}, "", &errors.ProviderError{Kind: errors.KindInvalidCredential, Message: "Your technician registration is awaiting admin approval"}
	}

	token, err := a.jwt.NewToken(rec.User)
	if err != nil {
		return domain.User{}, "", err
	}

	if rememberMe {
		err = a.storage.SetRememberedEmail(ctx, email)
	} else {
		err = a.storage.ClearRememberedEmail(ctx)
	}
	if err != nil {
		logger.Log.Warn("failed to update remembered email", "error", err)
	}

	return rec.User, token, nil
}

func (a *Auth) ChangePassword(ctx context.Context, user *domain.User, oldPassword, newPassword string) error {
	if user == nil {
		return &errors.AuthorizationDenied{Message: "Please sign-in", RedirectToLogin: true}
	}

	rec, err := a.storage.User(ctx, user.Email)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PassHash), []byte(oldPassword)); err != nil {
		return &errors.ProviderError{Kind: errors.KindWrongPassword, Message: "Current password is incorrect"}
	}
	if err := a.validatePassword(newPassword); err != nil {
		return err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return err
	}
	rec.PassHash = string(passHash)
	if err := a.storage.SaveUser(ctx, rec); err != nil {
		return err
	}

	if a.notifier != nil {
		if err := a.notifier.NotifyPasswordChanged(ctx, user.Email); err != nil {
			logger.Log.Warn("failed to deliver password-change notification", "error", err)
		}
	}
	return nil
}

func (a *Auth) RememberedEmail(ctx context.Context) (domain.Email, error) {
	return a.storage.RememberedEmail(ctx)
}
