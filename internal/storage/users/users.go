// Package users persists account records in the key-value store, one JSON
// blob per account under "saviUser_{email}".
package users

import (
	"context"
	"strings"

	"github.com/savi-dev/savi/internal/storage/kv"
	"github.com/savi-dev/savi/shared/domain"
	"github.com/savi-dev/savi/shared/errors"
)

const (
	userKeyPrefix = "saviUser_"
	rememberMeKey = "saviRememberMe"
)

// Record is the stored account: public identity plus the password hash.
type Record struct {
	domain.User
	PassHash string `json:"passHash"`
}

type Storage struct {
	kv kv.Store
}

func New(store kv.Store) *Storage {
	return &Storage{kv: store}
}

func key(email domain.Email) string {
	return userKeyPrefix + strings.ToLower(email)
}

func (s *Storage) SaveUser(ctx context.Context, rec Record) error {
	return kv.SetJSON(ctx, s.kv, key(rec.Email), rec)
}

func (s *Storage) User(ctx context.Context, email domain.Email) (Record, error) {
	var rec Record
	ok, err := kv.GetJSON(ctx, s.kv, key(email), &rec)
	if err != nil {
		return Record{}, err
	}
	if !ok {
		return Record{}, errors.NotFound
	}
	return rec, nil
}

func (s *Storage) DeleteUser(ctx context.Context, email domain.Email) error {
	return s.kv.Delete(ctx, key(email))
}

// UserByEmail returns the public identity without the password hash.
func (s *Storage) UserByEmail(ctx context.Context, email domain.Email) (domain.User, error) {
	rec, err := s.User(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	return rec.User, nil
}

// Activate clears the pending flag on a technician account approved by an admin.
func (s *Storage) Activate(ctx context.Context, email domain.Email) error {
	rec, err := s.User(ctx, email)
	if err != nil {
		return err
	}
	rec.Pending = false
	return s.SaveUser(ctx, rec)
}

// AdminUsers lists all active admin identities. Used to fan out registration
// notifications to every admin inbox.
func (s *Storage) AdminUsers(ctx context.Context) ([]domain.User, error) {
	keys, err := s.kv.Keys(ctx, userKeyPrefix)
	if err != nil {
		return nil, err
	}

	var admins []domain.User
	for _, k := range keys {
		var rec Record
		ok, err := kv.GetJSON(ctx, s.kv, k, &rec)
		if err != nil {
			return nil, err
		}
		if ok && rec.Role == domain.RoleAdmin && !rec.Pending {
			admins = append(admins, rec.User)
		}
	}
	return admins, nil
}

type rememberedEmail struct {
	Email string `json:"email"`
}

func (s *Storage) SetRememberedEmail(ctx context.Context, email domain.Email) error {
	return kv.SetJSON(ctx, s.kv, rememberMeKey, rememberedEmail{Email: email})
}

func (s *Storage) RememberedEmail(ctx context.Context) (domain.Email, error) {
	var rec rememberedEmail
	ok, err := kv.GetJSON(ctx, s.kv, rememberMeKey, &rec)
	if err != nil || !ok {
		return "", err
	}
	return rec.Email, nil
}

func (s *Storage) ClearRememberedEmail(ctx context.Context) error {
	return s.kv.Delete(ctx, rememberMeKey)
}
