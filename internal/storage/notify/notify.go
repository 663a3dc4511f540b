// Package notify persists per-user notification lists as single JSON blobs
// under "saviNotifications_{email}". The whole list is rewritten on every
// mutation: last writer wins, no merge.
package notify

import (
	"context"
	"strings"

	"github.com/savi-dev/savi/internal/storage/kv"
	"github.com/savi-dev/savi/shared/domain"
)

const keyPrefix = "saviNotifications_"

type Storage struct {
	kv kv.Store
}

func New(store kv.Store) *Storage {
	return &Storage{kv: store}
}

func key(email domain.Email) string {
	return keyPrefix + strings.ToLower(email)
}

// Load returns (list, true) when a persisted list exists. Absent and
// unparsable payloads both yield (nil, false): the caller re-seeds.
func (s *Storage) Load(ctx context.Context, email domain.Email) ([]domain.Notification, bool, error) {
	var list []domain.Notification
	ok, err := kv.GetJSON(ctx, s.kv, key(email), &list)
	if err != nil || !ok {
		return nil, false, err
	}
	return list, true, nil
}

func (s *Storage) Save(ctx context.Context, email domain.Email, list []domain.Notification) error {
	if list == nil {
		list = []domain.Notification{}
	}
	return kv.SetJSON(ctx, s.kv, key(email), list)
}
