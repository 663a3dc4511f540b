// Package votes persists the per-viewer vote ledger under
// "saviVotes_{viewerId}": a map of thread id to recorded direction.
package votes

import (
	"context"

	"github.com/savi-dev/savi/internal/storage/kv"
	"github.com/savi-dev/savi/shared/domain"
)

const keyPrefix = "saviVotes_"

type Storage struct {
	kv kv.Store
}

func New(store kv.Store) *Storage {
	return &Storage{kv: store}
}

// Load returns the viewer's recorded directions. A missing or unparsable
// ledger is an empty one.
func (s *Storage) Load(ctx context.Context, viewerId string) (map[domain.ThreadId]domain.VoteDirection, error) {
	ledger := make(map[domain.ThreadId]domain.VoteDirection)
	_, err := kv.GetJSON(ctx, s.kv, keyPrefix+viewerId, &ledger)
	if err != nil {
		return nil, err
	}
	if ledger == nil {
		ledger = make(map[domain.ThreadId]domain.VoteDirection)
	}
	return ledger, nil
}

func (s *Storage) Save(ctx context.Context, viewerId string, ledger map[domain.ThreadId]domain.VoteDirection) error {
	return kv.SetJSON(ctx, s.kv, keyPrefix+viewerId, ledger)
}
