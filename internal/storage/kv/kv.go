// Package kv is the persistence surface of the engine: a key-value store of
// JSON blobs keyed by user identity. Backends: in-process map, Badger, Redis.
package kv

import (
	"context"
	"encoding/json"

	"github.com/savi-dev/savi/shared/config"
	"github.com/savi-dev/savi/shared/errors"
	"github.com/savi-dev/savi/shared/logger"
)

type Store interface {
	// Get returns (value, true, nil) when the key exists and (nil, false, nil)
	// when it does not. The error is reserved for backend failures.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Keys lists all keys with the given prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)
	Ping(ctx context.Context) error
	Close() error
}

// New selects the backend from config.
func New(cfg config.Storage) (Store, error) {
	switch cfg.Backend {
	case "badger":
		return NewBadger(cfg.BadgerPath)
	case "redis":
		return NewRedis(cfg.Redis), nil
	case "", "memory":
		return NewMemory(), nil
	default:
		return nil, &errors.ErrorWithStatusCode{Message: "unknown storage backend: " + cfg.Backend, StatusCode: 500}
	}
}

// GetJSON reads and unmarshals the blob stored under key. A missing key and a
// blob that fails to parse are both reported as absent: stale or corrupted
// state must never break a session.
func GetJSON(ctx context.Context, s Store, key string, out any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		logger.Log.Warn("discarding malformed stored record", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func SetJSON(ctx context.Context, s Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw)
}
