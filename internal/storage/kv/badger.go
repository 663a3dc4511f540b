package kv

import (
	"context"
	"errors"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/savi-dev/savi/shared/logger"
)

// Badger is the embedded durable backend.
type Badger struct {
	db *badger.DB
}

func NewBadger(path string) (*Badger, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // badger's own logger is too chatty, we log on our side

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("badger store opened", "path", path)
	return &Badger{db: db}, nil
}

func (b *Badger) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (b *Badger) Set(ctx context.Context, key string, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

func (b *Badger) Delete(ctx context.Context, key string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

func (b *Badger) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	return keys, err
}

func (b *Badger) Ping(ctx context.Context) error {
	if b.db.IsClosed() {
		return errors.New("badger store is closed")
	}
	return nil
}

func (b *Badger) Close() error {
	return b.db.Close()
}
