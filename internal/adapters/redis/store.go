// Package redis provides a Redis-backed DefinitionStore so uploaded
// definitions survive restarts and can be shared by several instances.
package redis

import (
	"context"
	"errors"
	"fmt"

	backend "github.com/redis/go-redis/v9"

	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
	"github.com/frhnkemal/camunda-automation-testing/pkg/ports"
)

// Store implements ports.DefinitionStore on Redis. Each kind keeps its
// documents under prefixed keys plus a ZSET recency index; the score is a
// store-wide sequence number, so "latest" is exact even when puts land within
// the same clock tick.
type Store struct {
	client *backend.Client
	prefix string
}

type Option func(*Store)

// WithPrefix sets the key prefix for definition documents.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Redis store with its own client.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "simulator:definition:",
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(kind ports.DefinitionKind, filename string) string {
	return fmt.Sprintf("%s%s:%s", s.prefix, kind, filename)
}

func (s *Store) indexKey(kind ports.DefinitionKind) string {
	return fmt.Sprintf("%s%s:index", s.prefix, kind)
}

func (s *Store) seqKey() string {
	return s.prefix + "seq"
}

// Put stores or replaces a definition document.
func (s *Store) Put(ctx context.Context, kind ports.DefinitionKind, filename string, content []byte) error {
	seq, err := s.client.Incr(ctx, s.seqKey()).Result()
	if err != nil {
		return fmt.Errorf("failed to allocate sequence: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(kind, filename), content, 0)
	pipe.ZAdd(ctx, s.indexKey(kind), backend.Z{
		Score:  float64(seq),
		Member: filename,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Get retrieves one document.
func (s *Store) Get(ctx context.Context, kind ports.DefinitionKind, filename string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.key(kind, filename)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrDefinitionNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}
	return val, nil
}

// Latest returns the document with the highest sequence score.
func (s *Store) Latest(ctx context.Context, kind ports.DefinitionKind) (string, []byte, error) {
	names, err := s.client.ZRevRange(ctx, s.indexKey(kind), 0, 0).Result()
	if err != nil {
		return "", nil, fmt.Errorf("failed to read recency index: %w", err)
	}
	if len(names) == 0 {
		return "", nil, domain.ErrDefinitionNotFound
	}

	content, err := s.Get(ctx, kind, names[0])
	if err != nil {
		return "", nil, err
	}
	return names[0], content, nil
}

// List returns stored filenames, oldest first.
func (s *Store) List(ctx context.Context, kind ports.DefinitionKind) ([]string, error) {
	names, err := s.client.ZRange(ctx, s.indexKey(kind), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list definitions: %w", err)
	}
	return names, nil
}

// Delete removes one document and its index entry.
func (s *Store) Delete(ctx context.Context, kind ports.DefinitionKind, filename string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(kind, filename))
	pipe.ZRem(ctx, s.indexKey(kind), filename)
	_, err := pipe.Exec(ctx)
	return err
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
