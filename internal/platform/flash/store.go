// Copyright (c) 2026 Fyyur. All rights reserved.

package flash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KonIngel/Fyyur/internal/platform/constants"
)

// RedisStore implements [Store] using Redis keys with a TTL.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed notice store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

/*
Put stores the notice under its id with the given TTL.

Parameters:
  - context: context.Context
  - id: string
  - notice: Notice
  - ttl: time.Duration

Returns:
  - error: Encoding or connectivity errors
*/
func (store *RedisStore) Put(context context.Context, id string, notice Notice, ttl time.Duration) error {
	payload, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("flash_encode_failed: %w", err)
	}

	if err := store.client.Set(context, constants.RedisPrefixFlash+id, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_flash_set_failed: %w", err)
	}
	return nil
}

/*
Take atomically reads and deletes the notice (GETDEL).

Returns:
  - Notice, true: the notice was pending
  - Notice{}, false, nil: absent or expired
  - error: decoding or connectivity errors
*/
func (store *RedisStore) Take(context context.Context, id string) (Notice, bool, error) {
	payload, err := store.client.GetDel(context, constants.RedisPrefixFlash+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Notice{}, false, nil
		}
		return Notice{}, false, fmt.Errorf("redis_flash_get_failed: %w", err)
	}

	var notice Notice
	if err := json.Unmarshal(payload, &notice); err != nil {
		return Notice{}, false, fmt.Errorf("flash_decode_failed: %w", err)
	}
	return notice, true, nil
}

// MemoryStore implements [Store] in process memory.
//
// It is meant for tests and single-process tooling; servers use [RedisStore].
type MemoryStore struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]memoryEntry
}

type memoryEntry struct {
	notice    Notice
	expiresAt time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now, entries: map[string]memoryEntry{}}
}

// Put implements [Store].
func (store *MemoryStore) Put(_ context.Context, id string, notice Notice, ttl time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.entries[id] = memoryEntry{notice: notice, expiresAt: store.now().Add(ttl)}
	return nil
}

// Take implements [Store].
func (store *MemoryStore) Take(_ context.Context, id string) (Notice, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	entry, ok := store.entries[id]
	if !ok {
		return Notice{}, false, nil
	}
	delete(store.entries, id)
	if !store.now().Before(entry.expiresAt) {
		return Notice{}, false, nil
	}
	return entry.notice, true, nil
}
