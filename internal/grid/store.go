package grid

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// stateTTL keeps yesterday's state around briefly for clients straddling
// midnight, then lets Redis reclaim it.
const stateTTL = 48 * time.Hour

// Store persists one owner's daily puzzle state. Load returns (nil, nil)
// when nothing is stored for that day.
type Store interface {
	Load(ctx context.Context, ownerID, dayID string) (*State, error)
	Save(ctx context.Context, ownerID string, state State) error
	Delete(ctx context.Context, ownerID, dayID string) error
}

// RedisStore keeps daily state as JSON blobs keyed by owner and day.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed daily state store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func dailyKey(ownerID, dayID string) string {
	return fmt.Sprintf("grid:daily:%s:%s", ownerID, dayID)
}

func (s *RedisStore) Load(ctx context.Context, ownerID, dayID string) (*State, error) {
	data, err := s.client.Get(ctx, dailyKey(ownerID, dayID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load daily state: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("unmarshal daily state: %w", err)
	}
	return &state, nil
}

func (s *RedisStore) Save(ctx context.Context, ownerID string, state State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal daily state: %w", err)
	}
	if err := s.client.Set(ctx, dailyKey(ownerID, state.DayID), data, stateTTL).Err(); err != nil {
		return fmt.Errorf("save daily state: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, ownerID, dayID string) error {
	if err := s.client.Del(ctx, dailyKey(ownerID, dayID)).Err(); err != nil {
		return fmt.Errorf("delete daily state: %w", err)
	}
	return nil
}

// MemoryStore is an in-process Store for tests and storeless deployments.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]State
}

// NewMemoryStore creates an empty in-memory daily state store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]State)}
}

func (s *MemoryStore) Load(_ context.Context, ownerID, dayID string) (*State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.states[dailyKey(ownerID, dayID)]
	if !ok {
		return nil, nil
	}
	out := state
	out.Grid = append([]Tile(nil), state.Grid...)
	out.Deck = append([]string(nil), state.Deck...)
	return &out, nil
}

func (s *MemoryStore) Save(_ context.Context, ownerID string, state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state.Grid = append([]Tile(nil), state.Grid...)
	state.Deck = append([]string(nil), state.Deck...)
	s.states[dailyKey(ownerID, state.DayID)] = state
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, ownerID, dayID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, dailyKey(ownerID, dayID))
	return nil
}
