package grid

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testState(dayID string) State {
	return State{
		DayID: dayID,
		Grid: []Tile{
			{ID: "tile-0", CategoryID: "c-real", AssignedSubjectID: "ramos", Locked: true},
			{ID: "tile-1", CategoryID: "n-fra"},
		},
		Deck:         []string{"messi", "kroos", "henry"},
		CurrentIndex: 1,
		Score:        1,
		Mistakes:     2,
		Status:       StatusPlaying,
		Timer:        180,
	}
}

func TestRedisStoreRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	ctx := context.Background()
	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	state := testState("2026-03-14")
	require.NoError(t, store.Save(ctx, "u1", state))
	assert.True(t, mr.Exists("grid:daily:u1:2026-03-14"))

	loaded, err := store.Load(ctx, "u1", "2026-03-14")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, state, *loaded)

	ttl := mr.TTL("grid:daily:u1:2026-03-14")
	assert.Equal(t, stateTTL, ttl)
}

func TestRedisStoreLoadMissing(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	loaded, err := store.Load(context.Background(), "u1", "2026-03-14")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStoreDelete(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	ctx := context.Background()
	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	require.NoError(t, store.Save(ctx, "u1", testState("2026-03-14")))
	require.NoError(t, store.Delete(ctx, "u1", "2026-03-14"))
	assert.False(t, mr.Exists("grid:daily:u1:2026-03-14"))

	// Deleting a missing key is not an error.
	require.NoError(t, store.Delete(ctx, "u1", "2026-03-14"))
}

func TestRedisStoreIsolatesOwners(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	ctx := context.Background()
	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	a := testState("2026-03-14")
	b := testState("2026-03-14")
	b.Score = 9

	require.NoError(t, store.Save(ctx, "u1", a))
	require.NoError(t, store.Save(ctx, "u2", b))

	gotA, err := store.Load(ctx, "u1", "2026-03-14")
	require.NoError(t, err)
	gotB, err := store.Load(ctx, "u2", "2026-03-14")
	require.NoError(t, err)

	assert.Equal(t, 1, gotA.Score)
	assert.Equal(t, 9, gotB.Score)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	state := testState("2026-03-14")
	require.NoError(t, store.Save(ctx, "u1", state))

	loaded, err := store.Load(ctx, "u1", "2026-03-14")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, state, *loaded)

	// The stored copy must not alias the caller's slices.
	loaded.Grid[0].Locked = false
	again, err := store.Load(ctx, "u1", "2026-03-14")
	require.NoError(t, err)
	assert.True(t, again.Grid[0].Locked)

	require.NoError(t, store.Delete(ctx, "u1", "2026-03-14"))
	gone, err := store.Load(ctx, "u1", "2026-03-14")
	require.NoError(t, err)
	assert.Nil(t, gone)
}
