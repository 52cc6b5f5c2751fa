package bingo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countTiles(grid []Tile) (correct, decoys int) {
	for _, t := range grid {
		if t.IsCorrect {
			correct++
		} else {
			decoys++
		}
	}
	return correct, decoys
}

func selectTiles(e *Engine, pick func(Tile) bool) {
	for _, t := range e.Grid() {
		if pick(t) {
			e.ToggleTile(t.ID)
		}
	}
}

func TestGridShapeForEverySubject(t *testing.T) {
	for _, subject := range Catalog {
		engine := New(Catalog)
		require.True(t, engine.InitGame(subject.ID, ModeNormal), "subject %s", subject.ID)

		grid := engine.Grid()
		assert.Len(t, grid, GridSize)
		correct, decoys := countTiles(grid)
		assert.Equal(t, TrueTiles, correct, "subject %s", subject.ID)
		assert.Equal(t, DecoyTiles, decoys, "subject %s", subject.ID)
	}
}

func TestInitGameRandomSubject(t *testing.T) {
	engine := New(Catalog)
	require.True(t, engine.InitGame("", ModeNormal))
	assert.Equal(t, StatusPlaying, engine.Status())
	assert.NotEmpty(t, engine.Snapshot().SubjectName)
}

func TestInitGameUnknownSubject(t *testing.T) {
	engine := New(Catalog)
	assert.False(t, engine.InitGame("nobody", ModeNormal))
	assert.Equal(t, StatusIdle, engine.Status())
}

func TestInitGameInsufficientPools(t *testing.T) {
	thin := []Subject{{
		ID:          "thin",
		Name:        "Thin Subject",
		Nationality: "France",
		Clubs:       []string{"One Club"},
		DecoyClubs:  []string{"Decoy"},
	}}
	engine := New(thin)
	assert.False(t, engine.InitGame("thin", ModeNormal))
}

func TestModeConfiguration(t *testing.T) {
	cases := []struct {
		mode      string
		timer     int
		wildcards int
	}{
		{ModeNormal, 60, 1},
		{ModeBlitz, 15, 1},
		{ModeHardcore, 60, 0},
	}
	for _, tc := range cases {
		engine := New(Catalog)
		require.True(t, engine.InitGame("zidane", tc.mode))
		assert.Equal(t, tc.timer, engine.Timer(), tc.mode)
		assert.Equal(t, tc.wildcards, engine.Wildcards(), tc.mode)
	}
}

func TestToggleTile(t *testing.T) {
	engine := New(Catalog)
	require.True(t, engine.InitGame("cr7", ModeNormal))

	id := engine.Grid()[0].ID
	require.True(t, engine.ToggleTile(id))
	assert.True(t, engine.Grid()[0].IsSelected)
	require.True(t, engine.ToggleTile(id))
	assert.False(t, engine.Grid()[0].IsSelected)

	assert.False(t, engine.ToggleTile("tile-99"))
}

func TestToggleTileOnlyWhilePlaying(t *testing.T) {
	engine := New(Catalog)
	assert.False(t, engine.ToggleTile("tile-0"))

	require.True(t, engine.InitGame("cr7", ModeNormal))
	engine.ValidateGrid()
	assert.False(t, engine.ToggleTile("tile-0"))
}

func TestValidatePerfectRound(t *testing.T) {
	engine := New(Catalog)
	require.True(t, engine.InitGame("zidane", ModeNormal))

	selectTiles(engine, func(t Tile) bool { return t.IsCorrect })
	require.True(t, engine.ValidateGrid())

	// 9 correct + 3 perfect bonus
	assert.Equal(t, StatusWon, engine.Status())
	assert.Equal(t, 12, engine.Score())
	assert.Equal(t, 0, engine.Mistakes())
}

func TestInitGameResetsScore(t *testing.T) {
	engine := New(Catalog)
	require.True(t, engine.InitGame("zidane", ModeNormal))

	selectTiles(engine, func(t Tile) bool { return t.IsCorrect })
	require.True(t, engine.ValidateGrid())
	require.Equal(t, 12, engine.Score())

	require.True(t, engine.InitGame("cr7", ModeNormal))
	assert.Equal(t, 0, engine.Score())
	assert.Equal(t, StatusPlaying, engine.Status())
}

func TestValidateNothingSelectedLoses(t *testing.T) {
	engine := New(Catalog)
	require.True(t, engine.InitGame("zidane", ModeNormal))

	require.True(t, engine.ValidateGrid())

	assert.Equal(t, StatusLost, engine.Status())
	assert.Equal(t, 0, engine.Score())
}

func TestValidateMistakesCountAndScoreFloor(t *testing.T) {
	engine := New(Catalog)
	require.True(t, engine.InitGame("essien", ModeNormal))

	// Select every decoy and one true tile: round score 1-7 = -6.
	picked := false
	selectTiles(engine, func(t Tile) bool {
		if t.IsCorrect && !picked {
			picked = true
			return true
		}
		return !t.IsCorrect
	})
	require.True(t, engine.ValidateGrid())

	assert.Equal(t, StatusLost, engine.Status())
	assert.Equal(t, 7, engine.Mistakes())
	// Cumulative score never decreases below zero.
	assert.Equal(t, 0, engine.Score())
}

func TestValidateOnlyOnce(t *testing.T) {
	engine := New(Catalog)
	require.True(t, engine.InitGame("zidane", ModeNormal))
	require.True(t, engine.ValidateGrid())
	assert.False(t, engine.ValidateGrid())
}

func TestWildcardRevealsTwoTraps(t *testing.T) {
	engine := New(Catalog)
	require.True(t, engine.InitGame("cr7", ModeNormal))

	require.True(t, engine.UseWildcard())
	assert.Equal(t, 0, engine.Wildcards())

	revealed := 0
	for _, tile := range engine.Grid() {
		if tile.IsRevealed {
			revealed++
			assert.False(t, tile.IsCorrect, "wildcard must only reveal traps")
		}
	}
	assert.Equal(t, 2, revealed)

	// No charges left.
	assert.False(t, engine.UseWildcard())
}

func TestWildcardUnavailableInHardcore(t *testing.T) {
	engine := New(Catalog)
	require.True(t, engine.InitGame("cr7", ModeHardcore))
	assert.False(t, engine.UseWildcard())
}

func TestTickTimerCountsDownAndAutoValidates(t *testing.T) {
	engine := New(Catalog)
	require.True(t, engine.InitGame("zidane", ModeBlitz))
	require.Equal(t, 15, engine.Timer())

	for i := 0; i < 14; i++ {
		require.True(t, engine.TickTimer())
	}
	assert.Equal(t, 1, engine.Timer())
	assert.Equal(t, StatusPlaying, engine.Status())

	// Final tick auto-submits.
	require.True(t, engine.TickTimer())
	assert.Equal(t, 0, engine.Timer())
	assert.Equal(t, StatusLost, engine.Status())

	// Ticks stop once play ends.
	assert.False(t, engine.TickTimer())
}

func TestResetReturnsToInitialState(t *testing.T) {
	engine := New(Catalog)
	require.True(t, engine.InitGame("zidane", ModeBlitz))
	selectTiles(engine, func(t Tile) bool { return t.IsCorrect })
	engine.ValidateGrid()
	require.Equal(t, 12, engine.Score())

	require.True(t, engine.Reset())
	assert.Equal(t, StatusIdle, engine.Status())
	assert.Equal(t, 0, engine.Score())
	assert.Empty(t, engine.Grid())
	assert.Equal(t, 1, engine.Wildcards())
}
