// Package grid implements the daily "mercato grid" placement puzzle: a
// deterministic 4x4 grid of career categories and a shuffled deck of players
// to assign, persisted for the remainder of the calendar day.
package grid

import (
	"context"
	"fmt"
	"time"

	"github.com/quizzfoot/platform/internal/rng"
)

const (
	dayFormat           = "2006-01-02"
	defaultTimerSeconds = 300
)

// Engine drives one player's daily puzzle. Owned by a single session; hosts
// serialize calls. Store writes are fire-and-forget: gameplay never fails on
// persistence errors.
type Engine struct {
	categories []Category
	subjects   []Subject
	store      Store
	ownerID    string

	categoryByID map[string]Category
	subjectByID  map[string]Subject

	timerSeconds int
	now          func() time.Time

	state State
}

// Options tune a grid engine.
type Options struct {
	// TimerSeconds is the daily countdown budget. Zero keeps the default.
	TimerSeconds int
	// Clock overrides the time source, for tests.
	Clock func() time.Time
}

// New creates an engine for one owner over the given catalogs and store.
func New(categories []Category, subjects []Subject, store Store, ownerID string, opts Options) *Engine {
	byCat := make(map[string]Category, len(categories))
	for _, c := range categories {
		byCat[c.ID] = c
	}
	bySub := make(map[string]Subject, len(subjects))
	for _, s := range subjects {
		bySub[s.ID] = s
	}
	timer := opts.TimerSeconds
	if timer <= 0 {
		timer = defaultTimerSeconds
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Engine{
		categories:   categories,
		subjects:     subjects,
		store:        store,
		ownerID:      ownerID,
		categoryByID: byCat,
		subjectByID:  bySub,
		timerSeconds: timer,
		now:          clock,
		state:        State{Status: StatusIdle},
	}
}

// Today returns the current calendar-day identifier (UTC).
func (e *Engine) Today() string {
	return e.now().UTC().Format(dayFormat)
}

// InitDaily loads or generates today's puzzle. Progress persisted for the
// same day is resumed untouched; anything else triggers a fresh
// deterministic generation for today. Idempotent within a day.
func (e *Engine) InitDaily(ctx context.Context) bool {
	today := e.Today()

	// Already holding today's game in memory.
	if e.state.DayID == today && e.state.Status != StatusIdle {
		return true
	}

	if e.store != nil {
		if persisted, err := e.store.Load(ctx, e.ownerID, today); err == nil && persisted != nil {
			if persisted.DayID == today && persisted.Status != StatusIdle {
				e.state = *persisted
				return true
			}
		}
	}

	state, ok := generateDaily(today, e.categories, e.subjects, e.timerSeconds)
	if !ok {
		return false
	}
	e.state = state
	e.persist(ctx)
	return true
}

// generateDaily builds a day's grid and deck from the day identifier alone:
// one seeded stream shuffles the category catalog (first 16 become the grid)
// and then the full subject catalog into the deck. Byte-for-byte
// reproducible for a given day. Nothing here guarantees the grid is
// solvable with the catalog at hand; that gap is deliberate (see DESIGN.md).
func generateDaily(dayID string, categories []Category, subjects []Subject, timer int) (State, bool) {
	if len(categories) < GridSize || len(subjects) == 0 {
		return State{}, false
	}

	seq := rng.NewSeq(rng.DaySeed(dayID))

	cats := make([]Category, len(categories))
	copy(cats, categories)
	rng.ShuffleSlice(seq, cats)

	tiles := make([]Tile, GridSize)
	for i, cat := range cats[:GridSize] {
		tiles[i] = Tile{ID: fmt.Sprintf("tile-%d", i), CategoryID: cat.ID}
	}

	deck := make([]string, len(subjects))
	for i, s := range subjects {
		deck[i] = s.ID
	}
	rng.ShuffleSlice(seq, deck)

	return State{
		DayID:  dayID,
		Grid:   tiles,
		Deck:   deck,
		Status: StatusPlaying,
		Timer:  timer,
	}, true
}

// AssignPlayer attempts to place the current deck subject on a tile. A
// correct placement locks the tile and advances the deck; an incorrect one
// only increments the mistake counter, leaving the pointer in place so the
// player can retry elsewhere. Unknown tiles, locked tiles, and an exhausted
// deck are no-ops.
func (e *Engine) AssignPlayer(ctx context.Context, tileID string) bool {
	if e.state.Status != StatusPlaying {
		return false
	}

	tile := e.findTile(tileID)
	if tile == nil || tile.Locked {
		return false
	}
	subject, ok := e.currentSubject()
	if !ok {
		return false
	}
	category, ok := e.categoryByID[tile.CategoryID]
	if !ok {
		return false
	}

	if RuleMatches(category.Rule, subject) {
		tile.Locked = true
		tile.Correct = true
		tile.AssignedSubjectID = subject.ID
		e.state.CurrentIndex++
		e.state.Score++

		switch {
		case e.allLocked():
			e.state.Status = StatusWon
		case e.state.CurrentIndex >= len(e.state.Deck):
			e.state.Status = StatusLost
		}
	} else {
		e.state.Mistakes++
	}

	e.persist(ctx)
	return true
}

// SkipPlayer defers the current subject to the back of the deck. The pointer
// stays put, now referencing whichever subject moved up.
func (e *Engine) SkipPlayer(ctx context.Context) bool {
	if e.state.Status != StatusPlaying {
		return false
	}
	i := e.state.CurrentIndex
	if i >= len(e.state.Deck) {
		return false
	}

	skipped := e.state.Deck[i]
	e.state.Deck = append(e.state.Deck[:i], e.state.Deck[i+1:]...)
	e.state.Deck = append(e.state.Deck, skipped)

	e.persist(ctx)
	return true
}

// TickTimer advances the countdown by one second while playing, pinning at
// zero. Expiry does not end the game; the countdown is presentational.
func (e *Engine) TickTimer() bool {
	if e.state.Status != StatusPlaying {
		return false
	}
	if e.state.Timer > 0 {
		e.state.Timer--
	}
	return true
}

// ResetGame clears any persisted state and immediately regenerates today's
// puzzle. Manual retries and debugging only; not part of the daily flow.
func (e *Engine) ResetGame(ctx context.Context) bool {
	if e.store != nil {
		_ = e.store.Delete(ctx, e.ownerID, e.Today())
	}
	e.state = State{Status: StatusIdle}
	return e.InitDaily(ctx)
}

func (e *Engine) persist(ctx context.Context) {
	if e.store == nil {
		return
	}
	// Last write wins; a failed save costs at most a reload of progress.
	_ = e.store.Save(ctx, e.ownerID, e.state)
}

func (e *Engine) findTile(tileID string) *Tile {
	for i := range e.state.Grid {
		if e.state.Grid[i].ID == tileID {
			return &e.state.Grid[i]
		}
	}
	return nil
}

func (e *Engine) currentSubject() (Subject, bool) {
	if e.state.CurrentIndex >= len(e.state.Deck) {
		return Subject{}, false
	}
	subject, ok := e.subjectByID[e.state.Deck[e.state.CurrentIndex]]
	return subject, ok
}

func (e *Engine) allLocked() bool {
	for _, t := range e.state.Grid {
		if !t.Locked {
			return false
		}
	}
	return true
}

// Status returns the current lifecycle state.
func (e *Engine) Status() string { return e.state.Status }

// Score returns the count of locked tiles.
func (e *Engine) Score() int { return e.state.Score }

// Mistakes returns the cumulative mistake count for the day.
func (e *Engine) Mistakes() int { return e.state.Mistakes }

// CurrentIndex returns the deck pointer.
func (e *Engine) CurrentIndex() int { return e.state.CurrentIndex }

// State returns a copy of the persisted state.
func (e *Engine) State() State {
	out := e.state
	out.Grid = make([]Tile, len(e.state.Grid))
	copy(out.Grid, e.state.Grid)
	out.Deck = make([]string, len(e.state.Deck))
	copy(out.Deck, e.state.Deck)
	return out
}

// Snapshot returns the client-facing puzzle view.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		DayID:         e.state.DayID,
		Score:         e.state.Score,
		Mistakes:      e.state.Mistakes,
		Status:        e.state.Status,
		Timer:         e.state.Timer,
		DeckRemaining: len(e.state.Deck) - e.state.CurrentIndex,
	}
	if snap.DeckRemaining < 0 {
		snap.DeckRemaining = 0
	}
	for _, t := range e.state.Grid {
		snap.Grid = append(snap.Grid, TileView{Tile: t, Category: e.categoryByID[t.CategoryID]})
	}
	if subject, ok := e.currentSubject(); ok && e.state.Status == StatusPlaying {
		snap.CurrentSubject = &subject
	}
	return snap
}
