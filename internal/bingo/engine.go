// Package bingo implements the career-facts bingo engine: a 16-tile grid of
// true facts and decoys about a football player, validated in one shot
// against a countdown.
package bingo

import (
	"fmt"

	"github.com/quizzfoot/platform/internal/rng"
)

// Timer and wildcard defaults per mode.
const (
	normalTimerSeconds = 60
	blitzTimerSeconds  = 15
)

type fact struct {
	content string
	kind    string
}

// Engine drives one bingo session over a subject catalog. Owned by a single
// session; hosts serialize calls.
type Engine struct {
	catalog []Subject

	subject    *Subject
	grid       []Tile
	status     string
	score      int
	timer      int
	mistakes   int
	wildcards  int
	bestStreak int
}

// New creates an idle engine over the given subject catalog.
func New(catalog []Subject) *Engine {
	return &Engine{
		catalog:   catalog,
		status:    StatusIdle,
		timer:     normalTimerSeconds,
		wildcards: 1,
	}
}

// InitGame starts a round for the given subject (empty id picks uniformly at
// random from the catalog) and mode, resetting score, mistakes, timer and
// wildcards for that mode. Returns false when the subject is unknown or its
// fact pools cannot fill a 9-true/7-decoy grid.
func (e *Engine) InitGame(subjectID, mode string) bool {
	subject := e.findSubject(subjectID)
	if subject == nil {
		return false
	}

	grid, ok := generateGrid(subject)
	if !ok {
		return false
	}

	timer := normalTimerSeconds
	wildcards := 1
	switch mode {
	case ModeBlitz:
		timer = blitzTimerSeconds
	case ModeHardcore:
		wildcards = 0
	}

	e.subject = subject
	e.grid = grid
	e.status = StatusPlaying
	e.score = 0
	e.timer = timer
	e.wildcards = wildcards
	e.mistakes = 0
	return true
}

func (e *Engine) findSubject(id string) *Subject {
	if len(e.catalog) == 0 {
		return nil
	}
	if id == "" {
		subject := rng.Pick(e.catalog)
		return &subject
	}
	for i := range e.catalog {
		if e.catalog[i].ID == id {
			return &e.catalog[i]
		}
	}
	return nil
}

// generateGrid builds the 16-tile grid: 9 shuffled true facts (all true
// pools flattened plus the nationality), 7 shuffled decoys, concatenated and
// shuffled again into the final order.
func generateGrid(subject *Subject) ([]Tile, bool) {
	truths := make([]fact, 0, len(subject.Clubs)+len(subject.Teammates)+len(subject.Trophies)+len(subject.Managers)+1)
	for _, c := range subject.Clubs {
		truths = append(truths, fact{c, KindClub})
	}
	for _, t := range subject.Teammates {
		truths = append(truths, fact{t, KindTeammate})
	}
	for _, t := range subject.Trophies {
		truths = append(truths, fact{t, KindTrophy})
	}
	for _, m := range subject.Managers {
		truths = append(truths, fact{m, KindManager})
	}
	truths = append(truths, fact{subject.Nationality, KindNationality})

	decoys := make([]fact, 0, 16)
	for _, c := range subject.DecoyClubs {
		decoys = append(decoys, fact{c, KindClub})
	}
	for _, t := range subject.DecoyTeammates {
		decoys = append(decoys, fact{t, KindTeammate})
	}
	for _, t := range subject.DecoyTrophies {
		decoys = append(decoys, fact{t, KindTrophy})
	}
	for _, m := range subject.DecoyManagers {
		decoys = append(decoys, fact{m, KindManager})
	}
	for _, n := range subject.DecoyNationalities {
		decoys = append(decoys, fact{n, KindNationality})
	}

	if len(truths) < TrueTiles || len(decoys) < DecoyTiles {
		return nil, false
	}

	rng.Shuffle(truths)
	rng.Shuffle(decoys)

	tiles := make([]Tile, 0, GridSize)
	for _, f := range truths[:TrueTiles] {
		tiles = append(tiles, Tile{Content: f.content, Kind: f.kind, IsCorrect: true})
	}
	for _, f := range decoys[:DecoyTiles] {
		tiles = append(tiles, Tile{Content: f.content, Kind: f.kind, IsCorrect: false})
	}
	rng.Shuffle(tiles)
	for i := range tiles {
		tiles[i].ID = fmt.Sprintf("tile-%d", i)
	}
	return tiles, true
}

// ToggleTile flips a tile's selection. Applies only while playing and only
// for known tile ids. Revealed tiles are still toggleable at the engine
// level; blocking them is UI discipline.
func (e *Engine) ToggleTile(tileID string) bool {
	if e.status != StatusPlaying {
		return false
	}
	for i := range e.grid {
		if e.grid[i].ID == tileID {
			e.grid[i].IsSelected = !e.grid[i].IsSelected
			return true
		}
	}
	return false
}

// ValidateGrid scores the whole grid at once: +1 per selected true tile, -1
// per selected decoy, +3 bonus for finding every true tile with zero
// mistakes. The round is won when the round score is strictly positive; the
// cumulative score only ever grows (negative rounds add nothing).
func (e *Engine) ValidateGrid() bool {
	if e.status != StatusPlaying {
		return false
	}

	roundScore := 0
	errors := 0
	correctFound := 0
	totalCorrect := 0

	for _, tile := range e.grid {
		if tile.IsCorrect {
			totalCorrect++
		}
		switch {
		case tile.IsSelected && tile.IsCorrect:
			roundScore++
			correctFound++
		case tile.IsSelected && !tile.IsCorrect:
			roundScore--
			errors++
		}
	}

	if correctFound == totalCorrect && errors == 0 {
		roundScore += 3
	}

	// Win threshold: strictly positive round score. A provisional heuristic
	// carried over unchanged; see DESIGN.md.
	if roundScore > 0 {
		e.status = StatusWon
	} else {
		e.status = StatusLost
	}
	if roundScore > 0 {
		e.score += roundScore
	}
	e.mistakes = errors
	return true
}

// UseWildcard neutralizes up to two traps: unselected, unrevealed decoy
// tiles become revealed in grid order. Costs one charge; a no-op without
// charges or outside play.
func (e *Engine) UseWildcard() bool {
	if e.status != StatusPlaying || e.wildcards <= 0 {
		return false
	}

	removed := 0
	for i := range e.grid {
		if removed >= 2 {
			break
		}
		t := &e.grid[i]
		if !t.IsCorrect && !t.IsSelected && !t.IsRevealed {
			t.IsRevealed = true
			removed++
		}
	}
	e.wildcards--
	return true
}

// TickTimer advances the countdown by one second. At or below one second it
// auto-validates the grid and pins the displayed timer to zero.
func (e *Engine) TickTimer() bool {
	if e.status != StatusPlaying {
		return false
	}
	if e.timer <= 1 {
		e.ValidateGrid()
		e.timer = 0
		return true
	}
	e.timer--
	return true
}

// Reset returns every field to the initial idle state.
func (e *Engine) Reset() bool {
	e.subject = nil
	e.grid = nil
	e.status = StatusIdle
	e.score = 0
	e.timer = normalTimerSeconds
	e.mistakes = 0
	e.wildcards = 1
	e.bestStreak = 0
	return true
}

// Status returns the current lifecycle state.
func (e *Engine) Status() string { return e.status }

// Score returns the score accumulated since the round started.
func (e *Engine) Score() int { return e.score }

// Timer returns the countdown seconds remaining.
func (e *Engine) Timer() int { return e.timer }

// Mistakes returns the mistake count from the last validation.
func (e *Engine) Mistakes() int { return e.mistakes }

// Wildcards returns the remaining wildcard charges.
func (e *Engine) Wildcards() int { return e.wildcards }

// Grid returns a copy of the current grid.
func (e *Engine) Grid() []Tile {
	out := make([]Tile, len(e.grid))
	copy(out, e.grid)
	return out
}

// Snapshot returns the client-facing game view.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Grid:      e.Grid(),
		Status:    e.status,
		Score:     e.score,
		Timer:     e.timer,
		Mistakes:  e.mistakes,
		Wildcards: e.wildcards,
	}
	if e.subject != nil {
		snap.SubjectName = e.subject.Name
		// Nationality stays out of the header; it can appear as a tile.
		snap.SubjectInfo = fmt.Sprintf("%s (%s)", e.subject.Position, e.subject.YearsActive)
	}
	return snap
}
