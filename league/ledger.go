/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"fmt"
	"time"
)

type MatchType string

const (
	Singles MatchType = "singles"
	Doubles MatchType = "doubles"
)

// Side is one side of a match: a lone player for singles or a team of
// two for doubles, selected by the match's Type tag.
//
// Names always holds the participant names as of match creation. Players
// holds live registry references for matches created this session;
// matches reloaded from disk whose names no longer resolve keep only the
// frozen Names snapshot.
type Side struct {
	Players []*Player
	Names   []string
}

// Resolved reports whether the side still references live player records.
func (s Side) Resolved() bool {
	if len(s.Players) != len(s.Names) || len(s.Players) == 0 {
		return false
	}
	for _, p := range s.Players {
		if p == nil {
			return false
		}
	}
	return true
}

func newSide(players []*Player) Side {
	s := Side{Players: players}
	for _, p := range players {
		s.Names = append(s.Names, p.Name)
	}
	return s
}

// Match is one entry in the club's match ledger.
type Match struct {
	// ID equals the match's position in the ledger and is never reused
	// or renumbered.
	ID int

	Type MatchType

	// SideA and SideB are the two sides in selection order. Outcome is
	// relative to SideA.
	SideA Side
	SideB Side

	// Outcome is nil until recorded; 1 means SideA won, 0 means SideB
	// won. Written at most once.
	Outcome *int

	// Score is free-form text recorded after the outcome, e.g. "11-7 11-9".
	Score string

	// Timestamp is the creation time, fixed at creation.
	Timestamp time.Time
}

// Resolved reports whether the match's outcome has been recorded.
func (m *Match) Resolved() bool {
	return m.Outcome != nil
}

// Ledger is the append-only, index-addressed record of every match ever
// created. Matches are never deleted.
type Ledger struct {
	matches []*Match

	// K is the K-factor applied to every rating update.
	K float64

	// now supplies creation timestamps; tests pin it.
	now func() time.Time
}

func NewLedger() *Ledger {
	return &Ledger{
		K:   DefaultKFactor,
		now: time.Now,
	}
}

// SetClock overrides the ledger's timestamp source.
func (led *Ledger) SetClock(now func() time.Time) {
	led.now = now
}

// Create appends a new unresolved match for the given sides and returns
// it. Only the pairing engine should construct sides; players are
// expected to already be marked unavailable.
func (led *Ledger) Create(mt MatchType, sideA, sideB []*Player) *Match {
	m := &Match{
		ID:        len(led.matches),
		Type:      mt,
		SideA:     newSide(sideA),
		SideB:     newSide(sideB),
		Timestamp: led.now(),
	}
	led.matches = append(led.matches, m)
	return m
}

// Restore re-appends a match reloaded from persistence. The match's id
// must match its ledger position; anything else means the match file was
// edited or truncated out from under us.
func (led *Ledger) Restore(m *Match) error {
	if m.ID != len(led.matches) {
		return fmt.Errorf("restore match %v at ledger position %v: ids must equal positional index",
			m.ID, len(led.matches))
	}
	led.matches = append(led.matches, m)
	return nil
}

// Get returns the match with the given id.
func (led *Ledger) Get(id int) (*Match, error) {
	if id < 0 || id >= len(led.matches) {
		return nil, fmt.Errorf("match id %v: %w", id, ErrMatchNotFound)
	}
	return led.matches[id], nil
}

// Matches returns the ledger in creation order.
func (led *Ledger) Matches() []*Match {
	return led.matches
}

func (led *Ledger) Len() int {
	return len(led.matches)
}

// RecordOutcome resolves a match: 1 means SideA won, 0 means SideB won.
// Every participant's rating is updated against the opposing side's
// average pre-match rating, a history entry is appended to each
// participant, and all participants become available again.
//
// Re-recording an already resolved match is rejected; overwriting would
// double-apply rating deltas.
func (led *Ledger) RecordOutcome(id int, outcome int) (*Match, error) {
	m, err := led.Get(id)
	if err != nil {
		return nil, err
	}
	if outcome != 0 && outcome != 1 {
		return nil, fmt.Errorf("match %v outcome %v: %w", id, outcome,
			ErrInvalidOutcome)
	}
	if m.Resolved() {
		return nil, fmt.Errorf("match %v: %w", id, ErrOutcomeRecorded)
	}
	if !m.SideA.Resolved() || !m.SideB.Resolved() {
		return nil, fmt.Errorf("match %v: %w", id, ErrUnresolvedParticipants)
	}

	// Snapshot both sides' virtual opponent ratings before any update so
	// expectations stay complementary and total rating mass is conserved.
	ratingA := sideRating(m.SideA.Players)
	ratingB := sideRating(m.SideB.Players)

	applySide(m.SideA.Players, ratingB, outcome, m.SideB.Names, led.K)
	applySide(m.SideB.Players, ratingA, 1-outcome, m.SideA.Names, led.K)

	m.Outcome = &outcome

	return m, nil
}

func applySide(players []*Player, oppRating float64, actual int,
	oppNames []string, k float64) {

	for _, p := range players {
		expected := Expected(p.Rating, oppRating)
		p.Rating = UpdateRating(p.Rating, expected, float64(actual), k)
		p.Available = true
		p.History = append(p.History, HistoryEntry{
			Opponents: append([]string(nil), oppNames...),
			Won:       actual,
		})
	}
}

// RecordScore attaches free-form score text to a match. Independent of
// outcome state.
func (led *Ledger) RecordScore(id int, score string) (*Match, error) {
	m, err := led.Get(id)
	if err != nil {
		return nil, err
	}
	m.Score = score
	return m, nil
}

// Engaged reports whether the named player sits on either side of any
// unresolved match.
func (led *Ledger) Engaged(name string) bool {
	for _, m := range led.matches {
		if m.Resolved() {
			continue
		}
		for _, n := range m.SideA.Names {
			if n == name {
				return true
			}
		}
		for _, n := range m.SideB.Names {
			if n == name {
				return true
			}
		}
	}
	return false
}
