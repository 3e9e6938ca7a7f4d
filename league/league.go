/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"fmt"
)

// League ties the registry, pairing engine, and ledger together behind
// the operation set the CLI and discord bot drive. The engine is
// single-caller: every operation runs to completion before the next, and
// no operation partially mutates state before failing.
type League struct {
	Registry *Registry
	Ledger   *Ledger

	// StartingRating is assigned to newly registered players.
	StartingRating float64
}

func NewLeague() *League {
	return &League{
		Registry:       NewRegistry(),
		Ledger:         NewLedger(),
		StartingRating: DefaultRating,
	}
}

// AddPlayer registers a new player at the league's starting rating.
func (lg *League) AddPlayer(name string) (*Player, error) {
	return lg.AddPlayerRated(name, lg.StartingRating)
}

// AddPlayerRated registers a new player at a specific rating, e.g. from
// a roster import carrying known ratings.
func (lg *League) AddPlayerRated(name string, rating float64) (*Player, error) {
	p := NewPlayer(lg.Registry.NextID(), name, rating)
	if err := lg.Registry.Add(p); err != nil {
		return nil, err
	}
	return p, nil
}

// RemovePlayer unregisters a player. Players engaged in an unresolved
// match are rejected; record the outcome first.
func (lg *League) RemovePlayer(name string) error {
	if lg.Ledger.Engaged(name) {
		return fmt.Errorf("remove %v: %w", name, ErrPlayerEngaged)
	}
	return lg.Registry.Remove(name)
}

// CreateSinglesMatch pairs the two closest-rated available players and
// appends the match to the ledger.
func (lg *League) CreateSinglesMatch() (*Match, error) {
	p1, p2, err := PickSingles(lg.Registry.AvailablePlayers())
	if err != nil {
		return nil, err
	}
	return lg.Ledger.Create(Singles, []*Player{p1}, []*Player{p2}), nil
}

// CreateDoublesMatch selects the most balanced 2v2 grouping from the
// available pool and appends the match to the ledger.
func (lg *League) CreateDoublesMatch() (*Match, error) {
	team1, team2, err := PickDoubles(lg.Registry.AvailablePlayers())
	if err != nil {
		return nil, err
	}
	return lg.Ledger.Create(Doubles,
		[]*Player{team1[0], team1[1]},
		[]*Player{team2[0], team2[1]}), nil
}

// RecordOutcome resolves a match; see Ledger.RecordOutcome.
func (lg *League) RecordOutcome(matchID, outcome int) (*Match, error) {
	return lg.Ledger.RecordOutcome(matchID, outcome)
}

// RecordScore attaches score text to a match.
func (lg *League) RecordScore(matchID int, score string) (*Match, error) {
	return lg.Ledger.RecordScore(matchID, score)
}

// PlayerStats returns the named player's record.
func (lg *League) PlayerStats(name string) (*Player, error) {
	return lg.Registry.Get(name)
}

// MatchStats returns the match with the given id.
func (lg *League) MatchStats(matchID int) (*Match, error) {
	return lg.Ledger.Get(matchID)
}
