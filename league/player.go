/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

// Player represents a club member in the matchmaking pool.
type Player struct {
	// ID is assigned at registration and never changes thereafter.
	ID int

	// Name is the unique lookup key among registered players.
	Name string

	// Rating is the player's current skill estimate. Only outcome
	// recording mutates it.
	Rating float64

	// Available is true when the player may be selected into a new
	// match, and false exactly while the player sits in a match whose
	// outcome has not yet been recorded.
	Available bool

	// History is the append-only record of this player's resolved
	// matches, oldest first.
	History []HistoryEntry
}

// HistoryEntry summarizes one resolved match from a player's point of
// view: who they faced and whether they won.
type HistoryEntry struct {
	// Opponents holds the opposing player's name for singles, or both
	// opposing team members' names for doubles.
	Opponents []string

	// Won is 1 if this player's side won, 0 otherwise.
	Won int
}

// NewPlayer constructs a player at the given rating, immediately
// available, with empty history.
func NewPlayer(id int, name string, rating float64) *Player {
	return &Player{
		ID:        id,
		Name:      name,
		Rating:    rating,
		Available: true,
	}
}
