/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"errors"
)

// Every operation on the engine fails with one of these kinds; callers
// branch with errors.Is. The engine never partially mutates state before
// returning an error.
var (
	ErrPlayerNotFound         = errors.New("player not found")
	ErrMatchNotFound          = errors.New("match not found")
	ErrDuplicateName          = errors.New("player name already registered")
	ErrInsufficientPlayers    = errors.New("not enough available players")
	ErrInvalidOutcome         = errors.New("outcome must be 0 or 1")
	ErrPlayerEngaged          = errors.New("player is in an unresolved match")
	ErrOutcomeRecorded        = errors.New("match outcome already recorded")
	ErrUnresolvedParticipants = errors.New("match participants are no longer registered")
)
