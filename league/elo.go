/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"math"
)

const (
	// DefaultRating is the rating assigned to newly registered players.
	DefaultRating = 1200.0

	// DefaultKFactor is the K used for all rating updates. The club runs a
	// single K for everyone; no provisional/established split.
	DefaultKFactor = 32.0
)

// Expected returns the expected score of a player rated a against an
// opponent rated b. Expected(a,b) + Expected(b,a) == 1 within floating
// point tolerance.
func Expected(a, b float64) float64 {
	// 1/(10^((b-a)/400)+1)
	exp := math.Pow(10, (b-a)/400.0)
	return 1.0 / (exp + 1.0)
}

// UpdateRating returns the post-game rating given the expected and actual
// scores. actual is 1.0 for a win and 0.0 for a loss; draws are not played
// at the club.
func UpdateRating(rating, expected, actual, k float64) float64 {
	return rating + k*(actual-expected)
}

// sideRating returns the virtual opponent rating a side presents: the
// average of its members' ratings. For a singles side this is just that
// player's rating.
func sideRating(players []*Player) float64 {
	if len(players) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range players {
		sum += p.Rating
	}
	return sum / float64(len(players))
}
