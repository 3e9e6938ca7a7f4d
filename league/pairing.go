/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"fmt"
	"math"
	"sort"
)

// Team is one doubles pairing of two players.
type Team [2]*Player

func (t Team) ratingSum() float64 {
	return t[0].Rating + t[1].Rating
}

// PickSingles selects the two available players with the closest
// ratings. The pool is sorted ascending by rating and scanned for the
// adjacent pair with the smallest gap; the first such pair in scan order
// wins ties, so the lowest-rated qualifying pair is chosen.
//
// This is a greedy nearest-neighbor heuristic over the sorted pool, not
// a minimum-weight matching. It pairs the closest two players in
// O(n log n) which is all a club night needs.
//
// Both selected players are marked unavailable before returning, so a
// subsequent pick cannot select them again. They are returned in
// ascending rating order.
func PickSingles(pool []*Player) (*Player, *Player, error) {
	if len(pool) < 2 {
		return nil, nil, fmt.Errorf("singles needs 2 available players, have %v: %w",
			len(pool), ErrInsufficientPlayers)
	}

	sorted := sortedByRating(pool)

	var p1, p2 *Player
	minGap := math.Inf(1)
	for i := 0; i < len(sorted)-1; i++ {
		gap := sorted[i+1].Rating - sorted[i].Rating
		if gap < minGap {
			minGap = gap
			p1, p2 = sorted[i], sorted[i+1]
		}
	}

	p1.Available = false
	p2.Available = false

	return p1, p2, nil
}

// PickDoubles selects the four available players whose 2v2 team rating
// sums are closest, and splits them into two teams.
//
// Every 4-subset of the rating-sorted pool is enumerated with nested
// ascending index loops (i<j<k<l), and for each subset exactly one split
// is evaluated: {i,j} vs {k,l}. The subset minimizing the absolute team
// sum difference wins; the first minimum in enumeration order wins ties.
// The team whose sum is strictly greater plays as team1; on equal sums
// the {i,j} pair keeps the team1 slot.
//
// O(n^4) in pool size, which is fine for the tens of players a club
// session sees but does not scale beyond that.
//
// All four selected players are marked unavailable before returning.
func PickDoubles(pool []*Player) (Team, Team, error) {
	if len(pool) < 4 {
		return Team{}, Team{}, fmt.Errorf("doubles needs 4 available players, have %v: %w",
			len(pool), ErrInsufficientPlayers)
	}

	sorted := sortedByRating(pool)

	var bestA, bestB Team
	minDiff := math.Inf(1)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			for k := j + 1; k < len(sorted); k++ {
				for l := k + 1; l < len(sorted); l++ {
					teamA := Team{sorted[i], sorted[j]}
					teamB := Team{sorted[k], sorted[l]}
					diff := math.Abs(teamA.ratingSum() - teamB.ratingSum())
					if diff < minDiff {
						minDiff = diff
						bestA, bestB = teamA, teamB
					}
				}
			}
		}
	}

	for _, t := range []Team{bestA, bestB} {
		t[0].Available = false
		t[1].Available = false
	}

	// The stronger pair of the chosen split plays as team1; the {i,j}
	// pair keeps the slot when the sums are equal.
	if bestB.ratingSum() > bestA.ratingSum() {
		return bestB, bestA, nil
	}
	return bestA, bestB, nil
}

func sortedByRating(pool []*Player) []*Player {
	sorted := append([]*Player(nil), pool...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Rating != sorted[j].Rating {
			return sorted[i].Rating < sorted[j].Rating
		}
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}
