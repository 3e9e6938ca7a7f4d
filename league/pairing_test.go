/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"errors"
	"testing"
)

func poolOf(ratings ...float64) []*Player {
	var pool []*Player
	for i, r := range ratings {
		pool = append(pool, NewPlayer(i, string(rune('a'+i)), r))
	}
	return pool
}

func TestPickSingles_ClosestPair(t *testing.T) {
	pool := poolOf(1000, 1005, 1200)
	p1, p2, err := PickSingles(pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p1.Rating != 1000 || p2.Rating != 1005 {
		t.Fatalf("picked (%v,%v); want (1000,1005)", p1.Rating, p2.Rating)
	}
	if pool[2].Available != true {
		t.Fatalf("unselected player should remain available")
	}
}

func TestPickSingles_AscendingOrder(t *testing.T) {
	pool := poolOf(1500, 1490)
	p1, p2, err := PickSingles(pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p1.Rating > p2.Rating {
		t.Fatalf("players returned out of rating order: %v before %v",
			p1.Rating, p2.Rating)
	}
}

func TestPickSingles_TieBreakLowestPair(t *testing.T) {
	// Gaps of 10 at both ends; the ascending scan hits the low pair first.
	pool := poolOf(1000, 1010, 1500, 1510)
	p1, p2, err := PickSingles(pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p1.Rating != 1000 || p2.Rating != 1010 {
		t.Fatalf("picked (%v,%v); want lowest-rated tied pair (1000,1010)",
			p1.Rating, p2.Rating)
	}
}

func TestPickSingles_MarksUnavailable(t *testing.T) {
	pool := poolOf(1100, 1120)
	p1, p2, err := PickSingles(pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p1.Available || p2.Available {
		t.Fatalf("selected players must be unavailable immediately")
	}
}

func TestPickSingles_InsufficientPlayers(t *testing.T) {
	_, _, err := PickSingles(poolOf(1200))
	if !errors.Is(err, ErrInsufficientPlayers) {
		t.Fatalf("got %v; want ErrInsufficientPlayers", err)
	}
	_, _, err = PickSingles(nil)
	if !errors.Is(err, ErrInsufficientPlayers) {
		t.Fatalf("got %v; want ErrInsufficientPlayers", err)
	}
}

func TestPickDoubles_EqualRatings(t *testing.T) {
	pool := poolOf(1000, 1000, 1000, 1000)
	team1, team2, err := PickDoubles(pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	diff := team1.ratingSum() - team2.ratingSum()
	if diff != 0 {
		t.Fatalf("team sum difference = %v; want 0", diff)
	}
	for _, p := range pool {
		if p.Available {
			t.Fatalf("player %v should be unavailable", p.Name)
		}
	}
}

func TestPickDoubles_StrongerPairIsTeam1(t *testing.T) {
	// Sorted: 1000,1010,1200,1210. All 4 selected; the fixed split is
	// {1000,1010} vs {1200,1210}, so the high pair must come back first.
	pool := poolOf(1200, 1000, 1210, 1010)
	team1, team2, err := PickDoubles(pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if team1.ratingSum() <= team2.ratingSum() {
		t.Fatalf("team1 sum %v not greater than team2 sum %v",
			team1.ratingSum(), team2.ratingSum())
	}
}

func TestPickDoubles_MinimizesTeamDifference(t *testing.T) {
	// Best balanced 4-subset is the four clustered at ~1100; the outlier
	// at 2000 must be left out.
	pool := poolOf(1100, 1105, 1110, 1115, 2000)
	team1, team2, err := PickDoubles(pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range append(team1[:], team2[:]...) {
		if p.Rating == 2000 {
			t.Fatalf("outlier should not have been selected")
		}
	}
	if pool[4].Available != true {
		t.Fatalf("unselected player should remain available")
	}
}

func TestPickDoubles_InsufficientPlayers(t *testing.T) {
	_, _, err := PickDoubles(poolOf(1000, 1100, 1200))
	if !errors.Is(err, ErrInsufficientPlayers) {
		t.Fatalf("got %v; want ErrInsufficientPlayers", err)
	}
}

func TestPickDoubles_FixedSplitOnly(t *testing.T) {
	// With ratings 0,100,100,200 a free 2-2 split could reach a perfect
	// balance ({0,200} vs {100,100}), but only the {i,j} vs {k,l} split
	// of each sorted subset is evaluated: {0,100} vs {100,200}.
	pool := poolOf(0, 100, 100, 200)
	team1, team2, err := PickDoubles(pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if team1.ratingSum() != 300 || team2.ratingSum() != 100 {
		t.Fatalf("split sums (%v,%v); want (300,100) from the fixed split",
			team1.ratingSum(), team2.ratingSum())
	}
}
