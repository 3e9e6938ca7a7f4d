/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"math"
	"testing"
)

func TestExpected_Complement(t *testing.T) {
	cases := []struct{ a, b float64 }{
		{1200, 1200},
		{1000, 1400},
		{1850, 900},
		{1200.5, 1199.5},
	}
	for _, c := range cases {
		sum := Expected(c.a, c.b) + Expected(c.b, c.a)
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("Expected(%v,%v)+Expected(%v,%v) = %v; want 1",
				c.a, c.b, c.b, c.a, sum)
		}
	}
}

func TestExpected_EqualRatings(t *testing.T) {
	if e := Expected(1200, 1200); math.Abs(e-0.5) > 1e-9 {
		t.Fatalf("Expected(1200,1200) = %v; want 0.5", e)
	}
}

func TestExpected_FavorsHigherRating(t *testing.T) {
	if e := Expected(1600, 1200); e <= 0.5 {
		t.Fatalf("Expected(1600,1200) = %v; want > 0.5", e)
	}
	// 400 points of advantage is 10:1 odds
	want := 10.0 / 11.0
	if e := Expected(1600, 1200); math.Abs(e-want) > 1e-9 {
		t.Fatalf("Expected(1600,1200) = %v; want %v", e, want)
	}
}

func TestUpdateRating_ZeroSum(t *testing.T) {
	cases := []struct {
		a, b    float64
		outcome int
	}{
		{1200, 1200, 1},
		{1000, 1400, 1},
		{1000, 1400, 0},
		{1850, 900, 0},
	}
	for _, c := range cases {
		expA := Expected(c.a, c.b)
		expB := Expected(c.b, c.a)
		newA := UpdateRating(c.a, expA, float64(c.outcome), DefaultKFactor)
		newB := UpdateRating(c.b, expB, float64(1-c.outcome), DefaultKFactor)
		deltaSum := (newA - c.a) + (newB - c.b)
		if math.Abs(deltaSum) > 1e-9 {
			t.Errorf("a=%v b=%v outcome=%v: delta sum %v; want 0",
				c.a, c.b, c.outcome, deltaSum)
		}
	}
}

func TestUpdateRating_EvenMatchSwing(t *testing.T) {
	// An even match moves exactly half of K
	newR := UpdateRating(1200, Expected(1200, 1200), 1.0, DefaultKFactor)
	if math.Abs(newR-1216) > 1e-9 {
		t.Fatalf("winner rating = %v; want 1216", newR)
	}
	newR = UpdateRating(1200, Expected(1200, 1200), 0.0, DefaultKFactor)
	if math.Abs(newR-1184) > 1e-9 {
		t.Fatalf("loser rating = %v; want 1184", newR)
	}
}

func TestSideRating_Averages(t *testing.T) {
	p1 := NewPlayer(0, "a", 1000)
	p2 := NewPlayer(1, "b", 1400)
	if avg := sideRating([]*Player{p1, p2}); math.Abs(avg-1200) > 1e-9 {
		t.Fatalf("team average = %v; want 1200", avg)
	}
	if avg := sideRating([]*Player{p1}); math.Abs(avg-1000) > 1e-9 {
		t.Fatalf("singles side average = %v; want 1000", avg)
	}
}
