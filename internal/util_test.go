/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"testing"
	"time"
)

func TestParseDateOrZero(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		zero  bool
		valid bool
	}{
		{name: "empty", in: "", zero: true, valid: true},
		{name: "null literal", in: "null", zero: true, valid: true},
		{name: "rfc3339", in: "2026-03-14T19:00:00Z", valid: true},
		{name: "us style", in: "3/14/2026 7:00 PM", valid: true},
		{name: "garbage", in: "not a date"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ts, err := ParseDateOrZero(c.in)
			if c.valid && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !c.valid && err == nil {
				t.Fatalf("expected error for %q", c.in)
			}
			if c.zero && !ts.IsZero() {
				t.Fatalf("expected zero time for %q, got %v", c.in, ts)
			}
		})
	}
}

func TestParseDateOrZero_RoundTrip(t *testing.T) {
	want := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
	got, err := ParseDateOrZero(want.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("got %v; want %v", got, want)
	}
}

func TestSuggestNames(t *testing.T) {
	candidates := []string{"John Smith", "Jane Doe", "Jon Snow"}

	got := SuggestNames("jon", candidates, 2)
	if len(got) == 0 {
		t.Fatalf("expected at least one suggestion for 'jon'")
	}
	if len(got) > 2 {
		t.Fatalf("suggestions exceed max: %v", got)
	}
	if got[0] != "Jon Snow" {
		t.Fatalf("best suggestion = %v; want Jon Snow", got[0])
	}

	if got := SuggestNames("zzzz", candidates, 3); got != nil {
		t.Fatalf("expected no suggestions, got %v", got)
	}
}

func TestValidateName(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"Jon Snow", true},
		{"Alice", true},
		{"", false},
		{"   ", false},
		{"Smith, John", false},
		{"a;b", false},
	}
	for _, c := range cases {
		err := ValidateName(c.in)
		if c.valid && err != nil {
			t.Errorf("ValidateName(%q) = %v; want nil", c.in, err)
		}
		if !c.valid && err == nil {
			t.Errorf("ValidateName(%q) = nil; want error", c.in)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"jOHN smith", "John Smith"},
		{"  alice   de   souza ", "Alice De Souza"},
		{"BOB", "Bob"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeName(c.in); got != c.want {
			t.Errorf("NormalizeName(%q) = %q; want %q", c.in, got, c.want)
		}
	}
}
