/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
func ParseDateOrZero(s string) (time.Time, error) {
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}

// SuggestNames returns up to max candidate names that fuzzily match the
// given input, best matches first. Used for "did you mean" hints when a
// player lookup misses.
func SuggestNames(input string, candidates []string, max int) []string {
	ranked := fuzzy.RankFindNormalizedFold(input, candidates)
	if len(ranked) == 0 {
		return nil
	}
	sort.Sort(ranked)
	var out []string
	for _, r := range ranked {
		out = append(out, r.Target)
		if len(out) >= max {
			break
		}
	}
	return out
}

// ValidateName rejects empty names and names containing the separators
// used by the match participant encoding in matches.csv. Every path
// that registers players must apply this rule, or a later reload of the
// match file fails to re-split its participant fields.
func ValidateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("player name cannot be empty")
	}
	if strings.ContainsAny(s, ",;") {
		return fmt.Errorf("player name cannot contain ',' or ';'")
	}
	return nil
}

// NormalizeName title-cases a whitespace-separated name, e.g.
// "jOHN smith" becomes "John Smith". Roster pages are inconsistent
// about casing.
func NormalizeName(s string) string {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return ""
	}
	for i, part := range parts {
		lower := strings.ToLower(part)
		r := []rune(lower)
		parts[i] = string(unicode.ToUpper(r[0])) + string(r[1:])
	}
	return strings.Join(parts, " ")
}
