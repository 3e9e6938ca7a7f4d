/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"fmt"
	"strings"
)

// SideLabel renders one side of a match, e.g. "Alice" or "Alice/Bob".
func SideLabel(s Side) string {
	return strings.Join(s.Names, "/")
}

func outcomeLabel(m *Match) string {
	if !m.Resolved() {
		return "unresolved"
	}
	if *m.Outcome == 1 {
		return SideLabel(m.SideA) + " won"
	}
	return SideLabel(m.SideB) + " won"
}

// BuildRosterOutput formats the full roster into an aligned table,
// strongest players first.
func BuildRosterOutput(reg *Registry) string {
	players := reg.AllPlayers()
	if len(players) == 0 {
		return "No players registered\n"
	}

	type row struct{ name, rating, status, played string }
	var rows []row
	for _, p := range players {
		status := "available"
		if !p.Available {
			status = "in match"
		}
		rows = append(rows, row{
			name:   p.Name,
			rating: fmt.Sprintf("%.0f", p.Rating),
			status: status,
			played: fmt.Sprintf("%d", len(p.History)),
		})
	}

	// Compute column widths
	maxN, maxR, maxS := len("Name"), len("Rating"), len("Status")
	for _, r := range rows {
		if l := len(r.name); l > maxN {
			maxN = l
		}
		if l := len(r.rating); l > maxR {
			maxR = l
		}
		if l := len(r.status); l > maxS {
			maxS = l
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %s\n", maxN, "Name", maxR,
		"Rating", maxS, "Status", "Played"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %s\n", maxN, r.name,
			maxR, r.rating, maxS, r.status, r.played))
	}

	return sb.String()
}

// BuildPlayerStatsOutput formats one player's rating and match history.
func BuildPlayerStatsOutput(p *Player) string {
	var sb strings.Builder

	status := "available"
	if !p.Available {
		status = "in match"
	}
	sb.WriteString(fmt.Sprintf("%s (id:%d)\n", p.Name, p.ID))
	sb.WriteString(fmt.Sprintf("Rating: %.0f\n", p.Rating))
	sb.WriteString(fmt.Sprintf("Status: %s\n", status))

	wins := 0
	for _, h := range p.History {
		wins += h.Won
	}
	sb.WriteString(fmt.Sprintf("Record: %dW-%dL\n", wins, len(p.History)-wins))

	if len(p.History) > 0 {
		sb.WriteString("History:\n")
		for _, h := range p.History {
			res := "L"
			if h.Won == 1 {
				res = "W"
			}
			sb.WriteString(fmt.Sprintf("  %s vs %s\n", res,
				strings.Join(h.Opponents, "/")))
		}
	}

	return sb.String()
}

// BuildMatchOutput formats one match's full detail.
func BuildMatchOutput(m *Match) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Match %d (%s)\n", m.ID, m.Type))
	sb.WriteString(fmt.Sprintf("%s vs. %s\n", SideLabel(m.SideA),
		SideLabel(m.SideB)))
	sb.WriteString(fmt.Sprintf("Created: %s\n",
		m.Timestamp.Format("2006-01-02 15:04")))
	sb.WriteString(fmt.Sprintf("Outcome: %s\n", outcomeLabel(m)))
	if m.Score != "" {
		sb.WriteString(fmt.Sprintf("Score: %s\n", m.Score))
	}

	return sb.String()
}

// BuildMatchListOutput formats the ledger into an aligned table in
// creation order.
func BuildMatchListOutput(led *Ledger) string {
	matches := led.Matches()
	if len(matches) == 0 {
		return "No matches recorded\n"
	}

	type row struct{ id, mtype, sides, outcome, score string }
	var rows []row
	for _, m := range matches {
		score := m.Score
		if score == "" {
			score = "-"
		}
		rows = append(rows, row{
			id:      fmt.Sprintf("%d.", m.ID),
			mtype:   string(m.Type),
			sides:   fmt.Sprintf("%s vs. %s", SideLabel(m.SideA), SideLabel(m.SideB)),
			outcome: outcomeLabel(m),
			score:   score,
		})
	}

	maxI, maxT, maxSd, maxO := len("Id"), len("Type"), len("Match"), len("Outcome")
	for _, r := range rows {
		if l := len(r.id); l > maxI {
			maxI = l
		}
		if l := len(r.mtype); l > maxT {
			maxT = l
		}
		if l := len(r.sides); l > maxSd {
			maxSd = l
		}
		if l := len(r.outcome); l > maxO {
			maxO = l
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %-*s  %s\n", maxI, "Id",
		maxT, "Type", maxSd, "Match", maxO, "Outcome", "Score"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %-*s  %s\n", maxI, r.id,
			maxT, r.mtype, maxSd, r.sides, maxO, r.outcome, r.score))
	}

	return sb.String()
}
