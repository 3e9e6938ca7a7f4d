/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 *
 * Package csvstore persists the club roster and match ledger as
 * delimited text files. A missing file is an empty club, not an error;
 * any other I/O failure surfaces to the caller without crashing the
 * session.
 */
package csvstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mikeb26/racquetclub-matchbot/internal"
	"github.com/mikeb26/racquetclub-matchbot/league"
)

const (
	// Doubles participants encode as "a,b;c,d": teamSep between player
	// names within a team, sideSep between the two teams. Names cannot
	// contain either separator; the CLI rejects such names up front.
	teamSep = ","
	sideSep = ";"
)

// Store reads and writes one club's roster and ledger files.
type Store struct {
	PlayersPath string
	MatchesPath string
}

func New(playersPath, matchesPath string) *Store {
	return &Store{
		PlayersPath: playersPath,
		MatchesPath: matchesPath,
	}
}

// Load populates an empty league from disk. Players load first so match
// participant names can be re-resolved to live records; matches whose
// names no longer resolve stay as frozen snapshots. Players engaged in
// an unresolved match are marked unavailable to restore the
// availability invariant.
func (st *Store) Load(lg *league.League) error {
	players, err := LoadPlayers(st.PlayersPath)
	if err != nil {
		return err
	}
	for _, p := range players {
		if err := lg.Registry.Add(p); err != nil {
			return fmt.Errorf("csvstore.load: %v: %w", st.PlayersPath, err)
		}
	}

	matches, err := LoadMatches(st.MatchesPath, lg.Registry)
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := lg.Ledger.Restore(m); err != nil {
			return fmt.Errorf("csvstore.load: %v: %w", st.MatchesPath, err)
		}
		if m.Resolved() {
			continue
		}
		for _, side := range []league.Side{m.SideA, m.SideB} {
			for _, p := range side.Players {
				if p != nil {
					p.Available = false
				}
			}
		}
	}

	return nil
}

// Save rewrites both files from current league state.
func (st *Store) Save(lg *league.League) error {
	if err := SavePlayers(st.PlayersPath, lg.Registry.AllPlayers()); err != nil {
		return err
	}
	return SaveMatches(st.MatchesPath, lg.Ledger.Matches())
}

// LoadPlayers reads id,name,rating triplets. A missing file yields an
// empty roster.
func LoadPlayers(path string) ([]*league.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("csvstore.load: failed to open %v: %w", path, err)
	}
	defer f.Close()

	rdr := csv.NewReader(f)
	rdr.FieldsPerRecord = 3

	rows, err := rdr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvstore.load: failed to parse %v: %w", path, err)
	}

	var players []*league.Player
	for i, row := range rows {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("csvstore.load: %v row %v: bad id %q: %w",
				path, i+1, row[0], err)
		}
		rating, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("csvstore.load: %v row %v: bad rating %q: %w",
				path, i+1, row[2], err)
		}
		players = append(players, league.NewPlayer(id, row[1], rating))
	}

	return players, nil
}

// SavePlayers rewrites the roster file, ordered by player id.
func SavePlayers(path string, players []*league.Player) error {
	sorted := append([]*league.Player(nil), players...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csvstore.save: failed to create %v: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, p := range sorted {
		row := []string{
			strconv.Itoa(p.ID),
			p.Name,
			strconv.FormatFloat(p.Rating, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("csvstore.save: failed to write %v: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csvstore.save: failed to flush %v: %w", path, err)
	}

	return nil
}

// LoadMatches reads the ledger file and re-resolves participant names
// against the registry. A missing file yields an empty ledger.
func LoadMatches(path string, reg *league.Registry) ([]*league.Match, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("csvstore.load: failed to open %v: %w", path, err)
	}
	defer f.Close()

	rdr := csv.NewReader(f)
	rdr.FieldsPerRecord = 6

	rows, err := rdr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvstore.load: failed to parse %v: %w", path, err)
	}

	var matches []*league.Match
	for i, row := range rows {
		m, err := rowToMatch(row, reg)
		if err != nil {
			return nil, fmt.Errorf("csvstore.load: %v row %v: %w", path, i+1, err)
		}
		matches = append(matches, m)
	}

	return matches, nil
}

// SaveMatches rewrites the ledger file in creation order.
func SaveMatches(path string, matches []*league.Match) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csvstore.save: failed to create %v: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, m := range matches {
		if err := w.Write(matchToRow(m)); err != nil {
			return fmt.Errorf("csvstore.save: failed to write %v: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csvstore.save: failed to flush %v: %w", path, err)
	}

	return nil
}

func matchToRow(m *league.Match) []string {
	var participants string
	if m.Type == league.Doubles {
		participants = strings.Join(m.SideA.Names, teamSep) + sideSep +
			strings.Join(m.SideB.Names, teamSep)
	} else {
		participants = strings.Join(append(append([]string(nil),
			m.SideA.Names...), m.SideB.Names...), teamSep)
	}

	outcome := ""
	if m.Outcome != nil {
		outcome = strconv.Itoa(*m.Outcome)
	}

	return []string{
		strconv.Itoa(m.ID),
		participants,
		string(m.Type),
		outcome,
		m.Timestamp.Format(time.RFC3339),
		m.Score,
	}
}

func rowToMatch(row []string, reg *league.Registry) (*league.Match, error) {
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return nil, fmt.Errorf("bad match id %q: %w", row[0], err)
	}

	mt := league.MatchType(row[2])
	if mt != league.Singles && mt != league.Doubles {
		return nil, fmt.Errorf("bad match type %q", row[2])
	}

	var namesA, namesB []string
	if mt == league.Doubles {
		sides := strings.Split(row[1], sideSep)
		if len(sides) != 2 {
			return nil, fmt.Errorf("bad doubles participants %q", row[1])
		}
		namesA = strings.Split(sides[0], teamSep)
		namesB = strings.Split(sides[1], teamSep)
		if len(namesA) != 2 || len(namesB) != 2 {
			return nil, fmt.Errorf("bad doubles teams %q", row[1])
		}
	} else {
		names := strings.Split(row[1], teamSep)
		if len(names) != 2 {
			return nil, fmt.Errorf("bad singles participants %q", row[1])
		}
		namesA = names[:1]
		namesB = names[1:]
	}

	var outcome *int
	if row[3] != "" {
		o, err := strconv.Atoi(row[3])
		if err != nil || (o != 0 && o != 1) {
			return nil, fmt.Errorf("bad outcome %q", row[3])
		}
		outcome = &o
	}

	ts, err := internal.ParseDateOrZero(row[4])
	if err != nil {
		return nil, fmt.Errorf("bad timestamp %q: %w", row[4], err)
	}

	return &league.Match{
		ID:        id,
		Type:      mt,
		SideA:     resolveSide(namesA, reg),
		SideB:     resolveSide(namesB, reg),
		Outcome:   outcome,
		Score:     row[5],
		Timestamp: ts,
	}, nil
}

// resolveSide links names back to live registry records. If any name no
// longer resolves, the side stays a frozen snapshot; outcome recording
// on such a match is rejected by the engine.
func resolveSide(names []string, reg *league.Registry) league.Side {
	side := league.Side{Names: names}
	var players []*league.Player
	for _, name := range names {
		p, err := reg.Get(name)
		if err != nil {
			return side
		}
		players = append(players, p)
	}
	side.Players = players
	return side
}
