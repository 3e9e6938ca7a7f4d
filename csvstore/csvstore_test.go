/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package csvstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikeb26/racquetclub-matchbot/league"
)

func tempStore(t *testing.T) *Store {
	dir := t.TempDir()
	return New(filepath.Join(dir, "players.csv"),
		filepath.Join(dir, "matches.csv"))
}

func TestLoad_MissingFilesYieldEmptyClub(t *testing.T) {
	st := tempStore(t)
	lg := league.NewLeague()

	require.NoError(t, st.Load(lg))
	assert.Equal(t, 0, lg.Registry.Len())
	assert.Equal(t, 0, lg.Ledger.Len())
}

func TestPlayers_RoundTrip(t *testing.T) {
	st := tempStore(t)
	lg := league.NewLeague()

	_, err := lg.AddPlayerRated("Alice", 1341.5)
	require.NoError(t, err)
	_, err = lg.AddPlayerRated("Bob", 1200)
	require.NoError(t, err)
	require.NoError(t, st.Save(lg))

	reloaded := league.NewLeague()
	require.NoError(t, st.Load(reloaded))
	require.Equal(t, 2, reloaded.Registry.Len())

	for _, name := range []string{"Alice", "Bob"} {
		orig, err := lg.PlayerStats(name)
		require.NoError(t, err)
		got, err := reloaded.PlayerStats(name)
		require.NoError(t, err)
		assert.Equal(t, orig.ID, got.ID)
		assert.Equal(t, orig.Rating, got.Rating)
		assert.True(t, got.Available)
		assert.Empty(t, got.History)
	}

	// New registrations must not collide with reloaded ids
	p, err := reloaded.AddPlayer("Carol")
	require.NoError(t, err)
	assert.Equal(t, 2, p.ID)
}

func TestMatches_RoundTripResolved(t *testing.T) {
	st := tempStore(t)
	lg := league.NewLeague()

	for _, name := range []string{"a", "b", "c", "d"} {
		_, err := lg.AddPlayer(name)
		require.NoError(t, err)
	}
	m, err := lg.CreateDoublesMatch()
	require.NoError(t, err)
	_, err = lg.RecordOutcome(m.ID, 1)
	require.NoError(t, err)
	_, err = lg.RecordScore(m.ID, "6-3 6-4")
	require.NoError(t, err)
	require.NoError(t, st.Save(lg))

	reloaded := league.NewLeague()
	require.NoError(t, st.Load(reloaded))
	require.Equal(t, 1, reloaded.Ledger.Len())

	got, err := reloaded.MatchStats(0)
	require.NoError(t, err)
	assert.Equal(t, league.Doubles, got.Type)
	assert.Equal(t, m.SideA.Names, got.SideA.Names)
	assert.Equal(t, m.SideB.Names, got.SideB.Names)
	require.NotNil(t, got.Outcome)
	assert.Equal(t, 1, *got.Outcome)
	assert.Equal(t, "6-3 6-4", got.Score)
	assert.True(t, got.SideA.Resolved(), "names should re-resolve to live players")
	assert.Equal(t, m.Timestamp.Truncate(time.Second).Unix(),
		got.Timestamp.Unix())
}

func TestMatches_UnresolvedMatchRestoresEngagement(t *testing.T) {
	st := tempStore(t)
	lg := league.NewLeague()

	for _, name := range []string{"a", "b"} {
		_, err := lg.AddPlayer(name)
		require.NoError(t, err)
	}
	_, err := lg.CreateSinglesMatch()
	require.NoError(t, err)
	require.NoError(t, st.Save(lg))

	reloaded := league.NewLeague()
	require.NoError(t, st.Load(reloaded))

	// The unresolved match keeps both players out of the pool
	assert.Empty(t, reloaded.Registry.AvailablePlayers())

	// and the outcome can still be recorded against the reloaded state
	_, err = reloaded.RecordOutcome(0, 1)
	require.NoError(t, err)
	assert.Len(t, reloaded.Registry.AvailablePlayers(), 2)
}

func TestMatches_SnapshotOnlyWhenPlayerGone(t *testing.T) {
	st := tempStore(t)
	lg := league.NewLeague()

	for _, name := range []string{"a", "b"} {
		_, err := lg.AddPlayer(name)
		require.NoError(t, err)
	}
	m, err := lg.CreateSinglesMatch()
	require.NoError(t, err)
	_, err = lg.RecordOutcome(m.ID, 1)
	require.NoError(t, err)
	require.NoError(t, st.Save(lg))

	// drop player "a" from the roster file only
	require.NoError(t, lg.RemovePlayer("a"))
	require.NoError(t, SavePlayers(st.PlayersPath, lg.Registry.AllPlayers()))

	reloaded := league.NewLeague()
	require.NoError(t, st.Load(reloaded))

	got, err := reloaded.MatchStats(0)
	require.NoError(t, err)
	// frozen snapshot retains the departed player's name
	assert.Contains(t, append(got.SideA.Names, got.SideB.Names...), "a")
	assert.False(t, got.SideA.Resolved() && got.SideB.Resolved())
}

func TestLoadPlayers_MalformedRow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "players.csv")
	require.NoError(t, os.WriteFile(path,
		[]byte("0,Alice,notanumber\n"), 0644))

	_, err := LoadPlayers(path)
	assert.Error(t, err)
}

func TestLoadMatches_MalformedRows(t *testing.T) {
	reg := league.NewRegistry()
	dir := t.TempDir()

	cases := []struct {
		name string
		row  string
	}{
		{name: "bad type", row: `0,"a,b",triples,,2026-03-14T19:00:00Z,`},
		{name: "bad outcome", row: `0,"a,b",singles,7,2026-03-14T19:00:00Z,`},
		{name: "bad doubles sides", row: `0,"a,b",doubles,,2026-03-14T19:00:00Z,`},
		{name: "bad timestamp", row: `0,"a,b",singles,,whenever,`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(dir, c.name+".csv")
			require.NoError(t, os.WriteFile(path, []byte(c.row+"\n"), 0644))
			_, err := LoadMatches(path, reg)
			assert.Error(t, err)
		})
	}
}

func TestSavePlayers_OrderedByID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "players.csv")

	players := []*league.Player{
		league.NewPlayer(2, "c", 1300),
		league.NewPlayer(0, "a", 1100),
		league.NewPlayer(1, "b", 1200),
	}
	require.NoError(t, SavePlayers(path, players))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0,a,1100\n1,b,1200\n2,c,1300\n", string(data))
}
