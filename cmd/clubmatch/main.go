/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mikeb26/racquetclub-matchbot/csvstore"
	"github.com/mikeb26/racquetclub-matchbot/internal"
	"github.com/mikeb26/racquetclub-matchbot/league"
)

//go:embed help.txt
var helpText string

// appState bundles the loaded league with its backing store so handlers
// can persist after each mutation.
type appState struct {
	cfg   *internal.Config
	store *csvstore.Store
	lg    *league.League
}

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, st *appState, args []string) error

// commands maps command names to their respective handler functions.
// Populated in init to avoid an initialization cycle with handleSession,
// which dispatches through this map.
var commands map[string]cmdHandler

func init() {
	commands = map[string]cmdHandler{
		"help":    handleHelp,
		"roster":  handleRoster,
		"add":     handleAdd,
		"remove":  handleRemove,
		"singles": handleSingles,
		"doubles": handleDoubles,
		"outcome": handleOutcome,
		"score":   handleScore,
		"player":  handlePlayer,
		"match":   handleMatch,
		"matches": handleMatches,
		"session": handleSession,
	}
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	handler, ok := commands[cmd]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}

	st, err := loadState(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "clubmatch: %v\n", err)
		os.Exit(1)
	}
	if err := handler(ctx, st, os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "clubmatch: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

// loadState reads the config file and hydrates the league from the
// configured CSV files.
func loadState(ctx context.Context) (*appState, error) {
	cfgPath := os.Getenv("MATCHBOT_CONFIG")
	if cfgPath == "" {
		cfgPath = internal.DefaultConfigFile
	}
	cfg, err := internal.LoadConfig(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	lg := league.NewLeague()
	if cfg.KFactor > 0 {
		lg.Ledger.K = cfg.KFactor
	}
	if cfg.StartingRating > 0 {
		lg.StartingRating = cfg.StartingRating
	}

	store := csvstore.New(cfg.PlayersFile, cfg.MatchesFile)
	if err := store.Load(lg); err != nil {
		return nil, fmt.Errorf("failed to load league: %w", err)
	}

	return &appState{cfg: cfg, store: store, lg: lg}, nil
}

func (st *appState) save() error {
	if err := st.store.Save(st.lg); err != nil {
		return fmt.Errorf("failed to save league: %w", err)
	}
	return nil
}

// validateName rejects names that would collide with the CSV participant
// encoding.
func validateName(name string) error {
	return internal.ValidateName(name)
}

// getPlayer looks up a player by name, suggesting close matches from the
// roster when the lookup misses.
func getPlayer(st *appState, name string) (*league.Player, error) {
	p, err := st.lg.PlayerStats(name)
	if err == nil {
		return p, nil
	}
	if errors.Is(err, league.ErrPlayerNotFound) {
		suggestions := internal.SuggestNames(name, st.lg.Registry.Names(), 3)
		if len(suggestions) > 0 {
			return nil, fmt.Errorf("no player named %v; did you mean %v?",
				name, strings.Join(suggestions, ", "))
		}
	}
	return nil, err
}

func handleHelp(ctx context.Context, st *appState, args []string) error {
	usage()
	return nil
}

func handleRoster(ctx context.Context, st *appState, args []string) error {
	fmt.Print(league.BuildRosterOutput(st.lg.Registry))
	return nil
}

func handleAdd(ctx context.Context, st *appState, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	name := fs.String("name", "", "Player name to register")
	rating := fs.Float64("rating", st.lg.StartingRating, "Initial rating")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateName(*name); err != nil {
		fs.Usage()
		return err
	}

	p, err := st.lg.AddPlayerRated(*name, *rating)
	if err != nil {
		return err
	}
	if err := st.save(); err != nil {
		return err
	}
	fmt.Printf("Added %v (id:%d) at rating %.0f\n", p.Name, p.ID, p.Rating)
	return nil
}

func handleRemove(ctx context.Context, st *appState, args []string) error {
	fs := flag.NewFlagSet("remove", flag.ContinueOnError)
	name := fs.String("name", "", "Player name to remove")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateName(*name); err != nil {
		fs.Usage()
		return err
	}
	if _, err := getPlayer(st, *name); err != nil {
		return err
	}

	if err := st.lg.RemovePlayer(*name); err != nil {
		return err
	}
	if err := st.save(); err != nil {
		return err
	}
	fmt.Printf("Removed %v\n", *name)
	return nil
}

func handleSingles(ctx context.Context, st *appState, args []string) error {
	m, err := st.lg.CreateSinglesMatch()
	if err != nil {
		return err
	}
	if err := st.save(); err != nil {
		return err
	}
	fmt.Print(league.BuildMatchOutput(m))
	return nil
}

func handleDoubles(ctx context.Context, st *appState, args []string) error {
	m, err := st.lg.CreateDoublesMatch()
	if err != nil {
		return err
	}
	if err := st.save(); err != nil {
		return err
	}
	fmt.Print(league.BuildMatchOutput(m))
	return nil
}

func handleOutcome(ctx context.Context, st *appState, args []string) error {
	fs := flag.NewFlagSet("outcome", flag.ContinueOnError)
	matchID := fs.Int("matchid", -1, "Match ID to record an outcome for")
	result := fs.Int("result", -1,
		"1 if the first side won, 0 if the second side won")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *matchID < 0 {
		fs.Usage()
		return fmt.Errorf("please provide a valid --matchid ID")
	}
	if *result != 0 && *result != 1 {
		fs.Usage()
		return fmt.Errorf("--result must be 1 (first side won) or 0 (second side won)")
	}

	m, err := st.lg.RecordOutcome(*matchID, *result)
	if err != nil {
		return err
	}
	if err := st.save(); err != nil {
		return err
	}
	fmt.Print(league.BuildMatchOutput(m))
	return nil
}

func handleScore(ctx context.Context, st *appState, args []string) error {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	matchID := fs.Int("matchid", -1, "Match ID to attach a score to")
	score := fs.String("score", "", "Score annotation, e.g. 6-4,3-6,7-5")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *matchID < 0 {
		fs.Usage()
		return fmt.Errorf("please provide a valid --matchid ID")
	}
	if strings.TrimSpace(*score) == "" {
		fs.Usage()
		return fmt.Errorf("please provide a non-empty --score")
	}

	m, err := st.lg.RecordScore(*matchID, *score)
	if err != nil {
		return err
	}
	if err := st.save(); err != nil {
		return err
	}
	fmt.Print(league.BuildMatchOutput(m))
	return nil
}

func handlePlayer(ctx context.Context, st *appState, args []string) error {
	fs := flag.NewFlagSet("player", flag.ContinueOnError)
	name := fs.String("name", "", "Player name to show stats for")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateName(*name); err != nil {
		fs.Usage()
		return err
	}

	p, err := getPlayer(st, *name)
	if err != nil {
		return err
	}
	fmt.Print(league.BuildPlayerStatsOutput(p))
	return nil
}

func handleMatch(ctx context.Context, st *appState, args []string) error {
	fs := flag.NewFlagSet("match", flag.ContinueOnError)
	matchID := fs.Int("matchid", -1, "Match ID to show")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *matchID < 0 {
		fs.Usage()
		return fmt.Errorf("please provide a valid --matchid ID")
	}

	m, err := st.lg.MatchStats(*matchID)
	if err != nil {
		return err
	}
	fmt.Print(league.BuildMatchOutput(m))
	return nil
}

func handleMatches(ctx context.Context, st *appState, args []string) error {
	fmt.Print(league.BuildMatchListOutput(st.lg.Ledger))
	return nil
}
