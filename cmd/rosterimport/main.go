/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gregjones/httpcache"

	"github.com/mikeb26/racquetclub-matchbot/csvstore"
	"github.com/mikeb26/racquetclub-matchbot/internal"
	"github.com/mikeb26/racquetclub-matchbot/league"
	"github.com/mikeb26/racquetclub-matchbot/s3store"
)

func main() {
	ctx := context.Background()

	url := flag.String("url", "", "Roster page URL to import players from")
	dryRun := flag.Bool("dryrun", false,
		"Report what would be imported without writing")
	flag.Parse()
	if *url == "" {
		fmt.Fprintf(os.Stderr, "Usage: %v --url <roster page url> [--dryrun]\n",
			os.Args[0])
		os.Exit(1)
	}

	cfgPath := os.Getenv("MATCHBOT_CONFIG")
	if cfgPath == "" {
		cfgPath = internal.DefaultConfigFile
	}
	cfg, err := internal.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("rosterimport: failed to load config: %v", err)
	}

	client := internal.NewCachedHttpClient(newWebCache(ctx, cfg), 1*time.Hour)
	entries, err := fetchRoster(client, *url)
	if err != nil {
		log.Fatalf("rosterimport: failed to retrieve %v: %v", *url, err)
	}

	lg := league.NewLeague()
	if cfg.StartingRating > 0 {
		lg.StartingRating = cfg.StartingRating
	}
	store := csvstore.New(cfg.PlayersFile, cfg.MatchesFile)
	if err := store.Load(lg); err != nil {
		log.Fatalf("rosterimport: failed to load league: %v", err)
	}

	added, skipped := merge(lg, entries)

	if *dryRun {
		fmt.Printf("Would import %d new players (%d already registered)\n",
			added, skipped)
		return
	}
	if err := store.Save(lg); err != nil {
		log.Fatalf("rosterimport: failed to save league: %v", err)
	}
	fmt.Printf("Imported %d new players (%d already registered)\n", added,
		skipped)
}

// newWebCache returns the S3 backed web cache when a bucket is
// configured, falling back to an in-memory cache otherwise.
func newWebCache(ctx context.Context, cfg *internal.Config) httpcache.Cache {
	if cfg.S3Bucket == "" {
		return httpcache.NewMemoryCache()
	}
	st := s3store.New(ctx, cfg.S3Bucket, true, true)
	if err := st.Init(); err != nil {
		log.Printf("rosterimport: s3 cache unavailable, using memory: %v", err)
		return httpcache.NewMemoryCache()
	}
	return st
}

// merge registers roster entries not already present. Existing players
// keep their earned ratings. Names that would break the matches.csv
// participant encoding are skipped; letting one in would make the whole
// league unloadable once that player appears in a match.
func merge(lg *league.League, entries []Entry) (added, skipped int) {
	for _, ent := range entries {
		if err := internal.ValidateName(ent.Name); err != nil {
			log.Printf("rosterimport: skipping %v: %v", ent.Name, err)
			skipped++
			continue
		}
		if _, err := lg.Registry.Get(ent.Name); err == nil {
			skipped++
			continue
		}
		rating := ent.Rating
		if rating <= 0 {
			rating = lg.StartingRating
		}
		if _, err := lg.AddPlayerRated(ent.Name, rating); err != nil {
			log.Printf("rosterimport: skipping %v: %v", ent.Name, err)
			skipped++
			continue
		}
		added++
	}

	return added, skipped
}
