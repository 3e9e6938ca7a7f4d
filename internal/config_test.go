/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PlayersFile != DefaultPlayersFile {
		t.Fatalf("players file = %v; want %v", cfg.PlayersFile, DefaultPlayersFile)
	}
	if cfg.MatchesFile != DefaultMatchesFile {
		t.Fatalf("matches file = %v; want %v", cfg.MatchesFile, DefaultMatchesFile)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("listen addr = %v; want :8080", cfg.ListenAddr)
	}
	if cfg.S3Bucket != "" || cfg.KFactor != 0 {
		t.Fatalf("unexpected non-zero optional fields: %+v", cfg)
	}
}

func TestLoadConfig_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matchbot.yaml")
	body := `players_file: club-players.csv
s3_bucket: myclub-matchbot-snapshots
k_factor: 24
starting_rating: 1000
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PlayersFile != "club-players.csv" {
		t.Fatalf("players file = %v", cfg.PlayersFile)
	}
	// unset field still defaults
	if cfg.MatchesFile != DefaultMatchesFile {
		t.Fatalf("matches file = %v; want default", cfg.MatchesFile)
	}
	if cfg.S3Bucket != "myclub-matchbot-snapshots" {
		t.Fatalf("bucket = %v", cfg.S3Bucket)
	}
	if cfg.KFactor != 24 || cfg.StartingRating != 1000 {
		t.Fatalf("overrides not parsed: %+v", cfg)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(":::not yaml"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
