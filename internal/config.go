/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the matchbot configuration settings. All fields are
// optional; zero values fall back to the listed defaults.
type Config struct {
	// PlayersFile and MatchesFile are the CSV persistence paths.
	PlayersFile string `yaml:"players_file"`
	MatchesFile string `yaml:"matches_file"`

	// S3Bucket, when set, enables S3 snapshots and S3-backed roster
	// page caching.
	S3Bucket string `yaml:"s3_bucket"`

	// KFactor and StartingRating override the engine defaults when > 0.
	KFactor        float64 `yaml:"k_factor"`
	StartingRating float64 `yaml:"starting_rating"`

	// ListenAddr is the discord bot's interaction webhook address.
	ListenAddr string `yaml:"listen_addr"`
}

// LoadConfig reads a YAML config file. A missing file yields the default
// configuration rather than an error.
func LoadConfig(filename string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, fmt.Errorf("config: failed to read %v: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %v: %w", filename, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.PlayersFile == "" {
		cfg.PlayersFile = DefaultPlayersFile
	}
	if cfg.MatchesFile == "" {
		cfg.MatchesFile = DefaultMatchesFile
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
}
