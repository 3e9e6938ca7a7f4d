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
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/racquetclub-matchbot/internal"
	"github.com/mikeb26/racquetclub-matchbot/s3store"
)

// backup pushes the league CSV files to the configured S3 bucket as
// snapshots, or restores them from the latest snapshots.

func main() {
	ctx := context.Background()

	restore := flag.Bool("restore", false,
		"Pull the latest snapshots instead of pushing")
	flag.Parse()

	cfgPath := os.Getenv("MATCHBOT_CONFIG")
	if cfgPath == "" {
		cfgPath = internal.DefaultConfigFile
	}
	cfg, err := internal.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("backup: failed to load config: %v", err)
	}
	if cfg.S3Bucket == "" {
		log.Fatalf("backup: no s3bucket configured in %v", cfgPath)
	}

	st := s3store.New(ctx, cfg.S3Bucket, true, true)
	if err := st.Init(); err != nil {
		log.Fatalf("backup: %v", err)
	}

	files := []string{cfg.PlayersFile, cfg.MatchesFile}
	if *restore {
		err = pull(ctx, st, files)
	} else {
		err = push(ctx, st, files)
	}
	if err != nil {
		log.Fatalf("backup: %v", err)
	}
}

func push(ctx context.Context, st *s3store.Store, files []string) error {
	eg, _ := errgroup.WithContext(ctx)
	for _, file := range files {
		eg.Go(func() error {
			data, err := os.ReadFile(file)
			if err != nil {
				if os.IsNotExist(err) {
					// nothing to back up yet
					return nil
				}
				return fmt.Errorf("read %v: %w", file, err)
			}
			if err := st.PutSnapshot(filepath.Base(file), data); err != nil {
				return err
			}
			fmt.Printf("pushed %v (%d bytes)\n", file, len(data))
			return nil
		})
	}

	return eg.Wait()
}

func pull(ctx context.Context, st *s3store.Store, files []string) error {
	eg, _ := errgroup.WithContext(ctx)
	for _, file := range files {
		eg.Go(func() error {
			data, err := st.GetSnapshot(filepath.Base(file))
			if err != nil {
				return fmt.Errorf("get snapshot %v: %w",
					filepath.Base(file), err)
			}
			if err := os.WriteFile(file, data, 0644); err != nil {
				return fmt.Errorf("write %v: %w", file, err)
			}
			fmt.Printf("pulled %v (%d bytes)\n", file, len(data))
			return nil
		})
	}

	return eg.Wait()
}
