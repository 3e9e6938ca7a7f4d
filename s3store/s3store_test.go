/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package s3store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gregjones/httpcache/test"

	"github.com/mikeb26/racquetclub-matchbot/internal"
)

// testStore initializes a Store against the configured bucket, skipping
// the test when no bucket is configured or not accessible.
func testStore(t *testing.T, gzip bool) *Store {
	t.Helper()

	cfg, err := internal.LoadConfig(internal.DefaultConfigFile)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.S3Bucket == "" {
		t.Skip("Skipping test: no s3_bucket configured")
	}

	st := New(context.Background(), cfg.S3Bucket, gzip, true)
	if err := st.Init(); err != nil {
		t.Skip(fmt.Sprintf("Skipping test due to lack of access to %v: %v",
			cfg.S3Bucket, err))
	}

	return st
}

func TestS3WebCache(t *testing.T) {
	st := testStore(t, false)

	test.Cache(t, st)
}

func TestS3WebCacheWithGzip(t *testing.T) {
	st := testStore(t, true)

	test.Cache(t, st)
}

func TestSnapshotRoundTrip(t *testing.T) {
	st := testStore(t, true)

	const name = "snapshot_test.csv"
	want := []byte("0,Jon Snow,1350\n1,Arya Stark,1340\n")

	if err := st.PutSnapshot(name, want); err != nil {
		t.Fatalf("PutSnapshot() err = %v", err)
	}
	got, err := st.GetSnapshot(name)
	if err != nil {
		t.Fatalf("GetSnapshot() err = %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("GetSnapshot() = %q, want %q", got, want)
	}

	if err := st.DeleteSnapshot(name); err != nil {
		t.Fatalf("DeleteSnapshot() err = %v", err)
	}
	if _, err := st.GetSnapshot(name); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetSnapshot() after delete err = %v, want ErrNotFound", err)
	}
}
