/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 *
 * Package s3store persists club data in Amazon S3. It serves two roles:
 * named snapshot objects for the roster/ledger CSV files, and an
 * implementation of httpcache.Cache so the roster importer's HTTP client
 * can cache fetched pages in the same bucket.
 */
package s3store

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

const (
	snapshotPrefix = "snapshots"
	webCachePrefix = "webcache"
)

// ErrNotFound indicates the requested snapshot object does not exist.
var ErrNotFound = errors.New("object not found")

// Store reads and writes club data in a single S3 bucket.
type Store struct {
	// Config is the Amazon S3 configuration.
	Config aws.Config

	// Client is the s3 client the store should use when interacting with
	// S3. By default this is initialized in Init() with the default
	// Config, but callers can optionally override this with their own s3
	// client if desired.
	Client *s3.Client

	// bucketName is the name of the S3 bucket. Example: "mybucket".
	bucketName string

	// gzip indicates whether stored objects should be gzipped on write
	// and gunzipped on read. If true, object keys get a ".gz" suffix.
	gzip bool

	// logErrors controls whether cache-path errors are logged or not
	logErrors bool

	// The context to specify when initiating s3 requests
	ctx context.Context
}

// New returns a Store targeting the given bucket. Callers should invoke
// Init() on the returned Store before use.
func New(ctxIn context.Context, bucketNameIn string, gzipIn bool,
	logErrorsIn bool) *Store {

	return &Store{
		ctx:        ctxIn,
		bucketName: bucketNameIn,
		gzip:       gzipIn,
		logErrors:  logErrorsIn,
	}
}

// Init loads AWS configuration and verifies the bucket is reachable.
//
// The default configuration sources are:
// * Environment Variables (e.g. AWS_ACCESS_KEY_ID and AWS_SECRET_KEY)
// * Shared Configuration and Shared Credentials files.
// To use different credentials, modify the returned Store's Config and
// Client fields.
func (st *Store) Init() error {
	var err error
	st.Config, err = config.LoadDefaultConfig(st.ctx)
	if err != nil {
		return fmt.Errorf("s3store.init: failed to load AWS config: %w", err)
	}
	st.Client = s3.NewFromConfig(st.Config)

	// Permission check: verify bucket exists and is accessible
	if _, err = st.Client.HeadBucket(st.ctx, &s3.HeadBucketInput{
		Bucket: aws.String(st.bucketName),
	}); err != nil {
		return fmt.Errorf("s3store.init: head bucket failed for %s: %w",
			st.bucketName, err)
	}

	// Permission check: verify ability to list objects (read/list permissions)
	if _, err = st.Client.ListObjectsV2(st.ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(st.bucketName),
		MaxKeys: aws.Int32(1),
	}); err != nil {
		return fmt.Errorf("s3store.init: list objects failed for %s: %w",
			st.bucketName, err)
	}

	return nil
}

// PutSnapshot stores a named snapshot object, e.g. "players.csv".
func (st *Store) PutSnapshot(name string, data []byte) error {
	return st.put(st.snapshotKey(name), data)
}

// GetSnapshot retrieves a named snapshot object. Returns ErrNotFound when
// no snapshot with that name exists.
func (st *Store) GetSnapshot(name string) ([]byte, error) {
	data, err := st.get(st.snapshotKey(name))
	if err != nil {
		if isNoSuchKey(err) {
			return nil, fmt.Errorf("snapshot %v: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("s3store.get: snapshot %v: %w", name, err)
	}
	return data, nil
}

// DeleteSnapshot removes a named snapshot object.
func (st *Store) DeleteSnapshot(name string) error {
	_, err := st.Client.DeleteObject(st.ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(st.bucketName),
		Key:    aws.String(st.snapshotKey(name)),
	})
	if err != nil {
		return fmt.Errorf("s3store.delete: snapshot %v: %w", name, err)
	}
	return nil
}

// Get implements httpcache.Cache for the roster importer's cached HTTP
// client. A missing key is just a cache miss.
func (st *Store) Get(key string) ([]byte, bool) {
	data, err := st.get(st.webCacheKey(key))
	if err != nil {
		if st.logErrors && !isNoSuchKey(err) {
			log.Printf("s3store.get: failed to get cached page for %v: %v",
				key, err)
		}
		return []byte{}, false
	}
	return data, true
}

// Set implements httpcache.Cache.
func (st *Store) Set(key string, data []byte) {
	if err := st.put(st.webCacheKey(key), data); err != nil {
		if st.logErrors {
			log.Printf("s3store.set: put failed for %v: %v", key, err)
		}
	}
}

// Delete implements httpcache.Cache.
func (st *Store) Delete(key string) {
	_, err := st.Client.DeleteObject(st.ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(st.bucketName),
		Key:    aws.String(st.webCacheKey(key)),
	})
	if err != nil {
		if st.logErrors {
			log.Printf("s3store.delete: delete failed for %v: %v", key, err)
		}
	}
}

func (st *Store) put(objKey string, data []byte) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(st.bucketName),
		Key:    aws.String(objKey),
		Body:   bytes.NewReader(data),
	}

	if st.gzip {
		var buf bytes.Buffer
		gw := gzip.NewWriter(&buf)
		if _, err := gw.Write(data); err != nil {
			return fmt.Errorf("s3store.put: failed to gzip data for %v: %w",
				objKey, err)
		}
		if err := gw.Close(); err != nil {
			return fmt.Errorf("s3store.put: failed to close gzip writer for %v: %w",
				objKey, err)
		}
		input.Body = &buf
		input.ContentEncoding = aws.String("gzip")
	}

	if _, err := st.Client.PutObject(st.ctx, input); err != nil {
		return fmt.Errorf("s3store.put: put failed for %v/%v: %w",
			st.bucketName, objKey, err)
	}
	return nil
}

func (st *Store) get(objKey string) ([]byte, error) {
	resp, err := st.Client.GetObject(st.ctx, &s3.GetObjectInput{
		Bucket: aws.String(st.bucketName),
		Key:    aws.String(objKey),
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	rdr := resp.Body
	if st.gzip {
		gzRdr, err := gzip.NewReader(rdr)
		if err != nil {
			return nil, fmt.Errorf("failed to open compressed object %v: %w",
				objKey, err)
		}
		defer gzRdr.Close()
		return io.ReadAll(gzRdr)
	}

	return io.ReadAll(rdr)
}

// snapshotKey maps a snapshot name to its object key, keeping the name
// readable so operators can browse the bucket.
func (st *Store) snapshotKey(name string) string {
	objKey := fmt.Sprintf("/%v/%v", snapshotPrefix, name)
	if st.gzip {
		objKey += ".gz"
	}
	return objKey
}

// webCacheKey hashes cache keys (full URLs) into fixed-length object keys.
func (st *Store) webCacheKey(key string) string {
	h := md5.New()
	io.WriteString(h, key)
	objKey := fmt.Sprintf("/%v/%v", webCachePrefix, hex.EncodeToString(h.Sum(nil)))
	if st.gzip {
		objKey += ".gz"
	}
	return objKey
}

func isNoSuchKey(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey"
}
