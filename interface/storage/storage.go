package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Bucket is a read-only hierarchical object store
type Bucket interface {
	// List returns the keys (without trailing slash) of the "directories" directly under prefix.
	// A prefix that does not exist is not an error: the list is empty.
	List(ctx context.Context, prefix string) ([]string, error)

	// Download writes the whole object to w and returns the number of bytes written
	Download(ctx context.Context, key string, w io.WriterAt) (int64, error)

	// Name of the bucket
	Name() string
}

// Config of the connection to the remote buckets
type Config struct {
	Region          string // S3 region
	Endpoint        string // S3-compatible endpoint (path-style addressing)
	AccessKeyID     string // S3 credentials. If empty, the requests are anonymous
	SecretAccessKey string
	NoSSL           bool // S3 requests without transport encryption
	GSAnonymous     bool // Google Storage requests without authentication
}

// Open returns the bucket and the prefix described by the uri.
// uri must be one of s3://bucket/prefix, gs://bucket/prefix, file:///dir or a local directory
func Open(ctx context.Context, uri string, cfg Config) (Bucket, string, error) {
	protocol, location, found := strings.Cut(uri, "://")
	if !found {
		protocol, location = "file", uri
	}
	bucket, prefix, _ := strings.Cut(location, "/")
	prefix = strings.Trim(prefix, "/")

	switch protocol {
	case "s3":
		if bucket == "" {
			return nil, "", fmt.Errorf("Open[%s]: missing bucket", uri)
		}
		b, err := NewS3Bucket(ctx, bucket, cfg)
		if err != nil {
			return nil, "", fmt.Errorf("Open[%s].%w", uri, err)
		}
		return b, prefix, nil
	case "gs":
		if bucket == "" {
			return nil, "", fmt.Errorf("Open[%s]: missing bucket", uri)
		}
		b, err := NewGSBucket(ctx, bucket, cfg)
		if err != nil {
			return nil, "", fmt.Errorf("Open[%s].%w", uri, err)
		}
		return b, prefix, nil
	case "file":
		if location == "" {
			return nil, "", fmt.Errorf("Open[%s]: missing directory", uri)
		}
		return NewLocalBucket(filepath.FromSlash(location)), "", nil
	}
	return nil, "", fmt.Errorf("Open[%s]: unsupported protocol %s", uri, protocol)
}
