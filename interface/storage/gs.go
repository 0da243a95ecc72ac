package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	gstorage "cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GSBucket implements Bucket for Google Storage (e.g. a mirror of the COG collection)
type GSBucket struct {
	bucket string
	client *gstorage.Client
}

// NewGSBucket creates a new Bucket from a Google Storage bucket
func NewGSBucket(ctx context.Context, bucket string, cfg Config) (*GSBucket, error) {
	var opts []option.ClientOption
	if cfg.GSAnonymous {
		opts = append(opts, option.WithoutAuthentication())
	}
	client, err := gstorage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewGSBucket.NewClient: %w", err)
	}
	return &GSBucket{bucket: bucket, client: client}, nil
}

// Name implements Bucket
func (b *GSBucket) Name() string {
	return b.bucket
}

// List implements Bucket
func (b *GSBucket) List(ctx context.Context, prefix string) ([]string, error) {
	prefix = strings.TrimSuffix(prefix, "/") + "/"
	q := &gstorage.Query{Prefix: prefix, Delimiter: "/"}
	if err := q.SetAttrSelection([]string{"Name"}); err != nil {
		return nil, fmt.Errorf("GSBucket.List.SetAttrSelection: %w", err)
	}
	var keys []string
	it := b.client.Bucket(b.bucket).Objects(ctx, q)
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("GSBucket.List[%s/%s]: %w", b.bucket, prefix, err)
		}
		if attrs.Prefix != "" {
			keys = append(keys, strings.TrimSuffix(attrs.Prefix, "/"))
		}
	}
	return keys, nil
}

// Download implements Bucket
func (b *GSBucket) Download(ctx context.Context, key string, w io.WriterAt) (int64, error) {
	r, err := b.client.Bucket(b.bucket).Object(key).NewReader(ctx)
	if err != nil {
		return 0, fmt.Errorf("GSBucket.Download[%s/%s]: %w", b.bucket, key, err)
	}
	defer r.Close()
	n, err := io.Copy(io.NewOffsetWriter(w, 0), r)
	if err != nil {
		return n, fmt.Errorf("GSBucket.Download[%s/%s]: %w", b.bucket, key, err)
	}
	return n, nil
}
