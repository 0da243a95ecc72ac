package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DefaultS3Region is the region of the Sentinel-2 COG bucket
const DefaultS3Region = "us-west-2"

// S3Bucket implements Bucket for AWS S3 and S3-compatible object stores
type S3Bucket struct {
	bucket     string
	client     *s3.Client
	downloader *manager.Downloader
}

// NewS3Bucket creates a new Bucket from an S3 bucket
func NewS3Bucket(ctx context.Context, bucket string, cfg Config) (*S3Bucket, error) {
	region := cfg.Region
	if region == "" {
		region = DefaultS3Region
	}
	var creds aws.CredentialsProvider = aws.AnonymousCredentials{}
	if cfg.AccessKeyID != "" {
		creds = credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(creds),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("NewS3Bucket config.LoadDefaultConfig: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.EndpointOptions.DisableHTTPS = cfg.NoSSL
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	downloader := manager.NewDownloader(client, func(d *manager.Downloader) {
		d.PartSize = 10 * 1024 * 1024 // 10MB per part
		d.Concurrency = 1
	})

	return &S3Bucket{bucket: bucket, client: client, downloader: downloader}, nil
}

// Name implements Bucket
func (b *S3Bucket) Name() string {
	return b.bucket
}

// List implements Bucket
func (b *S3Bucket) List(ctx context.Context, prefix string) ([]string, error) {
	prefix = strings.TrimSuffix(prefix, "/") + "/"
	paginator := s3.NewListObjectsV2Paginator(b.client,
		&s3.ListObjectsV2Input{
			Bucket:    aws.String(b.bucket),
			Prefix:    aws.String(prefix),
			Delimiter: aws.String("/"),
		},
	)

	var keys []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("S3Bucket.List[%s/%s] paginator.NextPage: %w", b.bucket, prefix, err)
		}
		for _, p := range page.CommonPrefixes {
			keys = append(keys, strings.TrimSuffix(aws.ToString(p.Prefix), "/"))
		}
	}
	return keys, nil
}

// Download implements Bucket
func (b *S3Bucket) Download(ctx context.Context, key string, w io.WriterAt) (int64, error) {
	n, err := b.downloader.Download(ctx, w, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return n, fmt.Errorf("S3Bucket.Download: failed to download object %s:%s: %w", b.bucket, key, err)
	}
	return n, nil
}
