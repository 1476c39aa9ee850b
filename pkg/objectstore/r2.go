// Package objectstore fetches capture image bytes from an S3-compatible
// object store (Cloudflare R2 in production).
package objectstore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/skiftkoll/skiftkoll/pkg/config"
)

// Client wraps an S3 client bound to one bucket and key prefix.
type Client struct {
	s3        *s3.Client
	bucket    string
	keyPrefix string
}

// NewClient builds an S3 client for the configured endpoint. R2 ignores
// the region, so "auto" is a valid value.
func NewClient(ctx context.Context, cfg config.ObjectStoreConfig) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load object store config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.EndpointURL)
		o.UsePathStyle = true
	})

	return &Client{s3: s3Client, bucket: cfg.Bucket, keyPrefix: cfg.KeyPrefix}, nil
}

// FetchObject downloads one object's bytes. The stored key is resolved
// against the configured prefix first.
func (c *Client) FetchObject(ctx context.Context, key string) ([]byte, error) {
	resolvedKey := ResolveKey(key, c.keyPrefix)

	out, err := c.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(resolvedKey),
	})
	if err != nil {
		return nil, fmt.Errorf("get object %q: %w", resolvedKey, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read object body %q: %w", resolvedKey, err)
	}
	return body, nil
}

// ResolveKey joins a stored object key with the bucket's key prefix.
// Keys that already carry the prefix are left alone, so both absolute
// and prefix-relative keys can coexist in the capture_image table.
func ResolveKey(key, keyPrefix string) string {
	normalizedKey := strings.TrimLeft(strings.TrimSpace(key), "/")
	prefix := strings.Trim(strings.TrimSpace(keyPrefix), "/")
	if prefix == "" {
		return normalizedKey
	}
	if normalizedKey == prefix || strings.HasPrefix(normalizedKey, prefix+"/") {
		return normalizedKey
	}
	return prefix + "/" + normalizedKey
}
