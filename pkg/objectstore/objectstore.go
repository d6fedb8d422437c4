// Package objectstore wraps S3-compatible storage for patient and
// doctor images. Uploaded objects are public-read so the stored URLs
// can be served to clients directly.
package objectstore

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/shushrut/shushrut_backend/config"
)

// Folder names group objects by what they belong to.
const (
	FolderPatients       = "patients"
	FolderPatientGallery = "patients_gallery"
	FolderDoctors        = "doctors"
)

// UploadResult describes a stored object.
type UploadResult struct {
	Key      string
	URL      string
	Size     int64
	MimeType string
}

// Client wraps the AWS S3 client configured for S3-compatible storage.
type Client struct {
	s3            *s3.Client
	presig        *s3.PresignClient
	bucket        string
	endpoint      string
	publicBaseURL string
	ttl           time.Duration
}

// New creates a storage client from central config.
func New(cfg config.S3Config) (*Client, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("objectstore: bucket name is required")
	}

	resolver := aws.EndpointResolverWithOptionsFunc(
		func(service, region string, options ...any) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:               cfg.Endpoint,
				SigningRegion:     cfg.Region,
				HostnameImmutable: true,
			}, nil
		},
	)

	awsCfg, err := awscfg.LoadDefaultConfig(context.Background(),
		awscfg.WithRegion(cfg.Region),
		awscfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
		awscfg.WithEndpointResolverWithOptions(resolver),
	)
	if err != nil {
		return nil, fmt.Errorf("objectstore: load config: %w", err)
	}

	cli := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	ttl := time.Duration(cfg.PresignTTLSec) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &Client{
		s3:            cli,
		presig:        s3.NewPresignClient(cli),
		bucket:        cfg.Bucket,
		endpoint:      cfg.Endpoint,
		publicBaseURL: cfg.PublicBaseURL,
		ttl:           ttl,
	}, nil
}

// UploadFile stores a multipart upload under folder/{uuid}{ext} and
// returns the object key and its public URL.
func (c *Client) UploadFile(ctx context.Context, folder string, fh *multipart.FileHeader) (*UploadResult, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("objectstore: open upload: %w", err)
	}
	defer f.Close()

	ext := strings.ToLower(path.Ext(fh.Filename))
	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentLength: aws.Int64(fh.Size),
		ContentType:   aws.String(contentType),
		ACL:           types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return nil, fmt.Errorf("objectstore: upload %q: %w", key, err)
	}

	return &UploadResult{
		Key:      key,
		URL:      c.PublicURL(key),
		Size:     fh.Size,
		MimeType: contentType,
	}, nil
}

// PublicURL builds the permanent URL for a stored object.
func (c *Client) PublicURL(key string) string {
	if c.publicBaseURL != "" {
		return strings.TrimSuffix(c.publicBaseURL, "/") + "/" + key
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(c.endpoint, "/"), c.bucket, key)
}

// KeyFromURL recovers the object key from a URL produced by PublicURL.
// Returns empty when the URL does not point into this store.
func (c *Client) KeyFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	p := strings.TrimPrefix(u.Path, "/")
	if c.publicBaseURL == "" {
		p = strings.TrimPrefix(p, c.bucket+"/")
	}
	return p
}

// PresignDownload generates a presigned GET URL valid for the configured TTL.
func (c *Client) PresignDownload(ctx context.Context, key string) (string, error) {
	req, err := c.presig.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(c.ttl))
	if err != nil {
		return "", fmt.Errorf("objectstore: presign %q: %w", key, err)
	}
	return req.URL, nil
}

// Delete removes an object from the store.
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("objectstore: delete %q: %w", key, err)
	}
	return nil
}
