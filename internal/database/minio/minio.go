package minio

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"kyc-service/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioClient wraps the MinIO client for the kyc upload bucket.
type MinioClient struct {
	client *minio.Client
	config config.S3Config
}

// NewMinioClient initializes the client against the configured S3-compatible
// endpoint and makes sure the kyc bucket exists with public read access.
func NewMinioClient(cfg config.S3Config) (*MinioClient, error) {
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")
	// Supabase exposes its S3 API under a /s3 path suffix
	endpoint = strings.TrimSuffix(endpoint, "/s3")
	isSecure := strings.HasPrefix(cfg.Endpoint, "https://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: isSecure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	mc := &MinioClient{
		client: minioClient,
		config: cfg,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := mc.ensureBucket(ctx, cfg.Bucket); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket %s: %w", cfg.Bucket, err)
	}

	if err := mc.SetPublicReadPolicy(ctx, cfg.Bucket); err != nil {
		log.Printf("Failed to set public policy for %s bucket: %v", cfg.Bucket, err)
		// Not fatal: managed stores like Supabase reject SetBucketPolicy and
		// handle public access themselves.
	}

	log.Printf("MinIO client initialized for bucket %s at %s", cfg.Bucket, endpoint)
	return mc, nil
}

func (mc *MinioClient) ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := mc.client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("error checking bucket existence: %w", err)
	}

	if !exists {
		err := mc.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{
			Region: mc.config.Region,
		})
		if err != nil {
			return fmt.Errorf("error creating bucket %s: %w", bucketName, err)
		}
		log.Printf("Created bucket: %s", bucketName)
	}

	return nil
}

// SetPublicReadPolicy sets a public read-only policy for a bucket
func (mc *MinioClient) SetPublicReadPolicy(ctx context.Context, bucketName string) error {
	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": "*"},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, bucketName)

	err := mc.client.SetBucketPolicy(ctx, bucketName, policy)
	if err != nil {
		return fmt.Errorf("error setting public read policy for bucket %s: %w", bucketName, err)
	}

	return nil
}

// Upload writes one object and returns its public URL. A failed write
// returns an error and no URL; the caller must not persist anything.
func (mc *MinioClient) Upload(ctx context.Context, objectName string, reader io.Reader, objectSize int64, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := mc.client.PutObject(ctx, mc.config.Bucket, objectName, reader, objectSize,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", objectName, mc.config.Bucket, err)
	}

	log.Printf("Uploaded object: %s to bucket: %s", objectName, mc.config.Bucket)
	return mc.PublicURL(objectName), nil
}

// PublicURL builds the publicly reachable link for an uploaded object.
func (mc *MinioClient) PublicURL(objectName string) string {
	return PublicObjectURL(mc.config.Endpoint, mc.config.Bucket, objectName)
}

// PublicObjectURL follows the fixed template
// {endpoint without /s3}/object/public/{bucket}/{key}
func PublicObjectURL(endpoint, bucket, objectName string) string {
	base := strings.TrimSuffix(strings.TrimSuffix(endpoint, "/"), "/s3")
	return fmt.Sprintf("%s/object/public/%s/%s", base, bucket, objectName)
}
