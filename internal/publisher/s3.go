package publisher

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Uploader implements Uploader against an S3 bucket using static
// credentials supplied by the environment.
type S3Uploader struct {
	Client *s3.Client
	Bucket string
}

// NewS3Uploader builds an S3 client for the given region and key pair.
func NewS3Uploader(bucket, region, accessKeyID, secretAccessKey string) *S3Uploader {
	cfg := aws.Config{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
	}
	return &S3Uploader{
		Client: s3.NewFromConfig(cfg),
		Bucket: bucket,
	}
}

func (u *S3Uploader) Upload(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	if u.Bucket == "" {
		return "", errors.New("bucket name not configured")
	}
	_, err := u.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put object: %w", err)
	}
	return fmt.Sprintf("s3://%s/%s", u.Bucket, key), nil
}
