package services

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3PhotoStore keeps profile photos in an S3 bucket. Selected with
// PHOTO_STORAGE=s3; the stored reference is the object key, which a
// CDN or bucket policy in front of the bucket resolves.
type S3PhotoStore struct {
	Client *s3.Client
	Bucket string
}

// NewS3PhotoStore builds the store from the default AWS credential chain.
func NewS3PhotoStore(ctx context.Context, region, bucket string) (*S3PhotoStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("S3 bucket name is required for s3 photo storage")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return &S3PhotoStore{Client: s3.NewFromConfig(cfg), Bucket: bucket}, nil
}

func (s *S3PhotoStore) Save(ctx context.Context, userID uint, ext string, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("profile_photos/user-%d%s", userID, ext)
	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading photo to S3: %w", err)
	}
	return "/" + key, nil
}
