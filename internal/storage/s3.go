package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/karanvir-s/employee-directory-api/internal/config"
)

const s3KeyPrefix = "employee-images/"

// S3 stores images in an S3-compatible bucket. A non-empty endpoint points
// the client at minio or another compatible store.
type S3 struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3(cfg *config.Config) (*S3, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimSuffix(cfg.S3PublicURL, "/"),
	}, nil
}

func (s *S3) Save(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	key := s3KeyPrefix + uuid.New().String() + strings.ToLower(filepath.Ext(name))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	if s.publicURL != "" {
		return s.publicURL + "/" + key, nil
	}
	return key, nil
}
