package upload

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/Abdullah-yafai/project-managment/internal/config"
	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
)

const avatarPrefix = "avatars/"

// objectAPI is the subset of the S3 client the store uses.
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3AvatarStore struct {
	client        objectAPI
	bucket        string
	publicBaseURL string
}

var _ ports.AvatarStore = (*S3AvatarStore)(nil)

// NewS3AvatarStore loads the default AWS credential chain. A custom endpoint
// switches the client to path-style addressing for S3-compatible servers.
func NewS3AvatarStore(ctx context.Context, conf *config.Config) (*S3AvatarStore, error) {
	if conf.S3Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(conf.S3Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if conf.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := conf.S3PublicBaseURL
	if baseURL == "" {
		if conf.S3Endpoint != "" {
			baseURL = strings.TrimRight(conf.S3Endpoint, "/") + "/" + conf.S3Bucket
		} else {
			baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", conf.S3Bucket, conf.S3Region)
		}
	}

	return newS3AvatarStore(client, conf.S3Bucket, baseURL), nil
}

func newS3AvatarStore(client objectAPI, bucket, publicBaseURL string) *S3AvatarStore {
	return &S3AvatarStore{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *S3AvatarStore) Upload(ctx context.Context, file domain.AvatarFile) (domain.UploadedBlob, error) {
	if file.Content == nil {
		return domain.UploadedBlob{}, fmt.Errorf("avatar has no content")
	}

	key := avatarPrefix + uuid.NewString() + strings.ToLower(path.Ext(file.Filename))
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   file.Content,
	}
	if file.ContentType != "" {
		input.ContentType = aws.String(file.ContentType)
	}
	if file.Size > 0 {
		input.ContentLength = aws.Int64(file.Size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return domain.UploadedBlob{}, fmt.Errorf("put object %s: %w", key, err)
	}

	return domain.UploadedBlob{
		ID:  key,
		URL: s.publicBaseURL + "/" + (&url.URL{Path: key}).EscapedPath(),
	}, nil
}

func (s *S3AvatarStore) Delete(ctx context.Context, blobID string) error {
	if !strings.HasPrefix(blobID, avatarPrefix) {
		return fmt.Errorf("refusing to delete %q outside %s", blobID, avatarPrefix)
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(blobID),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", blobID, err)
	}
	return nil
}
