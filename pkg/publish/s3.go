package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// FileUploader is an interface for uploading files to a remote location.
// It basically abstracts storage services such as AWS S3, GCS, etc...
type FileUploader interface {
	UploadFile(ctx context.Context, filePath, targetPath string) error
}

// S3Uploader implements the FileUploader interface to upload files to any S3-compatible bucket.
type S3Uploader struct {
	s3     *s3.Client
	bucket string
}

// NewS3Uploader loads the default AWS configuration (env, shared config, instance role)
// and creates an uploader for the given bucket. An empty region keeps the configured one.
func NewS3Uploader(ctx context.Context, region, bucket string) (*S3Uploader, error) {
	if bucket == "" {
		return nil, errors.New("bucket name is required for S3 upload")
	}

	var optFns []func(*config.LoadOptions) error
	if region != "" {
		optFns = append(optFns, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("can't load AWS config: %w", err)
	}

	return &S3Uploader{
		s3:     s3.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

func (u *S3Uploader) UploadFile(ctx context.Context, filePath, targetPath string) error {
	buffer, err := os.ReadFile(filePath) //nolint:gosec
	if err != nil {
		return fmt.Errorf("can't read file %s: %w", filePath, err)
	}

	size := int64(len(buffer))
	query := &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(targetPath),
		ACL:           types.ObjectCannedACLPrivate,
		Body:          bytes.NewReader(buffer),
		ContentLength: &size,
		ContentType:   aws.String(contentType(filePath, buffer)),
	}

	_, err = u.s3.PutObject(ctx, query)
	if err != nil {
		return fmt.Errorf("can't send S3 PUT request: %w", err)
	}

	return nil
}

func contentType(filePath string, content []byte) string {
	switch {
	case strings.HasSuffix(filePath, ".xml"):
		return "application/xml"
	case strings.HasSuffix(filePath, ".tar.gz"), strings.HasSuffix(filePath, ".tgz"):
		return "application/gzip"
	default:
		return http.DetectContentType(content)
	}
}
