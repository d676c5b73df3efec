package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store uploads images to an S3 bucket. Credentials and region come from
// the default AWS config chain.
type S3Store struct {
	uploader *manager.Uploader
	client   *s3.Client
	bucket   string
}

func NewS3Store(bucket string) (*S3Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 store requires a bucket name")
	}
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	return &S3Store{
		uploader: manager.NewUploader(client),
		client:   client,
		bucket:   bucket,
	}, nil
}

func (s *S3Store) Save(file *multipart.FileHeader, subdir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := uniqueName(file.Filename)
	if subdir != "" {
		key = subdir + "/" + key
	}

	result, err := s.uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload failed: %w", err)
	}
	return result.Location, nil
}

// Remove deletes an uploaded object given the URL returned by Save.
func (s *S3Store) Remove(url string) error {
	idx := strings.Index(url, s.bucket)
	if idx < 0 {
		return nil
	}
	key := strings.TrimPrefix(url[idx+len(s.bucket):], "/")
	slash := strings.Index(key, "/")
	if slash > 0 && strings.Contains(key[:slash], ".amazonaws.com") {
		key = key[slash+1:]
	}
	if key == "" {
		return nil
	}
	_, err := s.client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
