package s3store

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"go-matchjobs-backend/internal/domain"
)

// All resume objects live under one folder; the uuid prefix keeps uploads
// with identical filenames from clobbering each other.
const resumeFolder = "curriculos"

type resumeStore struct {
	client        *s3.Client
	bucket        string
	region        string
	publicBaseURL string
}

func NewResumeStore(client *s3.Client, bucket, region, publicBaseURL string) domain.ResumeStore {
	return &resumeStore{
		client:        client,
		bucket:        bucket,
		region:        region,
		publicBaseURL: publicBaseURL,
	}
}

// Upload writes the resume publicly readable under a fresh key and returns
// its retrieval URL.
func (s *resumeStore) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if s.client == nil || s.bucket == "" {
		return "", fmt.Errorf("object storage is not configured")
	}

	key := fmt.Sprintf("%s/%s_%s", resumeFolder, uuid.New().String(), filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("upload resume: %w", err)
	}

	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key, nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
