package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
)

// GCSStore uploads images to a Google Cloud Storage bucket. With signedURLs
// the bucket can stay private and Put returns a 24h V4 signed URL; otherwise
// it returns the public object URL.
type GCSStore struct {
	cl         *storage.Client
	projectID  string
	bucketName string
	uploadPath string
	signedURLs bool
}

func NewGCSStore(ctx context.Context, bucketName, projectID string, signedURLs bool) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &GCSStore{
		cl:         client,
		bucketName: bucketName,
		projectID:  projectID,
		uploadPath: "images/",
		signedURLs: signedURLs,
	}, nil
}

func (g *GCSStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	objectPath := g.uploadPath + key

	wc := g.cl.Bucket(g.bucketName).Object(objectPath).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := io.Copy(wc, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("io.Copy: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("Writer.Close: %w", err)
	}

	if g.signedURLs {
		opts := &storage.SignedURLOptions{
			Scheme:  storage.SigningSchemeV4,
			Method:  "GET",
			Expires: time.Now().Add(24 * time.Hour),
		}
		signedURL, err := g.cl.Bucket(g.bucketName).SignedURL(objectPath, opts)
		if err != nil {
			return "", fmt.Errorf("failed to generate signed URL: %w", err)
		}
		return signedURL, nil
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", g.bucketName, objectPath), nil
}

func (g *GCSStore) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rc, err := g.cl.Bucket(g.bucketName).Object(g.uploadPath + key).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("object reader: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read object: %w", err)
	}
	return data, nil
}

// MakeBucketPublic grants allUsers objectViewer on the bucket. Call once
// when running the public-URL variant against a private bucket.
func (g *GCSStore) MakeBucketPublic(ctx context.Context) error {
	bucket := g.cl.Bucket(g.bucketName)

	policy, err := bucket.IAM().Policy(ctx)
	if err != nil {
		return err
	}

	policy.Add("allUsers", "roles/storage.objectViewer")

	if err := bucket.IAM().SetPolicy(ctx, policy); err != nil {
		return err
	}

	return nil
}
