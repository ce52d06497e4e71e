package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"liqstats/internal/config"
)

type MinIOStorage struct {
	Client     *minio.Client
	BucketName string
}

// NewMinIOStorage initializes a MinIOStorage instance, creating the bucket
// when it does not exist yet.
func NewMinIOStorage(cfg config.MinIOConfig) (*MinIOStorage, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	ctx := context.Background()
	exists, errBucketExists := minioClient.BucketExists(ctx, cfg.Bucket)
	if errBucketExists != nil {
		return nil, fmt.Errorf("error checking bucket existence: %w", errBucketExists)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Infof("Bucket '%s' created successfully.", cfg.Bucket)
	}

	return &MinIOStorage{
		Client:     minioClient,
		BucketName: cfg.Bucket,
	}, nil
}

// UploadFile uploads a file to the configured MinIO bucket.
func (m *MinIOStorage) UploadFile(objectName string, data io.Reader, contentType string) error {
	_, err := m.Client.PutObject(context.Background(), m.BucketName, objectName, data, -1, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file '%s' to MinIO: %w", objectName, err)
	}

	log.Infof("File '%s' uploaded successfully to bucket '%s'.", objectName, m.BucketName)
	return nil
}
