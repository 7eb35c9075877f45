package storage

import (
	"context"
	"intake-report-service/internal/app/contracts"
	"intake-report-service/internal/pkg/constvars"
	"intake-report-service/internal/pkg/exceptions"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.ReportStorage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioStorage) UploadReport(ctx context.Context, objectName string, content io.Reader, size int64) error {
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, content, size, minio.PutObjectOptions{
		ContentType: constvars.MIMEApplicationPDF,
	})
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return nil
}

func (m *minioStorage) GetReportUrlWithExpiryTime(ctx context.Context, objectName string, expiryTime time.Duration) (string, error) {
	reqParams := make(url.Values)
	reqParams.Set("response-content-disposition", "inline")

	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectName, expiryTime, reqParams)
	if err != nil {
		return "", exceptions.ErrMinioFindObjectPresignedURL(err, m.BucketName)
	}

	return presignedURL.String(), nil
}

func (m *minioStorage) RemoveReport(ctx context.Context, objectName string) error {
	err := m.MinioClient.RemoveObject(ctx, m.BucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return exceptions.ErrMinioRemoveObject(err, m.BucketName)
	}

	return nil
}
