package contracts

import (
	"context"
	"io"
	"time"
)

type ReportStorage interface {
	UploadReport(ctx context.Context, objectName string, content io.Reader, size int64) error
	GetReportUrlWithExpiryTime(ctx context.Context, objectName string, expiryTime time.Duration) (string, error)
	RemoveReport(ctx context.Context, objectName string) error
}
