package reports

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"intake-report-service/internal/app/config"
	"intake-report-service/internal/app/contracts"
	"intake-report-service/internal/app/services/shared/assets"
	"intake-report-service/internal/app/services/shared/imaging"
	"intake-report-service/internal/pkg/constvars"
	"intake-report-service/internal/pkg/dto/requests"
	"intake-report-service/internal/pkg/dto/responses"
	"intake-report-service/internal/pkg/exceptions"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type reportUsecase struct {
	Composer       *Composer
	Renderer       *Renderer
	Assets         *assets.Cache
	Storage        contracts.ReportStorage
	EventPublisher contracts.ReportEventPublisher
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
}

// NewReportUsecase builds the document pipeline. eventPublisher may be nil
// when generated-event publishing is disabled.
func NewReportUsecase(
	composer *Composer,
	renderer *Renderer,
	assetCache *assets.Cache,
	storage contracts.ReportStorage,
	eventPublisher contracts.ReportEventPublisher,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
) contracts.ReportUsecase {
	return &reportUsecase{
		Composer:       composer,
		Renderer:       renderer,
		Assets:         assetCache,
		Storage:        storage,
		EventPublisher: eventPublisher,
		Log:            logger,
		InternalConfig: internalConfig,
	}
}

func (uc *reportUsecase) GenerateReport(ctx context.Context, request *requests.GenerateReport) (*responses.GeneratedReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.GenerateReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("pdf_language", request.PDFLanguage),
		zap.Int("uploaded_images", len(request.UploadedImages)),
	)

	if err := uc.Assets.Ensure(ctx); err != nil {
		return nil, err
	}

	galleryImages, err := uc.prepareGalleryImages(request.UploadedImages)
	if err != nil {
		return nil, err
	}

	doc := uc.Composer.Compose(ctx, request, galleryImages)
	content, err := uc.Renderer.Render(doc)
	if err != nil {
		return nil, err
	}

	return uc.deliver(ctx, doc, content), nil
}

// prepareGalleryImages decodes and square-crops the uploads concurrently.
// Order is preserved; one bad image fails the whole request since the form
// validated them client side already.
func (uc *reportUsecase) prepareGalleryImages(encodedImages []string) ([][]byte, error) {
	if len(encodedImages) == 0 {
		return nil, nil
	}

	squares := make([][]byte, len(encodedImages))
	var g errgroup.Group
	for i, encoded := range encodedImages {
		i, encoded := i, encoded
		g.Go(func() error {
			raw, err := base64.StdEncoding.DecodeString(encoded)
			if err != nil {
				return exceptions.ErrImageDecode(err)
			}
			square, err := imaging.SquareCrop(raw, GallerySquareSide)
			if err != nil {
				return err
			}
			squares[i] = square
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return squares, nil
}

// deliver stages the PDF on object storage behind a short-lived link and
// schedules its removal when the link expires. Any storage failure degrades
// to returning the bytes directly so the client can still download.
func (uc *reportUsecase) deliver(ctx context.Context, doc *Document, content []byte) *responses.GeneratedReport {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	objectName := fmt.Sprintf(constvars.ReportObjectNameFormat, uuid.NewString())
	expiry := time.Duration(uc.InternalConfig.Report.PresignExpiryInSeconds) * time.Second

	if err := uc.Storage.UploadReport(ctx, objectName, bytes.NewReader(content), int64(len(content))); err != nil {
		uc.Log.Warn("report staging failed, falling back to direct download",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &responses.GeneratedReport{FileName: doc.FileName, Content: content}
	}

	url, err := uc.Storage.GetReportUrlWithExpiryTime(ctx, objectName, expiry)
	if err != nil {
		uc.Log.Warn("presigning failed, falling back to direct download",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &responses.GeneratedReport{FileName: doc.FileName, Content: content}
	}

	time.AfterFunc(expiry, func() {
		removeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := uc.Storage.RemoveReport(removeCtx, objectName); err != nil {
			uc.Log.Warn("failed to remove expired report object",
				zap.String("object_name", objectName),
				zap.Error(err),
			)
		}
	})

	if uc.EventPublisher != nil {
		if err := uc.EventPublisher.PublishReportGenerated(ctx, objectName, doc.FileName, doc.Language); err != nil {
			uc.Log.Warn("report generated event not published",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	return &responses.GeneratedReport{
		URL:       url,
		FileName:  doc.FileName,
		ExpiresIn: uc.InternalConfig.Report.PresignExpiryInSeconds,
	}
}
