package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"intake-report-service/internal/app/config"
	"intake-report-service/internal/app/delivery/http/middlewares"
	"intake-report-service/internal/app/services/core/reports"
	"intake-report-service/internal/app/services/shared/ratelimiter"
	"intake-report-service/internal/pkg/constvars"
	"intake-report-service/internal/pkg/dto/requests"
	"intake-report-service/internal/pkg/dto/responses"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockReportUsecase struct {
	mock.Mock
}

func (m *MockReportUsecase) GenerateReport(ctx context.Context, request *requests.GenerateReport) (*responses.GeneratedReport, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.GeneratedReport), args.Error(1)
}

type memoryRedis struct {
	counts map[string]int64
}

func (r *memoryRedis) Delete(_ context.Context, key string) error { delete(r.counts, key); return nil }
func (r *memoryRedis) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}
func (r *memoryRedis) Get(_ context.Context, _ string) (string, error) { return "", nil }
func (r *memoryRedis) IncrementWithTTL(_ context.Context, key string, _ time.Duration) (int64, error) {
	if r.counts == nil {
		r.counts = make(map[string]int64)
	}
	r.counts[key]++
	return r.counts[key], nil
}

func newReportTestRouter(t *testing.T, usecase *MockReportUsecase, maxQuota int) *chi.Mux {
	t.Helper()
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{RequestBodyLimitInMegabyte: 24},
		Report: config.Report{
			BuildTimeoutInSeconds: 10,
			RateLimitWindowSec:    60,
			RateLimitMaxQuota:     maxQuota,
		},
	}

	middlewareInstance := &middlewares.Middlewares{
		Log:              logger,
		InternalConfig:   internalConfig,
		BuildRateLimiter: ratelimiter.NewBuildRateLimiter(&memoryRedis{}, logger, internalConfig),
	}

	reportController := reports.NewReportController(logger, usecase, internalConfig)

	router := chi.NewRouter()
	router.Route("/reports", func(r chi.Router) {
		attachReportRoutes(r, middlewareInstance, reportController)
	})
	return router
}

func validReportRequest() requests.GenerateReport {
	visitDays := 3
	return requests.GenerateReport{
		ConsultantName: "Dr. Yilmaz",
		PatientName:    "John Carter",
		FirstVisit: requests.Visit{
			VisitDate: "2026-08-10",
			VisitDays: &visitDays,
		},
	}
}

func TestReportRouter_GenerateReturnsLink(t *testing.T) {
	mockUsecase := new(MockReportUsecase)
	mockUsecase.On("GenerateReport", mock.Anything, mock.AnythingOfType("*requests.GenerateReport")).
		Return(&responses.GeneratedReport{
			URL:       "https://storage.local/reports/abc.pdf?signed",
			FileName:  constvars.ReportFileName,
			ExpiresIn: 30,
		}, nil)

	router := newReportTestRouter(t, mockUsecase, 5)

	jsonBody, _ := json.Marshal(validReportRequest())
	req := httptest.NewRequest("POST", "/reports/", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body responses.ResponseDTO
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	mockUsecase.AssertExpectations(t)
}

func TestReportRouter_GenerateStreamsFallbackDownload(t *testing.T) {
	mockUsecase := new(MockReportUsecase)
	mockUsecase.On("GenerateReport", mock.Anything, mock.Anything).
		Return(&responses.GeneratedReport{
			FileName: constvars.ReportFileName,
			Content:  []byte("%PDF-1.4 fallback"),
		}, nil)

	router := newReportTestRouter(t, mockUsecase, 5)

	jsonBody, _ := json.Marshal(validReportRequest())
	req := httptest.NewRequest("POST", "/reports/", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constvars.MIMEApplicationPDF, rec.Header().Get(constvars.HeaderContentType))
	assert.Contains(t, rec.Header().Get(constvars.HeaderContentDisposition), constvars.ReportFileName)
	assert.Equal(t, "%PDF-1.4 fallback", rec.Body.String())
}

func TestReportRouter_RejectsInvalidPayload(t *testing.T) {
	mockUsecase := new(MockReportUsecase)
	router := newReportTestRouter(t, mockUsecase, 5)

	// Missing the required consultant and patient names.
	req := httptest.NewRequest("POST", "/reports/", bytes.NewBufferString(`{"age":"30"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockUsecase.AssertNotCalled(t, "GenerateReport")
}

func TestReportRouter_RateLimitsBuilds(t *testing.T) {
	mockUsecase := new(MockReportUsecase)
	mockUsecase.On("GenerateReport", mock.Anything, mock.Anything).
		Return(&responses.GeneratedReport{FileName: constvars.ReportFileName, ExpiresIn: 30, URL: "https://x/y"}, nil)

	router := newReportTestRouter(t, mockUsecase, 1)

	jsonBody, _ := json.Marshal(validReportRequest())

	first := httptest.NewRequest("POST", "/reports/", bytes.NewBuffer(jsonBody))
	first.RemoteAddr = "10.0.0.9:51000"
	recFirst := httptest.NewRecorder()
	router.ServeHTTP(recFirst, first)
	assert.Equal(t, http.StatusOK, recFirst.Code)

	second := httptest.NewRequest("POST", "/reports/", bytes.NewBuffer(jsonBody))
	second.RemoteAddr = "10.0.0.9:51001"
	recSecond := httptest.NewRecorder()
	router.ServeHTTP(recSecond, second)

	assert.Equal(t, http.StatusTooManyRequests, recSecond.Code)
	assert.Equal(t, "60", recSecond.Header().Get(constvars.HeaderRetryAfter))
}
