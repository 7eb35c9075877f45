package routers

import (
	"intake-report-service/internal/app/delivery/http/middlewares"
	"intake-report-service/internal/app/services/core/reports"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, middlewares *middlewares.Middlewares, reportController *reports.ReportController) {
	router.With(middlewares.ReportRateLimit).Post("/", reportController.GenerateReport)
}
