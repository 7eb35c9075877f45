package routers

import (
	"fmt"
	"intake-report-service/internal/app/config"
	"intake-report-service/internal/app/delivery/http/middlewares"
	"intake-report-service/internal/app/services/core/locales"
	optionSets "intake-report-service/internal/app/services/core/option_sets"
	"intake-report-service/internal/app/services/core/reports"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	reportController *reports.ReportController,
	optionSetController *optionSets.OptionSetController,
	localeController *locales.LocaleController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/reports", func(r chi.Router) {
				attachReportRoutes(r, middlewares, reportController)
			})

			r.Route("/option-sets", func(r chi.Router) {
				attachOptionSetRoutes(r, middlewares, optionSetController)
			})

			r.Route("/locales", func(r chi.Router) {
				attachLocaleRoutes(r, middlewares, localeController)
			})
		})
	})
}
