package routers

import (
	"intake-report-service/internal/app/delivery/http/middlewares"
	"intake-report-service/internal/app/services/core/locales"

	"github.com/go-chi/chi/v5"
)

func attachLocaleRoutes(router chi.Router, _ *middlewares.Middlewares, localeController *locales.LocaleController) {
	router.Get("/{language}", localeController.FindByLanguage)
}
