package routers

import (
	"intake-report-service/internal/app/delivery/http/middlewares"
	optionSets "intake-report-service/internal/app/services/core/option_sets"

	"github.com/go-chi/chi/v5"
)

func attachOptionSetRoutes(router chi.Router, _ *middlewares.Middlewares, optionSetController *optionSets.OptionSetController) {
	router.Get("/{kind}", optionSetController.FindByKind)
}
