package locales

import (
	"context"
	"intake-report-service/internal/app/contracts"
	"intake-report-service/internal/pkg/constvars"
	"intake-report-service/internal/pkg/exceptions"
	"intake-report-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type LocaleController struct {
	Log           *zap.Logger
	LocaleUsecase contracts.LocaleUsecase
}

func NewLocaleController(logger *zap.Logger, localeUsecase contracts.LocaleUsecase) *LocaleController {
	return &LocaleController{
		Log:           logger,
		LocaleUsecase: localeUsecase,
	}
}

func (ctrl *LocaleController) FindByLanguage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	language := chi.URLParam(r, "language")
	scope := r.URL.Query().Get("scope")
	if scope == "" {
		scope = constvars.LocaleScopeUI
	}

	result, err := ctrl.LocaleUsecase.FindByLanguage(ctx, language, scope)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if result == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrLocaleBundleNotFound(language, scope))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLocaleBundleSuccessMessage, result)
}
