package optionSets

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

type OptionSetController struct {
	Log              *zap.Logger
	OptionSetUsecase contracts.OptionSetUsecase
}

func NewOptionSetController(logger *zap.Logger, optionSetUsecase contracts.OptionSetUsecase) *OptionSetController {
	return &OptionSetController{
		Log:              logger,
		OptionSetUsecase: optionSetUsecase,
	}
}

func (ctrl *OptionSetController) FindByKind(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	kind := chi.URLParam(r, "kind")
	language := r.URL.Query().Get("language")
	if language == "" {
		language = constvars.DefaultPDFLanguage
	}

	result, err := ctrl.OptionSetUsecase.FindByKind(ctx, kind, language)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if result == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrOptionSetNotFound(kind, language))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetOptionSetsSuccessMessage, result)
}
