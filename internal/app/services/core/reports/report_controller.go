package reports

import (
	"context"
	"intake-report-service/internal/app/config"
	"intake-report-service/internal/app/contracts"
	"intake-report-service/internal/pkg/constvars"
	"intake-report-service/internal/pkg/dto/requests"
	"intake-report-service/internal/pkg/exceptions"
	"intake-report-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type ReportController struct {
	Log            *zap.Logger
	ReportUsecase  contracts.ReportUsecase
	InternalConfig *config.InternalConfig
}

func NewReportController(logger *zap.Logger, reportUsecase contracts.ReportUsecase, internalConfig *config.InternalConfig) *ReportController {
	return &ReportController{
		Log:            logger,
		ReportUsecase:  reportUsecase,
		InternalConfig: internalConfig,
	}
}

// GenerateReport accepts the submitted intake form and responds with either
// a short-lived link to the staged PDF or, when staging is unavailable, the
// PDF itself as an attachment.
func (ctrl *ReportController) GenerateReport(w http.ResponseWriter, r *http.Request) {
	timeout := time.Duration(ctrl.InternalConfig.Report.BuildTimeoutInSeconds) * time.Second
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	request := &requests.GenerateReport{}
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.ReportUsecase.GenerateReport(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if result.Downloadable() {
		utils.BuildFileResponse(w, result.FileName, constvars.MIMEApplicationPDF, result.Content)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GenerateReportSuccessMessage, result)
}
