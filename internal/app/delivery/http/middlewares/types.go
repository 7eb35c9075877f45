package middlewares

import (
	"intake-report-service/internal/app/config"
	"intake-report-service/internal/app/services/shared/ratelimiter"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log              *zap.Logger
	InternalConfig   *config.InternalConfig
	BuildRateLimiter *ratelimiter.BuildRateLimiter
}
