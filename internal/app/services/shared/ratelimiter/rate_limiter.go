package ratelimiter

import (
	"context"
	"fmt"
	"intake-report-service/internal/app/config"
	"intake-report-service/internal/app/contracts"
	"intake-report-service/internal/pkg/constvars"
	"time"

	"go.uber.org/zap"
)

// BuildRateLimiter throttles document builds per client within a fixed
// window. Document rendering is the most expensive operation the service
// performs, so it carries its own limiter on top of the generic per-IP one.
type BuildRateLimiter struct {
	redis     contracts.RedisRepository
	log       *zap.Logger
	windowSec int
	maxQuota  int
}

func NewBuildRateLimiter(redis contracts.RedisRepository, log *zap.Logger, cfg *config.InternalConfig) *BuildRateLimiter {
	return &BuildRateLimiter{
		redis:     redis,
		log:       log,
		windowSec: cfg.Report.RateLimitWindowSec,
		maxQuota:  cfg.Report.RateLimitMaxQuota,
	}
}

// EvaluateOutput carries the allowance and, when denied, the seconds the
// client should wait before retrying.
type EvaluateOutput struct {
	Allowed        bool
	RetryAfterSecs int
}

// Evaluate counts the hit and returns whether this client may build
// another document inside the current window. Keys are fixed-window:
// the counter expires windowSec after its first hit.
func (l *BuildRateLimiter) Evaluate(ctx context.Context, clientKey string) (*EvaluateOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	key := fmt.Sprintf("%s:%s", constvars.ReportRateLimiterGroup, clientKey)
	window := time.Duration(l.windowSec) * time.Second

	count, err := l.redis.IncrementWithTTL(ctx, key, window)
	if err != nil {
		return nil, err
	}

	if count > int64(l.maxQuota) {
		l.log.Warn("document build rate limit exceeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("client_key", clientKey),
			zap.Int64("count", count),
		)
		return &EvaluateOutput{Allowed: false, RetryAfterSecs: l.windowSec}, nil
	}

	return &EvaluateOutput{Allowed: true}, nil
}
