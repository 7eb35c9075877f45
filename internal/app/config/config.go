package config

import (
	"intake-report-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "intake"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "intake-reports"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Europe/Istanbul"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 24),
		},
		Assets: Assets{
			BodyFontRegularURL: utils.GetEnvString("ASSET_BODY_FONT_REGULAR_URL", "http://localhost:9000/intake-assets/Roboto-Regular.ttf"),
			BodyFontBoldURL:    utils.GetEnvString("ASSET_BODY_FONT_BOLD_URL", "http://localhost:9000/intake-assets/Roboto-Bold.ttf"),
			RTLFontRegularURL:  utils.GetEnvString("ASSET_RTL_FONT_REGULAR_URL", "http://localhost:9000/intake-assets/Arial-Regular.ttf"),
			RTLFontBoldURL:     utils.GetEnvString("ASSET_RTL_FONT_BOLD_URL", "http://localhost:9000/intake-assets/Arial-Bold.ttf"),
			HeaderGraphicURL:   utils.GetEnvString("ASSET_HEADER_GRAPHIC_URL", "http://localhost:9000/intake-assets/header.svg"),
			FooterGraphicURL:   utils.GetEnvString("ASSET_FOOTER_GRAPHIC_URL", "http://localhost:9000/intake-assets/footer.svg"),
			TopBannerURL:       utils.GetEnvString("ASSET_TOP_BANNER_URL", "http://localhost:9000/intake-assets/banner.png"),
			BottomBannerURL:    utils.GetEnvString("ASSET_BOTTOM_BANNER_URL", "http://localhost:9000/intake-assets/banner1.png"),
		},
		Report: Report{
			PresignExpiryInSeconds:  utils.GetEnvInt("REPORT_PRESIGN_EXPIRY_IN_SECONDS", 30),
			RateLimitWindowSec:      utils.GetEnvInt("REPORT_RATE_LIMIT_WINDOW_SEC", 60),
			RateLimitMaxQuota:       utils.GetEnvInt("REPORT_RATE_LIMIT_MAX_QUOTA", 5),
			BuildTimeoutInSeconds:   utils.GetEnvInt("REPORT_BUILD_TIMEOUT_IN_SECONDS", 60),
			PublishGeneratedEvents:  utils.GetEnvBool("REPORT_PUBLISH_GENERATED_EVENTS", true),
			RabbitMQGeneratedQueue:  utils.GetEnvString("REPORT_RABBITMQ_GENERATED_QUEUE", "report_generated_queue"),
			DefaultLanguageFallback: utils.GetEnvString("REPORT_DEFAULT_LANGUAGE", "en"),
		},
	}
}
