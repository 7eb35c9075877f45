package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Database
		Redis          *redis.Client
		Minio          *minio.Client
		RabbitMQ       *amqp091.Connection
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App    App
		Assets Assets
		Report Report
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Minio    Minio
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
	}

	// Assets lists the fetch locations of the fonts and decorative graphics
	// the document pipeline embeds.
	Assets struct {
		BodyFontRegularURL string
		BodyFontBoldURL    string
		RTLFontRegularURL  string
		RTLFontBoldURL     string
		HeaderGraphicURL   string
		FooterGraphicURL   string
		TopBannerURL       string
		BottomBannerURL    string
	}

	Report struct {
		PresignExpiryInSeconds  int
		RateLimitWindowSec      int
		RateLimitMaxQuota       int
		BuildTimeoutInSeconds   int
		PublishGeneratedEvents  bool
		RabbitMQGeneratedQueue  string
		DefaultLanguageFallback string
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
