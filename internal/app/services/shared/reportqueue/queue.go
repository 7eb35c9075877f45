package reportqueue

import (
	"context"
	"intake-report-service/internal/app/contracts"
	"intake-report-service/internal/pkg/constvars"
	"intake-report-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ReportGeneratedEvent is the payload published after a document build
// completes. Consumers use it for audit trails and notifications.
type ReportGeneratedEvent struct {
	ObjectName  string `json:"object_name"`
	FileName    string `json:"file_name"`
	Language    string `json:"language"`
	GeneratedAt string `json:"generated_at"`
}

type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
}

// NewService opens a channel and declares the durable queue the generated
// events are published to.
func NewService(conn *amqp.Connection, log *zap.Logger, queueName string) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
	}, nil
}

var _ contracts.ReportEventPublisher = (*Service)(nil)

func (s *Service) PublishReportGenerated(ctx context.Context, objectName, fileName, language string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	event := ReportGeneratedEvent{
		ObjectName:  objectName,
		FileName:    fileName,
		Language:    language,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.ch.PublishWithContext(ctx,
		"",          // default exchange
		s.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err, s.queueName)
	}

	s.log.Info("report generated event published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("object_name", objectName),
	)
	return nil
}
