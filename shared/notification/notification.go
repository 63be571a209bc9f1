package notification

//go:generate go run go.uber.org/mock/mockgen -source=./notification.go -destination=./mocks/notification_mock.go -package=mocks

import (
	"context"

	"tourbook/config"
	"tourbook/infras/kafka"
	"tourbook/shared/timezone"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Notification is the transient feedback shown to the admin after an operation.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

func Success(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: VariantDefault}
}

func Failure(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: VariantDestructive}
}

type logNotifier struct{}

// NewLog writes notifications to the application log.
func NewLog() Notifier {
	return logNotifier{}
}

func (logNotifier) Notify(_ context.Context, n Notification) {
	event := log.Info()
	if n.Variant == VariantDestructive {
		event = log.Warn()
	}

	event.Str("title", n.Title).Str("variant", n.Variant).Msg(n.Description)
}

type event struct {
	Notification
	At string `json:"at"`
}

type kafkaNotifier struct {
	client kafka.Client
	topic  string
}

// NewKafka publishes every notification as a message keyed by its variant.
func NewKafka(client kafka.Client, topic string) Notifier {
	return &kafkaNotifier{client: client, topic: topic}
}

func (k *kafkaNotifier) Notify(ctx context.Context, n Notification) {
	msg := kafka.Message{
		Key:   n.Variant,
		Value: event{Notification: n, At: timezone.Now().Format(zerolog.TimeFieldFormat)},
	}

	if err := k.client.SendMessages(context.WithoutCancel(ctx), k.topic, msg); err != nil {
		log.Error().Err(err).Str("topic", k.topic).Msg("failed to publish notification")
	}
}

type multiNotifier []Notifier

func (m multiNotifier) Notify(ctx context.Context, n Notification) {
	for _, notifier := range m {
		notifier.Notify(ctx, n)
	}
}

// Multi fans a notification out to every notifier in order.
func Multi(notifiers ...Notifier) Notifier {
	return multiNotifier(notifiers)
}

// New builds the notifier used by the services: always the log, plus Kafka when enabled.
func New(cfg *config.Config, client kafka.Client) Notifier {
	if !cfg.Kafka.Enable || client == nil {
		return NewLog()
	}

	return Multi(NewLog(), NewKafka(client, cfg.Kafka.Topic))
}
