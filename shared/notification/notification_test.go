package notification_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"tourbook/config"
	"tourbook/infras/kafka"
	kafkaMocks "tourbook/infras/kafka/mocks"
	"tourbook/shared/notification"
	"tourbook/shared/notification/mocks"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConstructors(t *testing.T) {
	ok := notification.Success("Cliente creado", "Ana fue registrada")
	assert.Equal(t, notification.VariantDefault, ok.Variant)

	ko := notification.Failure("Error", "client not found")
	assert.Equal(t, notification.VariantDestructive, ko.Variant)
	assert.Equal(t, "client not found", ko.Description)
}

func TestLogNotifier(t *testing.T) {
	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
	}()

	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	notification.NewLog().Notify(context.Background(), notification.Failure("Error", "excursion not found"))

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "excursion not found")
}

func TestKafkaNotifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := kafkaMocks.NewMockClient(ctrl)
	notifier := notification.NewKafka(client, "tourbook.notifications")

	tests := []struct {
		name      string
		setupMock func()
	}{
		{
			name: "publishes keyed by variant",
			setupMock: func() {
				client.EXPECT().
					SendMessages(gomock.Any(), "tourbook.notifications", gomock.Cond(func(x any) bool {
						msg, ok := x.(kafka.Message)

						return ok && msg.Key == notification.VariantDefault
					})).
					Return(nil)
			},
		},
		{
			name: "publish errors are swallowed",
			setupMock: func() {
				client.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("broker down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			assert.NotPanics(t, func() {
				notifier.Notify(context.Background(), notification.Success("Reserva creada", "RES-004"))
			})
		})
	}
}

func TestMulti(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := mocks.NewMockNotifier(ctrl)
	second := mocks.NewMockNotifier(ctrl)
	n := notification.Success("Excursión actualizada", "Cañón del Sumidero")

	gomock.InOrder(
		first.EXPECT().Notify(gomock.Any(), n),
		second.EXPECT().Notify(gomock.Any(), n),
	)

	notification.Multi(first, second).Notify(context.Background(), n)
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}
	cfg.Kafka.Topic = "tourbook.notifications"

	t.Run("kafka disabled uses the log only", func(t *testing.T) {
		client := kafkaMocks.NewMockClient(ctrl)

		notification.New(cfg, client).Notify(context.Background(), notification.Success("ok", "ok"))
	})

	t.Run("kafka enabled also publishes", func(t *testing.T) {
		enabled := *cfg
		enabled.Kafka.Enable = true

		client := kafkaMocks.NewMockClient(ctrl)
		client.EXPECT().SendMessages(gomock.Any(), "tourbook.notifications", gomock.Any()).Return(nil)

		notification.New(&enabled, client).Notify(context.Background(), notification.Success("ok", "ok"))
	})
}
