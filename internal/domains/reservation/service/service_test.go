package service_test

import (
	"context"
	"testing"

	"tourbook/config"
	metricsMocks "tourbook/infras/metrics/mocks"
	otelMocks "tourbook/infras/otel/mocks"
	clientModel "tourbook/internal/domains/client/model"
	clientRepo "tourbook/internal/domains/client/repository"
	excursionModel "tourbook/internal/domains/excursion/model"
	excursionRepo "tourbook/internal/domains/excursion/repository"
	"tourbook/internal/domains/reservation/model"
	"tourbook/internal/domains/reservation/model/dto"
	"tourbook/internal/domains/reservation/repository"
	"tourbook/internal/domains/reservation/service"
	"tourbook/shared/failure"
	"tourbook/shared/notification"
	notificationMocks "tourbook/shared/notification/mocks"
	"tourbook/shared/operation"
	"tourbook/shared/seed"
	"tourbook/shared/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc      service.Reservation
	store    *store.Store[model.Reservation]
	notifier *notificationMocks.MockNotifier
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	notifier := notificationMocks.NewMockNotifier(ctrl)
	ot := otelMocks.NewOtel()

	st := store.NewWithItems(model.StoreName, model.IDOf, model.Fixtures())
	clients := clientRepo.New(store.NewWithItems(clientModel.StoreName, clientModel.IDOf, clientModel.Fixtures()), ot)
	excursions := excursionRepo.New(store.NewWithItems(excursionModel.StoreName, excursionModel.IDOf, excursionModel.Fixtures()), ot)

	svc := service.New(
		repository.New(st, ot),
		clients,
		excursions,
		seed.NewStatic(model.Fixtures()),
		operation.NewRunner(0, notifier, metricsMocks.NewRecorder()),
		&config.Config{},
		ot,
	)

	return fixture{svc: svc, store: st, notifier: notifier}
}

func ids(reservations []model.Reservation) []string {
	out := make([]string, len(reservations))
	for i, r := range reservations {
		out[i] = r.ID
	}

	return out
}

func isVariant(variant string) any {
	return gomock.Cond(func(n notification.Notification) bool { return n.Variant == variant })
}

func TestCreate(t *testing.T) {
	total := 100.0

	tests := []struct {
		name       string
		req        dto.CreateReservationRequest
		want       model.Reservation
		wantErrMsg string
	}{
		{
			name: "resolves names and total from references",
			req: dto.CreateReservationRequest{
				ClienteID: "CLI-003", ExcursionID: "cenotes-de-tulum-1700000200000", Fecha: "2024-08-01", Personas: 2,
			},
			want: model.Reservation{
				ID: "RES-005", ClienteID: "CLI-003", ClienteNombre: "Laura Martínez",
				ExcursionID: "cenotes-de-tulum-1700000200000", ExcursionNombre: "Cenotes de Tulum",
				Fecha: "2024-08-01", Personas: 2, Estado: model.StatusPending, Total: 2400,
			},
		},
		{
			name: "dangling references are accepted",
			req: dto.CreateReservationRequest{
				ClienteID: "CLI-999", ExcursionID: "gone", Fecha: "2024-08-01", Personas: 1, Total: &total, Estado: model.StatusConfirmed,
			},
			want: model.Reservation{
				ID: "RES-005", ClienteID: "CLI-999", ExcursionID: "gone",
				Fecha: "2024-08-01", Personas: 1, Estado: model.StatusConfirmed, Total: 100,
			},
		},
		{
			name:       "missing client is rejected",
			req:        dto.CreateReservationRequest{ExcursionID: "gone", Fecha: "2024-08-01", Personas: 1},
			wantErrMsg: "clienteId is required",
		},
		{
			name:       "malformed date is rejected",
			req:        dto.CreateReservationRequest{ClienteID: "CLI-001", ExcursionID: "gone", Fecha: "01/08/2024", Personas: 1},
			wantErrMsg: "fecha must be a date in the format 2006-01-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)

			if tt.wantErrMsg != "" {
				f.notifier.EXPECT().Notify(gomock.Any(), notification.Failure("Error", tt.wantErrMsg))

				_, err := f.svc.Create(context.Background(), tt.req)

				assert.EqualError(t, err, tt.wantErrMsg)
				assert.Equal(t, 400, failure.GetCode(err))
				assert.Equal(t, len(model.Fixtures()), f.store.Len())

				return
			}

			f.notifier.EXPECT().Notify(gomock.Any(), isVariant(notification.VariantDefault))

			got, err := f.svc.Create(context.Background(), tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, f.store.Snapshot()[f.store.Len()-1])
		})
	}
}

func TestUpdate(t *testing.T) {
	f := setup(t)
	f.notifier.EXPECT().Notify(gomock.Any(), isVariant(notification.VariantDefault))

	status := model.StatusConfirmed
	got, err := f.svc.Update(context.Background(), "RES-002", dto.UpdateReservationRequest{Estado: &status})
	require.NoError(t, err)

	want := model.Fixtures()[1]
	want.Estado = model.StatusConfirmed
	assert.Equal(t, want, got)
	assert.Equal(t, got, f.store.Snapshot()[1])
}

func TestDelete(t *testing.T) {
	f := setup(t)
	f.notifier.EXPECT().Notify(gomock.Any(), isVariant(notification.VariantDefault))
	f.notifier.EXPECT().Notify(gomock.Any(), notification.Failure("Error", "reserva not found"))

	require.NoError(t, f.svc.Delete(context.Background(), "RES-001"))
	assert.Equal(t, []string{"RES-002", "RES-003", "RES-004"}, ids(f.store.Snapshot()))

	err := f.svc.Delete(context.Background(), "RES-001")
	assert.True(t, failure.IsNotFound(err))
	assert.Equal(t, 3, f.store.Len())
}

func TestLookups(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	assert.Equal(t, []string{"RES-001", "RES-003"}, ids(f.svc.ByStatus(ctx, model.StatusConfirmed)))
	assert.Equal(t, []string{"RES-001", "RES-003"}, ids(f.svc.ByClient(ctx, "CLI-001")))
	assert.Equal(t, []string{"RES-001", "RES-004"}, ids(f.svc.ByExcursion(ctx, "tour-chichen-itza-1700000000000")))
	assert.Equal(t, []string{"RES-003"}, ids(f.svc.List(ctx, dto.ReservationFilter{Cliente: "CLI-001", Excursion: "cenotes-de-tulum-1700000200000"})))
	assert.Len(t, f.svc.List(ctx, dto.ReservationFilter{}), 4)
	assert.Empty(t, f.svc.ByClient(ctx, "CLI-404"))
}

func TestLoad(t *testing.T) {
	f := setup(t)

	require.NoError(t, f.svc.Load(context.Background()))
	assert.Equal(t, 4, f.svc.Status(context.Background()).Count)
}
