package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tourbook/config"
	metricsMocks "tourbook/infras/metrics/mocks"
	otelMocks "tourbook/infras/otel/mocks"
	"tourbook/internal/domains/client/model"
	"tourbook/internal/domains/client/model/dto"
	"tourbook/internal/domains/client/repository"
	"tourbook/internal/domains/client/service"
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

func seedClients() []model.Client {
	return []model.Client{
		{ID: "CLI-001", Nombre: "María García", Email: "maria@example.com", Estado: model.StatusActive, Reservas: 3, VIP: true},
		{ID: "CLI-002", Nombre: "Carlos Rodríguez", Email: "carlos@example.com", Estado: model.StatusActive, Reservas: 1},
		{ID: "CLI-003", Nombre: "Laura Martínez", Email: "laura@example.com", Estado: model.StatusInactive, Reservas: 2},
	}
}

type fixture struct {
	svc      service.Client
	store    *store.Store[model.Client]
	notifier *notificationMocks.MockNotifier
}

func setup(t *testing.T, seeder store.Seeder[model.Client]) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	notifier := notificationMocks.NewMockNotifier(ctrl)
	st := store.NewWithItems(model.StoreName, model.IDOf, seedClients())
	ot := otelMocks.NewOtel()

	svc := service.New(
		repository.New(st, ot),
		seeder,
		operation.NewRunner(0, notifier, metricsMocks.NewRecorder()),
		&config.Config{},
		ot,
	)

	return fixture{svc: svc, store: st, notifier: notifier}
}

func ids(clients []model.Client) []string {
	out := make([]string, len(clients))
	for i, c := range clients {
		out[i] = c.ID
	}

	return out
}

func isVariant(variant string) any {
	return gomock.Cond(func(n notification.Notification) bool { return n.Variant == variant })
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.CreateClientRequest
		setupMock  func(f fixture)
		wantID     string
		wantErrMsg string
		wantLen    int
	}{
		{
			name: "assigns next sequential id",
			req:  dto.CreateClientRequest{Nombre: "Ana"},
			setupMock: func(f fixture) {
				f.notifier.EXPECT().Notify(gomock.Any(), isVariant(notification.VariantDefault))
			},
			wantID:  "CLI-004",
			wantLen: 4,
		},
		{
			name: "missing name is rejected",
			req:  dto.CreateClientRequest{Email: "ana@example.com"},
			setupMock: func(f fixture) {
				f.notifier.EXPECT().Notify(gomock.Any(), notification.Failure("Error", "nombre is required"))
			},
			wantErrMsg: "nombre is required",
			wantLen:    3,
		},
		{
			name: "invalid status is rejected",
			req:  dto.CreateClientRequest{Nombre: "Ana", Estado: "vip"},
			setupMock: func(f fixture) {
				f.notifier.EXPECT().Notify(gomock.Any(), isVariant(notification.VariantDestructive))
			},
			wantErrMsg: "estado must be one of nuevo activo inactivo bloqueado",
			wantLen:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t, seed.NewStatic(seedClients()))
			tt.setupMock(f)

			got, err := f.svc.Create(context.Background(), tt.req)

			assert.Equal(t, tt.wantLen, f.store.Len())

			if tt.wantErrMsg != "" {
				assert.EqualError(t, err, tt.wantErrMsg)
				assert.Equal(t, 400, failure.GetCode(err))
				assert.Equal(t, tt.wantErrMsg, f.store.Error())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
			assert.Equal(t, model.StatusNew, got.Estado)

			found, ok := f.svc.Get(context.Background(), tt.wantID)
			assert.True(t, ok)
			assert.Equal(t, got, found)
			assert.Equal(t, tt.wantID, f.store.Snapshot()[f.store.Len()-1].ID)
		})
	}
}

func TestCreate_AfterDeleteDoesNotReuseID(t *testing.T) {
	f := setup(t, seed.NewStatic(seedClients()))
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(2)

	require.NoError(t, f.svc.Delete(context.Background(), "CLI-002"))

	got, err := f.svc.Create(context.Background(), dto.CreateClientRequest{Nombre: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "CLI-004", got.ID)
}

func TestUpdate(t *testing.T) {
	f := setup(t, seed.NewStatic(seedClients()))
	f.notifier.EXPECT().Notify(gomock.Any(), isVariant(notification.VariantDefault))

	email := "carlos.r@example.com"
	got, err := f.svc.Update(context.Background(), "CLI-002", dto.UpdateClientRequest{Email: &email})
	require.NoError(t, err)

	assert.Equal(t, "carlos.r@example.com", got.Email)
	assert.Equal(t, "Carlos Rodríguez", got.Nombre)
	assert.Equal(t, model.StatusActive, got.Estado)
	assert.Equal(t, []string{"CLI-001", "CLI-002", "CLI-003"}, ids(f.store.Snapshot()))
	assert.Equal(t, got, f.store.Snapshot()[1])
}

func TestUpdate_NotFound(t *testing.T) {
	f := setup(t, seed.NewStatic(seedClients()))
	f.notifier.EXPECT().Notify(gomock.Any(), notification.Failure("Error", "cliente not found"))

	name := "Nadie"
	_, err := f.svc.Update(context.Background(), "CLI-999", dto.UpdateClientRequest{Nombre: &name})

	assert.True(t, failure.IsNotFound(err))
	assert.Equal(t, seedClients(), f.store.Snapshot())
	assert.Equal(t, "cliente not found", f.store.Error())
}

func TestDelete(t *testing.T) {
	f := setup(t, seed.NewStatic(seedClients()))
	f.notifier.EXPECT().Notify(gomock.Any(), isVariant(notification.VariantDefault))

	require.NoError(t, f.svc.Delete(context.Background(), "CLI-002"))

	_, ok := f.svc.Get(context.Background(), "CLI-002")
	assert.False(t, ok)
	assert.Equal(t, []string{"CLI-001", "CLI-003"}, ids(f.store.Snapshot()))
}

func TestDelete_NotFound(t *testing.T) {
	f := setup(t, seed.NewStatic(seedClients()))
	f.notifier.EXPECT().Notify(gomock.Any(), isVariant(notification.VariantDestructive))

	err := f.svc.Delete(context.Background(), "CLI-404")

	assert.True(t, failure.IsNotFound(err))
	assert.Equal(t, 3, f.store.Len())
}

func TestGet_Idempotent(t *testing.T) {
	f := setup(t, seed.NewStatic(seedClients()))

	first, ok1 := f.svc.Get(context.Background(), "CLI-001")
	second, ok2 := f.svc.Get(context.Background(), "CLI-001")

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, first, second)
	assert.False(t, f.store.Loading())
	assert.Empty(t, f.store.Error())
}

func TestLookups(t *testing.T) {
	f := setup(t, seed.NewStatic(seedClients()))
	ctx := context.Background()
	yes := true

	assert.Equal(t, []string{"CLI-001", "CLI-002"}, ids(f.svc.Active(ctx)))
	assert.Equal(t, []string{"CLI-003"}, ids(f.svc.ByStatus(ctx, model.StatusInactive)))
	assert.Equal(t, []string{"CLI-001", "CLI-003"}, ids(f.svc.Recurring(ctx)))
	assert.Equal(t, []string{"CLI-001"}, ids(f.svc.VIP(ctx)))
	assert.Empty(t, f.svc.Recent(ctx))
	assert.NotNil(t, f.svc.Recent(ctx))

	assert.Equal(t, []string{"CLI-001"}, ids(f.svc.List(ctx, dto.ClientFilter{Estado: model.StatusActive, Recurrentes: &yes})))
	assert.Len(t, f.svc.List(ctx, dto.ClientFilter{}), 3)
}

func TestLoad(t *testing.T) {
	f := setup(t, seed.NewStatic(model.Fixtures()))

	require.NoError(t, f.svc.Load(context.Background()))

	status := f.svc.Status(context.Background())
	assert.Equal(t, len(model.Fixtures()), status.Count)
	assert.False(t, status.Loading)
	assert.Empty(t, status.Error)
}

type failingSeeder struct{}

func (failingSeeder) Seed(context.Context) ([]model.Client, error) {
	return nil, errors.New("seed database unreachable")
}

func TestLoad_Failure(t *testing.T) {
	f := setup(t, failingSeeder{})

	err := f.svc.Load(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 0, f.store.Len())
	assert.Equal(t, "seed database unreachable", f.svc.Status(context.Background()).Error)
	assert.False(t, f.store.Loading())
}

type gatedSeeder struct {
	release chan struct{}
}

func (g gatedSeeder) Seed(context.Context) ([]model.Client, error) {
	<-g.release

	return model.Fixtures(), nil
}

func TestCreate_WaitsForLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := notificationMocks.NewMockNotifier(ctrl)
	st := store.New(model.StoreName, model.IDOf)
	ot := otelMocks.NewOtel()
	seeder := gatedSeeder{release: make(chan struct{})}

	svc := service.New(
		repository.New(st, ot),
		seeder,
		operation.NewRunner(0, notifier, metricsMocks.NewRecorder()),
		&config.Config{},
		ot,
	)

	notifier.EXPECT().Notify(gomock.Any(), isVariant(notification.VariantDefault))

	loaded := make(chan error, 1)
	go func() { loaded <- svc.Load(context.Background()) }()

	require.Eventually(t, st.Loading, time.Second, time.Millisecond)

	type result struct {
		client model.Client
		err    error
	}

	created := make(chan result, 1)
	go func() {
		c, err := svc.Create(context.Background(), dto.CreateClientRequest{Nombre: "Ana"})
		created <- result{client: c, err: err}
	}()

	select {
	case <-created:
		t.Fatal("create finished while the store was still loading")
	case <-time.After(20 * time.Millisecond):
	}

	close(seeder.release)
	require.NoError(t, <-loaded)

	res := <-created
	require.NoError(t, res.err)
	assert.Equal(t, "CLI-006", res.client.ID)

	got, ok := svc.Get(context.Background(), "CLI-006")
	require.True(t, ok)
	assert.Equal(t, "Ana", got.Nombre)
	assert.Equal(t, len(model.Fixtures())+1, st.Len())
}
