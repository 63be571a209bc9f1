package service_test

import (
	"context"
	"fmt"
	"testing"

	"tourbook/config"
	otelMocks "tourbook/infras/otel/mocks"
	clientModel "tourbook/internal/domains/client/model"
	clientRepo "tourbook/internal/domains/client/repository"
	excursionModel "tourbook/internal/domains/excursion/model"
	excursionRepo "tourbook/internal/domains/excursion/repository"
	reservationModel "tourbook/internal/domains/reservation/model"
	reservationRepo "tourbook/internal/domains/reservation/repository"
	"tourbook/internal/domains/search/model"
	"tourbook/internal/domains/search/service"
	"tourbook/shared/store"

	"github.com/stretchr/testify/assert"
)

func newSearch(
	excursions []excursionModel.Excursion,
	clients []clientModel.Client,
	reservations []reservationModel.Reservation,
) service.Search {
	ot := otelMocks.NewOtel()

	return service.New(
		excursionRepo.New(store.NewWithItems(excursionModel.StoreName, excursionModel.IDOf, excursions), ot),
		clientRepo.New(store.NewWithItems(clientModel.StoreName, clientModel.IDOf, clients), ot),
		reservationRepo.New(store.NewWithItems(reservationModel.StoreName, reservationModel.IDOf, reservations), ot),
		&config.Config{},
		ot,
	)
}

func resultIDs(results []model.Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.ID
	}

	return out
}

func TestSearch_Fixtures(t *testing.T) {
	svc := newSearch(excursionModel.Fixtures(), clientModel.Fixtures(), reservationModel.Fixtures())

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "blank query",
			query: "   ",
			want:  []string{},
		},
		{
			name:  "client name also matches reservations",
			query: "  GARCÍA ",
			want:  []string{"cliente-CLI-001", "reserva-RES-001", "reserva-RES-003"},
		},
		{
			name:  "reservation id",
			query: "res-002",
			want:  []string{"reserva-RES-002"},
		},
		{
			name:  "excursion short description",
			query: "maravilla",
			want:  []string{"excursion-tour-chichen-itza-1700000000000"},
		},
		{
			name:  "page directory",
			query: "estad",
			want:  []string{"pagina-estadisticas"},
		},
		{
			name:  "no match",
			query: "zzz",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resultIDs(svc.Search(context.Background(), tt.query)))
		})
	}
}

func TestSearch_GroupOrder(t *testing.T) {
	svc := newSearch(
		[]excursionModel.Excursion{{ID: "mar-azul-1", Nombre: "Mar Azul"}},
		[]clientModel.Client{{ID: "CLI-001", Nombre: "Marta Ruiz"}},
		[]reservationModel.Reservation{{ID: "RES-001", ClienteNombre: "Marta Ruiz"}},
	)

	got := svc.Search(context.Background(), "mar")

	assert.Equal(t, []string{"excursion-mar-azul-1", "cliente-CLI-001", "reserva-RES-001"}, resultIDs(got))
	assert.Equal(t, model.TypeExcursion, got[0].Type)
	assert.Equal(t, "/admin/clientes/CLI-001", got[1].URL)
}

func TestSearch_CapsEachType(t *testing.T) {
	excursions := []excursionModel.Excursion{}
	clients := []clientModel.Client{}
	reservations := []reservationModel.Reservation{}

	for i := 1; i <= 7; i++ {
		excursions = append(excursions, excursionModel.Excursion{ID: fmt.Sprintf("tour-%d", i), Nombre: fmt.Sprintf("Tour Ana %d", i)})
		clients = append(clients, clientModel.Client{ID: fmt.Sprintf("CLI-%03d", i), Nombre: fmt.Sprintf("Ana %d", i)})
		reservations = append(reservations, reservationModel.Reservation{ID: fmt.Sprintf("RES-%03d", i), ClienteNombre: "Ana"})
	}

	svc := newSearch(excursions, clients, reservations)

	got := resultIDs(svc.Search(context.Background(), "ana"))

	assert.Equal(t, []string{
		"excursion-tour-1", "excursion-tour-2", "excursion-tour-3", "excursion-tour-4", "excursion-tour-5",
		"cliente-CLI-001", "cliente-CLI-002", "cliente-CLI-003", "cliente-CLI-004", "cliente-CLI-005",
		"reserva-RES-001", "reserva-RES-002", "reserva-RES-003", "reserva-RES-004", "reserva-RES-005",
	}, got)
}
