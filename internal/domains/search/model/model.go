package model

import "fmt"

const (
	TypeExcursion   = "excursion"
	TypeClient      = "cliente"
	TypeReservation = "reserva"
	TypePage        = "pagina"
)

// DefaultMaxPerType caps the matches of each entity type.
const DefaultMaxPerType = 5

type Result struct {
	ID          string `json:"id"`
	Type        string `json:"tipo"`
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
	URL         string `json:"url"`
}

// ResultID prefixes id with its type so results of different types never collide.
func ResultID(kind, id string) string {
	return fmt.Sprintf("%s-%s", kind, id)
}

type Page struct {
	Slug        string
	Title       string
	Description string
	URL         string
}

// Pages is the admin page directory searched alongside the entities.
func Pages() []Page {
	return []Page{
		{Slug: "dashboard", Title: "Dashboard", Description: "Resumen general del negocio", URL: "/admin"},
		{Slug: "excursiones", Title: "Excursiones", Description: "Gestionar catálogo de excursiones", URL: "/admin/excursiones"},
		{Slug: "clientes", Title: "Clientes", Description: "Gestionar clientes y su historial", URL: "/admin/clientes"},
		{Slug: "reservas", Title: "Reservas", Description: "Ver y administrar reservas", URL: "/admin/reservas"},
		{Slug: "estadisticas", Title: "Estadísticas", Description: "Ingresos y excursiones más vendidas", URL: "/admin/estadisticas"},
		{Slug: "configuracion", Title: "Configuración", Description: "Preferencias de la cuenta y del sitio", URL: "/admin/configuracion"},
	}
}
