package model

import (
	"tourbook/shared/lookup"
)

const (
	TableName  = "reservas"
	EntityName = "reserva"
	StoreName  = "reservas"
	IDPrefix   = "RES"
)

const (
	StatusPending   = "pendiente"
	StatusConfirmed = "confirmada"
	StatusCancelled = "cancelada"
)

// Reservation references its client and excursion by id only. The names are
// copies taken at creation time and are not kept in sync.
type Reservation struct {
	ID              string  `db:"id"               json:"id"`
	ClienteID       string  `db:"cliente_id"       json:"clienteId"`
	ClienteNombre   string  `db:"cliente_nombre"   json:"clienteNombre"`
	ExcursionID     string  `db:"excursion_id"     json:"excursionId"`
	ExcursionNombre string  `db:"excursion_nombre" json:"excursionNombre"`
	Fecha           string  `db:"fecha"            json:"fecha"`
	Personas        int     `db:"personas"         json:"personas"`
	Estado          string  `db:"estado"           json:"estado"`
	Total           float64 `db:"total"            json:"total"`
}

func IDOf(r Reservation) string {
	return r.ID
}

func ByStatus(status string) lookup.Predicate[Reservation] {
	return func(r Reservation) bool {
		return r.Estado == status
	}
}

func ByClient(clientID string) lookup.Predicate[Reservation] {
	return func(r Reservation) bool {
		return r.ClienteID == clientID
	}
}

func ByExcursion(excursionID string) lookup.Predicate[Reservation] {
	return func(r Reservation) bool {
		return r.ExcursionID == excursionID
	}
}

func Confirmed() lookup.Predicate[Reservation] {
	return ByStatus(StatusConfirmed)
}
