package model

import (
	"time"

	"tourbook/shared/constant"
	"tourbook/shared/lookup"
	"tourbook/shared/timezone"

	"github.com/lib/pq"
)

const (
	TableName  = "clientes"
	EntityName = "cliente"
	StoreName  = "clientes"
	IDPrefix   = "CLI"
)

const (
	StatusNew      = "nuevo"
	StatusActive   = "activo"
	StatusInactive = "inactivo"
	StatusBlocked  = "bloqueado"
)

type Client struct {
	ID                   string         `db:"id"                    json:"id"`
	Nombre               string         `db:"nombre"                json:"nombre"`
	Email                string         `db:"email"                 json:"email"`
	Telefono             string         `db:"telefono"              json:"telefono"`
	FechaRegistro        string         `db:"fecha_registro"        json:"fechaRegistro"`
	Reservas             int            `db:"reservas"              json:"reservas"`
	UltimaReserva        *string        `db:"ultima_reserva"        json:"ultimaReserva"`
	Estado               string         `db:"estado"                json:"estado"`
	VIP                  bool           `db:"vip"                   json:"vip"`
	Direccion            string         `db:"direccion"             json:"direccion,omitempty"`
	Notas                string         `db:"notas"                 json:"notas,omitempty"`
	Preferencias         string         `db:"preferencias"          json:"preferencias,omitempty"`
	CategoriasPreferidas pq.StringArray `db:"categorias_preferidas" json:"categoriasPreferidas,omitempty"`
}

func IDOf(c Client) string {
	return c.ID
}

// RegisteredAt parses FechaRegistro. A malformed date yields the zero time.
func (c Client) RegisteredAt() time.Time {
	t, err := timezone.Parse(constant.DateOnlyFormat, c.FechaRegistro)
	if err != nil {
		return time.Time{}
	}

	return t
}

func ByStatus(status string) lookup.Predicate[Client] {
	return func(c Client) bool {
		return c.Estado == status
	}
}

func Active() lookup.Predicate[Client] {
	return ByStatus(StatusActive)
}

// RegisteredWithin matches clients registered in the last days days before now.
func RegisteredWithin(days int, now time.Time) lookup.Predicate[Client] {
	return func(c Client) bool {
		return timezone.WithinDays(c.RegisteredAt(), now, days)
	}
}

// Recurring matches clients with more than one reservation.
func Recurring() lookup.Predicate[Client] {
	return func(c Client) bool {
		return c.Reservas > 1
	}
}

func VIP() lookup.Predicate[Client] {
	return func(c Client) bool {
		return c.VIP
	}
}
