package dto

import (
	"tourbook/internal/domains/reservation/model"
)

type CreateReservationRequest struct {
	ClienteID       string   `json:"clienteId"       validate:"required"`
	ClienteNombre   string   `json:"clienteNombre"`
	ExcursionID     string   `json:"excursionId"     validate:"required"`
	ExcursionNombre string   `json:"excursionNombre"`
	Fecha           string   `json:"fecha"           validate:"required,datetime=2006-01-02"`
	Personas        int      `json:"personas"        validate:"required,gte=1"`
	Estado          string   `json:"estado"          validate:"omitempty,oneof=pendiente confirmada cancelada"`
	Total           *float64 `json:"total"           validate:"omitempty,gte=0"`
}

// ToModel lays the request over the new-reservation template. Names and total
// left empty are resolved by the caller.
func (c *CreateReservationRequest) ToModel(id string) model.Reservation {
	reservation := model.Reservation{
		ID:              id,
		ClienteID:       c.ClienteID,
		ClienteNombre:   c.ClienteNombre,
		ExcursionID:     c.ExcursionID,
		ExcursionNombre: c.ExcursionNombre,
		Fecha:           c.Fecha,
		Personas:        c.Personas,
		Estado:          model.StatusPending,
	}

	if c.Estado != "" {
		reservation.Estado = c.Estado
	}

	if c.Total != nil {
		reservation.Total = *c.Total
	}

	return reservation
}

type UpdateReservationRequest struct {
	ClienteID       *string  `json:"clienteId"       validate:"omitempty,min=1"`
	ClienteNombre   *string  `json:"clienteNombre"`
	ExcursionID     *string  `json:"excursionId"     validate:"omitempty,min=1"`
	ExcursionNombre *string  `json:"excursionNombre"`
	Fecha           *string  `json:"fecha"           validate:"omitempty,datetime=2006-01-02"`
	Personas        *int     `json:"personas"        validate:"omitempty,gte=1"`
	Estado          *string  `json:"estado"          validate:"omitempty,oneof=pendiente confirmada cancelada"`
	Total           *float64 `json:"total"           validate:"omitempty,gte=0"`
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func (u *UpdateReservationRequest) Apply(r model.Reservation) model.Reservation {
	set(&r.ClienteID, u.ClienteID)
	set(&r.ClienteNombre, u.ClienteNombre)
	set(&r.ExcursionID, u.ExcursionID)
	set(&r.ExcursionNombre, u.ExcursionNombre)
	set(&r.Fecha, u.Fecha)
	set(&r.Personas, u.Personas)
	set(&r.Estado, u.Estado)
	set(&r.Total, u.Total)

	return r
}

type ReservationFilter struct {
	Estado    string
	Cliente   string
	Excursion string
}
