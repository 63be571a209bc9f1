package dto

import (
	"slices"

	"tourbook/internal/domains/client/model"
	"tourbook/shared/constant"
	"tourbook/shared/timezone"
)

type CreateClientRequest struct {
	Nombre               string   `json:"nombre"               validate:"required,max=120"`
	Email                string   `json:"email"                validate:"omitempty,email"`
	Telefono             string   `json:"telefono"             validate:"omitempty,max=30"`
	FechaRegistro        string   `json:"fechaRegistro"        validate:"omitempty,datetime=2006-01-02"`
	Estado               string   `json:"estado"               validate:"omitempty,oneof=nuevo activo inactivo bloqueado"`
	VIP                  bool     `json:"vip"`
	Direccion            string   `json:"direccion"`
	Notas                string   `json:"notas"`
	Preferencias         string   `json:"preferencias"`
	CategoriasPreferidas []string `json:"categoriasPreferidas"`
}

// ToModel lays the request over the new-client template.
func (c *CreateClientRequest) ToModel(id string) model.Client {
	client := model.Client{
		ID:                   id,
		Nombre:               c.Nombre,
		Email:                c.Email,
		Telefono:             c.Telefono,
		FechaRegistro:        timezone.Format(timezone.Now(), constant.DateOnlyFormat),
		Estado:               model.StatusNew,
		VIP:                  c.VIP,
		Direccion:            c.Direccion,
		Notas:                c.Notas,
		Preferencias:         c.Preferencias,
		CategoriasPreferidas: slices.Clone(c.CategoriasPreferidas),
	}

	if c.FechaRegistro != "" {
		client.FechaRegistro = c.FechaRegistro
	}

	if c.Estado != "" {
		client.Estado = c.Estado
	}

	return client
}

// UpdateClientRequest carries only the fields to overwrite; nil fields are kept.
type UpdateClientRequest struct {
	Nombre               *string  `json:"nombre"               validate:"omitempty,min=1,max=120"`
	Email                *string  `json:"email"                validate:"omitempty,email"`
	Telefono             *string  `json:"telefono"             validate:"omitempty,max=30"`
	Reservas             *int     `json:"reservas"             validate:"omitempty,gte=0"`
	UltimaReserva        *string  `json:"ultimaReserva"        validate:"omitempty,datetime=2006-01-02"`
	Estado               *string  `json:"estado"               validate:"omitempty,oneof=nuevo activo inactivo bloqueado"`
	VIP                  *bool    `json:"vip"`
	Direccion            *string  `json:"direccion"`
	Notas                *string  `json:"notas"`
	Preferencias         *string  `json:"preferencias"`
	CategoriasPreferidas []string `json:"categoriasPreferidas"`
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Apply merges the request over c. The id is never changed. fechaRegistro is
// not patchable, and ultimaReserva can be moved to another date but never
// cleared back to null: a null in the request means "keep".
func (u *UpdateClientRequest) Apply(c model.Client) model.Client {
	set(&c.Nombre, u.Nombre)
	set(&c.Email, u.Email)
	set(&c.Telefono, u.Telefono)
	set(&c.Reservas, u.Reservas)
	set(&c.Estado, u.Estado)
	set(&c.VIP, u.VIP)
	set(&c.Direccion, u.Direccion)
	set(&c.Notas, u.Notas)
	set(&c.Preferencias, u.Preferencias)

	if u.UltimaReserva != nil {
		last := *u.UltimaReserva
		c.UltimaReserva = &last
	}

	if u.CategoriasPreferidas != nil {
		c.CategoriasPreferidas = slices.Clone(u.CategoriasPreferidas)
	}

	return c
}

// ClientFilter selects the client lookup; empty fields do not filter.
type ClientFilter struct {
	Estado      string
	Recientes   *bool
	Recurrentes *bool
	VIP         *bool
}
