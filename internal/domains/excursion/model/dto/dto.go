package dto

import (
	"slices"
	"time"

	"tourbook/internal/domains/excursion/model"
)

type CreateExcursionRequest struct {
	Nombre           string   `json:"nombre"           validate:"required,max=150"`
	DescripcionCorta string   `json:"descripcionCorta" validate:"omitempty,max=300"`
	Descripcion      string   `json:"descripcion"`
	Precio           *float64 `json:"precio"           validate:"required,gte=0"`
	PrecioAnterior   *float64 `json:"precioAnterior"   validate:"omitempty,gte=0"`
	Ubicacion        string   `json:"ubicacion"        validate:"required"`
	Duracion         string   `json:"duracion"         validate:"required"`
	MaxPersonas      *int     `json:"maxPersonas"      validate:"omitempty,gte=1"`
	Destacada        bool     `json:"destacada"`
	Categoria        string   `json:"categoria"`
	Estado           string   `json:"estado"           validate:"omitempty,oneof=activa inactiva"`
	Imagen           string   `json:"imagen"           validate:"omitempty,url"`
	Imagenes         []string `json:"imagenes"         validate:"omitempty,dive,url"`
	Incluye          []string `json:"incluye"`
	NoIncluye        []string `json:"noIncluye"`
	Horarios         []string `json:"horarios"`
	PuntoEncuentro   string   `json:"puntoEncuentro"`
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}

	return slices.Clone(items)
}

// ToModel lays the request over the new-excursion template.
func (c *CreateExcursionRequest) ToModel(createdAt time.Time) model.Excursion {
	excursion := model.Excursion{
		ID:               model.NewID(c.Nombre, createdAt),
		Nombre:           c.Nombre,
		DescripcionCorta: c.DescripcionCorta,
		Descripcion:      c.Descripcion,
		PrecioAnterior:   c.PrecioAnterior,
		Ubicacion:        c.Ubicacion,
		Duracion:         c.Duracion,
		MaxPersonas:      model.DefaultMaxPersonas,
		Destacada:        c.Destacada,
		Categoria:        model.DefaultCategory,
		Estado:           model.StatusActive,
		Imagen:           c.Imagen,
		Imagenes:         orEmpty(c.Imagenes),
		Incluye:          orEmpty(c.Incluye),
		NoIncluye:        orEmpty(c.NoIncluye),
		Horarios:         orEmpty(c.Horarios),
		PuntoEncuentro:   c.PuntoEncuentro,
	}

	if c.Precio != nil {
		excursion.Precio = *c.Precio
	}

	if c.MaxPersonas != nil {
		excursion.MaxPersonas = *c.MaxPersonas
	}

	if c.Categoria != "" {
		excursion.Categoria = c.Categoria
	}

	if c.Estado != "" {
		excursion.Estado = c.Estado
	}

	return excursion
}

// UpdateExcursionRequest carries only the fields to overwrite; nil fields are kept.
type UpdateExcursionRequest struct {
	Nombre           *string  `json:"nombre"           validate:"omitempty,min=1,max=150"`
	DescripcionCorta *string  `json:"descripcionCorta" validate:"omitempty,max=300"`
	Descripcion      *string  `json:"descripcion"`
	Precio           *float64 `json:"precio"           validate:"omitempty,gte=0"`
	PrecioAnterior   *float64 `json:"precioAnterior"   validate:"omitempty,gte=0"`
	Ubicacion        *string  `json:"ubicacion"        validate:"omitempty,min=1"`
	Duracion         *string  `json:"duracion"         validate:"omitempty,min=1"`
	MaxPersonas      *int     `json:"maxPersonas"      validate:"omitempty,gte=1"`
	Destacada        *bool    `json:"destacada"`
	Categoria        *string  `json:"categoria"        validate:"omitempty,min=1"`
	Estado           *string  `json:"estado"           validate:"omitempty,oneof=activa inactiva"`
	Imagen           *string  `json:"imagen"           validate:"omitempty,url"`
	Imagenes         []string `json:"imagenes"         validate:"omitempty,dive,url"`
	Incluye          []string `json:"incluye"`
	NoIncluye        []string `json:"noIncluye"`
	Horarios         []string `json:"horarios"`
	PuntoEncuentro   *string  `json:"puntoEncuentro"`
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func replace(dst *[]string, src []string) {
	if src != nil {
		*dst = slices.Clone(src)
	}
}

// Apply merges the request over e. The id is never changed.
func (u *UpdateExcursionRequest) Apply(e model.Excursion) model.Excursion {
	set(&e.Nombre, u.Nombre)
	set(&e.DescripcionCorta, u.DescripcionCorta)
	set(&e.Descripcion, u.Descripcion)
	set(&e.Precio, u.Precio)
	set(&e.Ubicacion, u.Ubicacion)
	set(&e.Duracion, u.Duracion)
	set(&e.MaxPersonas, u.MaxPersonas)
	set(&e.Destacada, u.Destacada)
	set(&e.Categoria, u.Categoria)
	set(&e.Estado, u.Estado)
	set(&e.Imagen, u.Imagen)
	set(&e.PuntoEncuentro, u.PuntoEncuentro)

	if u.PrecioAnterior != nil {
		previous := *u.PrecioAnterior
		e.PrecioAnterior = &previous
	}

	replace((*[]string)(&e.Imagenes), u.Imagenes)
	replace((*[]string)(&e.Incluye), u.Incluye)
	replace((*[]string)(&e.NoIncluye), u.NoIncluye)
	replace((*[]string)(&e.Horarios), u.Horarios)

	return e
}

// ExcursionFilter narrows the catalog list; empty fields do not filter.
type ExcursionFilter struct {
	Categoria string
	Ubicacion string
}

// UploadImageRequest carries an image as a base64 data URL.
type UploadImageRequest struct {
	Imagen string `json:"imagen" validate:"required,mimetypes=image/jpeg image/png image/webp,maxfilesize=5"`
}
