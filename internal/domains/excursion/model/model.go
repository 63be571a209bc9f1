package model

import (
	"fmt"
	"time"

	"tourbook/shared"
	"tourbook/shared/lookup"

	"github.com/lib/pq"
)

const (
	TableName  = "excursiones"
	EntityName = "excursion"
	StoreName  = "excursiones"
	ImageDir   = "excursiones"
)

const (
	StatusActive   = "activa"
	StatusInactive = "inactiva"

	DefaultCategory    = "General"
	DefaultMaxPersonas = 10
)

type Excursion struct {
	ID               string         `db:"id"                json:"id"`
	Nombre           string         `db:"nombre"            json:"nombre"`
	DescripcionCorta string         `db:"descripcion_corta" json:"descripcionCorta"`
	Descripcion      string         `db:"descripcion"       json:"descripcion"`
	Precio           float64        `db:"precio"            json:"precio"`
	PrecioAnterior   *float64       `db:"precio_anterior"   json:"precioAnterior,omitempty"`
	Ubicacion        string         `db:"ubicacion"         json:"ubicacion"`
	Duracion         string         `db:"duracion"          json:"duracion"`
	MaxPersonas      int            `db:"max_personas"      json:"maxPersonas"`
	Destacada        bool           `db:"destacada"         json:"destacada"`
	Categoria        string         `db:"categoria"         json:"categoria"`
	Estado           string         `db:"estado"            json:"estado"`
	Imagen           string         `db:"imagen"            json:"imagen"`
	Imagenes         pq.StringArray `db:"imagenes"          json:"imagenes"`
	Incluye          pq.StringArray `db:"incluye"           json:"incluye"`
	NoIncluye        pq.StringArray `db:"no_incluye"        json:"noIncluye"`
	Horarios         pq.StringArray `db:"horarios"          json:"horarios"`
	PuntoEncuentro   string         `db:"punto_encuentro"   json:"puntoEncuentro"`
}

func IDOf(e Excursion) string {
	return e.ID
}

// NewID derives the identifier from the name and the creation instant.
// Two excursions with the same name created in the same millisecond collide.
func NewID(name string, at time.Time) string {
	return fmt.Sprintf("%s-%d", shared.Slugify(name), at.UnixMilli())
}

func ByCategory(category string) lookup.Predicate[Excursion] {
	return func(e Excursion) bool {
		return lookup.EqualFold(category, e.Categoria)
	}
}

func ByLocation(location string) lookup.Predicate[Excursion] {
	return func(e Excursion) bool {
		return lookup.EqualFold(location, e.Ubicacion)
	}
}

func Featured() lookup.Predicate[Excursion] {
	return func(e Excursion) bool {
		return e.Destacada
	}
}

func Active() lookup.Predicate[Excursion] {
	return func(e Excursion) bool {
		return e.Estado == StatusActive
	}
}

func Category(e Excursion) string {
	return e.Categoria
}

func Location(e Excursion) string {
	return e.Ubicacion
}
