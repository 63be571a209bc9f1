package dto_test

import (
	"testing"
	"time"

	"tourbook/internal/domains/excursion/model"
	"tourbook/internal/domains/excursion/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestCreateExcursionRequest_ToModel(t *testing.T) {
	price := 950.0
	at := time.UnixMilli(1718000000000)

	req := dto.CreateExcursionRequest{
		Nombre:    "Cenote Azul",
		Precio:    &price,
		Ubicacion: "Bacalar",
		Duracion:  "4 horas",
	}
	got := req.ToModel(at)

	assert.Equal(t, "cenote-azul-1718000000000", got.ID)
	assert.Equal(t, 950.0, got.Precio)
	assert.Equal(t, model.DefaultMaxPersonas, got.MaxPersonas)
	assert.Equal(t, model.DefaultCategory, got.Categoria)
	assert.Equal(t, model.StatusActive, got.Estado)
	assert.False(t, got.Destacada)
	assert.NotNil(t, got.Imagenes)
	assert.NotNil(t, got.Horarios)
	assert.Nil(t, got.PrecioAnterior)

	people := 4
	req.MaxPersonas = &people
	req.Categoria = "Naturaleza"
	req.Estado = model.StatusInactive
	got = req.ToModel(at)

	assert.Equal(t, 4, got.MaxPersonas)
	assert.Equal(t, "Naturaleza", got.Categoria)
	assert.Equal(t, model.StatusInactive, got.Estado)
}

func TestUpdateExcursionRequest_Apply(t *testing.T) {
	original := model.Fixtures()[0]
	price := 1500.0
	featured := false

	req := dto.UpdateExcursionRequest{Precio: &price, Destacada: &featured, Horarios: []string{"08:00", "10:00"}}
	got := req.Apply(original)

	assert.Equal(t, original.ID, got.ID)
	assert.Equal(t, original.Nombre, got.Nombre)
	assert.Equal(t, original.Imagenes, got.Imagenes)
	assert.Equal(t, 1500.0, got.Precio)
	assert.False(t, got.Destacada)
	assert.Equal(t, []string{"08:00", "10:00"}, []string(got.Horarios))
	assert.Equal(t, []string{"07:00"}, []string(original.Horarios))

	assert.Equal(t, original, (&dto.UpdateExcursionRequest{}).Apply(original))
}
