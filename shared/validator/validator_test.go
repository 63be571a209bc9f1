package validator_test

import (
	"strings"
	"testing"

	"tourbook/shared/failure"
	"tourbook/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type excursionRequest struct {
	Nombre  string   `json:"nombre"  validate:"required"`
	Precio  *float64 `json:"precio"  validate:"required,gte=0"`
	Estado  string   `json:"estado"  validate:"omitempty,oneof=activa inactiva"`
	Contact string   `json:"contacto" validate:"omitempty,email"`
}

type imageRequest struct {
	Imagen string `json:"imagen" validate:"required,mimetypes=image/png image/jpeg,maxfilesize=1"`
}

func price(v float64) *float64 { return &v }

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    excursionRequest
		wantMsg string
	}{
		{
			name: "valid",
			data: excursionRequest{Nombre: "Tour Chichén Itzá", Precio: price(1200)},
		},
		{
			name:    "missing name uses json field name",
			data:    excursionRequest{Precio: price(10)},
			wantMsg: "nombre is required",
		},
		{
			name:    "nil price",
			data:    excursionRequest{Nombre: "Tour"},
			wantMsg: "precio is required",
		},
		{
			name:    "negative price",
			data:    excursionRequest{Nombre: "Tour", Precio: price(-1)},
			wantMsg: "precio must be greater than or equal to 0",
		},
		{
			name:    "invalid state",
			data:    excursionRequest{Nombre: "Tour", Precio: price(0), Estado: "borrador"},
			wantMsg: "estado must be one of activa inactiva",
		},
		{
			name:    "invalid email",
			data:    excursionRequest{Nombre: "Tour", Precio: price(0), Contact: "nope"},
			wantMsg: "contacto must be a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			var f *failure.Failure
			require.ErrorAs(t, err, &f)
			assert.Equal(t, 400, f.Code)
			assert.Equal(t, tt.wantMsg, f.Message)
		})
	}
}

func TestDecode(t *testing.T) {
	var req excursionRequest
	require.NoError(t, validator.Decode(strings.NewReader(`{"nombre":"Tour"}`), &req))
	assert.Equal(t, "Tour", req.Nombre)
	assert.Nil(t, req.Precio)

	err := validator.Decode(strings.NewReader(`{"nombre":`), &req)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestImageValidators(t *testing.T) {
	tests := []struct {
		name    string
		imagen  string
		wantErr bool
	}{
		{name: "png", imagen: "data:image/png;base64,iVBORw0KGgo="},
		{name: "gif is rejected", imagen: "data:image/gif;base64,R0lGODlh", wantErr: true},
		{name: "not a data url", imagen: "https://cdn.example.com/a.png", wantErr: true},
		{name: "too large", imagen: "data:image/png;base64," + strings.Repeat("A", 2<<20), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&imageRequest{Imagen: tt.imagen})
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
