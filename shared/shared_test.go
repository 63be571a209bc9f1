package shared_test

import (
	"testing"

	"tourbook/shared"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "true", input: "true", expected: boolPtr(true)},
		{name: "false", input: "false", expected: boolPtr(false)},
		{name: "1", input: "1", expected: boolPtr(true)},
		{name: "0", input: "0", expected: boolPtr(false)},
		{name: "TRUE", input: "TRUE", expected: boolPtr(true)},
		{name: "invalid string returns nil", input: "si", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "Tour Chichén Itzá", expected: "tour-chichen-itza"},
		{input: "  Nado con Tiburón Ballena!  ", expected: "nado-con-tiburon-ballena"},
		{input: "Cenotes & Más", expected: "cenotes-mas"},
		{input: "Isla Mujeres 2x1", expected: "isla-mujeres-2x1"},
		{input: "Ñandú", expected: "nandu"},
		{input: "---", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.Slugify(tt.input))
		})
	}
}
