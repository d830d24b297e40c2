package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalString_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		body string
		want OptionalString
	}{
		{name: "absent", body: `{}`, want: OptionalString{}},
		{name: "string", body: `{"nombre":"Caso A"}`, want: String("Caso A")},
		{name: "empty string", body: `{"nombre":""}`, want: String("")},
		{name: "null", body: `{"nombre":null}`, want: OptionalString{Present: true}},
		{name: "number", body: `{"nombre":42}`, want: OptionalString{Present: true}},
		{name: "object", body: `{"nombre":{"a":1}}`, want: OptionalString{Present: true}},
		{name: "padded null", body: `{"nombre": null }`, want: OptionalString{Present: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in ExpedienteInput
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))
			assert.Equal(t, tt.want, in.Nombre)
			assert.False(t, in.Descripcion.Present)
		})
	}
}

func TestEstado_Valid(t *testing.T) {
	for _, e := range Estados {
		assert.True(t, e.Valid(), e)
	}
	assert.False(t, Estado("Abierto").Valid())
	assert.False(t, Estado("activo").Valid())
	assert.False(t, Estado("").Valid())
}
