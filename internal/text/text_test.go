package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "github.com/NicoBar2/scrapingdarwin/pkg/domain-errors"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  José   Pérez  ", "JOSE PEREZ"},
		{"Ñandú", "NANDU"},
		{"línea\tcon\n\nsaltos", "LINEA CON SALTOS"},
		{"Güayaquil ÉCUADOR", "GUAYAQUIL ECUADOR"},
		{"€ hola", "HOLA"},
		{"ya normal", "YA NORMAL"},
		{"日本", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Normalize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	once, err := Normalize("  Árbol   de  Navidad ")
	require.NoError(t, err)
	twice, err := Normalize(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hola, ¿cómo estás?", "HOLA CMO ESTS"},
		{"abc-123_xyz!", "ABC123XYZ"},
		{" a\tb ", " A\tB "},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Clean(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlankInputRejected(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t"} {
		_, err := Normalize(in)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

		_, err = Clean(in)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	}
}
