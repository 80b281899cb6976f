package txt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/resto-crm/pkg/txt"
)

func TestFold_QuitaAcentosYMinusculas(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Jalapeño Ahumado", "jalapeno ahumado"},
		{"Café con Azúcar", "cafe con azucar"},
		{"ÑOQUIS", "noquis"},
		{"Crème brûlée", "creme brulee"},
		{"sin acentos", "sin acentos"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, txt.Fold(tc.in), "Fold(%q)", tc.in)
	}
}

func TestMatches_IgnoraMayusculasYAcentos(t *testing.T) {
	assert.True(t, txt.Matches("Jalapeño Ahumado", "jalapeno"))
	assert.True(t, txt.Matches("Café con leche", "CAFE"))
	assert.False(t, txt.Matches("Hamburguesa", "pizza"))
}

func TestMatches_BusquedaVaciaSiempreCoincide(t *testing.T) {
	assert.True(t, txt.Matches("cualquier cosa", ""))
	assert.True(t, txt.Matches("cualquier cosa", "   "))
}
