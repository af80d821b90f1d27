package permissoes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epicevents/api-crm/internal/apperrors"
)

func ator(c Cargo) Ator {
	return Ator{ColaboradorID: 1, Email: "alguem@epicevents.com", Cargo: c}
}

func TestTemCargo(t *testing.T) {
	ok, err := TemCargo(ator(CargoCommercial), CargoManagement, CargoCommercial)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = TemCargo(ator(CargoSupport), CargoManagement, CargoCommercial)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTemCargoSemCargoEhEntradaInvalida(t *testing.T) {
	_, err := TemCargo(Ator{ColaboradorID: 1, Email: "x@y.com"}, CargoManagement)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = TemCargo(ator("estagiario"), CargoManagement)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestPredicados(t *testing.T) {
	casos := []struct {
		nome      string
		predicado func(Ator) (bool, error)
		cargo     Cargo
		esperado  bool
	}{
		{"gestão gere colaboradores", PodeGerirColaboradores, CargoManagement, true},
		{"comercial não gere colaboradores", PodeGerirColaboradores, CargoCommercial, false},
		{"suporte não gere colaboradores", PodeGerirColaboradores, CargoSupport, false},
		{"gestão gere contratos", PodeGerirContratos, CargoManagement, true},
		{"comercial gere contratos", PodeGerirContratos, CargoCommercial, true},
		{"suporte não gere contratos", PodeGerirContratos, CargoSupport, false},
		{"gestão gere eventos", PodeGerirEventos, CargoManagement, true},
		{"suporte gere eventos", PodeGerirEventos, CargoSupport, true},
		{"comercial não gere eventos", PodeGerirEventos, CargoCommercial, false},
		{"é comercial", EhComercial, CargoCommercial, true},
		{"gestão não é comercial", EhComercial, CargoManagement, false},
		{"é suporte", EhSuporte, CargoSupport, true},
		{"comercial não é suporte", EhSuporte, CargoCommercial, false},
		{"é gestão", EhGestao, CargoManagement, true},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			ok, err := c.predicado(ator(c.cargo))
			require.NoError(t, err)
			assert.Equal(t, c.esperado, ok)
		})
	}
}

func TestCargoValido(t *testing.T) {
	assert.True(t, CargoManagement.Valido())
	assert.True(t, CargoCommercial.Valido())
	assert.True(t, CargoSupport.Valido())
	assert.False(t, Cargo("").Valido())
	assert.False(t, Cargo("admin").Valido())
}
