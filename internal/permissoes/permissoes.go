package permissoes

import (
	"github.com/epicevents/api-crm/internal/apperrors"
)

// Cargo é o conjunto fechado de papéis reconhecidos pelo sistema.
// Qualquer outro valor é rejeitado na fronteira, nunca avaliado.
type Cargo string

const (
	CargoManagement Cargo = "management"
	CargoCommercial Cargo = "commercial"
	CargoSupport    Cargo = "support"
)

// Valido informa se o cargo pertence ao conjunto canônico.
func (c Cargo) Valido() bool {
	switch c {
	case CargoManagement, CargoCommercial, CargoSupport:
		return true
	}
	return false
}

// Ator é a identidade autenticada que tenta uma operação. É construído uma
// única vez pelo contexto de identidade e repassado a cada chamada de serviço.
type Ator struct {
	ColaboradorID uint
	Email         string
	Cargo         Cargo
}

// TemCargo verifica se o ator possui um dos cargos permitidos.
// Ator sem cargo (ou com cargo fora do conjunto) é entrada inválida,
// nunca um falso silencioso.
func TemCargo(a Ator, permitidos ...Cargo) (bool, error) {
	if !a.Cargo.Valido() {
		return false, apperrors.InvalidInputf("ator sem cargo válido (%q)", a.Cargo)
	}
	for _, c := range permitidos {
		if a.Cargo == c {
			return true, nil
		}
	}
	return false, nil
}

// PodeGerirColaboradores: somente gestão cria, altera ou remove colaboradores.
func PodeGerirColaboradores(a Ator) (bool, error) {
	return TemCargo(a, CargoManagement)
}

// PodeGerirContratos: gestão e comercial podem criar/alterar contratos.
func PodeGerirContratos(a Ator) (bool, error) {
	return TemCargo(a, CargoManagement, CargoCommercial)
}

// PodeGerirEventos: gestão e suporte podem alterar eventos.
func PodeGerirEventos(a Ator) (bool, error) {
	return TemCargo(a, CargoManagement, CargoSupport)
}

func EhComercial(a Ator) (bool, error) {
	return TemCargo(a, CargoCommercial)
}

func EhSuporte(a Ator) (bool, error) {
	return TemCargo(a, CargoSupport)
}

func EhGestao(a Ator) (bool, error) {
	return TemCargo(a, CargoManagement)
}
