package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// Erros sentinela compartilhados por todos os serviços. Cada falha de serviço
// embrulha exatamente um deles; os handlers nunca inspecionam texto, só o tipo.
var (
	ErrUnauthorized = errors.New("cargo sem permissão para esta ação")
	ErrForbidden    = errors.New("acesso negado a este recurso")
	ErrNotFound     = errors.New("recurso não encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflito com recurso existente")
)

// Unauthorizedf embrulha ErrUnauthorized com uma mensagem contextual.
func Unauthorizedf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrUnauthorized)...)
}

func Forbiddenf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrForbidden)...)
}

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidInput)...)
}

func Conflictf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrConflict)...)
}

// FromGorm traduz erros da camada de persistência para a taxonomia do domínio.
// Violações de unicidade nunca vazam cruas: viram sempre Conflict.
func FromGorm(err error, recurso string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundf("%s", recurso)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Conflictf("%s: valor único já utilizado", recurso)
	default:
		return err
	}
}

// HTTPStatus mapeia um erro de domínio para o status HTTP correspondente.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteJSON escreve o erro no formato {"erro": "..."} com o status mapeado.
func WriteJSON(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(HTTPStatus(err))
	_ = json.NewEncoder(w).Encode(map[string]string{"erro": err.Error()})
}
