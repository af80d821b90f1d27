package cargo

import (
	"errors"

	"gorm.io/gorm"

	"github.com/epicevents/api-crm/internal/apperrors"
	"github.com/epicevents/api-crm/internal/permissoes"
)

// Service cuida do ciclo de vida dos cargos. Pensado para o bootstrap: depois
// que os três cargos canônicos existem, não há mutação de cargos no dia a dia.
type Service struct {
	DB         *gorm.DB
	Repository Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db, Repository: NewRepository()}
}

// Criar registra um cargo novo. O nome precisa pertencer ao conjunto canônico
// e ainda não existir.
func (s *Service) Criar(nome string) (*Cargo, error) {
	if !permissoes.Cargo(nome).Valido() {
		return nil, apperrors.InvalidInputf("cargo %q fora do conjunto permitido", nome)
	}

	if _, err := s.Repository.BuscarPorNome(s.DB, nome); err == nil {
		return nil, apperrors.Conflictf("o cargo %q já existe", nome)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := Cargo{Nome: nome}
	if err := s.Repository.Criar(s.DB, &c); err != nil {
		return nil, apperrors.FromGorm(err, "cargo")
	}
	return &c, nil
}

// BuscarPorNome retorna o cargo com o nome dado.
func (s *Service) BuscarPorNome(nome string) (*Cargo, error) {
	c, err := s.Repository.BuscarPorNome(s.DB, nome)
	if err != nil {
		return nil, apperrors.FromGorm(err, "cargo")
	}
	return c, nil
}

// ListarTodos retorna todos os cargos cadastrados.
func (s *Service) ListarTodos() ([]Cargo, error) {
	return s.Repository.ListarTodos(s.DB)
}

// GarantirCargosPadrao cria os três cargos canônicos quando ausentes.
// Chamado no boot; é seguro executar mais de uma vez.
func (s *Service) GarantirCargosPadrao() error {
	for _, nome := range []permissoes.Cargo{
		permissoes.CargoManagement,
		permissoes.CargoCommercial,
		permissoes.CargoSupport,
	} {
		_, err := s.Repository.BuscarPorNome(s.DB, string(nome))
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := s.Repository.Criar(s.DB, &Cargo{Nome: string(nome)}); err != nil {
			return err
		}
	}
	return nil
}
