package colaborador

import (
	"errors"

	"gorm.io/gorm"

	"github.com/epicevents/api-crm/internal/apperrors"
	"github.com/epicevents/api-crm/internal/cargo"
	"github.com/epicevents/api-crm/internal/notificacao"
	"github.com/epicevents/api-crm/internal/permissoes"
	"github.com/epicevents/api-crm/internal/utils"
)

const senhaMinima = 8

// Service aplica as regras de gestão de colaboradores. Toda mutação exige o
// cargo de gestão; a senha é sempre persistida como hash bcrypt.
type Service struct {
	DB          *gorm.DB
	Repository  Repository
	Cargos      cargo.Repository
	Notificador notificacao.Notificador
}

func NewService(db *gorm.DB, notificador notificacao.Notificador) *Service {
	return &Service{
		DB:          db,
		Repository:  NewRepository(),
		Cargos:      cargo.NewRepository(),
		Notificador: notificador,
	}
}

// Criar cadastra um colaborador novo. Somente gestão; todos os campos são
// obrigatórios e o e-mail precisa estar livre.
func (s *Service) Criar(nome, email, senha, cargoNome string, ator permissoes.Ator) (*Colaborador, error) {
	ok, err := permissoes.PodeGerirColaboradores(ator)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.Unauthorizedf("apenas a gestão pode criar colaboradores")
	}

	if nome == "" || email == "" || senha == "" || cargoNome == "" {
		return nil, apperrors.InvalidInputf("todos os campos são obrigatórios")
	}
	if len(senha) < senhaMinima {
		return nil, apperrors.InvalidInputf("a senha deve ter ao menos %d caracteres", senhaMinima)
	}

	if _, err := s.Repository.BuscarPorEmail(s.DB, email); err == nil {
		return nil, apperrors.Conflictf("já existe um colaborador com o e-mail %s", email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c, err := s.Cargos.BuscarPorNome(s.DB, cargoNome)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.InvalidInputf("o cargo %q não existe", cargoNome)
		}
		return nil, err
	}

	hash, err := utils.HashSenha(senha)
	if err != nil {
		return nil, err
	}

	novo := Colaborador{
		Nome:    nome,
		Email:   email,
		Senha:   hash,
		CargoID: c.ID,
		Cargo:   *c,
	}
	err = s.Repository.Transaction(s.DB, func(tx *gorm.DB) error {
		return s.Repository.Criar(tx, &novo)
	})
	if err != nil {
		return nil, apperrors.FromGorm(err, "colaborador")
	}

	s.Notificador.Publicar(notificacao.NovoAlerta(
		notificacao.TipoColaboradorCriado, novo.ID, ator.Email,
		"colaborador "+novo.Email+" criado"))
	return &novo, nil
}

// Atualizar aplica somente os campos presentes no input. Senha nova é
// re-hasheada; cargo novo precisa existir.
func (s *Service) Atualizar(id uint, input AtualizarInput, ator permissoes.Ator) (*Colaborador, error) {
	ok, err := permissoes.PodeGerirColaboradores(ator)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.Unauthorizedf("apenas a gestão pode alterar colaboradores")
	}

	existente, err := s.Repository.BuscarPorID(s.DB, id)
	if err != nil {
		return nil, apperrors.FromGorm(err, "colaborador")
	}

	if input.Nome != nil {
		existente.Nome = *input.Nome
	}
	if input.Email != nil {
		existente.Email = *input.Email
	}
	if input.Senha != nil {
		if len(*input.Senha) < senhaMinima {
			return nil, apperrors.InvalidInputf("a senha deve ter ao menos %d caracteres", senhaMinima)
		}
		hash, err := utils.HashSenha(*input.Senha)
		if err != nil {
			return nil, err
		}
		existente.Senha = hash
	}
	if input.Cargo != nil {
		c, err := s.Cargos.BuscarPorNome(s.DB, *input.Cargo)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.InvalidInputf("o cargo %q não existe", *input.Cargo)
			}
			return nil, err
		}
		existente.CargoID = c.ID
		existente.Cargo = *c
	}

	err = s.Repository.Transaction(s.DB, func(tx *gorm.DB) error {
		return s.Repository.Salvar(tx, existente)
	})
	if err != nil {
		return nil, apperrors.FromGorm(err, "colaborador")
	}

	s.Notificador.Publicar(notificacao.NovoAlerta(
		notificacao.TipoColaboradorAtualizado, existente.ID, ator.Email,
		"colaborador "+existente.Email+" atualizado"))
	return existente, nil
}

// Deletar remove um colaborador. Somente gestão.
func (s *Service) Deletar(id uint, ator permissoes.Ator) error {
	ok, err := permissoes.PodeGerirColaboradores(ator)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.Unauthorizedf("apenas a gestão pode remover colaboradores")
	}

	existente, err := s.Repository.BuscarPorID(s.DB, id)
	if err != nil {
		return apperrors.FromGorm(err, "colaborador")
	}

	err = s.Repository.Transaction(s.DB, func(tx *gorm.DB) error {
		return s.Repository.Deletar(tx, id)
	})
	if err != nil {
		return err
	}

	s.Notificador.Publicar(notificacao.NovoAlerta(
		notificacao.TipoColaboradorRemovido, id, ator.Email,
		"colaborador "+existente.Email+" removido"))
	return nil
}

func (s *Service) BuscarPorID(id uint) (*Colaborador, error) {
	c, err := s.Repository.BuscarPorID(s.DB, id)
	if err != nil {
		return nil, apperrors.FromGorm(err, "colaborador")
	}
	return c, nil
}

func (s *Service) ListarTodos() ([]Colaborador, error) {
	return s.Repository.ListarTodos(s.DB)
}
