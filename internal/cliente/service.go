package cliente

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/epicevents/api-crm/internal/apperrors"
	"github.com/epicevents/api-crm/internal/colaborador"
	"github.com/epicevents/api-crm/internal/permissoes"
)

// Service aplica as regras de carteira de clientes: só comerciais criam, e
// cada cliente só é alterado pelo comercial dono.
type Service struct {
	DB            *gorm.DB
	Repository    Repository
	Colaboradores colaborador.Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		DB:            db,
		Repository:    NewRepository(),
		Colaboradores: colaborador.NewRepository(),
	}
}

// Criar cadastra um cliente na carteira do comercial autenticado.
func (s *Service) Criar(nome, email, telefone, empresa string, ator permissoes.Ator) (*Cliente, error) {
	ok, err := permissoes.EhComercial(ator)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.Unauthorizedf("apenas comerciais podem criar clientes")
	}

	if nome == "" || email == "" {
		return nil, apperrors.InvalidInputf("nome e e-mail são obrigatórios")
	}

	if _, err := s.Repository.BuscarPorEmail(s.DB, email); err == nil {
		return nil, apperrors.Conflictf("já existe um cliente com o e-mail %s", email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	comercial, err := s.Colaboradores.BuscarPorEmail(s.DB, ator.Email)
	if err != nil {
		return nil, apperrors.FromGorm(err, "colaborador")
	}

	novo := Cliente{
		Nome:        nome,
		Email:       email,
		Telefone:    telefone,
		Empresa:     empresa,
		DataCriacao: time.Now(),
		ComercialID: comercial.ID,
	}
	err = s.Repository.Transaction(s.DB, func(tx *gorm.DB) error {
		return s.Repository.Criar(tx, &novo)
	})
	if err != nil {
		return nil, apperrors.FromGorm(err, "cliente")
	}
	return &novo, nil
}

// Atualizar aplica somente os campos presentes no input. O cliente precisa
// pertencer ao comercial autenticado.
func (s *Service) Atualizar(id uint, input AtualizarInput, ator permissoes.Ator) (*Cliente, error) {
	ok, err := permissoes.EhComercial(ator)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.Unauthorizedf("apenas comerciais podem alterar clientes")
	}

	comercial, err := s.Colaboradores.BuscarPorEmail(s.DB, ator.Email)
	if err != nil {
		return nil, apperrors.FromGorm(err, "colaborador")
	}

	existente, err := s.Repository.BuscarPorID(s.DB, id)
	if err != nil {
		return nil, apperrors.FromGorm(err, "cliente")
	}

	if existente.ComercialID != comercial.ID {
		return nil, apperrors.Forbiddenf("você só pode alterar os seus próprios clientes")
	}

	if input.Nome != nil {
		existente.Nome = *input.Nome
	}
	if input.Email != nil {
		existente.Email = *input.Email
	}
	if input.Telefone != nil {
		existente.Telefone = *input.Telefone
	}
	if input.Empresa != nil {
		existente.Empresa = *input.Empresa
	}
	if input.UltimoContato != nil {
		existente.UltimoContato = input.UltimoContato
	}

	err = s.Repository.Transaction(s.DB, func(tx *gorm.DB) error {
		return s.Repository.Salvar(tx, existente)
	})
	if err != nil {
		return nil, apperrors.FromGorm(err, "cliente")
	}
	return existente, nil
}

func (s *Service) BuscarPorID(id uint) (*Cliente, error) {
	c, err := s.Repository.BuscarPorID(s.DB, id)
	if err != nil {
		return nil, apperrors.FromGorm(err, "cliente")
	}
	return c, nil
}

// ListarTodos é aberto a qualquer ator autenticado.
func (s *Service) ListarTodos() ([]Cliente, error) {
	return s.Repository.ListarTodos(s.DB)
}

// ListarDoComercialAtual devolve a carteira do comercial autenticado.
func (s *Service) ListarDoComercialAtual(ator permissoes.Ator) ([]Cliente, error) {
	ok, err := permissoes.EhComercial(ator)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.Unauthorizedf("apenas comerciais têm carteira de clientes")
	}
	comercial, err := s.Colaboradores.BuscarPorEmail(s.DB, ator.Email)
	if err != nil {
		return nil, apperrors.FromGorm(err, "colaborador")
	}
	return s.Repository.ListarPorComercial(s.DB, comercial.ID)
}
