package evento

import (
	"errors"

	"gorm.io/gorm"

	"github.com/epicevents/api-crm/internal/apperrors"
	"github.com/epicevents/api-crm/internal/colaborador"
	"github.com/epicevents/api-crm/internal/contrato"
	"github.com/epicevents/api-crm/internal/permissoes"
)

// Service aplica as regras de eventos: criação só pelo comercial dono de um
// contrato assinado; alteração pela gestão (qualquer evento) ou pelo suporte
// designado (só os seus).
type Service struct {
	DB            *gorm.DB
	Repository    Repository
	Contratos     contrato.Repository
	Colaboradores colaborador.Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		DB:            db,
		Repository:    NewRepository(),
		Contratos:     contrato.NewRepository(),
		Colaboradores: colaborador.NewRepository(),
	}
}

// Criar registra um evento para um contrato assinado do comercial autenticado.
// Nasce sem suporte designado. A trava de assinatura vale só aqui: um contrato
// dessinado depois não revoga o evento.
func (s *Service) Criar(input CriarInput, ator permissoes.Ator) (*Evento, error) {
	ok, err := permissoes.EhComercial(ator)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.Unauthorizedf("apenas comerciais podem criar eventos")
	}

	c, err := s.Contratos.BuscarPorID(s.DB, input.ContratoID)
	if err != nil {
		return nil, apperrors.FromGorm(err, "contrato")
	}

	if !c.Assinado {
		return nil, apperrors.Forbiddenf("impossível criar evento para contrato não assinado")
	}

	if c.ComercialID != ator.ColaboradorID {
		return nil, apperrors.Forbiddenf("você só pode criar eventos para os seus próprios contratos")
	}

	if !input.DataFim.After(input.DataInicio) {
		return nil, apperrors.InvalidInputf("a data de fim deve ser posterior à de início")
	}
	if input.Participantes < 0 {
		return nil, apperrors.InvalidInputf("número de participantes não pode ser negativo")
	}

	novo := Evento{
		DataInicio:    input.DataInicio,
		DataFim:       input.DataFim,
		Local:         input.Local,
		Participantes: input.Participantes,
		Nota:          input.Nota,
		ContratoID:    input.ContratoID,
		SuporteID:     nil,
	}
	err = s.Repository.Transaction(s.DB, func(tx *gorm.DB) error {
		return s.Repository.Criar(tx, &novo)
	})
	if err != nil {
		return nil, apperrors.FromGorm(err, "evento")
	}
	return &novo, nil
}

// Atualizar aplica somente os campos presentes no input. Gestão altera
// qualquer evento e é a única que reatribui suporte; suporte altera apenas os
// eventos designados a ele.
func (s *Service) Atualizar(id uint, input AtualizarInput, ator permissoes.Ator) (*Evento, error) {
	existente, err := s.Repository.BuscarPorID(s.DB, id)
	if err != nil {
		return nil, apperrors.FromGorm(err, "evento")
	}

	ok, err := permissoes.PodeGerirEventos(ator)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.Unauthorizedf("você não tem direito de alterar eventos")
	}

	ehGestao, err := permissoes.EhGestao(ator)
	if err != nil {
		return nil, err
	}

	if !ehGestao {
		// Suporte: só os próprios eventos, sem reatribuição.
		if existente.SuporteID == nil || *existente.SuporteID != ator.ColaboradorID {
			return nil, apperrors.Forbiddenf("você só pode alterar os eventos que lhe foram atribuídos")
		}
		if input.SuporteID != nil {
			return nil, apperrors.Forbiddenf("apenas a gestão pode reatribuir o suporte de um evento")
		}
	}

	if input.SuporteID != nil {
		suporte, err := s.Colaboradores.BuscarPorID(s.DB, *input.SuporteID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.InvalidInputf("suporte %d não existe", *input.SuporteID)
			}
			return nil, err
		}
		if suporte.Cargo.Nome != string(permissoes.CargoSupport) {
			return nil, apperrors.InvalidInputf("o colaborador %d não é do suporte", *input.SuporteID)
		}
		existente.SuporteID = input.SuporteID
	}

	if input.DataInicio != nil {
		existente.DataInicio = *input.DataInicio
	}
	if input.DataFim != nil {
		existente.DataFim = *input.DataFim
	}
	if !existente.DataFim.After(existente.DataInicio) {
		return nil, apperrors.InvalidInputf("a data de fim deve ser posterior à de início")
	}
	if input.Local != nil {
		existente.Local = *input.Local
	}
	if input.Participantes != nil {
		if *input.Participantes < 0 {
			return nil, apperrors.InvalidInputf("número de participantes não pode ser negativo")
		}
		existente.Participantes = *input.Participantes
	}
	if input.Nota != nil {
		existente.Nota = *input.Nota
	}

	err = s.Repository.Transaction(s.DB, func(tx *gorm.DB) error {
		return s.Repository.Salvar(tx, existente)
	})
	if err != nil {
		return nil, apperrors.FromGorm(err, "evento")
	}
	return existente, nil
}

func (s *Service) BuscarPorID(id uint) (*Evento, error) {
	e, err := s.Repository.BuscarPorID(s.DB, id)
	if err != nil {
		return nil, apperrors.FromGorm(err, "evento")
	}
	return e, nil
}

// ListarTodos é aberto a qualquer ator autenticado.
func (s *Service) ListarTodos() ([]Evento, error) {
	return s.Repository.ListarTodos(s.DB)
}

// ListarSemSuporte devolve eventos ainda sem responsável.
func (s *Service) ListarSemSuporte(ator permissoes.Ator) ([]Evento, error) {
	ok, err := permissoes.PodeGerirEventos(ator)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.Unauthorizedf("apenas gestão e suporte acessam esta lista")
	}
	return s.Repository.ListarSemSuporte(s.DB)
}

// ListarDoSuporteAtual devolve os eventos designados ao suporte autenticado.
func (s *Service) ListarDoSuporteAtual(ator permissoes.Ator) ([]Evento, error) {
	ok, err := permissoes.EhSuporte(ator)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.Unauthorizedf("apenas membros do suporte veem os próprios eventos")
	}
	return s.Repository.ListarPorSuporte(s.DB, ator.ColaboradorID)
}
