package contrato

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/epicevents/api-crm/internal/apperrors"
	"github.com/epicevents/api-crm/internal/cliente"
	"github.com/epicevents/api-crm/internal/colaborador"
	"github.com/epicevents/api-crm/internal/notificacao"
	"github.com/epicevents/api-crm/internal/permissoes"
)

// Service aplica as regras de contratos: criação aberta a gestão e comercial,
// alteração restrita ao comercial dono (gestão altera qualquer um).
type Service struct {
	DB            *gorm.DB
	Repository    Repository
	Clientes      cliente.Repository
	Colaboradores colaborador.Repository
	Notificador   notificacao.Notificador
}

func NewService(db *gorm.DB, notificador notificacao.Notificador) *Service {
	return &Service{
		DB:            db,
		Repository:    NewRepository(),
		Clientes:      cliente.NewRepository(),
		Colaboradores: colaborador.NewRepository(),
		Notificador:   notificador,
	}
}

// Criar registra um contrato. Qualquer gestão ou comercial pode criar para
// qualquer par cliente/comercial; o dono só é cobrado na alteração.
func (s *Service) Criar(input CriarInput, ator permissoes.Ator) (*Contrato, error) {
	ok, err := permissoes.PodeGerirContratos(ator)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.Unauthorizedf("você não tem direito de criar contratos")
	}

	if input.ValorTotal < 0 || input.ValorRestante < 0 {
		return nil, apperrors.InvalidInputf("valores do contrato não podem ser negativos")
	}

	if _, err := s.Clientes.BuscarPorID(s.DB, input.ClienteID); err != nil {
		return nil, apperrors.FromGorm(err, "cliente")
	}

	comercial, err := s.Colaboradores.BuscarPorID(s.DB, input.ComercialID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.InvalidInputf("comercial %d não existe", input.ComercialID)
		}
		return nil, err
	}
	if comercial.Cargo.Nome != string(permissoes.CargoCommercial) {
		return nil, apperrors.InvalidInputf("o colaborador %d não é um comercial", input.ComercialID)
	}

	novo := Contrato{
		ValorTotal:    input.ValorTotal,
		ValorRestante: input.ValorRestante,
		DataCriacao:   time.Now(),
		Assinado:      input.Assinado,
		ClienteID:     input.ClienteID,
		ComercialID:   input.ComercialID,
	}
	err = s.Repository.Transaction(s.DB, func(tx *gorm.DB) error {
		return s.Repository.Criar(tx, &novo)
	})
	if err != nil {
		return nil, apperrors.FromGorm(err, "contrato")
	}
	return &novo, nil
}

// Atualizar aplica somente os campos presentes no input. Comercial só altera
// os próprios contratos; a assinatura que vira verdadeira emite um alerta.
func (s *Service) Atualizar(id uint, input AtualizarInput, ator permissoes.Ator) (*Contrato, error) {
	existente, err := s.Repository.BuscarPorID(s.DB, id)
	if err != nil {
		return nil, apperrors.FromGorm(err, "contrato")
	}

	ok, err := permissoes.PodeGerirContratos(ator)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.Unauthorizedf("você não tem direito de alterar contratos")
	}

	ehComercial, err := permissoes.EhComercial(ator)
	if err != nil {
		return nil, err
	}
	if ehComercial && existente.ComercialID != ator.ColaboradorID {
		return nil, apperrors.Forbiddenf("você só pode alterar os contratos dos seus clientes")
	}

	recebeuAssinatura := false

	if input.ValorTotal != nil {
		if *input.ValorTotal < 0 {
			return nil, apperrors.InvalidInputf("valor total não pode ser negativo")
		}
		existente.ValorTotal = *input.ValorTotal
	}
	if input.ValorRestante != nil {
		if *input.ValorRestante < 0 {
			return nil, apperrors.InvalidInputf("valor restante não pode ser negativo")
		}
		existente.ValorRestante = *input.ValorRestante
	}
	if input.Assinado != nil {
		if !existente.Assinado && *input.Assinado {
			recebeuAssinatura = true
		}
		existente.Assinado = *input.Assinado
	}
	if input.ClienteID != nil {
		if _, err := s.Clientes.BuscarPorID(s.DB, *input.ClienteID); err != nil {
			return nil, apperrors.FromGorm(err, "cliente")
		}
		existente.ClienteID = *input.ClienteID
	}
	if input.ComercialID != nil {
		comercial, err := s.Colaboradores.BuscarPorID(s.DB, *input.ComercialID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.InvalidInputf("comercial %d não existe", *input.ComercialID)
			}
			return nil, err
		}
		if comercial.Cargo.Nome != string(permissoes.CargoCommercial) {
			return nil, apperrors.InvalidInputf("o colaborador %d não é um comercial", *input.ComercialID)
		}
		existente.ComercialID = *input.ComercialID
	}

	err = s.Repository.Transaction(s.DB, func(tx *gorm.DB) error {
		return s.Repository.Salvar(tx, existente)
	})
	if err != nil {
		return nil, apperrors.FromGorm(err, "contrato")
	}

	if recebeuAssinatura {
		s.Notificador.Publicar(notificacao.NovoAlerta(
			notificacao.TipoContratoAssinado, existente.ID, ator.Email,
			fmt.Sprintf("contrato %d assinado", existente.ID)))
	}
	return existente, nil
}

func (s *Service) BuscarPorID(id uint) (*Contrato, error) {
	c, err := s.Repository.BuscarPorID(s.DB, id)
	if err != nil {
		return nil, apperrors.FromGorm(err, "contrato")
	}
	return c, nil
}

// ListarTodos é aberto a qualquer ator autenticado.
func (s *Service) ListarTodos() ([]Contrato, error) {
	return s.Repository.ListarTodos(s.DB)
}

// ListarAssinados devolve os contratos assinados. Filtro de comercial.
func (s *Service) ListarAssinados(ator permissoes.Ator) ([]Contrato, error) {
	if err := s.exigirComercial(ator); err != nil {
		return nil, err
	}
	return s.Repository.FiltrarPorAssinatura(s.DB, true)
}

// ListarNaoAssinados devolve os contratos pendentes de assinatura.
func (s *Service) ListarNaoAssinados(ator permissoes.Ator) ([]Contrato, error) {
	if err := s.exigirComercial(ator); err != nil {
		return nil, err
	}
	return s.Repository.FiltrarPorAssinatura(s.DB, false)
}

// ListarNaoPagos devolve contratos assinados com saldo em aberto.
func (s *Service) ListarNaoPagos(ator permissoes.Ator) ([]Contrato, error) {
	if err := s.exigirComercial(ator); err != nil {
		return nil, err
	}
	return s.Repository.ListarNaoPagos(s.DB)
}

func (s *Service) exigirComercial(ator permissoes.Ator) error {
	ok, err := permissoes.EhComercial(ator)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.Unauthorizedf("apenas comerciais acessam este filtro")
	}
	return nil
}
