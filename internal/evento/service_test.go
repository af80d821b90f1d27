package evento

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/epicevents/api-crm/internal/apperrors"
	"github.com/epicevents/api-crm/internal/cargo"
	"github.com/epicevents/api-crm/internal/colaborador"
	"github.com/epicevents/api-crm/internal/contrato"
	"github.com/epicevents/api-crm/internal/permissoes"
)

type fakeRepo struct {
	porID   map[uint]*Evento
	proximo uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{porID: make(map[uint]*Evento), proximo: 1}
}

func (r *fakeRepo) Transaction(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return fn(db)
}

func (r *fakeRepo) Criar(db *gorm.DB, e *Evento) error {
	e.ID = r.proximo
	r.proximo++
	r.porID[e.ID] = e
	return nil
}

func (r *fakeRepo) Salvar(db *gorm.DB, e *Evento) error {
	r.porID[e.ID] = e
	return nil
}

func (r *fakeRepo) BuscarPorID(db *gorm.DB, id uint) (*Evento, error) {
	e, ok := r.porID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *e
	return &copia, nil
}

func (r *fakeRepo) ListarTodos(db *gorm.DB) ([]Evento, error) {
	var todos []Evento
	for _, e := range r.porID {
		todos = append(todos, *e)
	}
	return todos, nil
}

func (r *fakeRepo) ListarSemSuporte(db *gorm.DB) ([]Evento, error) {
	var todos []Evento
	for _, e := range r.porID {
		if e.SuporteID == nil {
			todos = append(todos, *e)
		}
	}
	return todos, nil
}

func (r *fakeRepo) ListarPorSuporte(db *gorm.DB, suporteID uint) ([]Evento, error) {
	var todos []Evento
	for _, e := range r.porID {
		if e.SuporteID != nil && *e.SuporteID == suporteID {
			todos = append(todos, *e)
		}
	}
	return todos, nil
}

type fakeContratoRepo struct {
	porID map[uint]*contrato.Contrato
}

func (r *fakeContratoRepo) Transaction(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return fn(db)
}

func (r *fakeContratoRepo) Criar(db *gorm.DB, c *contrato.Contrato) error {
	r.porID[c.ID] = c
	return nil
}

func (r *fakeContratoRepo) Salvar(db *gorm.DB, c *contrato.Contrato) error {
	r.porID[c.ID] = c
	return nil
}

func (r *fakeContratoRepo) BuscarPorID(db *gorm.DB, id uint) (*contrato.Contrato, error) {
	c, ok := r.porID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeContratoRepo) ListarTodos(db *gorm.DB) ([]contrato.Contrato, error) {
	return nil, nil
}

func (r *fakeContratoRepo) FiltrarPorAssinatura(db *gorm.DB, assinado bool) ([]contrato.Contrato, error) {
	return nil, nil
}

func (r *fakeContratoRepo) ListarNaoPagos(db *gorm.DB) ([]contrato.Contrato, error) {
	return nil, nil
}

type fakeColaboradorRepo struct {
	porID map[uint]*colaborador.Colaborador
}

func (r *fakeColaboradorRepo) Transaction(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return fn(db)
}

func (r *fakeColaboradorRepo) Criar(db *gorm.DB, c *colaborador.Colaborador) error {
	r.porID[c.ID] = c
	return nil
}

func (r *fakeColaboradorRepo) Salvar(db *gorm.DB, c *colaborador.Colaborador) error {
	r.porID[c.ID] = c
	return nil
}

func (r *fakeColaboradorRepo) BuscarPorID(db *gorm.DB, id uint) (*colaborador.Colaborador, error) {
	c, ok := r.porID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeColaboradorRepo) BuscarPorEmail(db *gorm.DB, email string) (*colaborador.Colaborador, error) {
	for _, c := range r.porID {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeColaboradorRepo) ListarTodos(db *gorm.DB) ([]colaborador.Colaborador, error) {
	return nil, nil
}

func (r *fakeColaboradorRepo) Deletar(db *gorm.DB, id uint) error {
	delete(r.porID, id)
	return nil
}

func contratoDeTeste(id, comercialID uint, assinado bool) *contrato.Contrato {
	c := &contrato.Contrato{ValorTotal: 100, Assinado: assinado, ClienteID: 10, ComercialID: comercialID}
	c.ID = id
	return c
}

func colaboradorComCargo(id uint, nomeCargo string) *colaborador.Colaborador {
	c := &colaborador.Colaborador{Nome: "Colaborador", Cargo: cargo.Cargo{Nome: nomeCargo}}
	c.ID = id
	return c
}

func novoServiceDeTeste() (*Service, *fakeRepo) {
	repo := newFakeRepo()
	s := &Service{
		Repository: repo,
		Contratos: &fakeContratoRepo{porID: map[uint]*contrato.Contrato{
			20: contratoDeTeste(20, 1, true),
			21: contratoDeTeste(21, 1, false),
			22: contratoDeTeste(22, 2, true),
		}},
		Colaboradores: &fakeColaboradorRepo{porID: map[uint]*colaborador.Colaborador{
			3: colaboradorComCargo(3, string(permissoes.CargoSupport)),
			4: colaboradorComCargo(4, string(permissoes.CargoSupport)),
			5: colaboradorComCargo(5, string(permissoes.CargoCommercial)),
		}},
	}
	return s, repo
}

var (
	gestao        = permissoes.Ator{ColaboradorID: 9, Email: "gestao@epicevents.com", Cargo: permissoes.CargoManagement}
	comercialUm   = permissoes.Ator{ColaboradorID: 1, Email: "um@epicevents.com", Cargo: permissoes.CargoCommercial}
	suporteTres   = permissoes.Ator{ColaboradorID: 3, Email: "tres@epicevents.com", Cargo: permissoes.CargoSupport}
	suporteQuatro = permissoes.Ator{ColaboradorID: 4, Email: "quatro@epicevents.com", Cargo: permissoes.CargoSupport}
)

func inputValido(contratoID uint) CriarInput {
	inicio := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	return CriarInput{
		DataInicio:    inicio,
		DataFim:       inicio.Add(4 * time.Hour),
		Local:         "Lisboa",
		Participantes: 80,
		ContratoID:    contratoID,
	}
}

func TestCriarExigeComercial(t *testing.T) {
	s, _ := novoServiceDeTeste()

	_, err := s.Criar(inputValido(20), suporteTres)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = s.Criar(inputValido(20), gestao)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestCriarContratoNaoAssinado(t *testing.T) {
	s, _ := novoServiceDeTeste()

	_, err := s.Criar(inputValido(21), comercialUm)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.Contains(t, err.Error(), "não assinado")
}

func TestCriarSomenteDonoDoContrato(t *testing.T) {
	s, _ := novoServiceDeTeste()

	// contrato 22 pertence ao comercial 2
	_, err := s.Criar(inputValido(22), comercialUm)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestCriarContratoInexistente(t *testing.T) {
	s, _ := novoServiceDeTeste()

	_, err := s.Criar(inputValido(99), comercialUm)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCriarDatasInvalidas(t *testing.T) {
	s, _ := novoServiceDeTeste()

	input := inputValido(20)
	input.DataFim = input.DataInicio
	_, err := s.Criar(input, comercialUm)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCriarNasceSemSuporte(t *testing.T) {
	s, _ := novoServiceDeTeste()

	e, err := s.Criar(inputValido(20), comercialUm)
	require.NoError(t, err)
	assert.Nil(t, e.SuporteID)
	assert.Equal(t, uint(20), e.ContratoID)
}

func TestAtualizarNaoEncontrado(t *testing.T) {
	s, _ := novoServiceDeTeste()

	local := "Porto"
	_, err := s.Atualizar(99, AtualizarInput{Local: &local}, gestao)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAtualizarComercialNaoAltera(t *testing.T) {
	s, _ := novoServiceDeTeste()

	criado, err := s.Criar(inputValido(20), comercialUm)
	require.NoError(t, err)

	local := "Porto"
	_, err = s.Atualizar(criado.ID, AtualizarInput{Local: &local}, comercialUm)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAtualizarGestaoReatribuiSuporte(t *testing.T) {
	s, _ := novoServiceDeTeste()

	criado, err := s.Criar(inputValido(20), comercialUm)
	require.NoError(t, err)

	suporteID := uint(3)
	atualizado, err := s.Atualizar(criado.ID, AtualizarInput{SuporteID: &suporteID}, gestao)
	require.NoError(t, err)
	require.NotNil(t, atualizado.SuporteID)
	assert.Equal(t, uint(3), *atualizado.SuporteID)
}

func TestAtualizarReatribuicaoValidaCargo(t *testing.T) {
	s, _ := novoServiceDeTeste()

	criado, err := s.Criar(inputValido(20), comercialUm)
	require.NoError(t, err)

	inexistente := uint(99)
	_, err = s.Atualizar(criado.ID, AtualizarInput{SuporteID: &inexistente}, gestao)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	// colaborador 5 existe mas é comercial
	comercial := uint(5)
	_, err = s.Atualizar(criado.ID, AtualizarInput{SuporteID: &comercial}, gestao)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestAtualizarSuporteSomenteOsSeus(t *testing.T) {
	s, _ := novoServiceDeTeste()

	criado, err := s.Criar(inputValido(20), comercialUm)
	require.NoError(t, err)

	suporteID := uint(3)
	_, err = s.Atualizar(criado.ID, AtualizarInput{SuporteID: &suporteID}, gestao)
	require.NoError(t, err)

	nota := "briefing confirmado"
	atualizado, err := s.Atualizar(criado.ID, AtualizarInput{Nota: &nota}, suporteTres)
	require.NoError(t, err)
	assert.Equal(t, "briefing confirmado", atualizado.Nota)

	_, err = s.Atualizar(criado.ID, AtualizarInput{Nota: &nota}, suporteQuatro)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestAtualizarSuporteNaoReatribui(t *testing.T) {
	s, _ := novoServiceDeTeste()

	criado, err := s.Criar(inputValido(20), comercialUm)
	require.NoError(t, err)

	suporteID := uint(3)
	_, err = s.Atualizar(criado.ID, AtualizarInput{SuporteID: &suporteID}, gestao)
	require.NoError(t, err)

	outro := uint(4)
	_, err = s.Atualizar(criado.ID, AtualizarInput{SuporteID: &outro}, suporteTres)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestAtualizarRevalidaDatas(t *testing.T) {
	s, _ := novoServiceDeTeste()

	criado, err := s.Criar(inputValido(20), comercialUm)
	require.NoError(t, err)

	fimAntesDoInicio := criado.DataInicio.Add(-time.Hour)
	_, err = s.Atualizar(criado.ID, AtualizarInput{DataFim: &fimAntesDoInicio}, gestao)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestListarSemSuporte(t *testing.T) {
	s, _ := novoServiceDeTeste()

	criado, err := s.Criar(inputValido(20), comercialUm)
	require.NoError(t, err)
	_, err = s.Criar(inputValido(20), comercialUm)
	require.NoError(t, err)

	suporteID := uint(3)
	_, err = s.Atualizar(criado.ID, AtualizarInput{SuporteID: &suporteID}, gestao)
	require.NoError(t, err)

	pendentes, err := s.ListarSemSuporte(gestao)
	require.NoError(t, err)
	assert.Len(t, pendentes, 1)

	_, err = s.ListarSemSuporte(comercialUm)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestListarDoSuporteAtual(t *testing.T) {
	s, _ := novoServiceDeTeste()

	criado, err := s.Criar(inputValido(20), comercialUm)
	require.NoError(t, err)

	suporteID := uint(3)
	_, err = s.Atualizar(criado.ID, AtualizarInput{SuporteID: &suporteID}, gestao)
	require.NoError(t, err)

	meus, err := s.ListarDoSuporteAtual(suporteTres)
	require.NoError(t, err)
	assert.Len(t, meus, 1)

	vazio, err := s.ListarDoSuporteAtual(suporteQuatro)
	require.NoError(t, err)
	assert.Empty(t, vazio)

	_, err = s.ListarDoSuporteAtual(gestao)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
