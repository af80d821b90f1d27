package cargo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/epicevents/api-crm/internal/apperrors"
)

type fakeRepo struct {
	porNome map[string]*Cargo
	proximo uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{porNome: make(map[string]*Cargo), proximo: 1}
}

func (r *fakeRepo) Criar(db *gorm.DB, c *Cargo) error {
	if _, ok := r.porNome[c.Nome]; ok {
		return gorm.ErrDuplicatedKey
	}
	c.ID = r.proximo
	r.proximo++
	r.porNome[c.Nome] = c
	return nil
}

func (r *fakeRepo) BuscarPorNome(db *gorm.DB, nome string) (*Cargo, error) {
	c, ok := r.porNome[nome]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeRepo) BuscarPorID(db *gorm.DB, id uint) (*Cargo, error) {
	for _, c := range r.porNome {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) ListarTodos(db *gorm.DB) ([]Cargo, error) {
	var todos []Cargo
	for _, c := range r.porNome {
		todos = append(todos, *c)
	}
	return todos, nil
}

func novoServiceDeTeste() (*Service, *fakeRepo) {
	repo := newFakeRepo()
	return &Service{Repository: repo}, repo
}

func TestCriarDuplicadoEhConflito(t *testing.T) {
	s, _ := novoServiceDeTeste()

	_, err := s.Criar("support")
	require.NoError(t, err)

	_, err = s.Criar("support")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestCriarForaDoConjuntoCanonico(t *testing.T) {
	s, _ := novoServiceDeTeste()

	_, err := s.Criar("estagiario")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestBuscarPorNomeInexistente(t *testing.T) {
	s, _ := novoServiceDeTeste()

	_, err := s.BuscarPorNome("commercial")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGarantirCargosPadraoEhIdempotente(t *testing.T) {
	s, repo := novoServiceDeTeste()

	require.NoError(t, s.GarantirCargosPadrao())
	require.NoError(t, s.GarantirCargosPadrao())

	assert.Len(t, repo.porNome, 3)
	for _, nome := range []string{"management", "commercial", "support"} {
		assert.Contains(t, repo.porNome, nome)
	}
}
