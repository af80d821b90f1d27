package evento

import "gorm.io/gorm"

type Repository interface {
	Transaction(db *gorm.DB, fn func(tx *gorm.DB) error) error
	Criar(db *gorm.DB, e *Evento) error
	Salvar(db *gorm.DB, e *Evento) error
	BuscarPorID(db *gorm.DB, id uint) (*Evento, error)
	ListarTodos(db *gorm.DB) ([]Evento, error)
	ListarSemSuporte(db *gorm.DB) ([]Evento, error)
	ListarPorSuporte(db *gorm.DB, suporteID uint) ([]Evento, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Transaction(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.Transaction(fn)
}

func (r *repositoryImpl) Criar(db *gorm.DB, e *Evento) error {
	return db.Create(e).Error
}

func (r *repositoryImpl) Salvar(db *gorm.DB, e *Evento) error {
	return db.Save(e).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Evento, error) {
	var e Evento
	err := db.First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Evento, error) {
	var eventos []Evento
	err := db.Find(&eventos).Error
	return eventos, err
}

func (r *repositoryImpl) ListarSemSuporte(db *gorm.DB) ([]Evento, error) {
	var eventos []Evento
	err := db.Where("suporte_id IS NULL").Find(&eventos).Error
	return eventos, err
}

func (r *repositoryImpl) ListarPorSuporte(db *gorm.DB, suporteID uint) ([]Evento, error) {
	var eventos []Evento
	err := db.Where("suporte_id = ?", suporteID).Find(&eventos).Error
	return eventos, err
}
