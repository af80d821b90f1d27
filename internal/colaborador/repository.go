package colaborador

import "gorm.io/gorm"

type Repository interface {
	Transaction(db *gorm.DB, fn func(tx *gorm.DB) error) error
	Criar(db *gorm.DB, c *Colaborador) error
	Salvar(db *gorm.DB, c *Colaborador) error
	BuscarPorID(db *gorm.DB, id uint) (*Colaborador, error)
	BuscarPorEmail(db *gorm.DB, email string) (*Colaborador, error)
	ListarTodos(db *gorm.DB) ([]Colaborador, error)
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Transaction(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.Transaction(fn)
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Colaborador) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Colaborador) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Colaborador, error) {
	var c Colaborador
	err := db.Preload("Cargo").First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Colaborador, error) {
	var c Colaborador
	err := db.Preload("Cargo").Where("email = ?", email).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Colaborador, error) {
	var colaboradores []Colaborador
	err := db.Preload("Cargo").Find(&colaboradores).Error
	return colaboradores, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Colaborador{}, id).Error
}
