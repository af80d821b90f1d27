package cliente

import "gorm.io/gorm"

type Repository interface {
	Transaction(db *gorm.DB, fn func(tx *gorm.DB) error) error
	Criar(db *gorm.DB, c *Cliente) error
	Salvar(db *gorm.DB, c *Cliente) error
	BuscarPorID(db *gorm.DB, id uint) (*Cliente, error)
	BuscarPorEmail(db *gorm.DB, email string) (*Cliente, error)
	ListarTodos(db *gorm.DB) ([]Cliente, error)
	ListarPorComercial(db *gorm.DB, comercialID uint) ([]Cliente, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Transaction(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.Transaction(fn)
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Cliente) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Cliente) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Cliente, error) {
	var c Cliente
	err := db.First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Cliente, error) {
	var c Cliente
	err := db.Where("email = ?", email).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Cliente, error) {
	var clientes []Cliente
	err := db.Find(&clientes).Error
	return clientes, err
}

func (r *repositoryImpl) ListarPorComercial(db *gorm.DB, comercialID uint) ([]Cliente, error) {
	var clientes []Cliente
	err := db.Where("comercial_id = ?", comercialID).Find(&clientes).Error
	return clientes, err
}
