package cargo

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, c *Cargo) error
	BuscarPorNome(db *gorm.DB, nome string) (*Cargo, error)
	BuscarPorID(db *gorm.DB, id uint) (*Cargo, error)
	ListarTodos(db *gorm.DB) ([]Cargo, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Cargo) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorNome(db *gorm.DB, nome string) (*Cargo, error) {
	var c Cargo
	err := db.Where("nome = ?", nome).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Cargo, error) {
	var c Cargo
	err := db.First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Cargo, error) {
	var cargos []Cargo
	err := db.Find(&cargos).Error
	return cargos, err
}
