package contrato

import "gorm.io/gorm"

type Repository interface {
	Transaction(db *gorm.DB, fn func(tx *gorm.DB) error) error
	Criar(db *gorm.DB, c *Contrato) error
	Salvar(db *gorm.DB, c *Contrato) error
	BuscarPorID(db *gorm.DB, id uint) (*Contrato, error)
	ListarTodos(db *gorm.DB) ([]Contrato, error)
	FiltrarPorAssinatura(db *gorm.DB, assinado bool) ([]Contrato, error)
	ListarNaoPagos(db *gorm.DB) ([]Contrato, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Transaction(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.Transaction(fn)
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Contrato) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Contrato) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Contrato, error) {
	var contrato Contrato
	err := db.First(&contrato, id).Error
	if err != nil {
		return nil, err
	}
	return &contrato, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Contrato, error) {
	var contratos []Contrato
	err := db.Find(&contratos).Error
	return contratos, err
}

func (r *repositoryImpl) FiltrarPorAssinatura(db *gorm.DB, assinado bool) ([]Contrato, error) {
	var contratos []Contrato
	err := db.Where("assinado = ?", assinado).Find(&contratos).Error
	return contratos, err
}

// Não pagos: contratos assinados com saldo em aberto.
func (r *repositoryImpl) ListarNaoPagos(db *gorm.DB) ([]Contrato, error) {
	var contratos []Contrato
	err := db.Where("valor_restante > 0 AND assinado = ?", true).Find(&contratos).Error
	return contratos, err
}
