package contrato

import (
	"time"

	"gorm.io/gorm"
)

// Contrato liga um cliente ao comercial responsável e carrega o estado de
// assinatura que condiciona a criação de eventos.
type Contrato struct {
	gorm.Model
	ValorTotal    float64   `json:"valorTotal" gorm:"not null"`
	ValorRestante float64   `json:"valorRestante" gorm:"not null"`
	DataCriacao   time.Time `json:"dataCriacao"`
	Assinado      bool      `json:"assinado" gorm:"default:false"`
	ClienteID     uint      `json:"clienteId" gorm:"not null;index"`
	ComercialID   uint      `json:"comercialId" gorm:"not null;index"`
}
