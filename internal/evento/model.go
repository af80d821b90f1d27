package evento

import (
	"time"

	"gorm.io/gorm"
)

// Evento só nasce de um contrato assinado. O suporte responsável começa vazio
// e é atribuído depois pela gestão.
type Evento struct {
	gorm.Model
	DataInicio    time.Time `json:"dataInicio" gorm:"not null"`
	DataFim       time.Time `json:"dataFim" gorm:"not null"`
	Local         string    `json:"local"`
	Participantes int       `json:"participantes"`
	Nota          string    `json:"nota"`
	ContratoID    uint      `json:"contratoId" gorm:"not null;index"`
	SuporteID     *uint     `json:"suporteId" gorm:"index"`
}
