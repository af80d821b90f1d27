package cliente

import (
	"time"

	"gorm.io/gorm"
)

// Cliente pertence a exatamente um comercial, fixado na criação.
type Cliente struct {
	gorm.Model
	Nome          string     `json:"nome" gorm:"not null"`
	Email         string     `json:"email" gorm:"unique;not null"`
	Telefone      string     `json:"telefone"`
	Empresa       string     `json:"empresa"`
	DataCriacao   time.Time  `json:"dataCriacao"`
	UltimoContato *time.Time `json:"ultimoContato"`
	ComercialID   uint       `json:"comercialId" gorm:"not null;index"`
}
