package colaborador

import (
	"gorm.io/gorm"

	"github.com/epicevents/api-crm/internal/cargo"
)

// Colaborador é um funcionário da empresa com acesso ao sistema.
type Colaborador struct {
	gorm.Model
	Nome    string      `json:"nome" gorm:"not null"`
	Email   string      `json:"email" gorm:"unique;not null"`
	Senha   string      `json:"-" gorm:"not null"`
	CargoID uint        `json:"cargoId" gorm:"not null;index"`
	Cargo   cargo.Cargo `json:"cargo" gorm:"foreignKey:CargoID"`
}
