package cargo

import "gorm.io/gorm"

// Cargo é o papel funcional de um colaborador. O conjunto de nomes é fechado:
// management, commercial e support; a criação rejeita qualquer outro valor.
type Cargo struct {
	gorm.Model
	Nome string `json:"nome" gorm:"unique;not null"`
}
