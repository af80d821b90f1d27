package cliente

import "time"

// AtualizarInput carrega alterações parciais. Campo nil mantém o valor atual.
type AtualizarInput struct {
	Nome          *string    `json:"nome"`
	Email         *string    `json:"email"`
	Telefone      *string    `json:"telefone"`
	Empresa       *string    `json:"empresa"`
	UltimoContato *time.Time `json:"ultimoContato"`
}

type criarRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Empresa  string `json:"empresa"`
}
