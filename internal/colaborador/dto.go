package colaborador

// AtualizarInput carrega as alterações parciais de um colaborador.
// Campo nil significa "manter como está".
type AtualizarInput struct {
	Nome  *string `json:"nome"`
	Email *string `json:"email"`
	Senha *string `json:"senha"`
	Cargo *string `json:"cargo"`
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type criarRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
	Cargo string `json:"cargo"`
}
