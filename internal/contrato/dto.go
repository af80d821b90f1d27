package contrato

// CriarInput carrega os dados de criação de um contrato.
type CriarInput struct {
	ValorTotal    float64 `json:"valorTotal"`
	ValorRestante float64 `json:"valorRestante"`
	Assinado      bool    `json:"assinado"`
	ClienteID     uint    `json:"clienteId"`
	ComercialID   uint    `json:"comercialId"`
}

// AtualizarInput carrega alterações parciais. Campo nil mantém o valor atual.
type AtualizarInput struct {
	ValorTotal    *float64 `json:"valorTotal"`
	ValorRestante *float64 `json:"valorRestante"`
	Assinado      *bool    `json:"assinado"`
	ClienteID     *uint    `json:"clienteId"`
	ComercialID   *uint    `json:"comercialId"`
}
