package evento

import "time"

// CriarInput carrega os dados de criação de um evento.
type CriarInput struct {
	DataInicio    time.Time `json:"dataInicio"`
	DataFim       time.Time `json:"dataFim"`
	Local         string    `json:"local"`
	Participantes int       `json:"participantes"`
	Nota          string    `json:"nota"`
	ContratoID    uint      `json:"contratoId"`
}

// AtualizarInput carrega alterações parciais. Campo nil mantém o valor atual.
// SuporteID preenchido é uma reatribuição de suporte: exclusiva da gestão.
type AtualizarInput struct {
	DataInicio    *time.Time `json:"dataInicio"`
	DataFim       *time.Time `json:"dataFim"`
	Local         *string    `json:"local"`
	Participantes *int       `json:"participantes"`
	Nota          *string    `json:"nota"`
	SuporteID     *uint      `json:"suporteId"`
}
