package notificacao

import "time"

// Tipos de alerta emitidos pelos serviços de domínio. A auditoria consome os
// alertas de forma independente; nenhum serviço escreve log diretamente.
const (
	TipoColaboradorCriado     = "CollaboratorCreated"
	TipoColaboradorAtualizado = "CollaboratorUpdated"
	TipoColaboradorRemovido   = "CollaboratorDeleted"
	TipoContratoAssinado      = "ContractSigned"
)

// Alerta é um evento de domínio tipado, com o ator que causou a mutação.
type Alerta struct {
	Tipo       string    `json:"tipo"`
	RecursoID  uint      `json:"recursoId"`
	AtorEmail  string    `json:"atorEmail"`
	Mensagem   string    `json:"mensagem"`
	OcorridoEm time.Time `json:"ocorridoEm"`
}

// Notificador recebe alertas emitidos pelos serviços. Falhas de entrega nunca
// interrompem a operação de negócio que originou o alerta.
type Notificador interface {
	Publicar(a Alerta)
}

// NovoAlerta monta um alerta carimbado com o horário atual.
func NovoAlerta(tipo string, recursoID uint, atorEmail, mensagem string) Alerta {
	return Alerta{
		Tipo:       tipo,
		RecursoID:  recursoID,
		AtorEmail:  atorEmail,
		Mensagem:   mensagem,
		OcorridoEm: time.Now(),
	}
}

// Silencioso descarta todos os alertas. Útil em testes.
type Silencioso struct{}

func (Silencioso) Publicar(Alerta) {}
