package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
)

// WebhookNotificador envia cada alerta para uma URL externa via POST.
type WebhookNotificador struct {
	URL    string
	Client *http.Client
}

func NovoWebhookNotificador(url string) *WebhookNotificador {
	return &WebhookNotificador{URL: url, Client: http.DefaultClient}
}

func (n *WebhookNotificador) Publicar(a Alerta) {
	body, _ := json.Marshal(a)

	resp, err := n.Client.Post(n.URL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}

// Multi repassa o alerta a todos os notificadores registrados.
type Multi []Notificador

func (m Multi) Publicar(a Alerta) {
	for _, n := range m {
		n.Publicar(a)
	}
}
