package notificacao

import "github.com/rs/zerolog"

// LogNotificador escreve cada alerta como evento estruturado.
type LogNotificador struct {
	logger zerolog.Logger
}

func NovoLogNotificador(logger zerolog.Logger) *LogNotificador {
	return &LogNotificador{logger: logger}
}

func (n *LogNotificador) Publicar(a Alerta) {
	n.logger.Info().
		Str("tipo", a.Tipo).
		Uint("recursoId", a.RecursoID).
		Str("ator", a.AtorEmail).
		Time("ocorridoEm", a.OcorridoEm).
		Msg(a.Mensagem)
}
