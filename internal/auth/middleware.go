package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/epicevents/api-crm/internal/permissoes"
)

type ctxKey string

const ctxAtor ctxKey = "ator"

// MiddlewareAutenticacao resolve o bearer token em um Ator e o injeta no
// contexto da requisição. Rotas atrás dele sempre encontram um ator.
func MiddlewareAutenticacao(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				http.Error(w, "Token ausente", http.StatusUnauthorized)
				return
			}
			raw := strings.TrimPrefix(h, "Bearer ")
			ator, err := ValidarToken(secret, raw)
			if err != nil {
				http.Error(w, "Token inválido", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), ctxAtor, ator)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AtorDoContexto devolve o ator autenticado da requisição.
func AtorDoContexto(ctx context.Context) (permissoes.Ator, bool) {
	ator, ok := ctx.Value(ctxAtor).(permissoes.Ator)
	return ator, ok
}

// ComAtor injeta um ator no contexto. Usado pelos testes de handler.
func ComAtor(ctx context.Context, ator permissoes.Ator) context.Context {
	return context.WithValue(ctx, ctxAtor, ator)
}
