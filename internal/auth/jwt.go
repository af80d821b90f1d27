package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/epicevents/api-crm/internal/permissoes"
)

// Tempo de vida padrão do access token.
const TTLPadrao = 30 * time.Minute

// Claims do token: identidade mínima para montar o Ator de cada requisição.
type Claims struct {
	ColaboradorID uint   `json:"colaboradorId"`
	Email         string `json:"email"`
	Cargo         string `json:"cargo"`
	jwt.RegisteredClaims
}

// GerarToken emite um JWT HS256 para o ator autenticado.
func GerarToken(secret []byte, ator permissoes.Ator, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = TTLPadrao
	}
	now := time.Now()
	claims := &Claims{
		ColaboradorID: ator.ColaboradorID,
		Email:         ator.Email,
		Cargo:         string(ator.Cargo),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ator.Email,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidarToken valida o token e devolve o Ator correspondente.
func ValidarToken(secret []byte, tokenStr string) (permissoes.Ator, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return permissoes.Ator{}, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return permissoes.Ator{}, fmt.Errorf("não foi possível extrair claims")
	}
	return permissoes.Ator{
		ColaboradorID: claims.ColaboradorID,
		Email:         claims.Email,
		Cargo:         permissoes.Cargo(claims.Cargo),
	}, nil
}
