package colaborador

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/epicevents/api-crm/internal/apperrors"
	"github.com/epicevents/api-crm/internal/auth"
	"github.com/epicevents/api-crm/internal/notificacao"
	"github.com/epicevents/api-crm/internal/permissoes"
	"github.com/epicevents/api-crm/internal/utils"
)

type Handler struct {
	Service   *Service
	JWTSecret []byte
	TokenTTL  time.Duration
}

func NewHandler(db *gorm.DB, notificador notificacao.Notificador, jwtSecret []byte, tokenTTL time.Duration) *Handler {
	return &Handler{
		Service:   NewService(db, notificador),
		JWTSecret: jwtSecret,
		TokenTTL:  tokenTTL,
	}
}

// POST /login — gera um JWT para credenciais válidas.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.WriteJSON(w, apperrors.InvalidInputf("payload inválido"))
		return
	}

	c, err := h.Service.Repository.BuscarPorEmail(h.Service.DB, req.Email)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.VerificarSenha(c.Senha, req.Senha) {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	ator := permissoes.Ator{
		ColaboradorID: c.ID,
		Email:         c.Email,
		Cargo:         permissoes.Cargo(c.Cargo.Nome),
	}
	token, err := auth.GerarToken(h.JWTSecret, ator, h.TokenTTL)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// POST /colaboradores
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.WriteJSON(w, apperrors.InvalidInputf("payload inválido"))
		return
	}

	ator, ok := auth.AtorDoContexto(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}

	c, err := h.Service.Criar(req.Nome, req.Email, req.Senha, req.Cargo, ator)
	if err != nil {
		apperrors.WriteJSON(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// PUT /colaboradores/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var input AtualizarInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		apperrors.WriteJSON(w, apperrors.InvalidInputf("payload inválido"))
		return
	}

	ator, ok := auth.AtorDoContexto(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}

	c, err := h.Service.Atualizar(uint(id), input, ator)
	if err != nil {
		apperrors.WriteJSON(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// DELETE /colaboradores/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	ator, ok := auth.AtorDoContexto(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}

	if err := h.Service.Deletar(uint(id), ator); err != nil {
		apperrors.WriteJSON(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /colaboradores/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	c, err := h.Service.BuscarPorID(uint(id))
	if err != nil {
		apperrors.WriteJSON(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// GET /colaboradores
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	colaboradores, err := h.Service.ListarTodos()
	if err != nil {
		apperrors.WriteJSON(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(colaboradores)
}
