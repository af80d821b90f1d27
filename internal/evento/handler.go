package evento

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/epicevents/api-crm/internal/apperrors"
	"github.com/epicevents/api-crm/internal/auth"
)

type Handler struct {
	Service *Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Service: NewService(db)}
}

// POST /eventos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var input CriarInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		apperrors.WriteJSON(w, apperrors.InvalidInputf("payload inválido"))
		return
	}

	ator, ok := auth.AtorDoContexto(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}

	e, err := h.Service.Criar(input, ator)
	if err != nil {
		apperrors.WriteJSON(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(e)
}

// PUT /eventos/{id}
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

	e, err := h.Service.Atualizar(uint(id), input, ator)
	if err != nil {
		apperrors.WriteJSON(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(e)
}

// GET /eventos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	e, err := h.Service.BuscarPorID(uint(id))
	if err != nil {
		apperrors.WriteJSON(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(e)
}

// GET /eventos?filtro=sem-suporte|meus
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	ator, ok := auth.AtorDoContexto(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}

	var (
		eventos []Evento
		err     error
	)
	switch r.URL.Query().Get("filtro") {
	case "sem-suporte":
		eventos, err = h.Service.ListarSemSuporte(ator)
	case "meus":
		eventos, err = h.Service.ListarDoSuporteAtual(ator)
	default:
		eventos, err = h.Service.ListarTodos()
	}
	if err != nil {
		apperrors.WriteJSON(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(eventos)
}
