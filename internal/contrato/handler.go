package contrato

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/epicevents/api-crm/internal/apperrors"
	"github.com/epicevents/api-crm/internal/auth"
	"github.com/epicevents/api-crm/internal/notificacao"
)

type Handler struct {
	Service *Service
}

func NewHandler(db *gorm.DB, notificador notificacao.Notificador) *Handler {
	return &Handler{Service: NewService(db, notificador)}
}

// POST /contratos
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

	c, err := h.Service.Criar(input, ator)
	if err != nil {
		apperrors.WriteJSON(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// PUT /contratos/{id}
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

// GET /contratos/{id}
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

// GET /contratos?filtro=assinados|nao-assinados|nao-pagos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	ator, ok := auth.AtorDoContexto(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}

	var (
		contratos []Contrato
		err       error
	)
	switch r.URL.Query().Get("filtro") {
	case "assinados":
		contratos, err = h.Service.ListarAssinados(ator)
	case "nao-assinados":
		contratos, err = h.Service.ListarNaoAssinados(ator)
	case "nao-pagos":
		contratos, err = h.Service.ListarNaoPagos(ator)
	default:
		contratos, err = h.Service.ListarTodos()
	}
	if err != nil {
		apperrors.WriteJSON(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(contratos)
}
