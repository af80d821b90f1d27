package cargo

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/epicevents/api-crm/internal/apperrors"
)

type Handler struct {
	Service *Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Service: NewService(db)}
}

// GET /cargos
func (h *Handler) ListarCargos(w http.ResponseWriter, r *http.Request) {
	cargos, err := h.Service.ListarTodos()
	if err != nil {
		apperrors.WriteJSON(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cargos)
}
