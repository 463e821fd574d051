package account

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/manchego/internal/account"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
}

type accountResponse struct {
	Label account.Label `json:"label"`
	ID    string        `json:"id"`
}

func (h *Handler) list(w http.ResponseWriter, _ *http.Request) {
	labels := account.Labels()
	resp := make([]accountResponse, 0, len(labels))

	for _, l := range labels {
		id, err := account.ID(l)
		if err != nil {
			continue
		}

		resp = append(resp, accountResponse{Label: l, ID: id})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
