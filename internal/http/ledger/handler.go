package ledger

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/manchego/internal/account"
	"github.com/MrJamesThe3rd/manchego/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/count", h.count)
}

type countResponse struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// count reports how many entries were imported from one canonical file name.
func (h *Handler) count(w http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")
	if source == "" {
		http.Error(w, "source is required", http.StatusBadRequest)
		return
	}

	n, err := h.svc.CountBySource(r.Context(), source)
	if err != nil {
		slog.Error("failed to count ledger entries", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(countResponse{Source: source, Count: n}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := ledger.Filter{SourceFilename: q.Get("source")}

	if s := q.Get("account"); s != "" {
		label, err := account.Parse(s)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		// Parse only accepts known labels
		filter.AccountID, _ = account.ID(label)
	}

	for param, dst := range map[string]*string{"start_date": &filter.StartDate, "end_date": &filter.EndDate} {
		s := q.Get(param)
		if s == "" {
			continue
		}

		if _, err := time.Parse(time.DateOnly, s); err != nil {
			http.Error(w, "invalid "+param, http.StatusBadRequest)
			return
		}

		*dst = s
	}

	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}

		filter.Limit = n
	}

	entries, err := h.svc.List(r.Context(), filter)
	if err != nil {
		slog.Error("failed to list ledger", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(entries)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
