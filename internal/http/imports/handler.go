package imports

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/manchego/internal/account"
	"github.com/MrJamesThe3rd/manchego/internal/audit"
	"github.com/MrJamesThe3rd/manchego/internal/http/auth"
	"github.com/MrJamesThe3rd/manchego/internal/importer"
)

type Handler struct {
	svc *importer.Service

	// one run at a time per process
	mu sync.Mutex
}

func NewHandler(svc *importer.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/pending", h.pending)
	r.Post("/", h.run)
	r.With(requireJSON).Post("/label", h.label)
}

func requireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "" && ct != "application/json" {
			http.Error(w, "content type must be application/json", http.StatusUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) pending(w http.ResponseWriter, _ *http.Request) {
	files, err := h.svc.Pending()
	if err != nil {
		slog.Error("failed to list intake", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, files)
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	opID := audit.NewOperationID("transactions_import")
	slog.Info("import requested", "operation_id", opID, "subject", auth.Subject(r.Context()))

	summary, err := h.svc.Run(r.Context(), opID)
	if err != nil {
		slog.Error("import failed", "operation_id", opID, "error", err)
		http.Error(w, "import failed: "+err.Error(), http.StatusInternalServerError)

		return
	}

	status := http.StatusOK
	if !summary.Success {
		status = http.StatusMultiStatus
	}

	writeJSON(w, status, summary)
}

type labelRequest struct {
	File  string `json:"file"`
	Label string `json:"label"`
}

type labelResponse struct {
	File    string `json:"file"`
	Renamed string `json:"renamed"`
}

func (h *Handler) label(w http.ResponseWriter, r *http.Request) {
	var req labelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	renamed, err := h.svc.Label(req.File, req.Label)
	if err != nil {
		http.Error(w, err.Error(), labelStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, labelResponse{File: req.File, Renamed: renamed})
}

func labelStatus(err error) int {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(err, fs.ErrExist):
		return http.StatusConflict
	case errors.Is(err, account.ErrUnknownLabel),
		errors.Is(err, importer.ErrInvalidName),
		errors.Is(err, importer.ErrAlreadyLabeled),
		errors.Is(err, importer.ErrLabelConflict):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
