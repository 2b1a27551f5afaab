package export

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atelier-erp/atelier-erp/internal/board"
	"github.com/atelier-erp/atelier-erp/internal/observability"
	"github.com/atelier-erp/atelier-erp/internal/platform/httpx"
)

// Handler serves the export bridge.
type Handler struct {
	logger  *slog.Logger
	service *Service
	metrics *observability.Metrics
}

// NewHandler wires the export handler. Metrics may be nil.
func NewHandler(logger *slog.Logger, service *Service, metrics *observability.Metrics) *Handler {
	return &Handler{logger: logger, service: service, metrics: metrics}
}

type exportRequest struct {
	Positions []board.Position `json:"positions"`
}

// Export always answers 200 with a result body, success flag included,
// so the client renders the outcome without an error path.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	result := h.service.ExportPositions(r.Context(), req.Positions)
	h.metrics.ObserveExport(result.Success)
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) ListSaved(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListSaved(r.Context())
	if err != nil {
		h.logger.Error("list saved positions", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) ListSavedItems(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListSavedItems(r.Context(), chi.URLParam(r, "positionID"))
	if err != nil {
		h.logger.Error("list saved items", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) DeleteSaved(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSaved(r.Context(), chi.URLParam(r, "positionID")); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.RespondError(w, httpx.ErrNotFound)
			return
		}
		h.logger.Error("delete saved position", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MountRoutes attaches the export endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.Export)
	r.Get("/positions", h.ListSaved)
	r.Get("/positions/{positionID}/items", h.ListSavedItems)
	r.Delete("/positions/{positionID}", h.DeleteSaved)
}
