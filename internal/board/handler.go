package board

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/atelier-erp/atelier-erp/internal/catalog"
	"github.com/atelier-erp/atelier-erp/internal/platform/httpx"
	"github.com/atelier-erp/atelier-erp/internal/repair"
)

// Handler exposes the board session API.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler wires the board handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) respondErr(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrBoardNotFound),
		errors.Is(err, ErrPositionNotFound),
		errors.Is(err, ErrGroupNotFound),
		errors.Is(err, catalog.ErrNotFound):
		httpx.RespondError(w, httpx.ErrNotFound)
	case errors.Is(err, ErrQuantityBound),
		errors.Is(err, ErrNoDrag),
		errors.Is(err, repair.ErrBadQuantity):
		httpx.RespondError(w, httpx.ErrValidation)
	default:
		h.logger.Error(op, slog.Any("error", err))
		httpx.RespondError(w, err)
	}
}

func (h *Handler) decodeValid(r *http.Request, dest any) error {
	if err := httpx.DecodeJSON(r, dest); err != nil {
		return httpx.ErrValidation
	}
	if err := h.validate.Struct(dest); err != nil {
		return httpx.ErrValidation
	}
	return nil
}

// respondView re-reads the board and returns the full snapshot the panel
// renders after a mutation. The view is built under the session lock.
func (h *Handler) respondView(w http.ResponseWriter, boardID string, status int) {
	view, err := h.service.Snapshot(boardID)
	if err != nil {
		h.respondErr(w, "load board", err)
		return
	}
	httpx.JSON(w, status, view)
}

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var req CreateBoardRequest
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	b := h.service.CreateBoard(req.Items)
	h.respondView(w, b.ID, http.StatusCreated)
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	h.respondView(w, chi.URLParam(r, "boardID"), http.StatusOK)
}

func (h *Handler) CloseBoard(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CloseBoard(chi.URLParam(r, "boardID")); err != nil {
		h.respondErr(w, "close board", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddTemplate(w http.ResponseWriter, r *http.Request) {
	var req TemplateRequest
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	boardID := chi.URLParam(r, "boardID")
	if _, err := h.service.AddTemplate(boardID, req.SalaryGoods, req.WorkType); err != nil {
		h.respondErr(w, "add template", err)
		return
	}
	h.respondView(w, boardID, http.StatusCreated)
}

func (h *Handler) AddManualItem(w http.ResponseWriter, r *http.Request) {
	var req ManualItemRequest
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	boardID := chi.URLParam(r, "boardID")
	if _, err := h.service.AddManualItem(boardID, req.SalaryGoods, req.WorkType, req.PositionName); err != nil {
		h.respondErr(w, "add manual item", err)
		return
	}
	h.respondView(w, boardID, http.StatusCreated)
}

func (h *Handler) AddEmployeeItem(w http.ResponseWriter, r *http.Request) {
	var req EmployeeItemRequest
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	boardID := chi.URLParam(r, "boardID")
	_, err := h.service.AddEmployeeItem(r.Context(), boardID, req.SalaryGoods, req.WorkType, req.EmployeeID, req.Hours)
	if err != nil {
		h.respondErr(w, "add employee item", err)
		return
	}
	h.respondView(w, boardID, http.StatusCreated)
}

func (h *Handler) AddWireItem(w http.ResponseWriter, r *http.Request) {
	var req WireItemRequest
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	boardID := chi.URLParam(r, "boardID")
	_, err := h.service.AddWireItem(r.Context(), boardID, req.SalaryGoods, req.WorkType, req.WireID, req.Length)
	if err != nil {
		h.respondErr(w, "add wire item", err)
		return
	}
	h.respondView(w, boardID, http.StatusCreated)
}

func (h *Handler) AddMotorItem(w http.ResponseWriter, r *http.Request) {
	var req MotorItemRequest
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	boardID := chi.URLParam(r, "boardID")
	_, err := h.service.AddMotorItem(r.Context(), boardID, req.SalaryGoods, req.WorkType, req.MotorID, req.Quantity)
	if err != nil {
		h.respondErr(w, "add motor item", err)
		return
	}
	h.respondView(w, boardID, http.StatusCreated)
}

func (h *Handler) AddBearingItem(w http.ResponseWriter, r *http.Request) {
	var req BearingItemRequest
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	boardID := chi.URLParam(r, "boardID")
	_, err := h.service.AddBearingItem(r.Context(), boardID, req.SalaryGoods, req.WorkType, req.BearingID, req.Quantity)
	if err != nil {
		h.respondErr(w, "add bearing item", err)
		return
	}
	h.respondView(w, boardID, http.StatusCreated)
}

func (h *Handler) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var req CreatePositionRequest
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	boardID := chi.URLParam(r, "boardID")
	err := h.service.WithBoard(boardID, func(b *Board) error {
		_, err := b.CreatePositionFromGroup(req.GroupKey, req.Service)
		return err
	})
	if err != nil {
		h.respondErr(w, "create position", err)
		return
	}
	h.respondView(w, boardID, http.StatusCreated)
}

func (h *Handler) RemovePosition(w http.ResponseWriter, r *http.Request) {
	boardID := chi.URLParam(r, "boardID")
	err := h.service.WithBoard(boardID, func(b *Board) error {
		return b.RemovePosition(chi.URLParam(r, "positionID"))
	})
	if err != nil {
		h.respondErr(w, "remove position", err)
		return
	}
	h.respondView(w, boardID, http.StatusOK)
}

func (h *Handler) SetDocument(w http.ResponseWriter, r *http.Request) {
	var req DocumentRequest
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	boardID := chi.URLParam(r, "boardID")
	err := h.service.WithBoard(boardID, func(b *Board) error {
		return b.SetPositionDocument(chi.URLParam(r, "positionID"), req.Document)
	})
	if err != nil {
		h.respondErr(w, "set document", err)
		return
	}
	h.respondView(w, boardID, http.StatusOK)
}

func (h *Handler) StartDrag(w http.ResponseWriter, r *http.Request) {
	var req DragStartRequest
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	boardID := chi.URLParam(r, "boardID")
	err := h.service.WithBoard(boardID, func(b *Board) error {
		return b.BeginDrag(req.GroupKey, req.Origin)
	})
	if err != nil {
		h.respondErr(w, "start drag", err)
		return
	}
	h.respondView(w, boardID, http.StatusOK)
}

func (h *Handler) HoverDrag(w http.ResponseWriter, r *http.Request) {
	var req DragTargetRequest
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	boardID := chi.URLParam(r, "boardID")
	err := h.service.WithBoard(boardID, func(b *Board) error {
		return b.HoverOver(req.Target)
	})
	if err != nil {
		h.respondErr(w, "hover drag", err)
		return
	}
	h.respondView(w, boardID, http.StatusOK)
}

func (h *Handler) DropDrag(w http.ResponseWriter, r *http.Request) {
	var req DragTargetRequest
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	boardID := chi.URLParam(r, "boardID")
	err := h.service.WithBoard(boardID, func(b *Board) error {
		return b.Drop(req.Target)
	})
	if err != nil {
		h.respondErr(w, "drop", err)
		return
	}
	h.respondView(w, boardID, http.StatusOK)
}

func (h *Handler) CancelDrag(w http.ResponseWriter, r *http.Request) {
	boardID := chi.URLParam(r, "boardID")
	err := h.service.WithBoard(boardID, func(b *Board) error {
		b.CancelDrag()
		return nil
	})
	if err != nil {
		h.respondErr(w, "cancel drag", err)
		return
	}
	h.respondView(w, boardID, http.StatusOK)
}

func (h *Handler) ChangeQuantity(w http.ResponseWriter, r *http.Request) {
	var req QuantityRequest
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	boardID := chi.URLParam(r, "boardID")
	err := h.service.WithBoard(boardID, func(b *Board) error {
		return b.ChangeQuantity(chi.URLParam(r, "positionID"), req.GroupKey, req.Quantity)
	})
	if err != nil {
		h.respondErr(w, "change quantity", err)
		return
	}
	h.respondView(w, boardID, http.StatusOK)
}

func (h *Handler) EditPrice(w http.ResponseWriter, r *http.Request) {
	var req GroupValueRequest
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	boardID := chi.URLParam(r, "boardID")
	err := h.service.WithBoard(boardID, func(b *Board) error {
		return b.EditGroupPrice(chi.URLParam(r, "positionID"), req.GroupKey, req.Value)
	})
	if err != nil {
		h.respondErr(w, "edit price", err)
		return
	}
	h.respondView(w, boardID, http.StatusOK)
}

func (h *Handler) EditHours(w http.ResponseWriter, r *http.Request) {
	var req GroupValueRequest
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	boardID := chi.URLParam(r, "boardID")
	err := h.service.WithBoard(boardID, func(b *Board) error {
		return b.EditGroupHours(chi.URLParam(r, "positionID"), req.GroupKey, req.Value)
	})
	if err != nil {
		h.respondErr(w, "edit hours", err)
		return
	}
	h.respondView(w, boardID, http.StatusOK)
}
