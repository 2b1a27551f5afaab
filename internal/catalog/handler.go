package catalog

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/atelier-erp/atelier-erp/internal/platform/httpx"
)

// Handler serves the catalog CRUD surface.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler wires the catalog handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) respondErr(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.RespondError(w, httpx.ErrNotFound)
	case errors.Is(err, ErrDuplicate):
		httpx.RespondError(w, httpx.ErrDuplicate)
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

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListEmployees(r.Context())
	if err != nil {
		h.respondErr(w, "list employees", err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	created, err := h.service.CreateEmployee(r.Context(), Employee{
		Name:        req.Name,
		HourlyRate:  req.HourlyRate,
		Description: req.Description,
	})
	if err != nil {
		h.respondErr(w, "create employee", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req UpdateEmployeeRequest
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	updated, err := h.service.UpdateEmployee(r.Context(), chi.URLParam(r, "id"), Employee{
		Name:        req.Name,
		HourlyRate:  req.HourlyRate,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.respondErr(w, "update employee", err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteEmployee(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondErr(w, "delete employee", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListWires(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListWires(r.Context())
	if err != nil {
		h.respondErr(w, "list wires", err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) CreateWire(w http.ResponseWriter, r *http.Request) {
	var req CreateWireRequest
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	created, err := h.service.CreateWire(r.Context(), Wire{
		Brand:          req.Brand,
		CrossSection:   req.CrossSection,
		InsulationType: req.InsulationType,
		VoltageRating:  req.VoltageRating,
		PricePerMeter:  req.PricePerMeter,
		Description:    req.Description,
	})
	if err != nil {
		h.respondErr(w, "create wire", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateWire(w http.ResponseWriter, r *http.Request) {
	var req UpdateWireRequest
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	updated, err := h.service.UpdateWire(r.Context(), chi.URLParam(r, "id"), Wire{
		Brand:          req.Brand,
		CrossSection:   req.CrossSection,
		InsulationType: req.InsulationType,
		VoltageRating:  req.VoltageRating,
		PricePerMeter:  req.PricePerMeter,
		Description:    req.Description,
		IsActive:       req.IsActive,
	})
	if err != nil {
		h.respondErr(w, "update wire", err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteWire(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteWire(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondErr(w, "delete wire", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListMotors(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListMotors(r.Context())
	if err != nil {
		h.respondErr(w, "list motors", err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

// FindMotor resolves a motor by its electrical ratings from query params.
func (h *Handler) FindMotor(w http.ResponseWriter, r *http.Request) {
	powerKW, err1 := strconv.ParseFloat(r.URL.Query().Get("power_kw"), 64)
	rpm, err2 := strconv.ParseFloat(r.URL.Query().Get("rpm"), 64)
	voltage, err3 := strconv.ParseFloat(r.URL.Query().Get("voltage"), 64)
	if err1 != nil || err2 != nil || err3 != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	motor, err := h.service.FindMotorBySpecs(r.Context(), powerKW, rpm, voltage)
	if err != nil {
		h.respondErr(w, "find motor", err)
		return
	}
	if motor == nil {
		httpx.RespondError(w, httpx.ErrNotFound)
		return
	}
	httpx.JSON(w, http.StatusOK, motor)
}

func (h *Handler) CreateMotor(w http.ResponseWriter, r *http.Request) {
	var req CreateMotorRequest
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	created, err := h.service.CreateMotor(r.Context(), Motor{
		Name:         req.Name,
		PowerKW:      req.PowerKW,
		RPM:          req.RPM,
		Voltage:      req.Voltage,
		Current:      req.Current,
		Efficiency:   req.Efficiency,
		PricePerUnit: req.PricePerUnit,
		Description:  req.Description,
		Manufacturer: req.Manufacturer,
	})
	if err != nil {
		h.respondErr(w, "create motor", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateMotor(w http.ResponseWriter, r *http.Request) {
	var req UpdateMotorRequest
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	updated, err := h.service.UpdateMotor(r.Context(), chi.URLParam(r, "id"), Motor{
		Name:         req.Name,
		PowerKW:      req.PowerKW,
		RPM:          req.RPM,
		Voltage:      req.Voltage,
		Current:      req.Current,
		Efficiency:   req.Efficiency,
		PricePerUnit: req.PricePerUnit,
		Description:  req.Description,
		Manufacturer: req.Manufacturer,
		IsActive:     req.IsActive,
	})
	if err != nil {
		h.respondErr(w, "update motor", err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteMotor(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteMotor(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondErr(w, "delete motor", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListBearings(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListBearings(r.Context())
	if err != nil {
		h.respondErr(w, "list bearings", err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) CreateBearing(w http.ResponseWriter, r *http.Request) {
	var req CreateBearingRequest
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	created, err := h.service.CreateBearing(r.Context(), Bearing{
		Designation:   req.Designation,
		InnerDiameter: req.InnerDiameter,
		OuterDiameter: req.OuterDiameter,
		Width:         req.Width,
		BearingType:   req.BearingType,
		SealType:      req.SealType,
		Manufacturer:  req.Manufacturer,
		PricePerUnit:  req.PricePerUnit,
		Description:   req.Description,
	})
	if err != nil {
		h.respondErr(w, "create bearing", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateBearing(w http.ResponseWriter, r *http.Request) {
	var req UpdateBearingRequest
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	updated, err := h.service.UpdateBearing(r.Context(), chi.URLParam(r, "id"), Bearing{
		Designation:   req.Designation,
		InnerDiameter: req.InnerDiameter,
		OuterDiameter: req.OuterDiameter,
		Width:         req.Width,
		BearingType:   req.BearingType,
		SealType:      req.SealType,
		Manufacturer:  req.Manufacturer,
		PricePerUnit:  req.PricePerUnit,
		Description:   req.Description,
		IsActive:      req.IsActive,
	})
	if err != nil {
		h.respondErr(w, "update bearing", err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteBearing(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteBearing(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondErr(w, "delete bearing", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
