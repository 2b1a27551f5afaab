package catalog

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes attaches the catalog CRUD endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.ListEmployees)
		r.Post("/", h.CreateEmployee)
		r.Put("/{id}", h.UpdateEmployee)
		r.Delete("/{id}", h.DeleteEmployee)
	})
	r.Route("/wires", func(r chi.Router) {
		r.Get("/", h.ListWires)
		r.Post("/", h.CreateWire)
		r.Put("/{id}", h.UpdateWire)
		r.Delete("/{id}", h.DeleteWire)
	})
	r.Route("/motors", func(r chi.Router) {
		r.Get("/", h.ListMotors)
		r.Get("/find", h.FindMotor)
		r.Post("/", h.CreateMotor)
		r.Put("/{id}", h.UpdateMotor)
		r.Delete("/{id}", h.DeleteMotor)
	})
	r.Route("/bearings", func(r chi.Router) {
		r.Get("/", h.ListBearings)
		r.Post("/", h.CreateBearing)
		r.Put("/{id}", h.UpdateBearing)
		r.Delete("/{id}", h.DeleteBearing)
	})
}
