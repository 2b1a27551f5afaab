package board

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes attaches the board session endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.CreateBoard)
	r.Route("/{boardID}", func(r chi.Router) {
		r.Get("/", h.GetBoard)
		r.Delete("/", h.CloseBoard)

		r.Route("/items", func(r chi.Router) {
			r.Post("/template", h.AddTemplate)
			r.Post("/manual", h.AddManualItem)
			r.Post("/employee", h.AddEmployeeItem)
			r.Post("/wire", h.AddWireItem)
			r.Post("/motor", h.AddMotorItem)
			r.Post("/bearing", h.AddBearingItem)
		})

		r.Route("/positions", func(r chi.Router) {
			r.Post("/", h.CreatePosition)
			r.Route("/{positionID}", func(r chi.Router) {
				r.Delete("/", h.RemovePosition)
				r.Put("/document", h.SetDocument)
				r.Put("/quantity", h.ChangeQuantity)
				r.Put("/price", h.EditPrice)
				r.Put("/hours", h.EditHours)
			})
		})

		r.Route("/drag", func(r chi.Router) {
			r.Post("/", h.StartDrag)
			r.Put("/hover", h.HoverDrag)
			r.Post("/drop", h.DropDrag)
			r.Delete("/", h.CancelDrag)
		})
	})
}
