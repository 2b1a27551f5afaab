package board

import (
	"github.com/atelier-erp/atelier-erp/internal/repair"
)

type CreateBoardRequest struct {
	Items []repair.Item `json:"items" validate:"required"`
}

// TemplateRequest identifies the category/work-type bucket an item is
// being added to.
type TemplateRequest struct {
	SalaryGoods string `json:"salaryGoods" validate:"required,max=200"`
	WorkType    string `json:"workType" validate:"max=200"`
}

type ManualItemRequest struct {
	TemplateRequest
	PositionName string `json:"positionName" validate:"required,max=500"`
}

type EmployeeItemRequest struct {
	TemplateRequest
	EmployeeID string  `json:"employeeId" validate:"required,uuid"`
	Hours      float64 `json:"hours" validate:"required,gt=0"`
}

type WireItemRequest struct {
	TemplateRequest
	WireID string  `json:"wireId" validate:"required,uuid"`
	Length float64 `json:"length" validate:"required,gt=0"`
}

type MotorItemRequest struct {
	TemplateRequest
	MotorID  string  `json:"motorId" validate:"required,uuid"`
	Quantity float64 `json:"quantity" validate:"required,gt=0"`
}

type BearingItemRequest struct {
	TemplateRequest
	BearingID string  `json:"bearingId" validate:"required,uuid"`
	Quantity  float64 `json:"quantity" validate:"required,gt=0"`
}

type CreatePositionRequest struct {
	GroupKey string `json:"groupKey" validate:"required"`
	Service  string `json:"service" validate:"max=500"`
}

type DocumentRequest struct {
	Document string `json:"document" validate:"max=500"`
}

type DragStartRequest struct {
	GroupKey string `json:"groupKey" validate:"required"`
	Origin   string `json:"origin" validate:"required"`
}

type DragTargetRequest struct {
	Target string `json:"target" validate:"required"`
}

type QuantityRequest struct {
	GroupKey string `json:"groupKey" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// Price and hours edits carry raw text: the panel forwards whatever was
// typed and unparsable input is a silent no-op.
type GroupValueRequest struct {
	GroupKey string `json:"groupKey" validate:"required"`
	Value    string `json:"value"`
}

// View is the full snapshot returned after every mutation, mirroring the
// panel's rendered state.
type View struct {
	ID          string             `json:"id"`
	Unallocated repair.Partitioned `json:"unallocated"`
	Positions   []*Position        `json:"positions"`
	Drag        *DragState         `json:"drag,omitempty"`
}

// Snapshot renders the board for the client. Positions and drag state
// are copied, so the view stays stable after the caller releases the
// session lock and the board mutates underneath.
func Snapshot(b *Board) View {
	positions := make([]*Position, 0, len(b.Positions))
	for _, p := range b.Positions {
		cp := *p
		cp.Items = append([]repair.Item(nil), p.Items...)
		positions = append(positions, &cp)
	}
	var drag *DragState
	if b.drag != nil {
		d := *b.drag
		drag = &d
	}
	return View{
		ID:          b.ID,
		Unallocated: b.UnallocatedView(),
		Positions:   positions,
		Drag:        drag,
	}
}
