package board

import (
	"github.com/atelier-erp/atelier-erp/internal/repair"
)

// LocationUnallocated addresses the raw pool in drag operations; any
// other location value is a position id.
const LocationUnallocated = "unallocated"

// DragState tracks an in-flight drag of a grouped aggregate. One drag at
// a time per board; starting a new one replaces any stale state.
type DragState struct {
	GroupKey string `json:"groupKey"`
	Origin   string `json:"origin"`
	Hover    string `json:"hover,omitempty"`
}

// Drag returns the current drag state, nil when idle.
func (b *Board) Drag() *DragState {
	return b.drag
}

// BeginDrag starts dragging the aggregate identified by groupKey from
// origin (LocationUnallocated or a position id).
func (b *Board) BeginDrag(groupKey, origin string) error {
	if origin != LocationUnallocated {
		pos, ok := b.Position(origin)
		if !ok {
			return ErrPositionNotFound
		}
		if _, ok := pos.group(groupKey); !ok {
			return ErrGroupNotFound
		}
	} else if b.MaxAvailable(groupKey) == 0 {
		return ErrGroupNotFound
	}
	b.drag = &DragState{GroupKey: groupKey, Origin: origin}
	return nil
}

// HoverOver records the location currently under the dragged aggregate.
func (b *Board) HoverOver(target string) error {
	if b.drag == nil {
		return ErrNoDrag
	}
	b.drag.Hover = target
	return nil
}

// CancelDrag discards the drag without moving anything.
func (b *Board) CancelDrag() {
	b.drag = nil
}

// Drop completes the drag onto target. Dropping back onto the origin is
// a no-op; the board is untouched either way the drop fails.
func (b *Board) Drop(target string) error {
	if b.drag == nil {
		return ErrNoDrag
	}
	drag := *b.drag
	b.drag = nil
	if target == drag.Origin {
		return nil
	}
	return b.transfer(drag.GroupKey, drag.Origin, target)
}

// transfer moves every constituent of an aggregate between locations.
func (b *Board) transfer(groupKey, origin, target string) error {
	items, err := b.detach(groupKey, origin)
	if err != nil {
		return err
	}
	if err := b.attach(items, target); err != nil {
		// Restore to origin so a bad target never loses items.
		_ = b.attach(items, origin)
		return err
	}
	return nil
}

func (b *Board) detach(groupKey, origin string) ([]repair.Item, error) {
	if origin == LocationUnallocated {
		items := b.takeFromPool(groupKey, -1)
		if len(items) == 0 {
			return nil, ErrGroupNotFound
		}
		return items, nil
	}
	pos, ok := b.Position(origin)
	if !ok {
		return nil, ErrPositionNotFound
	}
	g, ok := pos.group(groupKey)
	if !ok {
		return nil, ErrGroupNotFound
	}
	ids := make(map[string]bool, len(g.GroupedIDs))
	for _, id := range g.GroupedIDs {
		ids[id] = true
	}
	return pos.removeByID(ids), nil
}

func (b *Board) attach(items []repair.Item, target string) error {
	if target == LocationUnallocated {
		b.Pool = append(b.Pool, items...)
		return nil
	}
	pos, ok := b.Position(target)
	if !ok {
		return ErrPositionNotFound
	}
	pos.Items = append(pos.Items, items...)
	pos.recalcTotals()
	return nil
}
