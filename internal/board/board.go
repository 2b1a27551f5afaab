package board

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/atelier-erp/atelier-erp/internal/repair"
)

// Errors surfaced by board operations. Parse-level edit failures are not
// errors: those abort silently per the panel's contract.
var (
	ErrPositionNotFound = fmt.Errorf("board: position not found")
	ErrGroupNotFound    = fmt.Errorf("board: group not found")
	ErrQuantityBound    = fmt.Errorf("board: requested quantity exceeds available items")
	ErrNoDrag           = fmt.Errorf("board: no drag in progress")
)

// Board is one editing session: the unallocated pool plus assembled
// positions. All aggregates are recomputed from the raw pool on demand.
type Board struct {
	ID         string        `json:"id"`
	Pool       []repair.Item `json:"unallocatedItems"`
	Positions  []*Position   `json:"positions"`
	nextNumber int
	drag       *DragState
}

// New creates a board seeded with the raw item pool.
func New(items []repair.Item) *Board {
	pool := make([]repair.Item, len(items))
	copy(pool, items)
	return &Board{
		ID:         uuid.NewString(),
		Pool:       pool,
		nextNumber: 1,
	}
}

// UnallocatedView returns the pool partitioned the way the panel renders
// it: category, then work type, then base-name aggregates.
func (b *Board) UnallocatedView() repair.Partitioned {
	return repair.Partition(b.Pool)
}

// AddToPool appends a synthesized or manually created item.
func (b *Board) AddToPool(it repair.Item) {
	b.Pool = append(b.Pool, it)
}

// Position finds an assembled position by id.
func (b *Board) Position(id string) (*Position, bool) {
	for _, p := range b.Positions {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// MaxAvailable counts pool items sharing the given grouping key, the
// bound quantity increases must respect.
func (b *Board) MaxAvailable(groupKey string) int {
	n := 0
	for _, it := range b.Pool {
		if repair.BasePositionName(it.PositionName) == groupKey {
			n++
		}
	}
	return n
}

// CreatePositionFromGroup moves every constituent of the pool aggregate
// identified by groupKey into a fresh position.
func (b *Board) CreatePositionFromGroup(groupKey, service string) (*Position, error) {
	members := b.takeFromPool(groupKey, -1)
	if len(members) == 0 {
		return nil, ErrGroupNotFound
	}
	pos := &Position{
		ID:             uuid.NewString(),
		Service:        service,
		PositionNumber: b.nextNumber,
		Items:          members,
	}
	if pos.Service == "" {
		pos.Service = fmt.Sprintf("Позиция %d", pos.PositionNumber)
	}
	b.nextNumber++
	pos.recalcTotals()
	b.Positions = append(b.Positions, pos)
	return pos, nil
}

// RemovePosition destroys a position and returns its constituents to the
// unallocated pool.
func (b *Board) RemovePosition(id string) error {
	for i, p := range b.Positions {
		if p.ID == id {
			b.Pool = append(b.Pool, p.Items...)
			b.Positions = append(b.Positions[:i], b.Positions[i+1:]...)
			return nil
		}
	}
	return ErrPositionNotFound
}

// SetPositionDocument sets the position-level УПД document override.
func (b *Board) SetPositionDocument(id, document string) error {
	pos, ok := b.Position(id)
	if !ok {
		return ErrPositionNotFound
	}
	pos.Analytics1 = document
	return nil
}

// takeFromPool removes up to limit pool items matching the grouping key
// (all of them when limit is negative) and returns them in pool order.
func (b *Board) takeFromPool(groupKey string, limit int) []repair.Item {
	var taken, kept []repair.Item
	for _, it := range b.Pool {
		if (limit < 0 || len(taken) < limit) && repair.BasePositionName(it.PositionName) == groupKey {
			taken = append(taken, it)
			continue
		}
		kept = append(kept, it)
	}
	b.Pool = kept
	return taken
}
