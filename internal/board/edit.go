package board

import (
	"strconv"
	"strings"

	"github.com/atelier-erp/atelier-erp/internal/repair"
)

// ChangeQuantity resizes an aggregate inside a position. Shrinking
// returns the surplus constituents to the pool; growing pulls matching
// constituents from the pool and fails when not enough are available.
func (b *Board) ChangeQuantity(positionID, groupKey string, quantity int) error {
	if quantity < 1 {
		return ErrQuantityBound
	}
	pos, ok := b.Position(positionID)
	if !ok {
		return ErrPositionNotFound
	}
	g, ok := pos.group(groupKey)
	if !ok {
		return ErrGroupNotFound
	}
	current := g.Size()
	switch {
	case quantity == current:
		return nil
	case quantity < current:
		surplus := make(map[string]bool, current-quantity)
		for _, id := range g.GroupedIDs[quantity:] {
			surplus[id] = true
		}
		b.Pool = append(b.Pool, pos.removeByID(surplus)...)
	default:
		need := quantity - current
		if need > b.MaxAvailable(groupKey) {
			return ErrQuantityBound
		}
		pos.Items = append(pos.Items, b.takeFromPool(groupKey, need)...)
		pos.recalcTotals()
	}
	return nil
}

// EditGroupPrice distributes a new group total evenly over the members.
// Расходы members keep a negative revenue whatever sign was typed. Raw
// input that does not parse as a number leaves the position untouched.
func (b *Board) EditGroupPrice(positionID, groupKey, raw string) error {
	total, ok := parseAmount(raw)
	if !ok {
		return nil
	}
	pos, okPos := b.Position(positionID)
	if !okPos {
		return ErrPositionNotFound
	}
	g, okGroup := pos.group(groupKey)
	if !okGroup {
		return ErrGroupNotFound
	}
	share := total / float64(g.Size())
	member := make(map[string]bool, len(g.GroupedIDs))
	for _, id := range g.GroupedIDs {
		member[id] = true
	}
	for i := range pos.Items {
		if !member[pos.Items[i].ID] {
			continue
		}
		// Расходы members always carry a negative revenue; Доходы
		// members take the typed share as is, sign included.
		if pos.Items[i].IsExpense() {
			pos.Items[i].Revenue = -absFloat(share)
		} else {
			pos.Items[i].Revenue = share
		}
		pos.Items[i].SumWithoutVAT = pos.Items[i].Revenue
	}
	pos.recalcTotals()
	return nil
}

// EditGroupHours rewrites the hours annotation of a labor group. Every
// member receives the same value; revenue stays as is. Only groups whose
// members classify as employee cards are editable this way. Bad input
// aborts without touching anything.
func (b *Board) EditGroupHours(positionID, groupKey, raw string) error {
	hours, ok := parseAmount(raw)
	if !ok || hours <= 0 {
		return nil
	}
	pos, okPos := b.Position(positionID)
	if !okPos {
		return ErrPositionNotFound
	}
	g, okGroup := pos.group(groupKey)
	if !okGroup {
		return ErrGroupNotFound
	}
	member := make(map[string]bool, len(g.GroupedIDs))
	for _, id := range g.GroupedIDs {
		member[id] = true
	}
	for i := range pos.Items {
		if !member[pos.Items[i].ID] {
			continue
		}
		if !repair.IsEmployeeCard(pos.Items[i]) {
			return nil
		}
	}
	for i := range pos.Items {
		if !member[pos.Items[i].ID] {
			continue
		}
		pos.Items[i].PositionName = repair.ReplaceEmployeeHours(pos.Items[i].PositionName, hours)
	}
	return nil
}

// parseAmount accepts the panel's raw text input, tolerating a decimal
// comma and surrounding whitespace.
func parseAmount(raw string) (float64, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
