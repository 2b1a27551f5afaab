// Package board holds the assembly state of one editing session: the
// unallocated pool of raw repair items plus the positions the user has
// put together, with the drag/drop and group-edit operations over them.
package board

import (
	"github.com/atelier-erp/atelier-erp/internal/repair"
)

// Position is a user-assembled billing unit. Totals are derived from the
// constituent items on every mutation, never stored authoritatively.
type Position struct {
	ID             string        `json:"id"`
	Service        string        `json:"service"`
	PositionNumber int           `json:"positionNumber"`
	Items          []repair.Item `json:"items"`
	TotalPrice     float64       `json:"totalPrice"`
	TotalIncome    float64       `json:"totalIncome"`
	TotalExpense   float64       `json:"totalExpense"`
	// Analytics1 overrides every constituent's own document reference
	// at export time when set.
	Analytics1 string `json:"analytics1,omitempty"`
}

func (p *Position) recalcTotals() {
	p.TotalIncome = 0
	p.TotalExpense = 0
	for _, it := range p.Items {
		if it.IsExpense() {
			if it.Revenue < 0 {
				p.TotalExpense -= it.Revenue
			} else {
				p.TotalExpense += it.Revenue
			}
			continue
		}
		p.TotalIncome += it.Revenue
	}
	p.TotalPrice = p.TotalIncome - p.TotalExpense
}

// Groups returns the position's items folded by base name, the same view
// the unallocated pool renders.
func (p *Position) Groups() []repair.GroupedItem {
	return repair.Group(p.Items)
}

func (p *Position) group(key string) (repair.GroupedItem, bool) {
	for _, g := range repair.Group(p.Items) {
		if repair.BasePositionName(g.PositionName) == key {
			return g, true
		}
	}
	return repair.GroupedItem{}, false
}

func (p *Position) removeByID(ids map[string]bool) []repair.Item {
	var removed, kept []repair.Item
	for _, it := range p.Items {
		if ids[it.ID] {
			removed = append(removed, it)
			continue
		}
		kept = append(kept, it)
	}
	p.Items = kept
	p.recalcTotals()
	return removed
}
