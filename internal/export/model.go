// Package export persists finished positions to the backing store in two
// phases: position headers first, then the flattened item rows in
// batches.
package export

import (
	"time"

	"github.com/atelier-erp/atelier-erp/internal/repair"
)

// SavedPosition is the persisted header of an exported position.
type SavedPosition struct {
	ID             string    `json:"id" db:"id"`
	PositionNumber int       `json:"position_number" db:"position_number"`
	Service        string    `json:"service" db:"service"`
	TotalPrice     float64   `json:"total_price" db:"total_price"`
	TotalIncome    float64   `json:"total_income" db:"total_income"`
	TotalExpense   float64   `json:"total_expense" db:"total_expense"`
	ItemsCount     int       `json:"items_count" db:"items_count"`
	ExportDate     time.Time `json:"export_date" db:"export_date"`
}

// SavedPositionItem is one flattened constituent row. ItemData carries
// the full raw line denormalized as jsonb; Document is the resolved
// reference: the position-level override when set, else the item's own
// analytics1.
type SavedPositionItem struct {
	ID                string      `json:"id" db:"id"`
	PositionID        string      `json:"position_id" db:"position_id"`
	ItemData          repair.Item `json:"item_data" db:"item_data"`
	PositionName      string      `json:"position_name" db:"position_name"`
	Revenue           float64     `json:"revenue" db:"revenue"`
	Quantity          float64     `json:"quantity" db:"quantity"`
	IncomeExpenseType string      `json:"income_expense_type" db:"income_expense_type"`
	WorkType          string      `json:"work_type" db:"work_type"`
	SalaryGoods       string      `json:"salary_goods" db:"salary_goods"`
	Document          string      `json:"document" db:"document"`
	CreatedAt         time.Time   `json:"created_at" db:"created_at"`
}

// Result is the summary the export always resolves to, success or not.
type Result struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	SavedCount int    `json:"savedCount"`
}
