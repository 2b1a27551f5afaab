package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atelier-erp/atelier-erp/internal/platform/db"
)

// ErrNotFound is returned when a lookup or delete targets a missing row.
var ErrNotFound = errors.New("export: record not found")

// Store is the persistence contract of the export bridge.
type Store interface {
	InsertPositions(ctx context.Context, positions []SavedPosition) ([]string, error)
	InsertItems(ctx context.Context, items []SavedPositionItem) error
	ListSaved(ctx context.Context) ([]SavedPosition, error)
	ListSavedItems(ctx context.Context, positionID string) ([]SavedPositionItem, error)
	DeleteSaved(ctx context.Context, positionID string) error
}

type pgStore struct {
	db *pgxpool.Pool
}

// NewStore wires the pgx-backed export store.
func NewStore(pool *pgxpool.Pool) Store {
	return &pgStore{db: pool}
}

const savedPositionColumns = "id, position_number, service, total_price, total_income, total_expense, items_count, export_date"

// InsertPositions writes every header in one round trip and returns the
// generated ids in input order.
func (s *pgStore) InsertPositions(ctx context.Context, positions []SavedPosition) ([]string, error) {
	batch := &pgx.Batch{}
	for _, p := range positions {
		batch.Queue(`
			INSERT INTO saved_positions (position_number, service, total_price, total_income, total_expense, items_count, export_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			p.PositionNumber, p.Service, p.TotalPrice, p.TotalIncome, p.TotalExpense, p.ItemsCount, p.ExportDate)
	}
	results := s.db.SendBatch(ctx, batch)
	defer results.Close()

	ids := make([]string, 0, len(positions))
	for range positions {
		var id string
		if err := results.QueryRow().Scan(&id); err != nil {
			return nil, fmt.Errorf("insert position: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// InsertItems writes one caller-sized batch of flattened rows. Batch
// slicing is the service's job.
func (s *pgStore) InsertItems(ctx context.Context, items []SavedPositionItem) error {
	batch := &pgx.Batch{}
	for _, it := range items {
		payload, err := json.Marshal(it.ItemData)
		if err != nil {
			return fmt.Errorf("encode item data: %w", err)
		}
		batch.Queue(`
			INSERT INTO saved_position_items (position_id, item_data, position_name, revenue, quantity, income_expense_type, work_type, salary_goods, document)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			it.PositionID, payload, it.PositionName, it.Revenue, it.Quantity,
			it.IncomeExpenseType, it.WorkType, it.SalaryGoods, it.Document)
	}
	results := s.db.SendBatch(ctx, batch)
	defer results.Close()

	for range items {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert item: %w", err)
		}
	}
	return nil
}

// ListSaved returns exported positions, newest first.
func (s *pgStore) ListSaved(ctx context.Context) ([]SavedPosition, error) {
	rows, err := s.db.Query(ctx, fmt.Sprintf(
		"SELECT %s FROM saved_positions ORDER BY export_date DESC", savedPositionColumns))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SavedPosition
	for rows.Next() {
		var p SavedPosition
		var totalPrice, totalIncome, totalExpense pgtype.Numeric
		var exportDate pgtype.Timestamptz
		if err := rows.Scan(&p.ID, &p.PositionNumber, &p.Service, &totalPrice,
			&totalIncome, &totalExpense, &p.ItemsCount, &exportDate); err != nil {
			return nil, err
		}
		p.TotalPrice = numericFloat(totalPrice)
		p.TotalIncome = numericFloat(totalIncome)
		p.TotalExpense = numericFloat(totalExpense)
		p.ExportDate = exportDate.Time
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListSavedItems returns the flattened rows of one exported position in
// insertion order.
func (s *pgStore) ListSavedItems(ctx context.Context, positionID string) ([]SavedPositionItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, position_id, item_data, position_name, revenue, quantity, income_expense_type, work_type, salary_goods, document, created_at
		FROM saved_position_items
		WHERE position_id = $1
		ORDER BY created_at`, positionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SavedPositionItem
	for rows.Next() {
		var it SavedPositionItem
		var payload []byte
		var revenue, quantity pgtype.Numeric
		var createdAt pgtype.Timestamptz
		if err := rows.Scan(&it.ID, &it.PositionID, &payload, &it.PositionName, &revenue,
			&quantity, &it.IncomeExpenseType, &it.WorkType, &it.SalaryGoods, &it.Document, &createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &it.ItemData); err != nil {
			return nil, fmt.Errorf("decode item data: %w", err)
		}
		it.Revenue = numericFloat(revenue)
		it.Quantity = numericFloat(quantity)
		it.CreatedAt = createdAt.Time
		out = append(out, it)
	}
	return out, rows.Err()
}

// DeleteSaved removes a position header with its item rows in one
// transaction.
func (s *pgStore) DeleteSaved(ctx context.Context, positionID string) error {
	return db.WithTx(ctx, s.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			"DELETE FROM saved_position_items WHERE position_id = $1", positionID); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, "DELETE FROM saved_positions WHERE id = $1", positionID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func numericFloat(n pgtype.Numeric) float64 {
	if !n.Valid {
		return 0
	}
	f, err := n.Float64Value()
	if err != nil {
		return 0
	}
	return f.Float64
}
