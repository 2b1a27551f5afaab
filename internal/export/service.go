package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/atelier-erp/atelier-erp/internal/board"
)

// Item rows go to the store in sequential slices of this size.
const itemBatchSize = 100

// Service runs the two-phase export. It never returns a Go error from
// ExportPositions: the caller always gets a Result it can render.
type Service struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires the export bridge.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger, now: time.Now}
}

// ExportPositions persists the given positions: headers first, then the
// flattened items in batches. A batch failure aborts the remaining
// batches but leaves everything already written in place; the result
// message carries the first error.
func (s *Service) ExportPositions(ctx context.Context, positions []board.Position) Result {
	if len(positions) == 0 {
		return Result{Success: false, Message: "Нет позиций для сохранения"}
	}

	exportDate := s.now()
	headers := make([]SavedPosition, 0, len(positions))
	for _, p := range positions {
		headers = append(headers, SavedPosition{
			PositionNumber: p.PositionNumber,
			Service:        p.Service,
			TotalPrice:     p.TotalPrice,
			TotalIncome:    p.TotalIncome,
			TotalExpense:   p.TotalExpense,
			ItemsCount:     len(p.Items),
			ExportDate:     exportDate,
		})
	}

	ids, err := s.store.InsertPositions(ctx, headers)
	if err != nil {
		s.logger.Error("export positions", slog.Any("error", err))
		return Result{Success: false, Message: fmt.Sprintf("Ошибка сохранения позиций: %v", err)}
	}

	var items []SavedPositionItem
	for i, p := range positions {
		for _, it := range p.Items {
			document := it.Analytics1
			if p.Analytics1 != "" {
				document = p.Analytics1
			}
			items = append(items, SavedPositionItem{
				PositionID:        ids[i],
				ItemData:          it,
				PositionName:      it.PositionName,
				Revenue:           it.Revenue,
				Quantity:          it.Quantity,
				IncomeExpenseType: string(it.IncomeExpenseType),
				WorkType:          it.WorkType,
				SalaryGoods:       it.SalaryGoods,
				Document:          document,
			})
		}
	}

	for start := 0; start < len(items); start += itemBatchSize {
		end := start + itemBatchSize
		if end > len(items) {
			end = len(items)
		}
		if err := s.store.InsertItems(ctx, items[start:end]); err != nil {
			s.logger.Error("export items",
				slog.Int("batch_start", start),
				slog.Any("error", err))
			return Result{Success: false, Message: fmt.Sprintf("Ошибка сохранения элементов: %v", err)}
		}
	}

	s.logger.Info("positions exported",
		slog.Int("positions", len(positions)),
		slog.Int("items", len(items)))
	return Result{
		Success:    true,
		Message:    fmt.Sprintf("Успешно сохранено позиций: %d", len(positions)),
		SavedCount: len(positions),
	}
}

// ListSaved returns exported positions, newest first.
func (s *Service) ListSaved(ctx context.Context) ([]SavedPosition, error) {
	return s.store.ListSaved(ctx)
}

// ListSavedItems returns one exported position's flattened rows.
func (s *Service) ListSavedItems(ctx context.Context, positionID string) ([]SavedPositionItem, error) {
	return s.store.ListSavedItems(ctx, positionID)
}

// DeleteSaved removes an exported position and its items.
func (s *Service) DeleteSaved(ctx context.Context, positionID string) error {
	return s.store.DeleteSaved(ctx, positionID)
}
