package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-erp/atelier-erp/internal/board"
	"github.com/atelier-erp/atelier-erp/internal/repair"
)

type stubStore struct {
	positions   []SavedPosition
	itemBatches [][]SavedPositionItem
	failOnBatch int // 1-based; 0 never fails
}

func (s *stubStore) InsertPositions(ctx context.Context, positions []SavedPosition) ([]string, error) {
	ids := make([]string, 0, len(positions))
	base := len(s.positions)
	for i, p := range positions {
		id := fmt.Sprintf("pos-%d", base+i+1)
		p.ID = id
		ids = append(ids, id)
		s.positions = append(s.positions, p)
	}
	return ids, nil
}

func (s *stubStore) InsertItems(ctx context.Context, items []SavedPositionItem) error {
	if s.failOnBatch > 0 && len(s.itemBatches)+1 == s.failOnBatch {
		return errors.New("insert failed")
	}
	batch := make([]SavedPositionItem, len(items))
	copy(batch, items)
	s.itemBatches = append(s.itemBatches, batch)
	return nil
}

func (s *stubStore) ListSaved(ctx context.Context) ([]SavedPosition, error) {
	return s.positions, nil
}

func (s *stubStore) ListSavedItems(ctx context.Context, positionID string) ([]SavedPositionItem, error) {
	var out []SavedPositionItem
	for _, batch := range s.itemBatches {
		for _, it := range batch {
			if it.PositionID == positionID {
				out = append(out, it)
			}
		}
	}
	return out, nil
}

func (s *stubStore) DeleteSaved(ctx context.Context, positionID string) error {
	return nil
}

func exportPosition(number int, items ...repair.Item) board.Position {
	return board.Position{
		ID:             fmt.Sprintf("board-pos-%d", number),
		Service:        fmt.Sprintf("Позиция %d", number),
		PositionNumber: number,
		Items:          items,
	}
}

func rawItem(id string, revenue float64) repair.Item {
	return repair.Item{
		ID:                id,
		PositionName:      "Ремонт_ID_" + id,
		Revenue:           revenue,
		Quantity:          1,
		Analytics1:        "УПД-" + id,
		IncomeExpenseType: repair.TypeIncome,
		WorkType:          "Ремонт",
		SalaryGoods:       "Товары",
	}
}

func TestExportPositions(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store, slog.Default())

	result := svc.ExportPositions(context.Background(), []board.Position{
		exportPosition(1, rawItem("a", 100), rawItem("b", 150), rawItem("c", 250)),
		exportPosition(2, rawItem("d", 75), rawItem("e", 80)),
	})

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.SavedCount)

	require.Len(t, store.positions, 2)
	assert.Equal(t, 3, store.positions[0].ItemsCount)
	assert.Equal(t, 2, store.positions[1].ItemsCount)

	// 5 items fit one batch.
	require.Len(t, store.itemBatches, 1)
	assert.Len(t, store.itemBatches[0], 5)
	assert.Equal(t, "pos-1", store.itemBatches[0][0].PositionID)
	assert.Equal(t, "pos-2", store.itemBatches[0][3].PositionID)
}

func TestExportBatchesAtLimit(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store, slog.Default())

	items := make([]repair.Item, 250)
	for i := range items {
		items[i] = rawItem(fmt.Sprintf("i%d", i), 10)
	}
	result := svc.ExportPositions(context.Background(), []board.Position{exportPosition(1, items...)})

	require.True(t, result.Success)
	require.Len(t, store.itemBatches, 3)
	assert.Len(t, store.itemBatches[0], 100)
	assert.Len(t, store.itemBatches[1], 100)
	assert.Len(t, store.itemBatches[2], 50)
}

func TestExportEmptyInput(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store, slog.Default())

	result := svc.ExportPositions(context.Background(), nil)

	assert.False(t, result.Success)
	assert.Equal(t, "Нет позиций для сохранения", result.Message)
	assert.Zero(t, result.SavedCount)
	assert.Empty(t, store.positions)
}

func TestExportDocumentOverride(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store, slog.Default())

	withOverride := exportPosition(1, rawItem("a", 100))
	withOverride.Analytics1 = "УПД-ПОЗ"
	without := exportPosition(2, rawItem("b", 50))

	result := svc.ExportPositions(context.Background(), []board.Position{withOverride, without})
	require.True(t, result.Success)

	require.Len(t, store.itemBatches, 1)
	assert.Equal(t, "УПД-ПОЗ", store.itemBatches[0][0].Document)
	assert.Equal(t, "УПД-b", store.itemBatches[0][1].Document)
}

func TestExportBatchFailureKeepsPriorBatches(t *testing.T) {
	store := &stubStore{failOnBatch: 2}
	svc := NewService(store, slog.Default())

	items := make([]repair.Item, 150)
	for i := range items {
		items[i] = rawItem(fmt.Sprintf("i%d", i), 10)
	}
	result := svc.ExportPositions(context.Background(), []board.Position{exportPosition(1, items...)})

	assert.False(t, result.Success)
	assert.True(t, strings.Contains(result.Message, "insert failed"))
	assert.Zero(t, result.SavedCount)

	// Phase 1 header and the first batch stay committed.
	assert.Len(t, store.positions, 1)
	require.Len(t, store.itemBatches, 1)
	assert.Len(t, store.itemBatches[0], 100)
}
