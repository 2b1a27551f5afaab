package board

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-erp/atelier-erp/internal/repair"
)

func TestServiceSessionLifecycle(t *testing.T) {
	svc := NewService(nil, slog.Default())
	b := svc.CreateBoard([]repair.Item{poolItem("a", "Ремонт_ID_1", 100)})

	got, err := svc.GetBoard(b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	view, err := svc.Snapshot(b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, view.ID)

	require.NoError(t, svc.CloseBoard(b.ID))
	_, err = svc.GetBoard(b.ID)
	assert.ErrorIs(t, err, ErrBoardNotFound)
	_, err = svc.Snapshot(b.ID)
	assert.ErrorIs(t, err, ErrBoardNotFound)
	assert.ErrorIs(t, svc.CloseBoard(b.ID), ErrBoardNotFound)
}

// Snapshots and mutations race from separate requests in production; the
// view must always be internally consistent and never share state with
// the live board.
func TestSnapshotConsistentUnderConcurrentEdits(t *testing.T) {
	svc := NewService(nil, slog.Default())
	b := svc.CreateBoard([]repair.Item{
		poolItem("a", "Ремонт статора_ID_1", 100),
		poolItem("b", "Ремонт статора_ID_2", 150),
		poolItem("c", "Ремонт статора_ID_3", 250),
	})

	const rounds = 500
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			err := svc.WithBoard(b.ID, func(b *Board) error {
				pos, err := b.CreatePositionFromGroup("ремонт статора", "")
				if err != nil {
					return err
				}
				return b.RemovePosition(pos.ID)
			})
			if err != nil {
				t.Error(err)
				return
			}
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			view, err := svc.Snapshot(b.ID)
			if err != nil {
				t.Error(err)
				return
			}
			// Each mutation runs create+remove atomically, so a view
			// holds either no position or one complete position.
			switch len(view.Positions) {
			case 0:
			case 1:
				pos := view.Positions[0]
				if len(pos.Items) != 3 {
					t.Errorf("partial position in view: %d items", len(pos.Items))
					return
				}
				if pos.TotalIncome != 500 {
					t.Errorf("inconsistent totals in view: %v", pos.TotalIncome)
					return
				}
			default:
				t.Errorf("unexpected position count %d", len(view.Positions))
				return
			}
		}
	}()

	wg.Wait()
}
