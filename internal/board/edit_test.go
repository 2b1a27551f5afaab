package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-erp/atelier-erp/internal/repair"
)

func TestEditGroupPriceDistributesEvenly(t *testing.T) {
	b := testBoard(t)
	pos, err := b.CreatePositionFromGroup("ремонт статора", "")
	require.NoError(t, err)
	require.InDelta(t, 500.0, pos.TotalIncome, 1e-9)

	require.NoError(t, b.EditGroupPrice(pos.ID, "ремонт статора", "600"))

	for _, it := range pos.Items {
		assert.InDelta(t, 200.0, it.Revenue, 1e-9)
	}
	assert.InDelta(t, 600.0, pos.TotalIncome, 1e-9)
	assert.InDelta(t, 600.0, pos.TotalPrice, 1e-9)
}

func TestEditGroupPriceExpenseSign(t *testing.T) {
	b := New([]repair.Item{
		expenseItem("a", "Оплата труда Иванов (4 ч)_ID_1", 1200),
		expenseItem("b", "Оплата труда Петров (4 ч)_ID_2", 1200),
	})
	pos, err := b.CreatePositionFromGroup("оплата труда", "")
	require.NoError(t, err)

	require.NoError(t, b.EditGroupPrice(pos.ID, "оплата труда", "3000"))

	for _, it := range pos.Items {
		assert.InDelta(t, -1500.0, it.Revenue, 1e-9)
	}
	assert.InDelta(t, 3000.0, pos.TotalExpense, 1e-9)
}

func TestEditGroupPriceIncomeKeepsTypedSign(t *testing.T) {
	b := testBoard(t)
	pos, err := b.CreatePositionFromGroup("ремонт статора", "")
	require.NoError(t, err)

	require.NoError(t, b.EditGroupPrice(pos.ID, "ремонт статора", "-300"))

	for _, it := range pos.Items {
		assert.InDelta(t, -100.0, it.Revenue, 1e-9)
		assert.InDelta(t, -100.0, it.SumWithoutVAT, 1e-9)
	}
	assert.InDelta(t, -300.0, pos.TotalIncome, 1e-9)
	assert.InDelta(t, -300.0, pos.TotalPrice, 1e-9)
}

func TestEditGroupPriceBadInputIsSilentNoOp(t *testing.T) {
	b := testBoard(t)
	pos, err := b.CreatePositionFromGroup("ремонт статора", "")
	require.NoError(t, err)

	for _, raw := range []string{"", "abc", "12x", " "} {
		require.NoError(t, b.EditGroupPrice(pos.ID, "ремонт статора", raw))
		assert.InDelta(t, 500.0, pos.TotalIncome, 1e-9, "input %q", raw)
	}
}

func TestEditGroupPriceDecimalComma(t *testing.T) {
	b := testBoard(t)
	pos, err := b.CreatePositionFromGroup("перемотка", "")
	require.NoError(t, err)

	require.NoError(t, b.EditGroupPrice(pos.ID, "перемотка", "99,9"))
	assert.InDelta(t, 99.9, pos.TotalIncome, 1e-9)
}

func TestEditGroupPriceMissingTargets(t *testing.T) {
	b := testBoard(t)
	pos, err := b.CreatePositionFromGroup("перемотка", "")
	require.NoError(t, err)

	assert.ErrorIs(t, b.EditGroupPrice("missing", "перемотка", "100"), ErrPositionNotFound)
	assert.ErrorIs(t, b.EditGroupPrice(pos.ID, "нет группы", "100"), ErrGroupNotFound)
}

func TestEditGroupHoursPropagatesSameValue(t *testing.T) {
	labor := func(id, name string) repair.Item {
		it := expenseItem(id, name, 1200)
		it.SalaryGoods = "Зарплата"
		return it
	}
	b := New([]repair.Item{
		labor("a", "Оплата труда Иванов (4 ч)_ID_1"),
		labor("b", "Оплата труда Петров (4 ч)_ID_2"),
	})
	pos, err := b.CreatePositionFromGroup("оплата труда", "")
	require.NoError(t, err)

	require.NoError(t, b.EditGroupHours(pos.ID, "оплата труда", "5"))

	for _, it := range pos.Items {
		info, ok := repair.ParseEmployeeInfo(it.PositionName)
		require.True(t, ok)
		assert.InDelta(t, 5.0, info.Hours, 1e-9)
		// Revenue untouched: the effective rate recomputes.
		assert.InDelta(t, -1200.0, it.Revenue, 1e-9)
		assert.InDelta(t, 240.0, repair.HourlyRate(it), 1e-9)
	}
}

func TestEditGroupHoursRejectsBadInput(t *testing.T) {
	labor := expenseItem("a", "Оплата труда Иванов (4 ч)_ID_1", 1200)
	labor.SalaryGoods = "Зарплата"
	b := New([]repair.Item{labor})
	pos, err := b.CreatePositionFromGroup("оплата труда", "")
	require.NoError(t, err)

	for _, raw := range []string{"", "abc", "0", "-2"} {
		require.NoError(t, b.EditGroupHours(pos.ID, "оплата труда", raw))
		info, ok := repair.ParseEmployeeInfo(pos.Items[0].PositionName)
		require.True(t, ok)
		assert.InDelta(t, 4.0, info.Hours, 1e-9, "input %q", raw)
	}
}

func TestEditGroupHoursOnlyForEmployeeCards(t *testing.T) {
	b := testBoard(t)
	pos, err := b.CreatePositionFromGroup("перемотка", "")
	require.NoError(t, err)

	require.NoError(t, b.EditGroupHours(pos.ID, "перемотка", "5"))
	assert.Equal(t, "Перемотка", pos.Items[0].PositionName)
}

func TestChangeQuantityDecrease(t *testing.T) {
	b := testBoard(t)
	pos, err := b.CreatePositionFromGroup("ремонт статора", "")
	require.NoError(t, err)
	require.Len(t, b.Pool, 1)

	require.NoError(t, b.ChangeQuantity(pos.ID, "ремонт статора", 1))

	assert.Len(t, pos.Items, 1)
	assert.Len(t, b.Pool, 3)

	// Combined membership is preserved.
	ids := map[string]bool{}
	for _, it := range pos.Items {
		ids[it.ID] = true
	}
	for _, it := range b.Pool {
		ids[it.ID] = true
	}
	assert.Len(t, ids, 4)
}

func TestChangeQuantityIncrease(t *testing.T) {
	b := testBoard(t)
	pos, err := b.CreatePositionFromGroup("ремонт статора", "")
	require.NoError(t, err)
	require.NoError(t, b.ChangeQuantity(pos.ID, "ремонт статора", 1))

	require.NoError(t, b.ChangeQuantity(pos.ID, "ремонт статора", 3))
	assert.Len(t, pos.Items, 3)
	assert.InDelta(t, 500.0, pos.TotalIncome, 1e-9)
}

func TestChangeQuantityBeyondAvailableRejected(t *testing.T) {
	b := testBoard(t)
	pos, err := b.CreatePositionFromGroup("ремонт статора", "")
	require.NoError(t, err)

	err = b.ChangeQuantity(pos.ID, "ремонт статора", 4)
	assert.ErrorIs(t, err, ErrQuantityBound)
	assert.Len(t, pos.Items, 3)
	assert.Len(t, b.Pool, 1)
}

func TestChangeQuantityNoOpAtSameSize(t *testing.T) {
	b := testBoard(t)
	pos, err := b.CreatePositionFromGroup("ремонт статора", "")
	require.NoError(t, err)

	require.NoError(t, b.ChangeQuantity(pos.ID, "ремонт статора", 3))
	assert.Len(t, pos.Items, 3)
}
