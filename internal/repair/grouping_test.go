package repair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(id, name string, revenue float64) Item {
	return Item{
		ID:                id,
		UniqueKey:         "key-" + id,
		PositionName:      name,
		Revenue:           revenue,
		Quantity:          1,
		SumWithoutVAT:     revenue,
		IncomeExpenseType: TypeIncome,
	}
}

func TestBasePositionName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Ремонт статора", "ремонт статора"},
		{"  Ремонт   статора  ", "ремонт статора"},
		{"Шаблон Ремонт_ID_abc-123", "шаблон ремонт"},
		{"Провод ПВС 2.5 мм² (10 м)_ID_xyz", "провод пвс 2.5 мм²"},
		{"Подшипник 6204 (2 шт)", "подшипник 6204"},
		{"Оплата труда Иванов (4 ч)_ID_1", "оплата труда"},
		{"оплата труда Петров (2.5 ч)", "оплата труда"},
		{"_ID_only", "_id_only"},
	}
	for _, tc := range cases {
		if got := BasePositionName(tc.in); got != tc.want {
			t.Fatalf("BasePositionName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGroupSumPreservation(t *testing.T) {
	items := []Item{
		testItem("a", "Ремонт статора_ID_1", 100),
		testItem("b", "Ремонт статора_ID_2", 150),
		testItem("c", "Ремонт статора_ID_3", 250),
		testItem("d", "Перемотка", 75),
	}

	groups := Group(items)
	require.Len(t, groups, 2)

	repairGroup := groups[0]
	assert.Equal(t, []string{"a", "b", "c"}, repairGroup.GroupedIDs)
	assert.InDelta(t, 500.0, repairGroup.TotalRevenue, 1e-9)
	assert.InDelta(t, 3.0, repairGroup.TotalQuantity, 1e-9)
	assert.Equal(t, "Ремонт статора_ID_1", repairGroup.PositionName)

	assert.Equal(t, []string{"d"}, groups[1].GroupedIDs)
}

func TestGroupIdempotence(t *testing.T) {
	items := []Item{
		testItem("a", "Ремонт статора_ID_1", 100),
		testItem("b", "Ремонт статора_ID_2", 150),
		testItem("c", "Перемотка", 75),
	}

	first := Group(items)

	// Regrouping the representatives must fold to the same keys.
	var flattened []Item
	for _, g := range first {
		flattened = append(flattened, Members(g, items)...)
	}
	second := Group(flattened)

	require.Len(t, second, len(first))
	for i := range first {
		assert.ElementsMatch(t, first[i].GroupedIDs, second[i].GroupedIDs)
		assert.InDelta(t, first[i].TotalRevenue, second[i].TotalRevenue, 1e-9)
	}
}

func TestGroupEmptyInput(t *testing.T) {
	if got := Group(nil); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestMembersPreservesOrder(t *testing.T) {
	items := []Item{
		testItem("a", "Ремонт_ID_1", 10),
		testItem("b", "Ремонт_ID_2", 20),
	}
	groups := Group(items)
	require.Len(t, groups, 1)

	members := Members(groups[0], items)
	require.Len(t, members, 2)
	assert.Equal(t, "a", members[0].ID)
	assert.Equal(t, "b", members[1].ID)
}

func TestPartition(t *testing.T) {
	mk := func(id, name, salaryGoods, workType string) Item {
		it := testItem(id, name, 100)
		it.SalaryGoods = salaryGoods
		it.WorkType = workType
		return it
	}
	items := []Item{
		mk("a", "Провод ПВС", "Товары", "Ремонт"),
		mk("b", "Оплата труда Иванов (4 ч)", "Зарплата", "Ремонт"),
		mk("c", "Подшипник 6204", "Товары", ""),
		mk("d", "Без категории", "", "Ремонт"),
	}

	out := Partition(items)

	require.Len(t, out.Groups, 2)
	// Russian collation: Зарплата before Товары.
	assert.Equal(t, "Зарплата", out.Groups[0].SalaryGoods)
	assert.Equal(t, "Товары", out.Groups[1].SalaryGoods)

	goods := out.Groups[1]
	require.Len(t, goods.WorkTypeGroups, 2)
	assert.Equal(t, WorkTypeFallback, goods.WorkTypeGroups[0].WorkType)
	assert.Equal(t, "Ремонт", goods.WorkTypeGroups[1].WorkType)

	require.Len(t, out.WithoutSalaryGoods, 1)
	assert.Equal(t, "d", out.WithoutSalaryGoods[0].ID)
}
