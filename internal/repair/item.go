// Package repair holds the domain core: raw accounting lines, the
// grouping engine and the catalog synthesis layer.
package repair

// IncomeExpenseType classifies a line as income or expense. Values match
// the source ledger verbatim.
type IncomeExpenseType string

const (
	TypeIncome  IncomeExpenseType = "Доходы"
	TypeExpense IncomeExpenseType = "Расходы"
)

// Item is one raw accounting line drawn from the source ledger. Immutable
// once created except through explicit edit operations that produce
// replacement items.
type Item struct {
	ID           string `json:"id"`
	UniqueKey    string `json:"uniqueKey"`
	PositionName string `json:"positionName"`

	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Quarter string `json:"quarter"`
	Date    string `json:"date"`

	Analytics1 string `json:"analytics1"`
	Analytics2 string `json:"analytics2"`
	Analytics3 string `json:"analytics3"`
	Analytics4 string `json:"analytics4"`
	Analytics5 string `json:"analytics5"`
	Analytics6 string `json:"analytics6"`
	Analytics7 string `json:"analytics7"`
	Analytics8 string `json:"analytics8"`

	DebitAccount  string `json:"debitAccount"`
	CreditAccount string `json:"creditAccount"`

	// Revenue is signed: negative for expense lines.
	Revenue       float64 `json:"revenue"`
	Quantity      float64 `json:"quantity"`
	SumWithoutVAT float64 `json:"sumWithoutVAT"`
	VATAmount     float64 `json:"vatAmount"`

	WorkType          string            `json:"workType"`
	IncomeExpenseType IncomeExpenseType `json:"incomeExpenseType"`
	SalaryGoods       string            `json:"salaryGoods"`
}

// IsExpense reports whether the line carries the expense sign convention.
func (it Item) IsExpense() bool {
	return it.IncomeExpenseType == TypeExpense
}

// GroupedItem is a display aggregate over items sharing a base position
// name. It embeds a representative member (the first one encountered) and
// carries the ids and summed totals of every constituent. Never persisted;
// recomputed from the raw pool on every change.
type GroupedItem struct {
	Item

	GroupedIDs         []string `json:"groupedIds"`
	TotalQuantity      float64  `json:"totalQuantity"`
	TotalRevenue       float64  `json:"totalRevenue"`
	TotalSumWithoutVAT float64  `json:"totalSumWithoutVAT"`
	TotalVATAmount     float64  `json:"totalVatAmount"`
}

// Size returns the number of constituents folded into the aggregate.
func (g GroupedItem) Size() int {
	return len(g.GroupedIDs)
}

// Contains reports whether the aggregate folds the given raw item id.
func (g GroupedItem) Contains(id string) bool {
	for _, gid := range g.GroupedIDs {
		if gid == id {
			return true
		}
	}
	return false
}
