package repair

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-erp/atelier-erp/internal/catalog"
)

// ErrBadQuantity rejects non-positive hours, lengths and unit counts
// before any synthesis happens.
var ErrBadQuantity = fmt.Errorf("repair: quantity must be positive")

// NewTemplateItem builds the blank card a category/work-type bucket hands
// to the synthesis layer. The serial suffix keeps every template name
// unique until a catalog selection replaces it.
func NewTemplateItem(salaryGoods, workType string, now time.Time) Item {
	id := uuid.NewString()
	return Item{
		ID:                id,
		UniqueKey:         "template-" + id,
		PositionName:      fmt.Sprintf("Шаблон %s_ID_%s", workType, id),
		Year:              now.Year(),
		Month:             int(now.Month()),
		Quarter:           fmt.Sprintf("%dкв", (int(now.Month())+2)/3),
		Date:              now.Format("2006-01-02"),
		Analytics8:        workType,
		Quantity:          1,
		WorkType:          workType,
		IncomeExpenseType: TypeIncome,
		SalaryGoods:       salaryGoods,
	}
}

// Rename produces the manual-entry variant: a fresh item carrying the
// template context under a user-chosen position name.
func Rename(tpl Item, name string) (Item, error) {
	if name == "" {
		return Item{}, fmt.Errorf("repair: position name is required")
	}
	out := tpl
	out.ID = uuid.NewString()
	out.UniqueKey = "manual-" + out.ID
	out.PositionName = fmt.Sprintf("%s_ID_%s", name, out.ID)
	return out, nil
}

// SynthesizeEmployee builds a labor line from an employee selection.
// Price is rate times hours; labor is an expense, so the revenue sign
// flips when the template context says so.
func SynthesizeEmployee(tpl Item, emp catalog.Employee, hours float64) (Item, error) {
	if hours <= 0 {
		return Item{}, ErrBadQuantity
	}
	name := fmt.Sprintf("Оплата труда %s (%s ч)", emp.Name, formatQty(hours))
	return synthesize(tpl, name, emp.HourlyRate*hours, hours)
}

// SynthesizeWire builds a material line from a wire selection priced per
// meter.
func SynthesizeWire(tpl Item, wire catalog.Wire, length float64) (Item, error) {
	if length <= 0 {
		return Item{}, ErrBadQuantity
	}
	name := fmt.Sprintf("Провод %s %s мм² (%s м)", wire.Brand, formatQty(wire.CrossSection), formatQty(length))
	return synthesize(tpl, name, wire.PricePerMeter*length, length)
}

// SynthesizeMotor builds a parts line from a motor selection priced per
// unit.
func SynthesizeMotor(tpl Item, motor catalog.Motor, qty float64) (Item, error) {
	if qty <= 0 {
		return Item{}, ErrBadQuantity
	}
	name := fmt.Sprintf("Двигатель %s %s кВт (%s шт)", motor.Name, formatQty(motor.PowerKW), formatQty(qty))
	return synthesize(tpl, name, motor.PricePerUnit*qty, qty)
}

// SynthesizeBearing builds a consumable line from a bearing selection
// priced per unit.
func SynthesizeBearing(tpl Item, bearing catalog.Bearing, qty float64) (Item, error) {
	if qty <= 0 {
		return Item{}, ErrBadQuantity
	}
	name := fmt.Sprintf("Подшипник %s (%s шт)", bearing.Designation, formatQty(qty))
	return synthesize(tpl, name, bearing.PricePerUnit*qty, qty)
}

func synthesize(tpl Item, name string, price, qty float64) (Item, error) {
	out := tpl
	out.ID = uuid.NewString()
	out.UniqueKey = "synth-" + out.ID
	out.PositionName = fmt.Sprintf("%s_ID_%s", name, out.ID)
	out.Quantity = qty
	out.Revenue = price
	if out.IsExpense() {
		out.Revenue = -abs(price)
	}
	out.SumWithoutVAT = out.Revenue
	out.VATAmount = 0
	return out, nil
}

func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
