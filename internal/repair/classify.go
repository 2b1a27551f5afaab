package repair

import (
	"regexp"
	"strconv"
	"strings"
)

// Keyword tables driving catalog affordances. The source ledger carries
// free-text categories, so eligibility is substring matching over domain
// vocabulary. Advisory gating only: synthesis itself does not consult
// these.
var (
	wireKeywords    = []string{"товар", "провод", "материал", "комплектующ"}
	motorKeywords   = []string{"двигатель", "мотор", "электродвигатель"}
	bearingKeywords = []string{"замен", "расходник", "подшипник", "комплектующ"}
)

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// EmployeeButtonVisible gates the employee catalog affordance: labor
// categories only.
func EmployeeButtonVisible(salaryGoods string) bool {
	return strings.Contains(strings.ToLower(salaryGoods), "зарплата")
}

// WireButtonVisible gates the wire catalog affordance on goods/material
// categories.
func WireButtonVisible(salaryGoods string) bool {
	return containsAny(strings.ToLower(salaryGoods), wireKeywords)
}

// MotorButtonVisible requires a motor category and a repair-type work
// article. Replacement work ("замен") never qualifies.
func MotorButtonVisible(salaryGoods, workType string) bool {
	category := strings.ToLower(salaryGoods)
	work := strings.ToLower(workType)

	if !containsAny(category, motorKeywords) {
		return false
	}
	if strings.Contains(work, "замен") {
		return false
	}
	motorRepair := strings.Contains(work, "ремонт") && strings.Contains(work, "двигател")
	standard := strings.Contains(work, "стандарт")
	return motorRepair || standard
}

// BearingButtonVisible gates the bearing catalog affordance on
// consumable-replacement work articles.
func BearingButtonVisible(workType string) bool {
	return containsAny(strings.ToLower(workType), bearingKeywords)
}

// EmployeeInfo is the labor annotation embedded in a position name.
type EmployeeInfo struct {
	Name  string
	Hours float64
}

var employeeInfoRe = regexp.MustCompile(`(?i)(оплата труда) (\S+) \((\d+(?:\.\d+)?)\s*ч\)`)

// IsEmployeeCard reports whether the item is a labor payment line: named
// as one, booked as expense, filed under a salary category.
func IsEmployeeCard(it Item) bool {
	return strings.Contains(strings.ToLower(it.PositionName), "оплата труда") &&
		it.IncomeExpenseType == TypeExpense &&
		strings.Contains(strings.ToLower(it.SalaryGoods), "зарплата")
}

// ParseEmployeeInfo extracts the employee name and hours from a labor
// position name. Returns false when the annotation is absent.
func ParseEmployeeInfo(positionName string) (EmployeeInfo, bool) {
	m := employeeInfoRe.FindStringSubmatch(positionName)
	if m == nil {
		return EmployeeInfo{}, false
	}
	hours, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return EmployeeInfo{}, false
	}
	return EmployeeInfo{Name: m[2], Hours: hours}, true
}

// HourlyRate derives the effective rate from the item's revenue and the
// hours embedded in its name. Zero when the annotation is missing.
func HourlyRate(it Item) float64 {
	info, ok := ParseEmployeeInfo(it.PositionName)
	if !ok || info.Hours <= 0 {
		return 0
	}
	if it.Revenue < 0 {
		return -it.Revenue / info.Hours
	}
	return it.Revenue / info.Hours
}

// ReplaceEmployeeHours rewrites the hours annotation in a labor position
// name, leaving the rest of the name untouched. The name is returned
// unchanged when no annotation is present.
func ReplaceEmployeeHours(positionName string, hours float64) string {
	return employeeInfoRe.ReplaceAllStringFunc(positionName, func(match string) string {
		m := employeeInfoRe.FindStringSubmatch(match)
		if m == nil {
			return match
		}
		return m[1] + " " + m[2] + " (" + formatHours(hours) + " ч)"
	})
}

func formatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}
