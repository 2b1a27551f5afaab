package repair

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Annotation suffixes appended by the synthesis layer and the source
// ledger. Serial suffixes look like "..._ID_<generated>", catalog
// annotations like "оплата труда Иванов (4 ч)" or "Провод ПВС (10 м)".
var (
	serialSuffixRe     = regexp.MustCompile(`_ID_\S*\s*$`)
	annotationSuffixRe = regexp.MustCompile(`\s*\(\d+(?:[.,]\d+)?\s*(?:ч|м|шт)\)\s*$`)
	laborNameSuffixRe  = regexp.MustCompile(`(?i)^(оплата труда)\s+\S+$`)
	whitespaceRe       = regexp.MustCompile(`\s+`)
)

// BasePositionName derives the grouping key for a raw item name by
// stripping instance-specific suffixes: the generated serial, a trailing
// quantity annotation and, for labor lines, the employee name. Items that
// are the same billable thing at different quantities share a key.
func BasePositionName(name string) string {
	base := strings.TrimSpace(name)
	if base == "" {
		return ""
	}
	stripped := serialSuffixRe.ReplaceAllString(base, "")
	stripped = annotationSuffixRe.ReplaceAllString(stripped, "")
	stripped = laborNameSuffixRe.ReplaceAllString(stripped, "$1")
	stripped = whitespaceRe.ReplaceAllString(strings.TrimSpace(stripped), " ")
	if stripped == "" {
		return strings.ToLower(base)
	}
	return strings.ToLower(stripped)
}

// Group folds raw items into one aggregate per base position name. The
// aggregate's display fields come from the first member encountered; ids
// keep first-seen order so regrouping after any pool change is stable.
// Pure and idempotent over the input slice.
func Group(items []Item) []GroupedItem {
	if len(items) == 0 {
		return nil
	}
	index := make(map[string]int, len(items))
	groups := make([]GroupedItem, 0, len(items))
	for _, it := range items {
		key := BasePositionName(it.PositionName)
		at, ok := index[key]
		if !ok {
			index[key] = len(groups)
			groups = append(groups, GroupedItem{
				Item:               it,
				GroupedIDs:         []string{it.ID},
				TotalQuantity:      it.Quantity,
				TotalRevenue:       it.Revenue,
				TotalSumWithoutVAT: it.SumWithoutVAT,
				TotalVATAmount:     it.VATAmount,
			})
			continue
		}
		g := &groups[at]
		g.GroupedIDs = append(g.GroupedIDs, it.ID)
		g.TotalQuantity += it.Quantity
		g.TotalRevenue += it.Revenue
		g.TotalSumWithoutVAT += it.SumWithoutVAT
		g.TotalVATAmount += it.VATAmount
	}
	return groups
}

// Members resolves an aggregate back to its raw constituents from the
// given pool, preserving the aggregate's id order.
func Members(g GroupedItem, pool []Item) []Item {
	byID := make(map[string]Item, len(pool))
	for _, it := range pool {
		byID[it.ID] = it
	}
	members := make([]Item, 0, len(g.GroupedIDs))
	for _, id := range g.GroupedIDs {
		if it, ok := byID[id]; ok {
			members = append(members, it)
		}
	}
	return members
}

// WorkTypeGroup holds the aggregates of one work type bucket.
type WorkTypeGroup struct {
	WorkType string        `json:"workType"`
	Items    []GroupedItem `json:"items"`
}

// SalaryGoodsGroup is the outer category bucket of the unallocated panel.
type SalaryGoodsGroup struct {
	SalaryGoods    string          `json:"salaryGoods"`
	WorkTypeGroups []WorkTypeGroup `json:"workTypeGroups"`
}

// Partitioned is the two-level view the panel renders: category then work
// type, plus aggregates carrying no category at all.
type Partitioned struct {
	Groups             []SalaryGoodsGroup `json:"salaryGoodsGroups"`
	WithoutSalaryGoods []GroupedItem      `json:"itemsWithoutSalaryGoods"`
}

// WorkTypeFallback labels aggregates whose work type field is blank.
const WorkTypeFallback = "Без статьи работ"

var ruCollator = collate.New(language.Russian)

// Partition applies the secondary grouping passes on top of Group:
// by category, then by work type, both sorted locale-aware ascending.
func Partition(items []Item) Partitioned {
	grouped := Group(items)

	var out Partitioned
	byCategory := make(map[string][]GroupedItem)
	var categories []string
	for _, g := range grouped {
		category := strings.TrimSpace(g.SalaryGoods)
		if category == "" {
			out.WithoutSalaryGoods = append(out.WithoutSalaryGoods, g)
			continue
		}
		if _, ok := byCategory[category]; !ok {
			categories = append(categories, category)
		}
		byCategory[category] = append(byCategory[category], g)
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return ruCollator.CompareString(categories[i], categories[j]) < 0
	})

	for _, category := range categories {
		byWorkType := make(map[string][]GroupedItem)
		var workTypes []string
		for _, g := range byCategory[category] {
			workType := strings.TrimSpace(g.WorkType)
			if workType == "" {
				workType = WorkTypeFallback
			}
			if _, ok := byWorkType[workType]; !ok {
				workTypes = append(workTypes, workType)
			}
			byWorkType[workType] = append(byWorkType[workType], g)
		}
		sort.SliceStable(workTypes, func(i, j int) bool {
			return ruCollator.CompareString(workTypes[i], workTypes[j]) < 0
		})

		groups := make([]WorkTypeGroup, 0, len(workTypes))
		for _, workType := range workTypes {
			groups = append(groups, WorkTypeGroup{WorkType: workType, Items: byWorkType[workType]})
		}
		out.Groups = append(out.Groups, SalaryGoodsGroup{SalaryGoods: category, WorkTypeGroups: groups})
	}
	return out
}
