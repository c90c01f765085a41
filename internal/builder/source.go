package builder

import (
	"fmt"

	"github.com/ynabtoledger/ynabtoledger/internal/model"
)

// BuildAll assembles the full entry list for a budget: one entry per
// transaction, plus budget and automatic entries when includeBudget is set.
// A single malformed record never aborts the run: build failures are logged
// and that entry is dropped. The result is deduplicated by id (collapsing
// transfer pairs, last wins) and sorted.
func (b *Builder) BuildAll(includeBudget bool) []model.Entry {
	var entries []model.Entry

	for _, t := range b.svc.Transactions() {
		e, err := b.BuildTransactionEntry(t)
		if err != nil {
			b.log.Error(
				"ENTRY_BUILD_FAILURE",
				fmt.Sprintf("could not build entry for transaction %q: %v", t.ID, err),
				"date", t.Date, "payee", t.PayeeName,
			)
			continue
		}
		entries = append(entries, e)
	}

	if includeBudget {
		entries = append(entries, b.buildBudgetEntries()...)
	}

	entries = model.Dedupe(entries)
	model.SortEntries(entries)
	return entries
}

func (b *Builder) buildBudgetEntries() []model.Entry {
	var entries []model.Entry

	for _, month := range b.svc.Months() {
		e, err := b.BuildBudgetEntry(month)
		if err != nil {
			b.log.Error(
				"ENTRY_BUILD_FAILURE",
				fmt.Sprintf("could not build budget entry for month %q: %v", month.Month, err),
			)
			continue
		}
		entries = append(entries, e)
	}

	// One automatic entry per distinct goal-category path across all months.
	seen := make(map[string]bool)
	for _, month := range b.svc.Months() {
		for _, category := range b.svc.GoalCategories(month) {
			group, ok := b.svc.CategoryGroup(category.CategoryGroupID)
			if !ok {
				b.log.Error(
					"ENTRY_BUILD_FAILURE",
					fmt.Sprintf("category group %q not found for category %q", category.CategoryGroupID, category.Name),
				)
				continue
			}
			key := group.Name + ":" + category.Name
			if seen[key] {
				continue
			}
			seen[key] = true

			e, err := b.BuildAutomaticEntry(category)
			if err != nil {
				b.log.Error(
					"ENTRY_BUILD_FAILURE",
					fmt.Sprintf("could not build automatic entry for category %q: %v", category.Name, err),
				)
				continue
			}
			entries = append(entries, e)
		}
	}

	return entries
}
