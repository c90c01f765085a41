package transform

import (
	"fmt"
	"regexp"

	"github.com/ynabtoledger/ynabtoledger/internal/config"
	"github.com/ynabtoledger/ynabtoledger/internal/model"
)

// FilterByExpression drops entries failing the configured active filter.
// The "method" operator is stripped from the tree before evaluation and is
// never executed.
func FilterByExpression(cfg *config.Config, entries []model.Entry) ([]model.Entry, error) {
	if cfg.ActiveFilter == "" {
		return entries, nil
	}
	tree, ok := cfg.Filters[cfg.ActiveFilter]
	if !ok {
		return nil, fmt.Errorf("active_filter %q not found in filters", cfg.ActiveFilter)
	}
	tree = RemoveOperator(tree, "method")

	ev := newEvaluator(cfg.Filters)
	kept := entries[:0]
	for _, e := range entries {
		match, err := ev.Matches(tree, e)
		if err != nil {
			return nil, fmt.Errorf("evaluating filter %q: %w", cfg.ActiveFilter, err)
		}
		if match {
			kept = append(kept, e)
		}
	}
	return kept, nil
}

// FilterByAccount keeps entries with at least one split whose full account
// name matches at least one configured pattern.
func FilterByAccount(cfg *config.Config, entries []model.Entry) ([]model.Entry, error) {
	if len(cfg.AccountFilter) == 0 {
		return entries, nil
	}

	regexes := make([]*regexp.Regexp, len(cfg.AccountFilter))
	for i, pattern := range cfg.AccountFilter {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("account_filter: compiling %q: %w", pattern, err)
		}
		regexes[i] = re
	}

	kept := entries[:0]
	for _, e := range entries {
		if entryMatchesAny(e, regexes) {
			kept = append(kept, e)
		}
	}
	return kept, nil
}

func entryMatchesAny(e model.Entry, regexes []*regexp.Regexp) bool {
	for _, s := range e.Splits {
		for _, re := range regexes {
			if re.MatchString(s.FullAccount()) {
				return true
			}
		}
	}
	return false
}

// FilterByStartDate drops entries recorded before the configured cutoff.
// ISO dates compare correctly as strings.
func FilterByStartDate(cfg *config.Config, entries []model.Entry) []model.Entry {
	if cfg.StartDate == "" {
		return entries
	}
	kept := entries[:0]
	for _, e := range entries {
		if e.RecordDate >= cfg.StartDate {
			kept = append(kept, e)
		}
	}
	return kept
}
