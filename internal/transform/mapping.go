// Package transform applies the configured post-processing stages to a built
// entry list: account-name mapping, then filtering.
package transform

import (
	"fmt"
	"regexp"

	"github.com/ynabtoledger/ynabtoledger/internal/config"
	"github.com/ynabtoledger/ynabtoledger/internal/logging"
	"github.com/ynabtoledger/ynabtoledger/internal/model"
)

// MapAccounts rewrites split account names through the configured ordered
// search/replace rules. The first matching rule wins. A replacement whose
// leading segment is not a valid split group leaves the split untouched and
// logs an error; a rule that fails to compile is a configuration error.
func MapAccounts(cfg *config.Config, entries []model.Entry, log *logging.DedupLogger) ([]model.Entry, error) {
	if len(cfg.AccountNameMap) == 0 {
		return entries, nil
	}

	regexes := make([]*regexp.Regexp, len(cfg.AccountNameMap))
	for i, rule := range cfg.AccountNameMap {
		re, err := regexp.Compile(rule.Search)
		if err != nil {
			return nil, fmt.Errorf("account_name_map rule %d: compiling %q: %w", i, rule.Search, err)
		}
		regexes[i] = re
	}

	// Rewrites are computed once per distinct name, not once per split.
	nameMap := make(map[string]string)
	mapped := func(name string) string {
		if newName, ok := nameMap[name]; ok {
			return newName
		}
		newName := name
		for i, re := range regexes {
			if re.MatchString(name) {
				newName = re.ReplaceAllString(name, cfg.AccountNameMap[i].Replace)
				break
			}
		}
		nameMap[name] = newName
		return newName
	}

	for ei := range entries {
		for si := range entries[ei].Splits {
			split := &entries[ei].Splits[si]
			newName := mapped(split.FullAccount())
			if newName == split.FullAccount() {
				continue
			}

			group, account := splitAccountName(newName)
			parsed, ok := model.ParseSplitGroup(group)
			if !ok {
				log.Error(
					"MAPPED_ACCOUNT_NAME_PREFIX_NOT_IN_SPLITGROUP_ENUM",
					fmt.Sprintf("mapped account name %q does not have a valid group prefix", newName),
				)
				continue
			}
			split.Group = parsed
			split.Account = account
		}
	}
	return entries, nil
}

// splitAccountName splits "Group:Rest:Of:Path" into its group segment and
// the remaining colon-joined account path.
func splitAccountName(name string) (group, account string) {
	for i := 0; i < len(name); i++ {
		if name[i] == ':' {
			return name[:i], name[i+1:]
		}
	}
	return name, ""
}
