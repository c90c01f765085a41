package transform

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ynabtoledger/ynabtoledger/internal/model"
)

// The entry filter is a boolean-expression tree in the json-logic shape:
// every node is a single-key map of operator -> argument(s), with strings,
// numbers, and booleans as leaves. The operator set is closed; anything else
// is a configuration error.

// evaluator evaluates filter trees against one entry at a time. filters
// holds the named trees so one filter can reference another via
// "filter_{name}".
type evaluator struct {
	filters map[string]map[string]any
	// visiting guards against mutually recursive filter references.
	visiting map[string]bool
}

func newEvaluator(filters map[string]map[string]any) *evaluator {
	return &evaluator{filters: filters, visiting: make(map[string]bool)}
}

// Matches evaluates the tree against an entry and coerces the result to a
// boolean.
func (ev *evaluator) Matches(tree map[string]any, entry model.Entry) (bool, error) {
	v, err := ev.eval(tree, entry)
	if err != nil {
		return false, err
	}
	return truthy(v), nil
}

func (ev *evaluator) eval(node any, entry model.Entry) (any, error) {
	switch n := node.(type) {
	case nil, bool, string, int, int64, float64:
		return n, nil
	case map[string]any:
		if len(n) != 1 {
			return nil, fmt.Errorf("filter node must have exactly one operator, got %d", len(n))
		}
		for op, arg := range n {
			return ev.apply(op, arg, entry)
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported filter node type %T", node)
	}
}

func (ev *evaluator) apply(op string, arg any, entry model.Entry) (any, error) {
	switch op {
	case "and":
		args, err := ev.evalList(arg, entry)
		if err != nil {
			return nil, err
		}
		for _, v := range args {
			if !truthy(v) {
				return false, nil
			}
		}
		return true, nil

	case "or":
		args, err := ev.evalList(arg, entry)
		if err != nil {
			return nil, err
		}
		for _, v := range args {
			if truthy(v) {
				return true, nil
			}
		}
		return false, nil

	case "!":
		v, err := ev.evalSingle(arg, entry)
		if err != nil {
			return nil, err
		}
		return !truthy(v), nil

	case "==", "!=", "<", "<=", ">", ">=":
		args, err := ev.evalList(arg, entry)
		if err != nil {
			return nil, err
		}
		if len(args) != 2 {
			return nil, fmt.Errorf("%q expects 2 arguments, got %d", op, len(args))
		}
		return compare(op, args[0], args[1])

	case "var":
		path, ok := arg.(string)
		if !ok {
			return nil, fmt.Errorf("var expects a field name, got %T", arg)
		}
		return entryField(entry, path)

	case "has_account":
		pattern, err := ev.evalSingle(arg, entry)
		if err != nil {
			return nil, err
		}
		s, ok := pattern.(string)
		if !ok {
			return nil, fmt.Errorf("has_account expects a pattern string, got %T", pattern)
		}
		return hasAccount(entry, s)

	case "regex_match":
		args, err := ev.evalList(arg, entry)
		if err != nil {
			return nil, err
		}
		if len(args) != 2 {
			return nil, fmt.Errorf("regex_match expects [value, pattern], got %d arguments", len(args))
		}
		value, okV := args[0].(string)
		pattern, okP := args[1].(string)
		if !okV || !okP {
			return nil, fmt.Errorf("regex_match expects string arguments")
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("regex_match: compiling %q: %w", pattern, err)
		}
		return re.MatchString(value), nil

	case "date_before", "date_after":
		args, err := ev.evalList(arg, entry)
		if err != nil {
			return nil, err
		}
		if len(args) != 2 {
			return nil, fmt.Errorf("%s expects [date, date], got %d arguments", op, len(args))
		}
		a, okA := args[0].(string)
		b, okB := args[1].(string)
		if !okA || !okB {
			return nil, fmt.Errorf("%s expects ISO date strings", op)
		}
		if op == "date_before" {
			return a < b, nil
		}
		return a > b, nil

	case "method":
		// Never executed; RemoveOperator strips it before evaluation.
		return nil, fmt.Errorf("the %q operator is disabled", op)

	default:
		if name, ok := strings.CutPrefix(op, "filter_"); ok {
			return ev.applyNamed(name, entry)
		}
		return nil, fmt.Errorf("unknown filter operator %q", op)
	}
}

func (ev *evaluator) applyNamed(name string, entry model.Entry) (any, error) {
	tree, ok := ev.filters[name]
	if !ok {
		return nil, fmt.Errorf("referenced filter %q not found", name)
	}
	if ev.visiting[name] {
		return nil, fmt.Errorf("filter %q references itself", name)
	}
	ev.visiting[name] = true
	defer delete(ev.visiting, name)
	return ev.eval(RemoveOperator(tree, "method"), entry)
}

// evalSingle evaluates an argument that may or may not be wrapped in a
// one-element list.
func (ev *evaluator) evalSingle(arg any, entry model.Entry) (any, error) {
	if list, ok := arg.([]any); ok {
		if len(list) != 1 {
			return nil, fmt.Errorf("expected a single argument, got %d", len(list))
		}
		arg = list[0]
	}
	return ev.eval(arg, entry)
}

func (ev *evaluator) evalList(arg any, entry model.Entry) ([]any, error) {
	list, ok := arg.([]any)
	if !ok {
		list = []any{arg}
	}
	out := make([]any, len(list))
	for i, item := range list {
		v, err := ev.eval(item, entry)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func entryField(entry model.Entry, path string) (any, error) {
	field := strings.TrimPrefix(path, "entry.")
	switch field {
	case "id":
		return float64(entry.ID), nil
	case "recordDate":
		return entry.RecordDate, nil
	case "payee":
		return entry.Payee, nil
	case "memo":
		return entry.Memo, nil
	case "cleared":
		return entry.Cleared, nil
	case "type":
		return string(entry.Type), nil
	case "currencySymbol":
		return entry.CurrencySymbol, nil
	default:
		return nil, fmt.Errorf("unknown entry field %q", path)
	}
}

func hasAccount(entry model.Entry, pattern string) (bool, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, fmt.Errorf("has_account: compiling %q: %w", pattern, err)
	}
	for _, s := range entry.Splits {
		if re.MatchString(s.FullAccount()) {
			return true, nil
		}
	}
	return false, nil
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	default:
		return true
	}
}

// compare implements loose comparison over the mixed scalar types that YAML
// decoding produces: numbers compare numerically, everything else as
// strings.
func compare(op string, a, b any) (bool, error) {
	na, aNum := toNumber(a)
	nb, bNum := toNumber(b)
	if aNum && bNum {
		switch op {
		case "==":
			return na == nb, nil
		case "!=":
			return na != nb, nil
		case "<":
			return na < nb, nil
		case "<=":
			return na <= nb, nil
		case ">":
			return na > nb, nil
		case ">=":
			return na >= nb, nil
		}
	}

	sa, sb := toString(a), toString(b)
	switch op {
	case "==":
		return sa == sb, nil
	case "!=":
		return sa != sb, nil
	case "<":
		return sa < sb, nil
	case "<=":
		return sa <= sb, nil
	case ">":
		return sa > sb, nil
	case ">=":
		return sa >= sb, nil
	}
	return false, fmt.Errorf("unknown comparison operator %q", op)
}

func toNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

func toString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}

// RemoveOperator strips every occurrence of the named operator from a filter
// tree, recursively. Sub-operations reduced to empty maps are dropped from
// argument lists so the remaining tree stays well-formed.
func RemoveOperator(tree map[string]any, operator string) map[string]any {
	out := make(map[string]any, len(tree))
	for op, arg := range tree {
		if op == operator {
			continue
		}
		out[op] = removeFromArg(arg, operator)
	}
	return out
}

func removeFromArg(arg any, operator string) any {
	switch a := arg.(type) {
	case map[string]any:
		return RemoveOperator(a, operator)
	case []any:
		out := make([]any, 0, len(a))
		for _, item := range a {
			if m, ok := item.(map[string]any); ok {
				cleaned := RemoveOperator(m, operator)
				if len(cleaned) == 0 {
					continue
				}
				out = append(out, cleaned)
				continue
			}
			out = append(out, item)
		}
		return out
	default:
		return arg
	}
}
