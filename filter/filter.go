// Package filter compiles expr expressions into predicates over leaderboard
// rows, e.g. `score > 1200 && contains(name, "bot")`.
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ml-arena/mlarena-go/arena"
)

// RowFilter is a compiled filter expression.
type RowFilter struct {
	program *vm.Program
	expr    string
}

// helpers are available in every filter expression.
var helpers = map[string]any{
	"contains": func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	},
	"startsWith": func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	},
	"endsWith": func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	},
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
}

// Compile compiles a filter expression. Row fields are exposed as variables
// by name; fields absent from a row evaluate as nil.
func Compile(expression string) (*RowFilter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(helpers),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &RowFilter{program: program, expr: expression}, nil
}

// Evaluate evaluates the filter against a row. A row matches only when the
// expression evaluates to true; evaluation errors count as no match.
func (f *RowFilter) Evaluate(row arena.Row) bool {
	env := make(map[string]any, len(row)+len(helpers))
	for name, fn := range helpers {
		env[name] = fn
	}
	for key, value := range row {
		env[key] = value
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false
	}

	matched, ok := result.(bool)
	return ok && matched
}

// String returns the original expression.
func (f *RowFilter) String() string {
	return f.expr
}
