package rules

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// compileSteps copies the order into planner-owned steps and compiles each
// condition into expr bytecode. The caller's order is left untouched.
func compileSteps(order BuildOrder) ([]*Step, error) {
	steps := make([]*Step, len(order))
	for i := range order {
		s := order[i]
		s.index = i
		if s.Name == "" {
			s.Name = fmt.Sprintf("%s-%d", s.Role, i)
		}
		if s.When != "" {
			prog, err := expr.Compile(s.When, expr.Env(BuildEnv{}), expr.AsBool())
			if err != nil {
				return nil, fmt.Errorf("compile step %q: %w", s.Name, err)
			}
			s.program = prog
		}
		steps[i] = &s
	}
	return steps, nil
}
