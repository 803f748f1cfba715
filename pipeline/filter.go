package pipeline

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// filterEnv is the environment a filter expression is evaluated against,
// one project at a time.
type filterEnv struct {
	Slug    string `expr:"slug"`
	Name    string `expr:"name"`
	Dir     string `expr:"dir"`
	Version string `expr:"version"`
	Exists  bool   `expr:"exists"`
}

// Filter restricts which local projects a task operates on, using an expr
// expression over {slug, name, dir, version, exists}.
type Filter struct {
	expression string
	program    *vm.Program
}

// CompileFilter compiles a filter expression.
func CompileFilter(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression %q: %w", expression, err)
	}

	return &Filter{expression: expression, program: program}, nil
}

// Match reports whether a project passes the filter. exists tells the
// expression whether the project is already present remotely.
func (f *Filter) Match(project *Project, exists bool) (bool, error) {
	out, err := expr.Run(f.program, filterEnv{
		Slug:    project.Meta.Slug,
		Name:    project.Meta.Name,
		Dir:     project.DirName,
		Version: project.Meta.VersionNumber,
		Exists:  exists,
	})
	if err != nil {
		return false, fmt.Errorf("filter %q failed: %w", f.expression, err)
	}
	return out.(bool), nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.expression
}
