package builder

import (
	"database/sql"
	"strconv"
	"strings"
)

// Parameter is one (name, value) binding produced by a parameterized build.
type Parameter struct {
	Name  string
	Value any
}

// Params is the ordered sink that accumulates parameter bindings during a
// parameterized render. Names are positional: @P0, @P1, ... in the order the
// build traversal encounters the operands.
type Params struct {
	list []Parameter
}

func (p *Params) add(v Value) string {
	name := "@P" + strconv.Itoa(len(p.list))
	p.list = append(p.list, Parameter{Name: name, Value: v.arg()})

	return name
}

// List returns the accumulated bindings in allocation order.
func (p *Params) List() []Parameter {
	return p.list
}

// Command is the injection-safe product of BuildCommand: the SQL text plus
// the ordered parameter list referenced by its @P<n> placeholders.
type Command struct {
	SQL        string
	Parameters []Parameter
}

// Args converts the parameter list into database/sql named arguments, ready
// to pass to ExecContext or QueryContext.
func (c *Command) Args() []any {
	args := make([]any, 0, len(c.Parameters))
	for _, p := range c.Parameters {
		args = append(args, sql.Named(strings.TrimPrefix(p.Name, "@"), p.Value))
	}

	return args
}

// Values returns the bound values without their names, in parameter order.
func (c *Command) Values() []any {
	vals := make([]any, 0, len(c.Parameters))
	for _, p := range c.Parameters {
		vals = append(vals, p.Value)
	}

	return vals
}
