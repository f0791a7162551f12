package resolver

import (
	"log/slog"

	"github.com/dlangtools/dsense/internal/ast"
)

// VoidContainer is the placeholder container name that, like an empty
// container, requests enclosing-scope lookup before free functions.
const VoidContainer = "void"

// CallTipsFor returns the rendered signatures of every function named
// functionName reachable at the call site. With an empty or "void"
// container, the aggregates enclosing position are tried first; the
// moment any enclosing aggregate has a matching member function its
// signatures are returned, otherwise free functions across all modules
// are scanned. A named container restricts the search to member
// functions of aggregates literally named container. Overloads all
// appear; a miss yields an empty slice.
func (c *Context) CallTipsFor(container, functionName string, position int) []string {
	if container == "" || container == VoidContainer {
		for _, enclosing := range c.StructsContaining(position) {
			if tips := signaturesOf(enclosing.FunctionsNamed(functionName)); len(tips) > 0 {
				c.traceTips("enclosing aggregate", functionName, len(tips))
				return tips
			}
		}
		tips := c.freeFunctionTips(functionName)
		c.traceTips("free functions", functionName, len(tips))
		return tips
	}

	var tips []string
	for _, mod := range c.modules() {
		for _, agg := range mod.Aggregates() {
			if agg.Name != container {
				continue
			}
			tips = append(tips, signaturesOf(agg.FunctionsNamed(functionName))...)
		}
	}
	c.traceTips("named container", functionName, len(tips))
	return tips
}

// freeFunctionTips renders every module-level function with the given
// name across the current and auxiliary modules.
func (c *Context) freeFunctionTips(functionName string) []string {
	var tips []string
	for _, mod := range c.modules() {
		for i := range mod.Functions {
			if mod.Functions[i].Name == functionName {
				tips = append(tips, mod.Functions[i].Signature())
			}
		}
	}
	return tips
}

func signaturesOf(functions []*ast.Function) []string {
	var tips []string
	for _, f := range functions {
		tips = append(tips, f.Signature())
	}
	return tips
}

func (c *Context) traceTips(stage, name string, count int) {
	if c.TraceEnabled() {
		c.Trace("call tips query",
			slog.String("stage", stage),
			slog.String("function", name),
			slog.Int("tips", count))
	}
}
