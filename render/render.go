// ==============================================================================================
// FILE: render/render.go
// ==============================================================================================
// PACKAGE: render
// PURPOSE: The top-level entry points of §6: Render drives a parsed template.Part tree against a
//          view-model, Eval parses and evaluates a single bare expression. Both compose the
//          lower packages (template/parser/eval) without introducing any new semantics of their
//          own, mirroring the teacher's thin cmd-facing package that wires Lexer → Parser →
//          Evaluator together for its REPL and file-running entry points.
// ==============================================================================================

package render

import (
	"strings"

	"github.com/brightonlang/slimexpr/eval"
	"github.com/brightonlang/slimexpr/parser"
	"github.com/brightonlang/slimexpr/scope"
	"github.com/brightonlang/slimexpr/template"
	"github.com/brightonlang/slimexpr/value"
)

// Render renders tree against model, returning the accumulated output.
// The root scope is rooted at model per §4.5, so bare identifiers in the
// template resolve as implicit method calls on it.
func Render(tree template.Part, model value.ViewModel) (string, error) {
	sc := scope.New(model)
	var buf strings.Builder
	if err := tree.Render(&buf, sc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderSource parses source as template text and renders it against
// model in one step, the composition a CLI or test typically wants.
func RenderSource(source string, model value.ViewModel) (string, error) {
	tree, err := template.ParseBlocks(source, nil)
	if err != nil {
		return "", err
	}
	return Render(tree, model)
}

// Eval parses source as a single expression (per §4.3's full_expression
// entry point) and evaluates it against a scope rooted at model.
func Eval(source string, model value.ViewModel) (value.Value, error) {
	expr, err := parser.ParseExpression(source)
	if err != nil {
		return nil, err
	}
	return eval.Eval(expr, scope.New(model))
}
