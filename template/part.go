// ==============================================================================================
// FILE: template/part.go
// ==============================================================================================
// PACKAGE: template
// PURPOSE: The template part tree of §4.6: Text, PartsList, OutputExpr, ForExpr, IfExpr, each
//          knowing how to render itself into an output buffer against a scope.Scope. Grounded on
//          the original TemplateParts.hpp class hierarchy (TemplatePartsList/TemplateText/
//          TemplateOutputExpr/TemplateForExpr/TemplateIfExpr), collapsed from virtual dispatch
//          into a Go interface. BlockCallExpr additionally covers §3's "Proc ... body ... is
//          either an expression or a template part": a control-line block whose body renders
//          through the same value.Proc invocation path a method's block argument uses.
// ==============================================================================================

package template

import (
	"strings"

	"github.com/brightonlang/slimexpr/ast"
	"github.com/brightonlang/slimexpr/eval"
	"github.com/brightonlang/slimexpr/scope"
	"github.com/brightonlang/slimexpr/value"
)

// Part is implemented by every node in the template tree. Render must
// leave sc in its entry state on all exit paths, including failure, per
// §4.6's render contract.
type Part interface {
	Render(buf *strings.Builder, sc *scope.Scope) error
	String() string
}

// Text appends literal template source verbatim.
type Text struct {
	Value string
}

func (t *Text) Render(buf *strings.Builder, sc *scope.Scope) error {
	buf.WriteString(t.Value)
	return nil
}
func (t *Text) String() string { return t.Value }

// PartsList renders its children in order.
type PartsList struct {
	Parts []Part
}

func (p *PartsList) Render(buf *strings.Builder, sc *scope.Scope) error {
	for _, part := range p.Parts {
		if err := part.Render(buf, sc); err != nil {
			return err
		}
	}
	return nil
}
func (p *PartsList) String() string {
	var sb strings.Builder
	for _, part := range p.Parts {
		sb.WriteString(part.String())
	}
	return sb.String()
}

// OutputExpr evaluates Expression and appends its to_s form. HTML escaping
// is a concern of the host template parser, not this core (§4.6).
type OutputExpr struct {
	Expression ast.Expression
}

func (o *OutputExpr) Render(buf *strings.Builder, sc *scope.Scope) error {
	v, err := eval.Eval(o.Expression, sc)
	if err != nil {
		return err
	}
	buf.WriteString(v.ToS())
	return nil
}
func (o *OutputExpr) String() string { return "= " + o.Expression.String() }

// ForExpr evaluates Expression to obtain a receiver, calls its `each`
// method to get an Enumerator (or iterates it directly if already one),
// and for each yielded tuple binds ParamNames in a pushed scope before
// rendering Body, per §4.6: single value → single binding; array of
// matching arity → destructured.
type ForExpr struct {
	Expression ast.Expression
	Body       Part
	ParamNames []string
}

func (f *ForExpr) Render(buf *strings.Builder, sc *scope.Scope) error {
	recv, err := eval.Eval(f.Expression, sc)
	if err != nil {
		return err
	}

	var loopErr error
	iterErr := value.Enumerate(recv, func(args []value.Value) bool {
		child := sc.Push(nil)
		f.bindParams(child, args)
		loopErr = f.Body.Render(buf, child)
		return loopErr == nil
	})
	if loopErr != nil {
		return loopErr
	}
	if iterErr != nil {
		if _, ok := iterErr.(*value.NoMethodError); ok {
			return &value.TypeError{Msg: "for-expression target is not enumerable"}
		}
		return iterErr
	}
	return nil
}

// bindParams implements the single-value-vs-destructure rule: a lone
// param name binds the single yielded value directly (or an array of it
// if `each` produced more than one value, e.g. a Hash's [k, v] pairs);
// multiple param names destructure an array of matching arity.
func (f *ForExpr) bindParams(sc *scope.Scope, args []value.Value) {
	var yielded value.Value
	if len(args) == 1 {
		yielded = args[0]
	} else {
		yielded = value.NewArray(append([]value.Value{}, args...))
	}

	if len(f.ParamNames) <= 1 {
		if len(f.ParamNames) == 1 {
			sc.Bind(f.ParamNames[0], yielded)
		}
		return
	}
	if arr, ok := yielded.(*value.Array); ok {
		for i, name := range f.ParamNames {
			if i < len(arr.Elements) {
				sc.Bind(name, arr.Elements[i])
			} else {
				sc.Bind(name, value.NilValue)
			}
		}
		return
	}
	sc.Bind(f.ParamNames[0], yielded)
	for _, name := range f.ParamNames[1:] {
		sc.Bind(name, value.NilValue)
	}
}

func (f *ForExpr) String() string {
	return "- for " + strings.Join(f.ParamNames, ", ") + " in " + f.Expression.String()
}

// BlockCallExpr is the template-level counterpart of an expression-level
// `do |...| ... end` block: a control line of the form
// `- RECV.METHOD(args) do |params|` followed by an indented body. Per §3,
// a Proc's body "is either an expression or a template part" — here it is
// Body, rendered once per tuple the dispatched method yields to the block,
// the same way `(1..3).each do |i|\n  p= i` (§8 scenario 7) is expected to
// produce one rendered Body per iteration.
type BlockCallExpr struct {
	Receiver   ast.Expression // nil calls Method on self
	Method     string
	Arguments  []ast.Expression
	ParamNames []string
	Body       Part
}

func (b *BlockCallExpr) Render(buf *strings.Builder, sc *scope.Scope) error {
	var recv value.Value
	if b.Receiver != nil {
		v, err := eval.Eval(b.Receiver, sc)
		if err != nil {
			return err
		}
		recv = v
	} else {
		self := sc.Self()
		if self == nil {
			return &value.NameError{Name: b.Method}
		}
		recv = self
	}

	args := make([]value.Value, len(b.Arguments))
	for i, a := range b.Arguments {
		v, err := eval.Eval(a, sc)
		if err != nil {
			return err
		}
		args[i] = v
	}

	block := &value.Proc{
		ParamNames: b.ParamNames,
		Invoke: func(yielded []value.Value) (value.Value, error) {
			child := sc.Push(nil)
			for i, name := range b.ParamNames {
				if i < len(yielded) {
					child.Bind(name, yielded[i])
				} else {
					child.Bind(name, value.NilValue)
				}
			}
			if err := b.Body.Render(buf, child); err != nil {
				return nil, err
			}
			return value.NilValue, nil
		},
	}

	_, err := value.Dispatch(recv, b.Method, append(args, value.Value(block)))
	return err
}

func (b *BlockCallExpr) String() string {
	var sb strings.Builder
	sb.WriteString("- ")
	if b.Receiver != nil {
		sb.WriteString(b.Receiver.String() + ".")
	}
	sb.WriteString(b.Method + "(")
	for i, a := range b.Arguments {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteString(") do |" + strings.Join(b.ParamNames, ", ") + "|")
	return sb.String()
}

// CondExpr pairs a guard expression with the body rendered when it is
// truthy, mirroring the original's TemplateCondExpr (shared by the if
// branch and every elsif branch).
type CondExpr struct {
	Expression ast.Expression
	Body       Part
}

// IfExpr evaluates If's condition; if truthy renders its body, else tries
// each Elsif branch in order, else ElseBody if present, else nothing.
type IfExpr struct {
	If       CondExpr
	Elsif    []CondExpr
	ElseBody Part
}

func (i *IfExpr) Render(buf *strings.Builder, sc *scope.Scope) error {
	branches := append([]CondExpr{i.If}, i.Elsif...)
	for _, branch := range branches {
		cond, err := eval.Eval(branch.Expression, sc)
		if err != nil {
			return err
		}
		if value.Truthy(cond) {
			return branch.Body.Render(buf, sc)
		}
	}
	if i.ElseBody != nil {
		return i.ElseBody.Render(buf, sc)
	}
	return nil
}

func (i *IfExpr) String() string {
	var sb strings.Builder
	sb.WriteString("- if " + i.If.Expression.String())
	for _, e := range i.Elsif {
		sb.WriteString("\n- elsif " + e.Expression.String())
	}
	if i.ElseBody != nil {
		sb.WriteString("\n- else")
	}
	return sb.String()
}

// silentExpr evaluates Expression for its side effect (e.g. a local
// assignment on a bare '-' control line) and contributes no output,
// mirroring Slim's "-" control-code lines.
type silentExpr struct {
	expression ast.Expression
}

func (s *silentExpr) Render(buf *strings.Builder, sc *scope.Scope) error {
	_, err := eval.Eval(s.expression, sc)
	return err
}
func (s *silentExpr) String() string { return "- " + s.expression.String() }
