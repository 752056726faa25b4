// ==============================================================================================
// FILE: eval/eval.go
// ==============================================================================================
// PACKAGE: eval
// PURPOSE: Recursive evaluation of an ast.Expression against a scope.Scope, per §4.4. Dispatches
//          method calls through value.MethodTable, builds value.Proc closures for Block nodes,
//          and enforces the recursion-depth bound that fails with value.StackError on overflow.
// ==============================================================================================

package eval

import (
	"github.com/brightonlang/slimexpr/ast"
	"github.com/brightonlang/slimexpr/scope"
	"github.com/brightonlang/slimexpr/value"
)

// maxDepth bounds recursive evaluation per §5: "implementations should
// detect overflow and fail with StackError" since host stack depth alone
// is not a contract callers can rely on.
const maxDepth = 2000

// evaluator threads a depth counter through recursive Eval calls without
// requiring every call site to pass it explicitly.
type evaluator struct {
	depth int
}

// Eval evaluates node against sc and returns its Value, or an error — one
// of value.NameError,
// value.NoMethodError, value.TypeError, value.ArgumentError,
// value.IndexError, value.ZeroDivisionError, or value.StackError.
func Eval(node ast.Node, sc *scope.Scope) (value.Value, error) {
	e := &evaluator{}
	return e.eval(node, sc)
}

func (e *evaluator) eval(node ast.Node, sc *scope.Scope) (value.Value, error) {
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > maxDepth {
		return nil, &value.StackError{}
	}

	switch n := node.(type) {
	case *ast.NumberLiteral:
		return value.MakeNumber(n.Value), nil
	case *ast.StringLiteral:
		return value.MakeString(n.Value), nil
	case *ast.BooleanLiteral:
		return value.MakeBoolean(n.Value), nil
	case *ast.NilLiteral:
		return value.NilValue, nil
	case *ast.Identifier:
		return e.evalIdentifier(n, sc)
	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(n, sc)
	case *ast.HashLiteral:
		return e.evalHashLiteral(n, sc)
	case *ast.PrefixExpression:
		return e.evalPrefixExpression(n, sc)
	case *ast.InfixExpression:
		return e.evalInfixExpression(n, sc)
	case *ast.Assignment:
		return e.evalAssignment(n, sc)
	case *ast.Ternary:
		return e.evalTernary(n, sc)
	case *ast.MethodCall:
		return e.evalMethodCall(n, sc)
	case *ast.IndexExpression:
		return e.evalIndexExpression(n, sc)
	case *ast.Grouped:
		return e.eval(n.Expression, sc)
	default:
		return nil, &value.TypeError{Msg: "unknown expression node"}
	}
}

// evalIdentifier resolves a bare name already disambiguated by the parser:
// IsLocal reads the scope chain and fails with NameError if unbound (per
// §4.4's LocalRead); otherwise it is a zero-arg method call on self,
// handled identically to evalMethodCall's no-receiver path.
func (e *evaluator) evalIdentifier(n *ast.Identifier, sc *scope.Scope) (value.Value, error) {
	if n.IsLocal {
		if v, ok := sc.Get(n.Value); ok {
			return v, nil
		}
		return nil, &value.NameError{Name: n.Value}
	}
	return e.callOnSelf(n.Value, nil, nil, sc)
}

func (e *evaluator) evalArrayLiteral(n *ast.ArrayLiteral, sc *scope.Scope) (value.Value, error) {
	elems := make([]value.Value, len(n.Elements))
	for i, el := range n.Elements {
		v, err := e.eval(el, sc)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return value.NewArray(elems), nil
}

func (e *evaluator) evalHashLiteral(n *ast.HashLiteral, sc *scope.Scope) (value.Value, error) {
	h := value.NewHash()
	for _, pair := range n.Pairs {
		k, err := e.eval(pair.Key, sc)
		if err != nil {
			return nil, err
		}
		v, err := e.eval(pair.Value, sc)
		if err != nil {
			return nil, err
		}
		h.Set(k, v)
	}
	return h, nil
}

func (e *evaluator) evalPrefixExpression(n *ast.PrefixExpression, sc *scope.Scope) (value.Value, error) {
	right, err := e.eval(n.Right, sc)
	if err != nil {
		return nil, err
	}
	name := n.Operator
	switch n.Operator {
	case "-":
		name = "-@"
	case "!":
		return value.MakeBoolean(!value.Truthy(right)), nil
	case "~":
		name = "~"
	}
	return value.Dispatch(right, name, nil)
}

// evalInfixExpression desugars to a method call per §4.4, except the
// short-circuit logical operators, which evaluate rhs only if needed and
// return the determining operand rather than a coerced boolean.
func (e *evaluator) evalInfixExpression(n *ast.InfixExpression, sc *scope.Scope) (value.Value, error) {
	if n.Operator == "&&" {
		left, err := e.eval(n.Left, sc)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(left) {
			return left, nil
		}
		return e.eval(n.Right, sc)
	}
	if n.Operator == "||" {
		left, err := e.eval(n.Left, sc)
		if err != nil {
			return nil, err
		}
		if value.Truthy(left) {
			return left, nil
		}
		return e.eval(n.Right, sc)
	}

	left, err := e.eval(n.Left, sc)
	if err != nil {
		return nil, err
	}
	right, err := e.eval(n.Right, sc)
	if err != nil {
		return nil, err
	}
	return value.Dispatch(left, n.Operator, []value.Value{right})
}

func (e *evaluator) evalAssignment(n *ast.Assignment, sc *scope.Scope) (value.Value, error) {
	v, err := e.eval(n.Value, sc)
	if err != nil {
		return nil, err
	}
	sc.Set(n.Name.Value, v)
	return v, nil
}

func (e *evaluator) evalTernary(n *ast.Ternary, sc *scope.Scope) (value.Value, error) {
	cond, err := e.eval(n.Condition, sc)
	if err != nil {
		return nil, err
	}
	if value.Truthy(cond) {
		return e.eval(n.IfTrue, sc)
	}
	return e.eval(n.IfFalse, sc)
}

func (e *evaluator) evalIndexExpression(n *ast.IndexExpression, sc *scope.Scope) (value.Value, error) {
	left, err := e.eval(n.Left, sc)
	if err != nil {
		return nil, err
	}
	args := make([]value.Value, len(n.Arguments))
	for i, a := range n.Arguments {
		v, err := e.eval(a, sc)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return value.Dispatch(left, "[]", args)
}

func (e *evaluator) evalMethodCall(n *ast.MethodCall, sc *scope.Scope) (value.Value, error) {
	args := make([]value.Value, len(n.Arguments))
	for i, a := range n.Arguments {
		v, err := e.eval(a, sc)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	var block *value.Proc
	if n.Block != nil {
		block = e.makeProc(n.Block, sc)
	}

	if n.Receiver == nil {
		return e.callOnSelf(n.Name, args, block, sc)
	}

	recv, err := e.eval(n.Receiver, sc)
	if err != nil {
		return nil, err
	}
	return e.callWithBlock(recv, n.Name, args, block)
}

func (e *evaluator) callWithBlock(recv value.Value, name string, args []value.Value, block *value.Proc) (value.Value, error) {
	if block != nil {
		args = append(append([]value.Value{}, args...), value.Value(block))
	}
	return value.Dispatch(recv, name, args)
}

// callOnSelf implements the implicit-receiver call of §4.4/§4.5: a bare
// name with no local binding first reads a field through Lookup when the
// root view-model is the MapViewModel convenience type (and the call has
// no arguments and no block), otherwise dispatches against the root
// view-model's method table, and fails with NameError when nothing answers
// (not NoMethodError — there is no receiver to blame).
func (e *evaluator) callOnSelf(name string, args []value.Value, block *value.Proc, sc *scope.Scope) (value.Value, error) {
	self := sc.Self()
	if self == nil {
		return nil, &value.NameError{Name: name}
	}
	if mv, ok := self.(*value.MapViewModel); ok && len(args) == 0 && block == nil {
		if v, ok := mv.Lookup(name); ok {
			return v, nil
		}
	}
	v, err := e.callWithBlock(self, name, args, block)
	if nm, isNoMethod := err.(*value.NoMethodError); isNoMethod && nm.Name == name {
		return nil, &value.NameError{Name: name}
	}
	return v, err
}

// makeProc builds a value.Proc whose Invoke closes over blk's capture
// scope: a fresh child frame binds parameters (excess discarded, missing
// become nil, per §4.4's Proc invocation rule) before evaluating the body.
func (e *evaluator) makeProc(blk *ast.Block, captureScope *scope.Scope) *value.Proc {
	names := make([]string, len(blk.Parameters))
	for i, p := range blk.Parameters {
		names[i] = p.Value
	}
	return &value.Proc{
		ParamNames: names,
		Invoke: func(args []value.Value) (value.Value, error) {
			child := captureScope.Push(nil)
			for i, name := range names {
				if i < len(args) {
					child.Bind(name, args[i])
				} else {
					child.Bind(name, value.NilValue)
				}
			}
			return e.eval(blk.Body, child)
		},
	}
}
