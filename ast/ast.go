// ==============================================================================================
// FILE: ast/ast.go
// ==============================================================================================
// PACKAGE: ast
// PURPOSE: Defines the Abstract Syntax Tree produced by the Parser for the embedded expression
//          language. Every node knows how to reconstruct source text via String(), which the
//          parse/print round-trip property (spec §8) depends on.
// ==============================================================================================

package ast

import (
	"strconv"
	"strings"

	"github.com/brightonlang/slimexpr/token"
)

// Node is implemented by every AST node.
type Node interface {
	String() string
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// ----------------------------------------------------------------------------------------------
// LITERALS
// ----------------------------------------------------------------------------------------------

type NumberLiteral struct {
	Token token.Token
	Value float64
}

func (n *NumberLiteral) expressionNode() {}
func (n *NumberLiteral) String() string  { return n.Token.Literal }

type StringLiteral struct {
	Token token.Token
	Value string
}

func (s *StringLiteral) expressionNode() {}
func (s *StringLiteral) String() string  { return strconv.Quote(s.Value) }

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) expressionNode() {}
func (b *BooleanLiteral) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

type NilLiteral struct {
	Token token.Token
}

func (n *NilLiteral) expressionNode() {}
func (n *NilLiteral) String() string  { return "nil" }

// Identifier is a bare SYMBOL in expression position: either a local
// variable read or a zero-arg method call on the implicit receiver,
// disambiguated at parse time (recorded in IsLocal) using the parser's
// LocalVarNames set — not re-resolved at eval time.
type Identifier struct {
	Token   token.Token
	Value   string
	IsLocal bool
}

func (i *Identifier) expressionNode() {}
func (i *Identifier) String() string  { return i.Value }

type ArrayLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (a *ArrayLiteral) expressionNode() {}
func (a *ArrayLiteral) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// HashPair is one key/value entry of a HashLiteral, kept in source order.
type HashPair struct {
	Key   Expression
	Value Expression
}

type HashLiteral struct {
	Token token.Token
	Pairs []HashPair
}

func (h *HashLiteral) expressionNode() {}
func (h *HashLiteral) String() string {
	parts := make([]string, len(h.Pairs))
	for i, p := range h.Pairs {
		parts[i] = p.Key.String() + " => " + p.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ----------------------------------------------------------------------------------------------
// BLOCKS (PROC LITERALS)
// ----------------------------------------------------------------------------------------------

// Block is the `{|p1, p2| body}` / `do |p1, p2| body end` trailing block
// attached to a CallExpression, per §4.3.
type Block struct {
	Token      token.Token
	Parameters []*Identifier
	Body       Expression
}

func (b *Block) String() string {
	params := make([]string, len(b.Parameters))
	for i, p := range b.Parameters {
		params[i] = p.Value
	}
	return "{|" + strings.Join(params, ", ") + "| " + b.Body.String() + "}"
}

// ----------------------------------------------------------------------------------------------
// OPERATORS
// ----------------------------------------------------------------------------------------------

type PrefixExpression struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (p *PrefixExpression) expressionNode() {}
func (p *PrefixExpression) String() string  { return "(" + p.Operator + p.Right.String() + ")" }

type InfixExpression struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (i *InfixExpression) expressionNode() {}
func (i *InfixExpression) String() string {
	return "(" + i.Left.String() + " " + i.Operator + " " + i.Right.String() + ")"
}

// Assignment is `name = value`. The left side is always a bare local name;
// index/field assignment is expressed as a method call (`a.[]=(k, v)`) and
// is not part of this node.
type Assignment struct {
	Token token.Token
	Name  *Identifier
	Value Expression
}

func (a *Assignment) expressionNode() {}
func (a *Assignment) String() string  { return a.Name.Value + " = " + a.Value.String() }

type Ternary struct {
	Token     token.Token
	Condition Expression
	IfTrue    Expression
	IfFalse   Expression
}

func (t *Ternary) expressionNode() {}
func (t *Ternary) String() string {
	return "(" + t.Condition.String() + " ? " + t.IfTrue.String() + " : " + t.IfFalse.String() + ")"
}

// ----------------------------------------------------------------------------------------------
// CALLS, INDEXING
// ----------------------------------------------------------------------------------------------

// MethodCall is `recv.name(args) [block]`. Receiver is nil for a bare
// call on the implicit receiver (`name(args)`).
type MethodCall struct {
	Token     token.Token
	Receiver  Expression
	Name      string
	Arguments []Expression
	Block     *Block
}

func (m *MethodCall) expressionNode() {}
func (m *MethodCall) String() string {
	var sb strings.Builder
	if m.Receiver != nil {
		sb.WriteString(m.Receiver.String())
		sb.WriteString(".")
	}
	sb.WriteString(m.Name)
	if m.Arguments != nil {
		parts := make([]string, len(m.Arguments))
		for i, a := range m.Arguments {
			parts[i] = a.String()
		}
		sb.WriteString("(" + strings.Join(parts, ", ") + ")")
	}
	if m.Block != nil {
		sb.WriteString(" ")
		sb.WriteString(m.Block.String())
	}
	return sb.String()
}

// IndexExpression is `recv[k1, k2, ...]`, desugaring to `recv.[](k1, k2)`.
type IndexExpression struct {
	Token     token.Token
	Left      Expression
	Arguments []Expression
}

func (ix *IndexExpression) expressionNode() {}
func (ix *IndexExpression) String() string {
	parts := make([]string, len(ix.Arguments))
	for i, a := range ix.Arguments {
		parts[i] = a.String()
	}
	return ix.Left.String() + "[" + strings.Join(parts, ", ") + "]"
}

// Grouped wraps a parenthesized expression purely so String() round-trips
// the source's explicit grouping.
type Grouped struct {
	Token      token.Token
	Expression Expression
}

func (g *Grouped) expressionNode() {}
func (g *Grouped) String() string {
	switch g.Expression.(type) {
	case *InfixExpression, *PrefixExpression, *Ternary:
		// These already print inside their own parentheses.
		return g.Expression.String()
	}
	return "(" + g.Expression.String() + ")"
}
