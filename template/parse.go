// ==============================================================================================
// FILE: template/parse.go
// ==============================================================================================
// PACKAGE: template
// PURPOSE: ParseBlocks, a small line-oriented template source parser: control lines starting
//          with '-' (if/elsif/else/for), output lines starting with '=', everything else literal
//          text, nested by leading-whitespace indentation. This exists only so render() is
//          end-to-end runnable and testable; it is explicitly NOT the HTML/Slim tag grammar
//          (tag names, attribute syntax, id/class shorthand), which spec.md §1 places out of
//          scope as an external collaborator.
// ==============================================================================================

package template

import (
	"strings"

	"github.com/brightonlang/slimexpr/ast"
	"github.com/brightonlang/slimexpr/parser"
)

// ParseBlocks parses source into a Part tree. locals seeds the expression
// parser's LocalVarNames (e.g. from scope.Scope.Iter on the render's root
// scope, per §4.5); it may be nil.
func ParseBlocks(source string, locals *parser.LocalVarNames) (Part, error) {
	if locals == nil {
		locals = parser.NewLocalVarNames()
	}
	lp := &lineParser{lines: splitLines(source), locals: locals}
	return lp.parseBlock(-1)
}

func splitLines(source string) []string {
	if source == "" {
		return nil
	}
	return strings.Split(source, "\n")
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

type lineParser struct {
	lines  []string
	pos    int
	locals *parser.LocalVarNames
}

// parseBlock consumes lines more indented than parentIndent, returning
// once a line at or below parentIndent (or end of input) is reached.
func (lp *lineParser) parseBlock(parentIndent int) (Part, error) {
	var parts []Part
	for lp.pos < len(lp.lines) {
		line := lp.lines[lp.pos]
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			lp.pos++
			parts = append(parts, &Text{Value: "\n"})
			continue
		}

		indent := indentOf(line)
		if indent <= parentIndent {
			break
		}

		switch {
		case strings.HasPrefix(trimmed, "-"):
			part, err := lp.parseControlLine(trimmed, indent)
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		case strings.HasPrefix(trimmed, "="):
			lp.pos++
			exprSrc := strings.TrimSpace(trimmed[1:])
			expr, err := parser.ParseExpressionWithLocals(exprSrc, lp.locals)
			if err != nil {
				return nil, err
			}
			parts = append(parts, &OutputExpr{Expression: expr})
		default:
			lp.pos++
			parts = append(parts, &Text{Value: line + "\n"})
		}
	}
	return &PartsList{Parts: parts}, nil
}

// parseControlLine handles one '-'-prefixed line: if/elsif/else/for. It
// consumes the control line itself and, for if/elsif/for, the indented
// body that follows.
func (lp *lineParser) parseControlLine(trimmed string, indent int) (Part, error) {
	lp.pos++
	body := strings.TrimSpace(trimmed[1:])

	switch {
	case strings.HasPrefix(body, "if "):
		return lp.parseIf(strings.TrimSpace(body[3:]), indent)
	case strings.HasPrefix(body, "for "):
		return lp.parseFor(strings.TrimSpace(body[4:]), indent)
	default:
		if exprSrc, params, ok := splitBlockHeader(body); ok {
			return lp.parseBlockCall(exprSrc, params, indent)
		}
		// A bare control-line expression with no template-level
		// meaning (e.g. a side-effecting assignment); evaluate it for
		// effect and emit no output.
		expr, err := parser.ParseExpressionWithLocals(body, lp.locals)
		if err != nil {
			return nil, err
		}
		return &silentExpr{expression: expr}, nil
	}
}

// splitBlockHeader recognizes a control line of the form "RECV.METHOD(args)
// do |params|": the template-level block form of §3's Proc, whose body is
// the indented lines that follow rather than a single expression. Returns
// ok=false for any line that doesn't end in a bare "do |...|" block header
// (no inline "end" is supported — the body is closed by indentation, like
// for/if).
func splitBlockHeader(body string) (exprSrc string, params []string, ok bool) {
	idx := strings.LastIndex(body, " do |")
	if idx < 0 {
		return "", nil, false
	}
	rest := body[idx+len(" do |"):]
	closeIdx := strings.Index(rest, "|")
	if closeIdx < 0 {
		return "", nil, false
	}
	if strings.TrimSpace(rest[closeIdx+1:]) != "" {
		return "", nil, false
	}
	for _, p := range strings.Split(rest[:closeIdx], ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			params = append(params, p)
		}
	}
	return strings.TrimSpace(body[:idx]), params, true
}

// parseBlockCall parses exprSrc (which must be a method call) and the
// indented body that follows into a BlockCallExpr.
func (lp *lineParser) parseBlockCall(exprSrc string, params []string, parentIndent int) (Part, error) {
	for _, p := range params {
		lp.locals.Add(p)
	}
	expr, err := parser.ParseExpressionWithLocals(exprSrc, lp.locals)
	if err != nil {
		return nil, err
	}
	call, ok := expr.(*ast.MethodCall)
	if !ok {
		return nil, &parser.SyntaxError{Msg: "block header must be a method call, e.g. 'items.each do |x|'"}
	}
	body, err := lp.parseBlock(parentIndent)
	if err != nil {
		return nil, err
	}
	return &BlockCallExpr{
		Receiver:   call.Receiver,
		Method:     call.Name,
		Arguments:  call.Arguments,
		ParamNames: params,
		Body:       body,
	}, nil
}

func (lp *lineParser) parseIf(condSrc string, parentIndent int) (Part, error) {
	cond, err := parser.ParseExpressionWithLocals(condSrc, lp.locals)
	if err != nil {
		return nil, err
	}
	ifBody, err := lp.parseBlock(parentIndent)
	if err != nil {
		return nil, err
	}
	ifExpr := &IfExpr{If: CondExpr{Expression: cond, Body: ifBody}}

	for lp.pos < len(lp.lines) {
		line := lp.lines[lp.pos]
		trimmed := strings.TrimSpace(line)
		if indentOf(line) != parentIndent || !strings.HasPrefix(trimmed, "-") {
			break
		}
		ctrl := strings.TrimSpace(trimmed[1:])
		switch {
		case strings.HasPrefix(ctrl, "elsif "):
			lp.pos++
			c, err := parser.ParseExpressionWithLocals(strings.TrimSpace(ctrl[6:]), lp.locals)
			if err != nil {
				return nil, err
			}
			b, err := lp.parseBlock(parentIndent)
			if err != nil {
				return nil, err
			}
			ifExpr.Elsif = append(ifExpr.Elsif, CondExpr{Expression: c, Body: b})
		case ctrl == "else":
			lp.pos++
			b, err := lp.parseBlock(parentIndent)
			if err != nil {
				return nil, err
			}
			ifExpr.ElseBody = b
			return ifExpr, nil
		default:
			return ifExpr, nil
		}
	}
	return ifExpr, nil
}

func (lp *lineParser) parseFor(rest string, parentIndent int) (Part, error) {
	inIdx := strings.Index(rest, " in ")
	if inIdx < 0 {
		return nil, &parser.SyntaxError{Msg: "expected 'in' in for-expression"}
	}
	namesPart := strings.TrimSpace(rest[:inIdx])
	exprSrc := strings.TrimSpace(rest[inIdx+4:])

	var names []string
	for _, n := range strings.Split(namesPart, ",") {
		n = strings.TrimSpace(n)
		if n != "" {
			names = append(names, n)
			lp.locals.Add(n)
		}
	}

	expr, err := parser.ParseExpressionWithLocals(exprSrc, lp.locals)
	if err != nil {
		return nil, err
	}
	body, err := lp.parseBlock(parentIndent)
	if err != nil {
		return nil, err
	}
	return &ForExpr{Expression: expr, Body: body, ParamNames: names}, nil
}
