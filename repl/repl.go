// ==============================================================================================
// FILE: repl/repl.go
// ==============================================================================================
// PACKAGE: repl
// PURPOSE: The Read-Eval-Print Loop interface. It connects the user input stream to the
//          expression pipeline (Lexer->Parser->Evaluator) and keeps a persistent scope for the
//          session, so locals assigned on one line are visible on the next.
// ==============================================================================================

package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/brightonlang/slimexpr/eval"
	"github.com/brightonlang/slimexpr/lexer"
	"github.com/brightonlang/slimexpr/parser"
	"github.com/brightonlang/slimexpr/scope"
	"github.com/brightonlang/slimexpr/token"
	"github.com/brightonlang/slimexpr/value"
)

// ----------------------------------------------------------------------------
// UI CONSTANTS & CONFIGURATION
// ----------------------------------------------------------------------------

const (
	PROMPT = ">> "
	LOGO   = `
┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓
┃  ___ _ _       _____                               ┃
┃ / __| (_)_ __ |_   _|_ _ _ __  _  _ _ __ _  __      ┃
┃ \__ \ | | '  \   | |/ _ | '  \| || | '_ \ || |      ┃
┃ |___/_|_|_|_|_|  |_|\___|_|_|_|\_,_| .__/\_, |      ┃
┃                                    |_|   |__/       ┃
┃                                                     ┃
┃ slimrender expression console                      ┃
┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛
`
)

// ANSI Color Codes for terminal output
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Purple = "\033[35m"
	Cyan   = "\033[36m"
	Gray   = "\033[37m"
	Bold   = "\033[1m"
)

// ----------------------------------------------------------------------------
// REPL LOGIC
// ----------------------------------------------------------------------------

// Start launches the Read-Eval-Print Loop. It listens to in, evaluates
// expressions against a scope rooted at an empty view-model, and writes
// results to out. The scope persists across lines so that `x = 1` on one
// line leaves x visible on the next.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	sc := scope.New(value.NewMapViewModel(nil))
	locals := parser.NewLocalVarNames()
	debugMode := false

	fmt.Fprint(out, LOGO)
	printHelp(out)

	for {
		fmt.Fprint(out, Cyan+PROMPT+Reset)
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			switch line {
			case ".exit":
				fmt.Fprintln(out, Yellow+"Goodbye!"+Reset)
				return
			case ".clear":
				sc = scope.New(value.NewMapViewModel(nil))
				locals = parser.NewLocalVarNames()
				fmt.Fprintln(out, Green+"Scope cleared."+Reset)
				continue
			case ".debug":
				debugMode = !debugMode
				status := "DISABLED"
				if debugMode {
					status = "ENABLED"
				}
				fmt.Fprintf(out, Gray+"Debug mode %s\n"+Reset, status)
				continue
			case ".help":
				printHelp(out)
				continue
			default:
				fmt.Fprintf(out, Red+"Unknown command: %s. Type .help for info.\n"+Reset, line)
				continue
			}
		}

		if debugMode {
			printTokens(out, line)
		}

		expr, err := parser.ParseExpressionWithLocals(line, locals)
		if err != nil {
			fmt.Fprintln(out, Red+Bold+"Syntax error: "+Reset+Red+err.Error()+Reset)
			continue
		}

		if debugMode {
			fmt.Fprintln(out, Gray+"┌── [ AST ] ─────────────────────────────────────────────┐"+Reset)
			fmt.Fprintln(out, expr.String())
			fmt.Fprintln(out, Gray+"└────────────────────────────────────────────────────────┘"+Reset)
		}

		result, err := eval.Eval(expr, sc)
		if err != nil {
			fmt.Fprintf(out, Red+Bold+"ERROR: "+Reset+Red+"%s\n"+Reset, err.Error())
			continue
		}
		printResult(out, result)
	}
}

// ----------------------------------------------------------------------------
// HELPER FUNCTIONS
// ----------------------------------------------------------------------------

func printHelp(out io.Writer) {
	fmt.Fprintln(out, Gray+"Commands:")
	fmt.Fprintln(out, "  .exit   Quit the REPL")
	fmt.Fprintln(out, "  .clear  Reset the scope")
	fmt.Fprintln(out, "  .debug  Toggle verbose token/AST output")
	fmt.Fprintln(out, "  .help   Show this message"+Reset)
	fmt.Fprintln(out)
}

func printTokens(out io.Writer, line string) {
	fmt.Fprintln(out, Gray+"┌── [ TOKENS ] ──────────────────────────────────────────┐"+Reset)
	l := lexer.New(line)
	for tok := l.NextToken(); tok.Type != token.END; tok = l.NextToken() {
		fmt.Fprintf(out, "│ %-15s : %s\n", tok.Type, tok.Literal)
	}
	fmt.Fprintln(out, Gray+"└────────────────────────────────────────────────────────┘"+Reset)
}

// printResult formats the output based on the value's runtime type.
func printResult(out io.Writer, v value.Value) {
	str := v.Inspect()
	switch vv := v.(type) {
	case *value.Nil:
		fmt.Fprintln(out, Gray+str+Reset)
	case *value.Number:
		fmt.Fprintf(out, Yellow+"%s\n"+Reset, str)
	case *value.Boolean:
		color := Green
		if !vv.Value {
			color = Red
		}
		fmt.Fprintf(out, color+"%s\n"+Reset, str)
	case *value.String:
		fmt.Fprintf(out, Green+"%s\n"+Reset, str)
	case *value.Symbol:
		fmt.Fprintf(out, Purple+"%s\n"+Reset, str)
	case *value.Array, *value.Hash:
		fmt.Fprintf(out, Blue+"%s\n"+Reset, str)
	case *value.Proc:
		fmt.Fprintln(out, Purple+"#<Proc>"+Reset)
	case *value.Enumerator:
		fmt.Fprintln(out, Purple+"#<Enumerator>"+Reset)
	default:
		fmt.Fprintf(out, "%s\n", str)
	}
}
