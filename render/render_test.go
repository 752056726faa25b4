// ==============================================================================================
// FILE: render/render_test.go
// ==============================================================================================

package render

import (
	"testing"

	"github.com/brightonlang/slimexpr/template"
	"github.com/brightonlang/slimexpr/value"
	"github.com/gkampitakis/go-snaps/snaps"
)

func TestRenderPlainText(t *testing.T) {
	tree, err := template.ParseBlocks("hello", nil)
	if err != nil {
		t.Fatalf("ParseBlocks error: %v", err)
	}
	out, err := Render(tree, nil)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if out != "hello\n" {
		t.Errorf("Render(plain text) = %q, want %q", out, "hello\n")
	}
}

func TestRenderSourceRootedAtModel(t *testing.T) {
	model := value.NewMapViewModel(map[string]value.Value{"name": value.MakeString("Ada")})
	out, err := RenderSource("Hello,\n= name", model)
	if err != nil {
		t.Fatalf("RenderSource error: %v", err)
	}
	if out != "Hello,\nAda" {
		t.Errorf("RenderSource = %q, want %q", out, "Hello,\nAda")
	}
}

func TestRenderSourcePropagatesParseError(t *testing.T) {
	_, err := RenderSource("= 1 +", nil)
	if err == nil {
		t.Error("malformed expression source should error")
	}
}

func TestRenderSourcePropagatesEvalError(t *testing.T) {
	_, err := RenderSource("= undefined_name", nil)
	if _, ok := err.(*value.NameError); !ok {
		t.Errorf("unbound identifier should raise NameError, got %v", err)
	}
}

// TestRenderSourceEachBlockOverIntegers exercises §8 scenario 7: a control
// line whose block body is a rendered template part, invoked once per
// element dispatched through Proc.Invoke rather than through ForExpr's
// bespoke loop mechanism.
func TestRenderSourceEachBlockOverIntegers(t *testing.T) {
	model := value.NewMapViewModel(map[string]value.Value{
		"range": value.NewArray([]value.Value{
			value.MakeNumber(1), value.MakeNumber(2), value.MakeNumber(3),
		}),
	})
	out, err := RenderSource("- range.each do |i|\n  = i", model)
	if err != nil {
		t.Fatalf("RenderSource error: %v", err)
	}
	if out != "123" {
		t.Errorf("RenderSource(each-do block) = %q, want %q", out, "123")
	}
}

func TestRenderSourceForLoop(t *testing.T) {
	model := value.NewMapViewModel(map[string]value.Value{
		"items": value.NewArray([]value.Value{value.MakeString("a"), value.MakeString("b")}),
	})
	out, err := RenderSource("- for item in items\n  = item", model)
	if err != nil {
		t.Fatalf("RenderSource error: %v", err)
	}
	if out != "ab" {
		t.Errorf("RenderSource(for loop) = %q, want %q", out, "ab")
	}
}

func TestEvalExpression(t *testing.T) {
	result, err := Eval("1 + 2 * 3", nil)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if result.(*value.Number).Value != 7 {
		t.Errorf("Eval(1 + 2 * 3) = %v, want 7", result)
	}
}

func TestEvalAgainstModel(t *testing.T) {
	model := value.NewMapViewModel(map[string]value.Value{"age": value.MakeNumber(30)})
	result, err := Eval("age + 1", model)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if result.(*value.Number).Value != 31 {
		t.Errorf("Eval(age + 1) = %v, want 31", result)
	}
}

func TestEvalPropagatesParseError(t *testing.T) {
	_, err := Eval("(1 + 2", nil)
	if err == nil {
		t.Error("unterminated grouped expression should error")
	}
}

// TestRenderSnapshotProfileCard exercises a small template with nested
// control flow end to end and checks the rendered text against a go-snaps
// golden snapshot (written by go-snaps on the first run), the same style
// used for the DWScript fixture suite's output comparisons.
func TestRenderSnapshotProfileCard(t *testing.T) {
	model := value.NewMapViewModel(map[string]value.Value{
		"name":   value.MakeString("Ada Lovelace"),
		"active": value.MakeBoolean(true),
		"tags":   value.NewArray([]value.Value{value.MakeString("math"), value.MakeString("computing")}),
	})
	source := "- if active\n" +
		"  = name\n" +
		"  - for tag in tags\n" +
		"    = tag\n" +
		"- else\n" +
		"  inactive"

	out, err := RenderSource(source, model)
	if err != nil {
		t.Fatalf("RenderSource error: %v", err)
	}
	snaps.MatchSnapshot(t, "profile_card_active", out)
}

func TestRenderSnapshotInactiveBranch(t *testing.T) {
	model := value.NewMapViewModel(map[string]value.Value{
		"name":   value.MakeString("Ada Lovelace"),
		"active": value.MakeBoolean(false),
		"tags":   value.NewArray(nil),
	})
	source := "- if active\n" +
		"  = name\n" +
		"- else\n" +
		"  inactive"

	out, err := RenderSource(source, model)
	if err != nil {
		t.Fatalf("RenderSource error: %v", err)
	}
	snaps.MatchSnapshot(t, "profile_card_inactive", out)
}
