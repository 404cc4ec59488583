package generator_test

import (
	"strings"
	"testing"

	"github.com/t14raptor/go-jack/ast"
	"github.com/t14raptor/go-jack/generator"
	"github.com/t14raptor/go-jack/parser"
	"github.com/t14raptor/go-jack/parser/scanner"
)

func parseSource(t *testing.T, src string) *ast.Class {
	t.Helper()
	c, err := parser.ParseFile("", src)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", src, err)
	}
	return c
}

func TestTokens(t *testing.T) {
	toks, err := scanner.Tokenize(`if (x < 153) {let city="Paris";} // done`, scanner.Config{})
	if err != nil {
		t.Fatal(err)
	}
	want := `<tokens>
<keyword> if </keyword>
<symbol> ( </symbol>
<identifier> x </identifier>
<symbol> &lt; </symbol>
<integerConstant> 153 </integerConstant>
<symbol> ) </symbol>
<symbol> { </symbol>
<keyword> let </keyword>
<identifier> city </identifier>
<symbol> = </symbol>
<stringConstant> Paris </stringConstant>
<symbol> ; </symbol>
<symbol> } </symbol>
</tokens>
`
	if got := generator.Tokens(toks); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestTokensEscapesSymbols(t *testing.T) {
	toks, _ := scanner.Tokenize("a & b > c", scanner.Config{})
	got := generator.Tokens(toks)
	for _, want := range []string{"<symbol> &amp; </symbol>", "<symbol> &gt; </symbol>"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestTokensEmpty(t *testing.T) {
	if got := generator.Tokens(nil); got != "<tokens>\n</tokens>\n" {
		t.Errorf("got %q", got)
	}
}

func TestDump(t *testing.T) {
	c := parseSource(t, `class Test {
  field int a;
  method void m(int p) {
    var char l;
    let a[p] = -1 + f(l);
    if (true) { do Output.println(); } else { return; }
    return "s";
  }
}`)
	want := `1: class Test (1 vars, 1 subroutines)
  2: field int a
  3: method void m
    3: param int p
    4: var char l
    3: block (3)
      5: let a
        index
          5: name p
        5: binary +
          5: unary -
            5: int 1
          5: call f
            5: name l
      6: if
        6: keyword true
        6: block (1)
          6: do
            6: call Output.println
        else
          6: block (1)
            6: return
      7: return
        7: string "s"
`
	if got := generator.Dump(c); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerateEscapesStrings(t *testing.T) {
	c := parseSource(t, `class T { function void f() { do g("a\nb\0c"); return; } }`)
	got := generator.Generate(c.Subroutines[0].Body.Stmts[0])
	if want := `do g("a\nb\0c");`; got != want {
		t.Errorf("got %s; want %s", got, want)
	}
}

func TestGenerateIsStable(t *testing.T) {
	src := "class A{field int x;method int get(){if(x>0){return x;}return -x;}}"
	first := generator.Generate(parseSource(t, src))
	second := generator.Generate(parseSource(t, first))
	if first != second {
		t.Errorf("regenerated output differs:\n%s\n---\n%s", first, second)
	}
}

func TestCountNodes(t *testing.T) {
	c := parseSource(t, `class T {
		static int s;
		field int a, b;
		function void f(int x, int y) {
			var int i;
			while (i < x) {
				do Output.printInt(i * y);
				let i = i + 1;
			}
			return;
		}
		method int g() { return a; }
	}`)
	got := generator.CountNodes(c)
	want := generator.Stats{
		ClassVars:   3,
		Subroutines: 2,
		Params:      2,
		Locals:      1,
		Statements:  5,
		// i < x, i, x, Output.printInt(...), i * y, i, y, i + 1, i, 1, a
		Expressions: 11,
		Calls:       1,
	}
	if got != want {
		t.Errorf("CountNodes = %+v; want %+v", got, want)
	}
}
