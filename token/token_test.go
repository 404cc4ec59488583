package token

import (
	"testing"

	"github.com/t14raptor/go-jack/intern"
)

func TestKeywordsMembership(t *testing.T) {
	in := intern.New(nil)
	// Interning unrelated names first must not affect classification.
	foo := in.InternString("foo")
	kw := NewKeywords(in)
	bar := in.InternString("bar")

	for _, k := range AllKeywords() {
		n := in.InternString(k.String())
		got, ok := kw.Lookup(n)
		if !ok || got != k {
			t.Errorf("Lookup(%q) = %v, %v; want %v", k, got, ok, k)
		}
		if kw.Name(k) != n {
			t.Errorf("Name(%v) is not the canonical name", k)
		}
		if !kw.Is(n, k) {
			t.Errorf("Is(%q, %v) = false", n, k)
		}
	}
	for _, n := range []intern.Name{foo, bar, in.InternString("Class"), {}} {
		if k, ok := kw.Lookup(n); ok {
			t.Errorf("Lookup(%q) = %v; want no keyword", n, k)
		}
	}
	if in.InternString("function") != kw.Name(Function) {
		t.Errorf("re-interning a keyword changed its identity")
	}
	if len(AllKeywords()) != 21 {
		t.Errorf("AllKeywords() has %d entries; want 21", len(AllKeywords()))
	}
}

func TestTiers(t *testing.T) {
	tests := []struct {
		kind Kind
		tier Tier
	}{
		{Mul, Multiplicative},
		{Div, Multiplicative},
		{And, Multiplicative},
		{Add, Additive},
		{Sub, Additive},
		{Or, Additive},
		{Eq, Comparative},
		{Lt, Comparative},
		{Gt, Comparative},
		{Neg, NoTier},
		{Name, NoTier},
	}
	for _, tt := range tests {
		if got := tt.kind.Tier(); got != tt.tier {
			t.Errorf("%v.Tier() = %v; want %v", tt.kind, got, tt.tier)
		}
		if got := tt.kind.IsBinary(); got != (tt.tier != NoTier) {
			t.Errorf("%v.IsBinary() = %v", tt.kind, got)
		}
	}
}

func TestSymbolsAndMarkup(t *testing.T) {
	for _, k := range []Kind{LBracket, Semicolon, Not, Mul, Gt} {
		if !k.IsSymbol() {
			t.Errorf("%v.IsSymbol() = false", k)
		}
	}
	for _, k := range []Kind{EOF, Keyword, Int, Str, Name} {
		if k.IsSymbol() {
			t.Errorf("%v.IsSymbol() = true", k)
		}
	}
	markup := map[Kind]string{And: "&amp;", Lt: "&lt;", Gt: "&gt;", Add: "+", Sub: "-"}
	for k, want := range markup {
		if got := k.Markup(); got != want {
			t.Errorf("%v.Markup() = %q; want %q", k, got, want)
		}
	}
	if got := Kind(200).String(); got != "token(200)" {
		t.Errorf("unknown kind String() = %q", got)
	}
}

func TestTokenText(t *testing.T) {
	in := intern.New(nil)
	name := Token{Kind: Name, Name: in.InternString("x")}
	if name.Text() != "x" {
		t.Errorf("name Text() = %q", name.Text())
	}
	if got := (Token{Kind: Int, Int: 5}).Text(); got != "int" {
		t.Errorf("int Text() = %q", got)
	}
	if got := (Pos{File: "Main.jack", Line: 3}).String(); got != "Main.jack(3)" {
		t.Errorf("Pos.String() = %q", got)
	}
}
