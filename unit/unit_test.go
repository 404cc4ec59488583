package unit_test

import (
	"testing"

	"github.com/t14raptor/go-jack/token"
	"github.com/t14raptor/go-jack/unit"
)

func TestNewRegistersKeywords(t *testing.T) {
	u := unit.New()
	for _, k := range token.AllKeywords() {
		n := u.Names.InternString(k.String())
		if got, ok := u.Keywords.Lookup(n); !ok || got != k {
			t.Errorf("Lookup(%q) = %v, %v; want %v, true", k.String(), got, ok, k)
		}
	}
	if u.Arena.Used() == 0 {
		t.Error("keywords were not stored in the unit arena")
	}
}

func TestReset(t *testing.T) {
	u := unit.New()
	before := u.Names.InternString("Square")
	u.Reset()

	if u.Generation() != 1 {
		t.Fatalf("Generation() = %d, want 1", u.Generation())
	}
	after := u.Names.InternString("Square")
	if before == after {
		t.Error("name from a previous generation is still canonical")
	}
	if before.String() != "Square" {
		t.Errorf("old name reads %q after Reset", before.String())
	}
	if _, ok := u.Keywords.Lookup(u.Names.InternString("class")); !ok {
		t.Error("keywords missing after Reset")
	}
}

func TestUnitsAreIndependent(t *testing.T) {
	a, b := unit.New(), unit.New()
	if a.Names.InternString("x") == b.Names.InternString("x") {
		t.Error("names from distinct units compare equal")
	}
}
