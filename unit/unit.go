// Package unit bundles the per-compilation state shared by the scanner and
// the parser: the arena, the interner allocating from it, and the keyword
// set registered in that interner.
package unit

import (
	"github.com/t14raptor/go-jack/arena"
	"github.com/t14raptor/go-jack/intern"
	"github.com/t14raptor/go-jack/token"
)

// Unit is the context of one compilation. Names interned through a Unit are
// comparable with == only against other Names of the same generation.
//
// A Unit is not safe for concurrent use; compile files in parallel by giving
// each its own Unit.
type Unit struct {
	Arena    *arena.Arena
	Names    *intern.Interner
	Keywords *token.Keywords

	generation int
}

func New() *Unit {
	u := &Unit{Arena: arena.New()}
	u.start()
	return u
}

func (u *Unit) start() {
	u.Names = intern.New(u.Arena)
	u.Keywords = token.NewKeywords(u.Names)
}

// Reset drops the arena and starts a new interner generation. Names and
// trees from the previous generation stay readable but are no longer
// canonical for this Unit.
func (u *Unit) Reset() {
	u.Arena.Free()
	u.start()
	u.generation++
}

// Generation counts calls to Reset.
func (u *Unit) Generation() int {
	return u.generation
}
