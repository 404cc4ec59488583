package token

import (
	"strconv"

	"github.com/t14raptor/go-jack/intern"
)

// Keyword identifies one of the reserved words.
type Keyword uint8

const (
	NoKeyword Keyword = iota

	Class
	Constructor
	Function
	Method
	Field
	Static
	Var
	IntType
	CharType
	BooleanType
	Void
	True
	False
	Null
	This
	Let
	Do
	If
	Else
	While
	Return

	numKeywords
)

var keyword2string = [numKeywords]string{
	Class:       "class",
	Constructor: "constructor",
	Function:    "function",
	Method:      "method",
	Field:       "field",
	Static:      "static",
	Var:         "var",
	IntType:     "int",
	CharType:    "char",
	BooleanType: "boolean",
	Void:        "void",
	True:        "true",
	False:       "false",
	Null:        "null",
	This:        "this",
	Let:         "let",
	Do:          "do",
	If:          "if",
	Else:        "else",
	While:       "while",
	Return:      "return",
}

func (k Keyword) String() string {
	if NoKeyword < k && k < numKeywords {
		return keyword2string[k]
	}
	return "keyword(" + strconv.Itoa(int(k)) + ")"
}

// AllKeywords lists every keyword in declaration order.
func AllKeywords() []Keyword {
	out := make([]Keyword, 0, numKeywords-1)
	for k := Class; k < numKeywords; k++ {
		out = append(out, k)
	}
	return out
}

// Keywords is the keyword set of one interner. Membership is decided by
// looking the canonical Name up in a pointer-keyed map, so it does not
// depend on the order in which strings were interned.
type Keywords struct {
	names [numKeywords]intern.Name
	set   intern.Map[uint64, Keyword]
}

// NewKeywords interns every keyword into in and records them.
func NewKeywords(in *intern.Interner) *Keywords {
	kw := &Keywords{}
	for k := Class; k < numKeywords; k++ {
		n := in.InternString(keyword2string[k])
		kw.names[k] = n
		if err := kw.set.Put(addrKey(n), k); err != nil {
			panic(err)
		}
	}
	return kw
}

func addrKey(n intern.Name) uint64 {
	return uint64(n.Addr())
}

// Lookup reports which keyword n is, if any.
func (kw *Keywords) Lookup(n intern.Name) (Keyword, bool) {
	if n.IsZero() {
		return NoKeyword, false
	}
	return kw.set.Get(addrKey(n))
}

// Name returns the canonical Name of k.
func (kw *Keywords) Name(k Keyword) intern.Name {
	return kw.names[k]
}

// Is reports whether n is the keyword k.
func (kw *Keywords) Is(n intern.Name, k Keyword) bool {
	return kw.names[k] == n
}
