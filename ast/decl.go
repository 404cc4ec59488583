package ast

import (
	"github.com/t14raptor/go-jack/intern"
	"github.com/t14raptor/go-jack/token"
)

type TypeKind uint8

const (
	TypeVoid TypeKind = iota
	TypeInt
	TypeChar
	TypeBoolean
	TypeClassName
)

var typeKind2string = [...]string{
	TypeVoid:      "void",
	TypeInt:       "int",
	TypeChar:      "char",
	TypeBoolean:   "boolean",
	TypeClassName: "class",
}

func (k TypeKind) String() string {
	if int(k) < len(typeKind2string) {
		return typeKind2string[k]
	}
	return "type?"
}

// Type is a variable or return type. Name holds the keyword for built-in
// types and the class name otherwise.
type Type struct {
	Kind TypeKind
	Name intern.Name
}

type VarStorage uint8

const (
	Static VarStorage = iota + 1
	Field
)

func (s VarStorage) String() string {
	switch s {
	case Static:
		return "static"
	case Field:
		return "field"
	}
	return "storage?"
}

type SubroutineKind uint8

const (
	Constructor SubroutineKind = iota
	Method
	Function
)

func (k SubroutineKind) String() string {
	switch k {
	case Constructor:
		return "constructor"
	case Method:
		return "method"
	case Function:
		return "function"
	}
	return "subroutine?"
}

type (
	// VarDecl is a parameter or a local variable.
	VarDecl struct {
		Pos  token.Pos
		Type Type
		Name intern.Name
	}

	ClassVarDecl struct {
		Pos     token.Pos
		Storage VarStorage
		Type    Type
		Name    intern.Name
	}

	Subroutine struct {
		Pos    token.Pos
		Kind   SubroutineKind
		Name   intern.Name
		Params []VarDecl
		Return Type
		Locals []VarDecl
		Body   StmtList
	}

	Class struct {
		Pos         token.Pos
		Name        intern.Name
		Vars        []ClassVarDecl
		Subroutines []Subroutine
	}
)
