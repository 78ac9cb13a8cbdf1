// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"fmt"
	"strconv"
)

// Kind is the type of a lexical token in the grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid    Kind = iota // invalid token
	Number                 // number: integer or floating-point
	String                 // quoted string
	Bool                   // constant: true or false
	Null                   // constant: null
	LBracket               // left square bracket "["
	RBracket               // right square bracket "]"
	LBrace                 // left brace "{"
	RBrace                 // right brace "}"
	Colon                  // colon ":"
	Comma                  // comma ","
	EndOfInput             // end of input
)

var kindStr = [...]string{
	Invalid:    "invalid token",
	Number:     "number",
	String:     "string",
	Bool:       "bool",
	Null:       "null",
	LBracket:   `"["`,
	RBracket:   `"]"`,
	LBrace:     `"{"`,
	RBrace:     `"}"`,
	Colon:      `":"`,
	Comma:      `","`,
	EndOfInput: "end of input",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single lexical token with its decoded payload. The zero Token
// has kind Invalid.
type Token struct {
	Kind Kind
	Span Span

	isInt bool
	ival  int64
	fval  float64
	text  string
	bval  bool
}

// IsInt reports whether t is a Number token lexed without a decimal point.
func (t Token) IsInt() bool { return t.Kind == Number && t.isInt }

// Int returns the value of an integer Number token, or 0.
func (t Token) Int() int64 {
	if t.IsInt() {
		return t.ival
	}
	return 0
}

// Float returns the value of a Number token as a float64. Integer tokens are
// converted.
func (t Token) Float() float64 {
	if t.Kind != Number {
		return 0
	} else if t.isInt {
		return float64(t.ival)
	}
	return t.fval
}

// Text returns the decoded contents of a String token, or "".
func (t Token) Text() string {
	if t.Kind == String {
		return t.text
	}
	return ""
}

// Bool returns the value of a Bool token, or false.
func (t Token) Bool() bool { return t.Kind == Bool && t.bval }

func (t Token) String() string {
	switch t.Kind {
	case Number:
		if t.isInt {
			return "number " + strconv.FormatInt(t.ival, 10)
		}
		return "number " + strconv.FormatFloat(t.fval, 'g', -1, 64)
	case String:
		return fmt.Sprintf("string %q", t.text)
	case Bool:
		return strconv.FormatBool(t.bval)
	default:
		return t.Kind.String()
	}
}

func intToken(v int64, span Span) Token {
	return Token{Kind: Number, Span: span, isInt: true, ival: v}
}

func floatToken(v float64, span Span) Token {
	return Token{Kind: Number, Span: span, fval: v}
}

func stringToken(s string, span Span) Token {
	return Token{Kind: String, Span: span, text: s}
}

func boolToken(v bool, span Span) Token {
	return Token{Kind: Bool, Span: span, bval: v}
}
