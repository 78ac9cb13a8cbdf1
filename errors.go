// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Errors reported by the tokenizer and parser. Every error returned by this
// module is a *SyntaxError that wraps exactly one of these; use errors.Is to
// distinguish them.
var (
	ErrInvalidCharacter   = errors.New("invalid character")
	ErrUnterminatedString = errors.New("unterminated string")
	ErrUnexpectedToken    = errors.New("unexpected token")
	ErrMaxDepth           = errors.New("maximum nesting depth exceeded")
	ErrNumberRange        = errors.New("number out of range")
)

// SyntaxError is the concrete type of errors reported by the tokenizer and
// parser.
type SyntaxError struct {
	Offset   int     // byte offset of the error in the input
	Location LineCol // line and column of Offset
	Message  string

	// For unexpected-token errors, Want lists the acceptable token kinds and
	// Got is the token actually found. Otherwise they are empty.
	Want []Kind
	Got  Token

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

// UnexpectedToken constructs an unexpected-token error for got, located
// within the input scanned by t.
func (t *Tokenizer) UnexpectedToken(got Token, want ...Kind) *SyntaxError {
	return &SyntaxError{
		Offset:   got.Span.Pos,
		Location: lineColAt(t.src, got.Span.Pos),
		Message:  kindLabel(want, got),
		Want:     slices.Clone(want),
		Got:      got,
		err:      ErrUnexpectedToken,
	}
}

// MaxDepthExceeded constructs an error reporting that the container opened
// by tok exceeds the nesting limit.
func (t *Tokenizer) MaxDepthExceeded(tok Token, limit int) *SyntaxError {
	return &SyntaxError{
		Offset:   tok.Span.Pos,
		Location: lineColAt(t.src, tok.Span.Pos),
		Message:  fmt.Sprintf("nesting depth exceeds maximum %d", limit),
		err:      ErrMaxDepth,
	}
}

// kindLabel makes a human-readable summary string for the given token kinds.
func kindLabel(want []Kind, got Token) string {
	if len(want) == 0 {
		return fmt.Sprintf("unexpected %v", got)
	}
	var exp string
	if len(want) == 1 {
		exp = want[0].String()
	} else {
		last := len(want) - 1
		ss := make([]string, last)
		for i, k := range want[:last] {
			ss[i] = k.String()
		}
		exp = strings.Join(ss, ", ") + " or " + want[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}
