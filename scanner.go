// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jparse/internal/escape"
	"github.com/tailscale/hujson"
	"go4.org/mem"
)

// A Tokenizer reads lexical tokens from a single input string. Each call to
// Next returns the next token of the input, or reports an error.
//
// A Tokenizer is not safe for concurrent use, and cannot be reused for a
// different input.
type Tokenizer struct {
	src      mem.RO
	pos      int  // offset of the next unread byte
	comments bool // accept HuJSON comments and trailing commas
	lenient  bool // match keywords by prefix alone
	started  bool
	err      error // sticky
}

// NewTokenizer constructs a new tokenizer that consumes text.
func NewTokenizer(text string) *Tokenizer { return &Tokenizer{src: mem.S(text)} }

// AllowComments configures the tokenizer to accept (true) or reject (false)
// comments and trailing commas, as defined by HuJSON. When enabled, these are
// replaced by whitespace before scanning begins, so token offsets still refer
// to the original text. It must be set before the first call to Next.
func (t *Tokenizer) AllowComments(ok bool) { t.comments = ok }

// LenientKeywords configures whether the constants true, false, and null must
// be followed by whitespace, punctuation, or the end of input (false, the
// default), or are matched as plain prefixes (true).
//
// With lenient matching, "nullable" scans as null followed by an error at "a";
// with strict matching the error is reported at the same place, but it is not
// preceded by a null token.
func (t *Tokenizer) LenientKeywords(ok bool) { t.lenient = ok }

// Next returns the next token of the input, or reports an error. At the end
// of the input Next returns a token of kind EndOfInput, and continues to do
// so on subsequent calls. Once Next has reported an error, it reports the same
// error on every subsequent call. Errors have concrete type *SyntaxError.
func (t *Tokenizer) Next() (Token, error) {
	if t.err != nil {
		return Token{}, t.err
	}
	if !t.started {
		t.started = true
		if t.comments {
			if err := t.standardize(); err != nil {
				t.err = err
				return Token{}, err
			}
		}
	}
	tok, err := t.scan()
	if err != nil {
		t.err = err
		return Token{}, err
	}
	return tok, nil
}

// Location returns the complete location of span in the input of t.
func (t *Tokenizer) Location(span Span) Location { return locate(t.src, span) }

// Tokenize scans all of text and returns its tokens, not including the final
// EndOfInput token.
func Tokenize(text string) ([]Token, error) {
	t := NewTokenizer(text)
	var out []Token
	for {
		tok, err := t.Next()
		if err != nil {
			return nil, err
		} else if tok.Kind == EndOfInput {
			return out, nil
		}
		out = append(out, tok)
	}
}

func (t *Tokenizer) scan() (Token, error) {
	// Discard whitespace.
	for t.pos < t.src.Len() && isSpace(t.src.At(t.pos)) {
		t.pos++
	}
	if t.pos >= t.src.Len() {
		return Token{Kind: EndOfInput, Span: Span{Pos: t.pos, End: t.pos}}, nil
	}

	ch := t.src.At(t.pos)

	// Handle numbers.
	if isDigit(ch) {
		return t.scanNumber()
	}

	// Handle constants: null, true, false
	for _, kw := range keywords {
		if mem.HasPrefix(t.src.SliceFrom(t.pos), kw.text) {
			return t.scanKeyword(kw)
		}
	}

	// Handle string values.
	if ch == '"' {
		return t.scanString()
	}

	// Handle punctuation.
	if k, ok := selfDelim(ch); ok {
		t.pos++
		return Token{Kind: k, Span: Span{Pos: t.pos - 1, End: t.pos}}, nil
	}

	return Token{}, t.invalidChar(t.pos)
}

func (t *Tokenizer) scanNumber() (Token, error) {
	start := t.pos
	t.readWhile(isDigit)

	isFloat := t.pos < t.src.Len() && t.src.At(t.pos) == '.'
	if isFloat {
		t.pos++
		t.readWhile(isDigit)
	}

	span := Span{Pos: start, End: t.pos}
	text := t.src.Slice(start, t.pos)
	if isFloat {
		v, err := mem.ParseFloat(text, 64)
		if err != nil {
			return Token{}, t.numberError(start, text, err)
		}
		return floatToken(v, span), nil
	}
	v, err := mem.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, t.numberError(start, text, err)
	}
	return intToken(v, span), nil
}

func (t *Tokenizer) scanKeyword(kw keyword) (Token, error) {
	start := t.pos
	end := start + kw.text.Len()
	if !t.lenient && end < t.src.Len() && !isBoundary(t.src.At(end)) {
		return Token{}, t.invalidChar(end)
	}
	t.pos = end
	tok := Token{Kind: kw.kind, Span: Span{Pos: start, End: end}}
	if kw.kind == Bool {
		tok = boolToken(kw.value, tok.Span)
	}
	return tok, nil
}

func (t *Tokenizer) scanString() (Token, error) {
	start := t.pos
	t.pos++ // opening quote

	var esc bool
	for {
		if t.pos >= t.src.Len() {
			return Token{}, t.unterminated(start)
		}
		ch := t.src.At(t.pos)
		if esc {
			// Whatever follows a backslash belongs to the string, even a newline.
			esc = false
		} else if ch == '\\' {
			esc = true
		} else if ch == '"' {
			break
		} else if ch == '\n' {
			return Token{}, t.unterminated(start)
		}
		t.pos++
	}
	body := t.src.Slice(start+1, t.pos)
	t.pos++ // closing quote
	return stringToken(escape.Unescape(body), Span{Pos: start, End: t.pos}), nil
}

// readWhile consumes bytes matching f from the input until the end of input
// or until a byte not matching f is found.
func (t *Tokenizer) readWhile(f func(byte) bool) {
	for t.pos < t.src.Len() && f(t.src.At(t.pos)) {
		t.pos++
	}
}

// standardize rewrites the input to remove HuJSON extensions.
func (t *Tokenizer) standardize() error {
	std, err := hujson.Standardize(mem.Append(nil, t.src))
	if err != nil {
		return &SyntaxError{
			Location: LineCol{Line: 1},
			Message:  err.Error(),
			err:      errors.Join(ErrInvalidCharacter, err),
		}
	}
	t.src = mem.B(std)
	return nil
}

func (t *Tokenizer) failf(pos int, err error, msg string, args ...any) *SyntaxError {
	return &SyntaxError{
		Offset:   pos,
		Location: lineColAt(t.src, pos),
		Message:  fmt.Sprintf(msg, args...),
		err:      err,
	}
}

func (t *Tokenizer) invalidChar(pos int) error {
	r, _ := mem.DecodeRune(t.src.SliceFrom(pos))
	return t.failf(pos, ErrInvalidCharacter, "unexpected %q", r)
}

func (t *Tokenizer) unterminated(start int) error {
	return t.failf(start, ErrUnterminatedString, "unterminated string")
}

func (t *Tokenizer) numberError(pos int, text mem.RO, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return t.failf(pos, ErrNumberRange, "number %s out of range", text.StringCopy())
	}
	return t.failf(pos, ErrInvalidCharacter, "invalid number %q", text.StringCopy())
}

type keyword struct {
	text  mem.RO
	kind  Kind
	value bool
}

var keywords = [...]keyword{
	{mem.S("null"), Null, false},
	{mem.S("true"), Bool, true},
	{mem.S("false"), Bool, false},
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

// isBoundary reports whether ch may directly follow a keyword.
func isBoundary(ch byte) bool {
	_, ok := selfDelim(ch)
	return ok || isSpace(ch)
}

var self = [...]Kind{LBrace, RBrace, LBracket, RBracket, Comma, Colon}

func selfDelim(ch byte) (Kind, bool) {
	i := strings.IndexByte("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
