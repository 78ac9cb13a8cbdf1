// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"github.com/creachadair/jparse"
)

// DefaultMaxDepth is the nesting limit used by a Parser unless another limit
// is set with SetMaxDepth.
const DefaultMaxDepth = 1000

// ParseOptions are optional settings for ParseWithOptions. A nil
// *ParseOptions is ready for use and provides default values.
type ParseOptions struct {
	// The maximum nesting depth of objects and arrays. If zero or negative,
	// DefaultMaxDepth is used.
	MaxDepth int

	// Accept HuJSON comments and trailing commas.
	AllowComments bool

	// Match the constants true, false, and null without requiring a
	// following delimiter.
	LenientKeywords bool
}

// Parse parses text as a single value, which must be followed by nothing but
// whitespace. In case of error, no value is returned and the error has
// concrete type *jparse.SyntaxError.
func Parse(text string) (Value, error) { return ParseWithOptions(text, nil) }

// ParseWithOptions is as Parse, with the given options.
func ParseWithOptions(text string, opts *ParseOptions) (Value, error) {
	t := jparse.NewTokenizer(text)
	p := NewParser(t)
	if opts != nil {
		t.AllowComments(opts.AllowComments)
		t.LenientKeywords(opts.LenientKeywords)
		p.SetMaxDepth(opts.MaxDepth)
	}
	return p.Parse()
}

// A Parser is a recursive-descent parser that constructs a Value from the
// tokens of a Tokenizer. Each grammar production is a method:
//
//	value  := object | array | STRING | NUMBER | BOOL | NULL
//	object := "{" "}" | "{" member ("," member)* "}"
//	member := STRING ":" value
//	array  := "[" "]" | "[" value ("," value)* "]"
//
// The parser looks ahead by exactly one token, and never backtracks.
type Parser struct {
	t     *jparse.Tokenizer
	cur   jparse.Token // lookahead
	depth int
	max   int
}

// NewParser constructs a parser that consumes tokens from t.
// A Parser handles exactly one input; use a new Parser for each.
func NewParser(t *jparse.Tokenizer) *Parser {
	return &Parser{t: t, max: DefaultMaxDepth}
}

// SetMaxDepth sets the maximum nesting depth of objects and arrays. If n <= 0
// the limit is reset to DefaultMaxDepth.
func (p *Parser) SetMaxDepth(n int) {
	if n <= 0 {
		n = DefaultMaxDepth
	}
	p.max = n
}

// Parse consumes the entire input of the tokenizer and returns the value it
// contains. The input must hold exactly one value.
func (p *Parser) Parse() (_ Value, err error) {
	defer recoverParseError(&err)

	p.advance()
	v := p.parseValue()
	p.eat(jparse.EndOfInput)
	return v, nil
}

func recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		serr, ok := perr.(*jparse.SyntaxError)
		if !ok {
			panic(perr)
		}
		*errp = serr
	}
}

// parseValue consumes a single value of any type.
func (p *Parser) parseValue() Value {
	switch tok := p.cur; tok.Kind {
	case jparse.LBrace:
		return p.parseObject()
	case jparse.LBracket:
		return p.parseArray()
	case jparse.String:
		p.advance()
		return String(tok.Text())
	case jparse.Number:
		p.advance()
		if tok.IsInt() {
			return Int(tok.Int())
		}
		return Float(tok.Float())
	case jparse.Bool:
		p.advance()
		return Bool(tok.Bool())
	case jparse.Null:
		p.advance()
		return Null{}
	default:
		panic(p.t.UnexpectedToken(tok, valueStart...))
	}
}

var valueStart = []jparse.Kind{
	jparse.LBrace, jparse.LBracket, jparse.String, jparse.Number, jparse.Bool, jparse.Null,
}

// parseObject consumes an object and its members.
// Precondition: token == LBrace.
func (p *Parser) parseObject() Object {
	p.enter()
	defer p.leave()

	p.eat(jparse.LBrace)
	if p.cur.Kind == jparse.RBrace {
		p.advance()
		return Object{}
	}

	// Track the position of each key so a repeated key replaces the value of
	// its first occurrence.
	var obj Object
	index := make(map[string]int)
	for {
		m := p.parseMember()
		if i, ok := index[m.Key]; ok {
			obj[i].Value = m.Value
		} else {
			index[m.Key] = len(obj)
			obj = append(obj, m)
		}
		if p.cur.Kind != jparse.Comma {
			break
		}
		p.advance()
	}
	p.eat(jparse.RBrace)
	return obj
}

// parseMember consumes a single "key": value pair.
func (p *Parser) parseMember() *Member {
	key := p.cur
	p.eat(jparse.String)
	p.eat(jparse.Colon)
	return Field(key.Text(), p.parseValue())
}

// parseArray consumes an array and its elements.
// Precondition: token == LBracket.
func (p *Parser) parseArray() Array {
	p.enter()
	defer p.leave()

	p.eat(jparse.LBracket)
	if p.cur.Kind == jparse.RBracket {
		p.advance()
		return Array{}
	}

	arr := Array{p.parseValue()}
	for p.cur.Kind == jparse.Comma {
		p.advance()
		arr = append(arr, p.parseValue())
	}
	p.eat(jparse.RBracket)
	return arr
}

// eat consumes the current token if it has the given kind, or fails.
func (p *Parser) eat(kind jparse.Kind) {
	if p.cur.Kind != kind {
		panic(p.t.UnexpectedToken(p.cur, kind))
	}
	if kind != jparse.EndOfInput {
		p.advance()
	}
}

// advance reads the next token into the lookahead.
func (p *Parser) advance() {
	tok, err := p.t.Next()
	if err != nil {
		panic(err)
	}
	p.cur = tok
}

func (p *Parser) enter() {
	p.depth++
	if p.depth > p.max {
		panic(p.t.MaxDepthExceeded(p.cur, p.max))
	}
}

func (p *Parser) leave() { p.depth-- }
