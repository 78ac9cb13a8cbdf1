// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/creachadair/jparse"
	"github.com/creachadair/jparse/ast"
	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Value
	}{
		{`null`, ast.Null{}},
		{`true`, ast.Bool(true)},
		{` false `, ast.Bool(false)},
		{`5`, ast.Int(5)},
		{`5.0`, ast.Float(5)},
		{`0.25`, ast.Float(0.25)},
		{`"a\tb"`, ast.String("a\tb")},
		{`"\/\\\"\b\f\n\r\t\x"`, ast.String("/\\\"\b\f\n\r\tx")},
		{`[]`, ast.Array{}},
		{`{}`, ast.Object{}},
		{`[ 1 , 2.5 ,"c",null ]`, ast.Array{
			ast.Int(1), ast.Float(2.5), ast.String("c"), ast.Null{},
		}},
		{`{"a": 1, "a": 2}`, ast.Object{ast.Field("a", ast.Int(2))}},
		{`{"a": 1, "b": 2, "a": 3}`, ast.Object{
			ast.Field("a", ast.Int(3)),
			ast.Field("b", ast.Int(2)),
		}},
		{`{"x":[1,2,{"y":null}]}`, ast.Object{
			ast.Field("x", ast.Array{
				ast.Int(1), ast.Int(2), ast.Object{ast.Field("y", ast.Null{})},
			}),
		}},
		{`[[[]], {"": {}}]`, ast.Array{
			ast.Array{ast.Array{}},
			ast.Object{ast.Field("", ast.Object{})},
		}},
		{`
{
    "name": [
        1.22323,
        2456,
        true,
        false,
        null
    ]
}
`, ast.Object{ast.Field("name", ast.Array{
			ast.Float(1.22323), ast.Int(2456), ast.Bool(true), ast.Bool(false), ast.Null{},
		})}},
	}
	for _, test := range tests {
		got, err := ast.Parse(test.input)
		if err != nil {
			t.Errorf("Parse(%#q): unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Parse(%#q): (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestParseNumberKind(t *testing.T) {
	for input, wantInt := range map[string]bool{"5": true, "5.0": false, "0": true, "10.": false} {
		v, err := ast.Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		n, ok := v.(ast.Number)
		if !ok {
			t.Fatalf("Parse(%q): got %T, want a Number", input, v)
		}
		if n.IsInt() != wantInt {
			t.Errorf("Parse(%q): IsInt=%v, want %v", input, n.IsInt(), wantInt)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
		estr  string
	}{
		{``, jparse.ErrUnexpectedToken,
			`at 1:0: expected "{", "[", string, number, bool or null, got end of input`},
		{`{"a": }`, jparse.ErrUnexpectedToken,
			`at 1:6: expected "{", "[", string, number, bool or null, got "}"`},
		{`"unterminated`, jparse.ErrUnterminatedString, `at 1:0: unterminated string`},
		{`{`, jparse.ErrUnexpectedToken, `at 1:1: expected string, got end of input`},
		{`}`, jparse.ErrUnexpectedToken,
			`at 1:0: expected "{", "[", string, number, bool or null, got "}"`},
		{`{false:1}`, jparse.ErrUnexpectedToken, `at 1:1: expected string, got false`},
		{`{"a" 1}`, jparse.ErrUnexpectedToken, `at 1:5: expected ":", got number 1`},
		{`{"a":1,}`, jparse.ErrUnexpectedToken, `at 1:7: expected string, got "}"`},
		{`{"a":1 "b":2}`, jparse.ErrUnexpectedToken, `at 1:7: expected "}", got string "b"`},
		{`[`, jparse.ErrUnexpectedToken,
			`at 1:1: expected "{", "[", string, number, bool or null, got end of input`},
		{`[15,]`, jparse.ErrUnexpectedToken,
			`at 1:4: expected "{", "[", string, number, bool or null, got "]"`},
		{`[1 2]`, jparse.ErrUnexpectedToken, `at 1:3: expected "]", got number 2`},
		{`1 2`, jparse.ErrUnexpectedToken, `at 1:2: expected end of input, got number 2`},
		{`[] {}`, jparse.ErrUnexpectedToken, `at 1:3: expected end of input, got "{"`},
		{`[1, @]`, jparse.ErrInvalidCharacter, `at 1:4: unexpected '@'`},
		{`{"ok": nullx}`, jparse.ErrInvalidCharacter, `at 1:11: unexpected 'x'`},
	}
	for _, test := range tests {
		v, err := ast.Parse(test.input)
		if err == nil {
			t.Errorf("Parse(%#q): got %v, want error", test.input, v)
			continue
		} else if v != nil {
			t.Errorf("Parse(%#q): got partial value %v", test.input, v)
		}
		if !errors.Is(err, test.want) {
			t.Errorf("Parse(%#q): got error %v, want %v", test.input, err, test.want)
		}
		if got := err.Error(); got != test.estr {
			t.Errorf("Parse(%#q): error %q, want %q", test.input, got, test.estr)
		}
	}
}

func TestUnexpectedTokenDetail(t *testing.T) {
	_, err := ast.Parse("{\n  \"a\": }")
	var serr *jparse.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("Parse: got %v, want *SyntaxError", err)
	}
	if serr.Got.Kind != jparse.RBrace {
		t.Errorf("Got: %v, want %v", serr.Got, jparse.RBrace)
	}
	if len(serr.Want) == 0 {
		t.Error("Want: no expected kinds reported")
	}
	if want := (jparse.LineCol{Line: 2, Column: 7}); serr.Location != want {
		t.Errorf("Location: got %v, want %v", serr.Location, want)
	}
	if serr.Offset != 9 {
		t.Errorf("Offset: got %d, want 9", serr.Offset)
	}
}

func TestMaxDepth(t *testing.T) {
	nest := func(n int) string { return strings.Repeat("[", n) + strings.Repeat("]", n) }

	tests := []struct {
		input string
		max   int
		fail  bool
	}{
		{`1`, 1, false},
		{`[1]`, 1, false},
		{`[[1]]`, 1, true},
		{`{"a": {"b": 1}}`, 2, false},
		{`{"a": [{"b": 1}]}`, 2, true},
		{nest(ast.DefaultMaxDepth), 0, false},
		{nest(ast.DefaultMaxDepth + 1), 0, true},
		{nest(ast.DefaultMaxDepth + 1), ast.DefaultMaxDepth + 1, false},
	}
	for _, test := range tests {
		_, err := ast.ParseWithOptions(test.input, &ast.ParseOptions{MaxDepth: test.max})
		if test.fail {
			if !errors.Is(err, jparse.ErrMaxDepth) {
				t.Errorf("Parse(%.20q, max=%d): got %v, want %v", test.input, test.max, err, jparse.ErrMaxDepth)
			}
		} else if err != nil {
			t.Errorf("Parse(%.20q, max=%d): unexpected error: %v", test.input, test.max, err)
		}
	}
}

func TestParseOptions(t *testing.T) {
	const input = `{
  "a": [1, 2,], // trailing comma
  /* before */ "b": nullish
}`
	if _, err := ast.Parse(input); err == nil {
		t.Error("Parse: got no error, want one")
	}

	_, err := ast.ParseWithOptions(input, &ast.ParseOptions{AllowComments: true})
	if !errors.Is(err, jparse.ErrInvalidCharacter) {
		t.Errorf("Parse with comments: got %v, want %v", err, jparse.ErrInvalidCharacter)
	}

	_, err = ast.ParseWithOptions(`{"b": nullish}`, &ast.ParseOptions{LenientKeywords: true})
	if !errors.Is(err, jparse.ErrInvalidCharacter) {
		t.Errorf("Parse lenient: got %v, want %v", err, jparse.ErrInvalidCharacter)
	}

	v, err := ast.ParseWithOptions(`{
  "a": [1, 2,], // trailing comma
  /* before */ "b": null
}`, &ast.ParseOptions{AllowComments: true})
	if err != nil {
		t.Fatalf("Parse with comments: %v", err)
	}
	want := ast.Object{
		ast.Field("a", ast.Array{ast.Int(1), ast.Int(2)}),
		ast.Field("b", ast.Null{}),
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("Parse with comments (-want, +got):\n%s", diff)
	}
}

func TestParserSingleUse(t *testing.T) {
	p := ast.NewParser(jparse.NewTokenizer(`[1]`))
	if _, err := p.Parse(); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := p.Parse(); !errors.Is(err, jparse.ErrUnexpectedToken) {
		t.Errorf("Second Parse: got %v, want %v", err, jparse.ErrUnexpectedToken)
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		want := randomValue(rng, 4)
		text := encode(want)
		got, err := ast.Parse(text)
		if err != nil {
			t.Fatalf("Parse(%#q): %v", text, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Parse(%#q): (-want, +got)\n%s", text, diff)
		}
	}
}

// encode renders v as text in the grammar accepted by Parse.
func encode(v ast.Value) string {
	var sb strings.Builder
	var enc func(ast.Value)
	enc = func(v ast.Value) {
		switch t := v.(type) {
		case ast.Null:
			sb.WriteString("null")
		case ast.Bool:
			sb.WriteString(strconv.FormatBool(bool(t)))
		case ast.Int:
			sb.WriteString(strconv.FormatInt(int64(t), 10))
		case ast.Float:
			sb.WriteString(strconv.FormatFloat(float64(t), 'f', -1, 64))
			if float64(t) == float64(int64(t)) {
				sb.WriteString(".0")
			}
		case ast.String:
			sb.WriteString(quote(string(t)))
		case ast.Array:
			sb.WriteString("[")
			for i, elt := range t {
				if i > 0 {
					sb.WriteString(", ")
				}
				enc(elt)
			}
			sb.WriteString("]")
		case ast.Object:
			sb.WriteString("{")
			for i, m := range t {
				if i > 0 {
					sb.WriteString(",\n")
				}
				sb.WriteString(quote(m.Key))
				sb.WriteString(": ")
				enc(m.Value)
			}
			sb.WriteString("}")
		default:
			panic(fmt.Sprintf("unknown value %T", v))
		}
	}
	enc(v)
	return sb.String()
}

var quoter = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, "\b", `\b`, "\f", `\f`, "\n", `\n`, "\r", `\r`, "\t", `\t`,
)

func quote(s string) string { return `"` + quoter.Replace(s) + `"` }

const alphabet = "abc xyz\"\\/\b\f\n\r\té☃"

func randomValue(rng *rand.Rand, depth int) ast.Value {
	n := 6
	if depth == 0 {
		n = 4 // scalars only
	}
	switch rng.IntN(n + 1) {
	case 0:
		return ast.Null{}
	case 1:
		return ast.Bool(rng.IntN(2) == 1)
	case 2:
		if rng.IntN(2) == 0 {
			return ast.Int(rng.Int64N(1 << 53))
		}
		return ast.Float(float64(rng.IntN(100000)) / 64)
	case 3, 4:
		return ast.String(randomString(rng))
	case 5:
		arr := make(ast.Array, rng.IntN(4))
		for i := range arr {
			arr[i] = randomValue(rng, depth-1)
		}
		return arr
	default:
		obj := ast.Object{}
		seen := make(map[string]bool)
		for range rng.IntN(4) {
			key := randomString(rng)
			if seen[key] {
				continue
			}
			seen[key] = true
			obj = append(obj, ast.Field(key, randomValue(rng, depth-1)))
		}
		return obj
	}
}

func randomString(rng *rand.Rand) string {
	rs := []rune(alphabet)
	out := make([]rune, rng.IntN(6))
	for i := range out {
		out[i] = rs[rng.IntN(len(rs))]
	}
	return string(out)
}
