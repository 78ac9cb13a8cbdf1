// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jparse implements a tokenizer for a small structured-data grammar
// of objects, arrays, strings, numbers, booleans, and null.
//
// # Tokenizing
//
// The Tokenizer type scans a single input string. Construct a tokenizer from
// the text and call its Next method to pull one token at a time:
//
//	t := jparse.NewTokenizer(input)
//	for {
//	   tok, err := t.Next()
//	   if err != nil {
//	      log.Fatalf("Scanning failed: %v", err)
//	   } else if tok.Kind == jparse.EndOfInput {
//	      break
//	   }
//	   log.Printf("Next token: %v", tok)
//	}
//
// Once the input is exhausted, Next reports an EndOfInput token on every
// call. Numbers are integers unless they contain a decimal point; there is no
// sign or exponent. Strings are decoded as they are scanned, so the Text of a
// String token is the plain string without quotes or escapes.
//
// # Errors
//
// All errors have concrete type *SyntaxError, which records the offset and
// line/column position of the problem. Use errors.Is with one of the sentinel
// errors (ErrInvalidCharacter, ErrUnterminatedString, ErrUnexpectedToken,
// ErrMaxDepth, ErrNumberRange) to classify them.
//
// # Parsing
//
// The ast package builds a tree of values from the tokens of a Tokenizer:
//
//	v, err := ast.Parse(input)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
package jparse
