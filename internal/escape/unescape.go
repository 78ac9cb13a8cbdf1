// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles backslash-escape decoding of string literals.
package escape

import (
	"go4.org/mem"
)

// Unescape decodes the body of a string literal, with the enclosing double
// quotation marks already removed.
//
// The escapes \\ \/ \b \f \n \r \t are replaced with the characters they
// denote. Any other character following a backslash, including a quotation
// mark, is passed through literally without the backslash. A backslash at the
// very end of src is kept as-is.
func Unescape(src mem.RO) string {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return src.StringCopy()
	}

	dec := make([]byte, 0, src.Len())
	for {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			dec = append(dec, '\\')
			break
		}

		// Copy the whole rune after the escape so that a multi-byte character
		// is passed through intact.
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}
		switch r {
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		default:
			dec = mem.Append(dec, src.SliceTo(n))
		}
		src = src.SliceFrom(n)

		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return string(dec)
}
