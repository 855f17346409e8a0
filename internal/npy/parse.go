package npy

import (
	"fmt"
	"math"

	"github.com/numgo-ml/npyz/internal/ndarray"
)

// The header text is a restricted Python dict literal:
//
//	header := '{' entry (',' entry)* [','] '}'
//	entry  := key ':' value
//	key    := 'descr' | 'fortran_order' | 'shape'
//	descr  := quoted string, endian char + type code
//	bool   := 'True' | 'False'
//	int    := digit+ ['L']
//	tuple  := '(' [int (',' int)* [',']] ')'
//
// Each production below is a cursor-advancing function over the immutable
// header text: it consumes a prefix starting at pos and returns the parsed
// value plus the new cursor position.

// skipSpace advances the cursor past ASCII whitespace.
func skipSpace(s string, pos int) int {
	for pos < len(s) {
		switch s[pos] {
		case ' ', '\t', '\n', '\r':
			pos++
		default:
			return pos
		}
	}
	return pos
}

// expect consumes a single literal character.
func expect(s string, pos int, c byte) (int, error) {
	pos = skipSpace(s, pos)
	if pos >= len(s) || s[pos] != c {
		return pos, fmt.Errorf("%w: expected %q at offset %d", ErrMalformedHeader, string(c), pos)
	}
	return pos + 1, nil
}

// parseQuoted consumes a single-quoted string.
func parseQuoted(s string, pos int) (string, int, error) {
	pos = skipSpace(s, pos)
	if pos >= len(s) || s[pos] != '\'' {
		return "", pos, fmt.Errorf("%w: expected string at offset %d", ErrMalformedHeader, pos)
	}
	end := pos + 1
	for end < len(s) && s[end] != '\'' {
		end++
	}
	if end >= len(s) {
		return "", pos, fmt.Errorf("%w: unterminated string at offset %d", ErrMalformedHeader, pos)
	}
	return s[pos+1 : end], end + 1, nil
}

// parseBool consumes a Python boolean literal.
func parseBool(s string, pos int) (bool, int, error) {
	pos = skipSpace(s, pos)
	switch {
	case len(s)-pos >= 4 && s[pos:pos+4] == "True":
		return true, pos + 4, nil
	case len(s)-pos >= 5 && s[pos:pos+5] == "False":
		return false, pos + 5, nil
	default:
		return false, pos, fmt.Errorf("%w: expected boolean at offset %d", ErrMalformedHeader, pos)
	}
}

// parseInt consumes a non-negative integer. A trailing 'L' (legacy long
// literal suffix) is tolerated and discarded.
func parseInt(s string, pos int) (int, int, error) {
	pos = skipSpace(s, pos)
	start := pos
	n := 0
	for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
		d := int(s[pos] - '0')
		if n > (math.MaxInt-d)/10 {
			return 0, pos, fmt.Errorf("%w: integer overflow at offset %d", ErrMalformedHeader, start)
		}
		n = n*10 + d
		pos++
	}
	if pos == start {
		return 0, pos, fmt.Errorf("%w: expected integer at offset %d", ErrMalformedHeader, pos)
	}
	if pos < len(s) && s[pos] == 'L' {
		pos++
	}
	return n, pos, nil
}

// parseTuple consumes a tuple of integers, tolerating a trailing comma.
func parseTuple(s string, pos int) ([]int, int, error) {
	pos, err := expect(s, pos, '(')
	if err != nil {
		return nil, pos, err
	}
	dims := []int{}
	for {
		pos = skipSpace(s, pos)
		if pos < len(s) && s[pos] == ')' {
			return dims, pos + 1, nil
		}
		var dim int
		dim, pos, err = parseInt(s, pos)
		if err != nil {
			return nil, pos, err
		}
		dims = append(dims, dim)
		pos = skipSpace(s, pos)
		if pos < len(s) && s[pos] == ',' {
			pos++
			continue
		}
		if pos < len(s) && s[pos] == ')' {
			return dims, pos + 1, nil
		}
		return nil, pos, fmt.Errorf("%w: expected ',' or ')' at offset %d", ErrMalformedHeader, pos)
	}
}

// parseDescr resolves a descriptor string (endian char + type code) to a
// data type and byte order.
func parseDescr(descr string) (ndarray.DataType, ndarray.ByteOrder, error) {
	if len(descr) < 2 {
		return 0, 0, fmt.Errorf("%w: descriptor %q too short", ErrMalformedHeader, descr)
	}
	order, ok := ndarray.OrderOf(descr[0])
	if !ok {
		return 0, 0, fmt.Errorf("%w: bad endian char in descriptor %q", ErrMalformedHeader, descr)
	}
	dt, err := ndarray.TypeOf(descr[1:])
	if err != nil {
		return 0, 0, err
	}
	if dt.Size() == 1 {
		// Byte order does not apply to one-byte kinds.
		order = ndarray.NoOrder
	} else if order == ndarray.NoOrder {
		return 0, 0, fmt.Errorf("%w: descriptor %q needs a byte order", ErrMalformedHeader, descr)
	}
	return dt, order, nil
}

// ParseHeader parses the complete header text. Exactly the keys 'descr',
// 'fortran_order', and 'shape' are recognized, at most three entries are
// consumed, all three keys must be present, and nothing but whitespace may
// follow the closing brace.
func ParseHeader(text string) (*Header, error) {
	pos, err := expect(text, 0, '{')
	if err != nil {
		return nil, err
	}

	var h Header
	seen := map[string]bool{}
	for entries := 0; entries < 3; entries++ {
		pos = skipSpace(text, pos)
		if pos < len(text) && text[pos] == '}' {
			break
		}

		var key string
		key, pos, err = parseQuoted(text, pos)
		if err != nil {
			return nil, err
		}
		pos, err = expect(text, pos, ':')
		if err != nil {
			return nil, err
		}

		switch key {
		case "descr":
			var descr string
			descr, pos, err = parseQuoted(text, pos)
			if err != nil {
				return nil, err
			}
			h.DType, h.Order, err = parseDescr(descr)
			if err != nil {
				return nil, err
			}
		case "fortran_order":
			h.Fortran, pos, err = parseBool(text, pos)
			if err != nil {
				return nil, err
			}
		case "shape":
			var dims []int
			dims, pos, err = parseTuple(text, pos)
			if err != nil {
				return nil, err
			}
			h.Shape = ndarray.Shape(dims)
		default:
			return nil, fmt.Errorf("%w: unknown key %q", ErrMalformedHeader, key)
		}
		seen[key] = true

		pos = skipSpace(text, pos)
		if pos < len(text) && text[pos] == ',' {
			pos++
		}
	}

	pos, err = expect(text, pos, '}')
	if err != nil {
		return nil, err
	}
	if rest := skipSpace(text, pos); rest != len(text) {
		return nil, fmt.Errorf("%w: trailing text at offset %d", ErrMalformedHeader, rest)
	}

	for _, key := range []string{"descr", "fortran_order", "shape"} {
		if !seen[key] {
			return nil, fmt.Errorf("%w: missing key %q", ErrMalformedHeader, key)
		}
	}
	return &h, nil
}
