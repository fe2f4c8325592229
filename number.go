package main

import "strings"

// isNumber reports whether tok matches §4.4's numeral grammar: an optional
// leading '-', then `0x`+hex, or `0`+octal digits (zero or more, so bare "0"
// is valid), or one-or-more decimal digits.
func isNumber(tok string) bool {
	_, ok := parseNumber(tok)
	return ok
}

// parseNumber converts tok per §4.4's prefix-driven base detection.
// Conversion wraps modulo the cell width rather than reporting overflow.
func parseNumber(tok string) (Cell, bool) {
	neg := false
	if strings.HasPrefix(tok, "-") {
		neg = true
		tok = tok[1:]
	}
	if tok == "" {
		return 0, false
	}

	var digits string
	var base int
	switch {
	case strings.HasPrefix(tok, "0x") || strings.HasPrefix(tok, "0X"):
		digits = tok[2:]
		base = 16
		if len(digits) == 0 {
			return 0, false
		}
	case strings.HasPrefix(tok, "0"):
		digits = tok[1:]
		base = 8
	default:
		digits = tok
		base = 10
		if len(digits) == 0 {
			return 0, false
		}
	}

	var v Cell
	for _, r := range digits {
		d, ok := digitValue(r)
		if !ok || d >= base {
			return 0, false
		}
		v = v*Cell(base) + Cell(d)
	}
	if neg {
		v = -v
	}
	return v, true
}

func digitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}
