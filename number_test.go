package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		tok    string
		want   Cell
		wantOK bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"-5", ^Cell(0) - 4, true}, // wraps modulo 2^32
		{"0x2a", 42, true},
		{"0X2A", 42, true},
		{"017", 15, true}, // octal
		{"08", 0, false},  // 8 isn't a valid octal digit
		{"", 0, false},
		{"-", 0, false},
		{"0x", 0, false},
		{"hello", 0, false},
		{"12a", 0, false},
	}
	for _, c := range cases {
		t.Run(c.tok, func(t *testing.T) {
			got, ok := parseNumber(c.tok)
			assert.Equal(t, c.wantOK, ok)
			if c.wantOK {
				assert.Equal(t, c.want, got)
			}
		})
	}
}

func TestIsNumber(t *testing.T) {
	assert.True(t, isNumber("123"))
	assert.False(t, isNumber("dup"))
}
