package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "hello world", "hello world"},
		{"bold", "\x1b[1mhello\x1b[0m", "hello"},
		{"multiple SGR", "\x1b[1;31;42mfancy\x1b[0m", "fancy"},
		{"mixed", "before\x1b[32mgreen\x1b[0mafter", "beforegreenafter"},
		{"private mode", "\x1b[?25lhidden", "hidden"},
		{"OSC with BEL", "\x1b]0;title\x07text", "text"},
		{"OSC with ST", "\x1b]0;title\x1b\\text", "text"},
		{"OSC hyperlink", "\x1b]8;;https://example.com\x07link\x1b]8;;\x07", "link"},
		{"charset", "\x1b(Bhello", "hello"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripANSI(tt.input))
		})
	}
}

func TestValidateUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"valid ASCII", "hello", "hello"},
		{"valid UTF-8", "café", "café"},
		{"invalid byte", "hello\x80world", "hello�world"},
		{"invalid continuation", "hello\xc3world", "hello�world"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateUTF8(tt.input))
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "alpha", "alpha"},
		{"tab", "a\tb", "a b"},
		{"bell and escape", "\x1b[31mred\x1b[0m\x07", "red"},
		{"carriage return", "abc\rdef", "abcdef"},
		{"unicode kept", "naïve 你好", "naïve 你好"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestMiddleTruncate_ASCII(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		maxWidth int
	}{
		{"fits exactly", "abcde", "abcde", 5},
		{"fits with room", "abc", "abc", 10},
		{"needs truncation", "abcdefghij", "abc…hij", 7},
		{"max 3", "abcdef", "a…f", 3},
		{"max 2", "abcdef", "ab", 2},
		{"max 1", "abcdef", "a", 1},
		{"max 0", "abcdef", "", 0},
		{"empty string", "", "", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MiddleTruncate(tt.input, tt.maxWidth))
		})
	}
}

func TestMiddleTruncate_CJK(t *testing.T) {
	// 你好世界 is eight columns wide; seven leaves three on each side of
	// the ellipsis, which only fits one wide character each.
	assert.Equal(t, "你…界", MiddleTruncate("你好世界", 7))
	assert.Equal(t, "你好", MiddleTruncate("你好", 4))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "你  ", padRight("你", 4))
	assert.Equal(t, "abcdef", padRight("abcdef", 3))
}
