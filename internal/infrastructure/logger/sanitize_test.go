package logger

import "testing"

func TestSanitizeForLog(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "video id unchanged", input: "ab12cd34", expected: "ab12cd34"},
		{name: "filename unchanged", input: "holiday clip (1).mp4", expected: "holiday clip (1).mp4"},
		{name: "empty string", input: "", expected: ""},
		{name: "unicode preserved", input: "vidéo 日本語.mov", expected: "vidéo 日本語.mov"},
		{name: "newline escaped", input: "a\nb", expected: `a\nb`},
		{name: "CRLF escaped", input: "a\r\nb", expected: `a\r\nb`},
		{name: "tab escaped", input: "a\tb", expected: `a\tb`},
		{name: "null byte escaped", input: "a\x00b", expected: `a\x00b`},
		{name: "ANSI escape escaped", input: "\x1b[31mred", expected: `\x1b[31mred`},
		{name: "DEL escaped", input: "a\x7fb", expected: `a\x7fb`},
		{
			name:     "fake log entry injection",
			input:    "ab12cd34\nERROR: worker 2 died",
			expected: `ab12cd34\nERROR: worker 2 died`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeForLog(tt.input); got != tt.expected {
				t.Errorf("SanitizeForLog(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitizeForLog_AllControlChars(t *testing.T) {
	for i := 0; i < 32; i++ {
		input := string(rune(i))
		if got := SanitizeForLog(input); got == input {
			t.Errorf("control char 0x%02x was not escaped", i)
		}
	}
}
