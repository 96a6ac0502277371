package lexer

import "testing"

func TestPosition_String(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		expected string
	}{
		{
			name:     "valid position",
			pos:      Position{Filename: "test.rb", Line: 42, Column: 15, Offset: 100},
			expected: "test.rb:42:15",
		},
		{
			name:     "zero position",
			pos:      Position{},
			expected: ":0:0",
		},
		{
			name:     "line 1 column 1",
			pos:      Position{Filename: "main.rb", Line: 1, Column: 1},
			expected: "main.rb:1:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.expected {
				t.Errorf("Position.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLineStarts(t *testing.T) {
	tests := []struct {
		name     string
		buf      string
		expected []int
	}{
		{"empty", "", []int{0}},
		{"no newline", "abc", []int{0}},
		{"single newline", "ab\ncd", []int{0, 3}},
		{"trailing newline", "ab\n", []int{0, 3}},
		{"multiple lines", "a\nb\nc", []int{0, 2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lineStarts([]byte(tt.buf))
			if len(got) != len(tt.expected) {
				t.Fatalf("lineStarts(%q) = %v, want %v", tt.buf, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("lineStarts(%q)[%d] = %d, want %d", tt.buf, i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLexer_PositionAt(t *testing.T) {
	buf := []byte("foo\nbar\nbaz")
	l := Init(buf, "test.rb", DefaultRecoveryHandlers())

	tests := []struct {
		offset int
		line   int
		column int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{4, 2, 1},
		{8, 3, 1},
		{10, 3, 3},
	}

	for _, tt := range tests {
		pos := l.PositionAt(tt.offset)
		if pos.Line != tt.line || pos.Column != tt.column {
			t.Errorf("PositionAt(%d) = %d:%d, want %d:%d", tt.offset, pos.Line, pos.Column, tt.line, tt.column)
		}
		if pos.Filename != "test.rb" {
			t.Errorf("PositionAt(%d).Filename = %q, want %q", tt.offset, pos.Filename, "test.rb")
		}
	}
}

func TestItoa(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{42, "42"},
		{123456, "123456"},
	}

	for _, tt := range tests {
		if got := itoa(tt.input); got != tt.expected {
			t.Errorf("itoa(%d) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
