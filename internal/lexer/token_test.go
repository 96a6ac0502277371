package lexer

import "testing"

func TestToken_Lexeme(t *testing.T) {
	buf := []byte("foo bar")
	tok := Token{Kind: IDENTIFIER, Start: 0, End: 3}

	if got := string(tok.Lexeme(buf)); got != "foo" {
		t.Errorf("Lexeme() = %q, want %q", got, "foo")
	}
}

func TestToken_Len(t *testing.T) {
	tok := Token{Kind: IDENTIFIER, Start: 4, End: 7}
	if got := tok.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		expected string
	}{
		{"EOF", EOF, "EOF"},
		{"invalid", INVALID, "INVALID"},
		{"identifier", IDENTIFIER, "IDENTIFIER"},
		{"integer", INTEGER, "INTEGER"},
		{"keyword def", KEYWORD_DEF, "KEYWORD_DEF"},
		{"unknown kind", Kind(9999), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Kind
	}{
		{"if keyword", "if", KEYWORD_IF},
		{"end keyword", "end", KEYWORD_END},
		{"upcase BEGIN", "BEGIN", KEYWORD_BEGIN_UPCASE},
		{"lowercase begin", "begin", KEYWORD_BEGIN},
		{"upcase END", "END", KEYWORD_END_UPCASE},
		{"dunder file", "__FILE__", KEYWORD___FILE__},
		{"not a keyword", "foobar", IDENTIFIER},
		{"case sensitive", "If", IDENTIFIER},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lookupKeyword(tt.text); got != tt.expected {
				t.Errorf("lookupKeyword(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestKind_IsKeyword(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		expected bool
	}{
		{"def", KEYWORD_DEF, true},
		{"yield (last keyword)", KEYWORD_YIELD, true},
		{"__ENCODING__ (first keyword)", KEYWORD___ENCODING__, true},
		{"identifier", IDENTIFIER, false},
		{"integer", INTEGER, false},
		{"EOF", EOF, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.IsKeyword(); got != tt.expected {
				t.Errorf("Kind.IsKeyword() = %v, want %v", got, tt.expected)
			}
		})
	}
}
