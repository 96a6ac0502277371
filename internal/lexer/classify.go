package lexer

// Character classification is pure, byte-at-a-time, and ASCII-only. The
// language family's non-goal list excludes encoding awareness beyond
// ASCII: a non-ASCII byte in an identifier position is simply not an
// identifier character and falls through to INVALID, matching the
// original lexer this was distilled from.

func isBinaryDigit(b byte) bool {
	return b == '0' || b == '1'
}

func isOctalDigit(b byte) bool {
	return b >= '0' && b <= '7'
}

func isDecimalDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDecimalDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isUpperAlpha(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func isLowerAlpha(b byte) bool {
	return b >= 'a' && b <= 'z'
}

func isAlpha(b byte) bool {
	return isUpperAlpha(b) || isLowerAlpha(b)
}

// isIdentifierStart reports whether b can begin an identifier, constant,
// keyword, or local: a letter or underscore.
func isIdentifierStart(b byte) bool {
	return isAlpha(b) || b == '_'
}

// isIdentifierContinue reports whether b can continue an identifier once
// started: a letter, digit, or underscore.
func isIdentifierContinue(b byte) bool {
	return isIdentifierStart(b) || isDecimalDigit(b)
}

// isInlineWhitespace reports whether b is whitespace that never starts a
// new line: space, tab, carriage return, form feed, vertical tab.
func isInlineWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

// isAnyWhitespace reports whether b is any whitespace byte, including the
// newline itself.
func isAnyWhitespace(b byte) bool {
	return b == '\n' || isInlineWhitespace(b)
}

// isRegexpOptionLetter reports whether b is one of the trailing option
// letters a regular expression literal may carry after its closing
// terminator: e, i, m, n, s, u, x.
func isRegexpOptionLetter(b byte) bool {
	switch b {
	case 'e', 'i', 'm', 'n', 's', 'u', 'x':
		return true
	default:
		return false
	}
}
