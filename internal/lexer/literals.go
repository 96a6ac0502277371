package lexer

// atInterpolationOpen reports whether the cursor sits at "#{", the trigger
// for pushing an embedded-expression mode from inside String, Regexp, or
// List content.
func (l *Lexer) atInterpolationOpen() bool {
	return l.cur.peek() == '#' && l.cur.peekAt(1) == '{'
}

// pushEmbExpr consumes "#{" and enters EmbExpr mode, emitting
// EMBEXPR_BEGIN. The matching '}' is handled by lexDefault, which treats
// EmbExpr the same as Default except for that one byte.
func (l *Lexer) pushEmbExpr() Token {
	l.consume()
	l.consume()
	l.mode.push(lexMode{tag: modeEmbExpr})
	return l.makeToken(EMBEXPR_BEGIN)
}

// lexEmbDoc scans one line of an embedded documentation block. Each call
// produces either another EMBDOC_LINE or, once a line starts with
// "=end", the closing EMBDOC_END that pops the mode.
func (l *Lexer) lexEmbDoc() Token {
	l.cur.tokenStart = l.cur.pos

	if l.cur.atEnd() {
		kind := l.handlers.UnterminatedEmbdoc(l)
		return l.makeToken(kind)
	}

	if l.peekLiteral("=end") {
		for i := 0; i < len("=end"); i++ {
			l.consume()
		}
		for !l.cur.atEnd() && l.cur.peek() != '\n' {
			l.consume()
		}
		if l.cur.peek() == '\n' {
			l.consume()
		}
		l.mode.pop()
		return l.makeToken(EMBDOC_END)
	}

	for !l.cur.atEnd() && l.cur.peek() != '\n' {
		l.consume()
	}
	if l.cur.peek() == '\n' {
		l.consume()
	}
	return l.makeToken(EMBDOC_LINE)
}

// lexList scans the content of a %w/%W/%i/%I word or symbol list: runs of
// whitespace become WORDS_SEP, runs of non-whitespace become
// STRING_CONTENT, and the closing delimiter pops the mode as STRING_END —
// the same closer kind a plain string uses, since the shape of "this
// literal just ended" doesn't depend on which opener started it.
func (l *Lexer) lexList() Token {
	m := l.mode.top()
	l.cur.tokenStart = l.cur.pos

	if l.cur.atEnd() {
		kind := l.handlers.UnterminatedList(l)
		return l.makeToken(kind)
	}

	if l.cur.peek() == m.terminator {
		l.consume()
		l.mode.pop()
		return l.makeToken(STRING_END)
	}

	if isAnyWhitespace(l.cur.peek()) {
		for !l.cur.atEnd() && isAnyWhitespace(l.cur.peek()) && l.cur.peek() != m.terminator {
			l.consume()
		}
		return l.makeToken(WORDS_SEP)
	}

	if m.allowInterp && l.atInterpolationOpen() {
		return l.pushEmbExpr()
	}

	for !l.cur.atEnd() && l.cur.peek() != m.terminator && !isAnyWhitespace(l.cur.peek()) {
		if m.allowInterp && l.atInterpolationOpen() {
			break
		}
		if l.cur.peek() == '\\' {
			l.consume()
			if !l.cur.atEnd() {
				l.consume()
			}
			continue
		}
		l.consume()
	}
	if l.cur.pos == l.cur.tokenStart {
		l.consume()
	}
	return l.makeToken(STRING_CONTENT)
}

// lexStringBody scans the content of a quoted, backtick, or %q/%Q/%x
// string: the terminator closes it as STRING_END, "#{" opens an embedded
// expression when the mode allows interpolation, a backslash always
// escapes the byte after it (so \" inside "..." doesn't close early), and
// everything else accumulates into one STRING_CONTENT token.
func (l *Lexer) lexStringBody() Token {
	m := l.mode.top()
	l.cur.tokenStart = l.cur.pos

	if l.cur.atEnd() {
		kind := l.handlers.UnterminatedString(l)
		return l.makeToken(kind)
	}

	if l.cur.peek() == m.terminator {
		l.consume()
		l.mode.pop()
		return l.makeToken(STRING_END)
	}

	if m.allowInterp && l.atInterpolationOpen() {
		return l.pushEmbExpr()
	}

	for !l.cur.atEnd() && l.cur.peek() != m.terminator {
		if m.allowInterp && l.atInterpolationOpen() {
			break
		}
		if l.cur.peek() == '\\' {
			l.consume()
			if !l.cur.atEnd() {
				l.consume()
			}
			continue
		}
		l.consume()
	}
	return l.makeToken(STRING_CONTENT)
}

// lexRegexpBody mirrors lexStringBody for /.../ and %r content, except the
// closing terminator is followed by a run of option letters consumed into
// the same REGEXP_END token.
func (l *Lexer) lexRegexpBody() Token {
	m := l.mode.top()
	l.cur.tokenStart = l.cur.pos

	if l.cur.atEnd() {
		kind := l.handlers.UnterminatedRegexp(l)
		return l.makeToken(kind)
	}

	if l.cur.peek() == m.terminator {
		l.consume()
		for isRegexpOptionLetter(l.cur.peek()) {
			l.consume()
		}
		l.mode.pop()
		return l.makeToken(REGEXP_END)
	}

	if m.allowInterp && l.atInterpolationOpen() {
		return l.pushEmbExpr()
	}

	for !l.cur.atEnd() && l.cur.peek() != m.terminator {
		if m.allowInterp && l.atInterpolationOpen() {
			break
		}
		if l.cur.peek() == '\\' {
			l.consume()
			if !l.cur.atEnd() {
				l.consume()
			}
			continue
		}
		l.consume()
	}
	return l.makeToken(STRING_CONTENT)
}

// lexSymbol handles the one-shot scan after a SYMBOL_BEGIN: it always pops
// the mode immediately (Symbol is never re-entered for a second token),
// then runs the identifier scanner. A trailing '=' not itself starting a
// comparison or arrow operator is folded into the symbol name, so :foo=
// lexes as one IDENTIFIER rather than IDENTIFIER followed by a stray
// EQUAL — the setter method name is the whole point of that symbol.
func (l *Lexer) lexSymbol() Token {
	l.mode.pop()
	l.cur.tokenStart = l.cur.pos

	if l.cur.atEnd() || !isIdentifierStart(l.cur.peek()) {
		return l.makeToken(INVALID)
	}
	l.consume()
	tok := l.scanIdentifier()

	if tok.Kind != INVALID {
		switch l.cur.peekAt(1) {
		case '=', '~', '>':
			// "==", "=~", "=>" following the name are operators, not part
			// of a setter symbol.
		default:
			if l.cur.peek() == '=' {
				l.consume()
				return l.makeToken(IDENTIFIER)
			}
		}
	}
	return tok
}
