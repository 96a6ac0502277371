package lexer

// RecoveryHandler is called when a literal mode reaches the end of the
// buffer without finding its terminator. It receives the lexer (so it may
// inspect or, in principle, mutate state for recovery) and returns the
// Kind to use for the resulting token. The default handlers all return
// EOF, which halts the stream cleanly — the same choice
// Hassandahiru-Compiler-in-Go's scanString/scanChar make by surfacing
// TokenInvalid and an error, except here the contract (§4.8) asks for a
// token kind, not a Go error, since lexing must continue regardless.
type RecoveryHandler func(l *Lexer) Kind

// RecoveryHandlers holds one callback per unterminated-literal class.
// Init fills any nil field with the default halt-on-EOF handler, so a
// zero-value RecoveryHandlers behaves like DefaultRecoveryHandlers.
type RecoveryHandlers struct {
	UnterminatedEmbdoc  RecoveryHandler
	UnterminatedList    RecoveryHandler
	UnterminatedRegexp  RecoveryHandler
	UnterminatedString  RecoveryHandler
}

// DefaultRecoveryHandlers returns the table described in spec.md §4.8 and
// §7: every unterminated-literal class resolves to EOF, terminating the
// stream without panicking or returning a Go error.
func DefaultRecoveryHandlers() RecoveryHandlers {
	halt := func(*Lexer) Kind { return EOF }
	return RecoveryHandlers{
		UnterminatedEmbdoc: halt,
		UnterminatedList:   halt,
		UnterminatedRegexp: halt,
		UnterminatedString: halt,
	}
}

// filled fills in any nil slot of h with the default halt-on-EOF
// behavior, so callers may construct a RecoveryHandlers with only the
// classes they care about overridden.
func (h RecoveryHandlers) filled() RecoveryHandlers {
	d := DefaultRecoveryHandlers()
	if h.UnterminatedEmbdoc == nil {
		h.UnterminatedEmbdoc = d.UnterminatedEmbdoc
	}
	if h.UnterminatedList == nil {
		h.UnterminatedList = d.UnterminatedList
	}
	if h.UnterminatedRegexp == nil {
		h.UnterminatedRegexp = d.UnterminatedRegexp
	}
	if h.UnterminatedString == nil {
		h.UnterminatedString = d.UnterminatedString
	}
	return h
}
