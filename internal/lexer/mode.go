package lexer

// modeTag identifies a lexical context. The dispatcher consults the tag at
// the top of the mode stack to decide how to interpret the next byte —
// the same '}' byte closes a brace expression in Default but pops an
// embedded expression in EmbExpr, for instance.
type modeTag int

const (
	modeDefault modeTag = iota
	modeEmbDoc
	modeEmbExpr
	modeList
	modeRegexp
	modeString
	modeSymbol
)

// lexMode is one entry of the mode stack: a tag plus the single byte that
// closes the literal (0 for modes with no terminator, like Default and
// EmbExpr) and whether the #{ interpolation trigger is honored inside it
// (#@ and #$ are never triggers; they stay plain content).
type lexMode struct {
	tag             modeTag
	terminator      byte
	allowInterp     bool
	wordSeparated   bool // List mode only: content is whitespace-separated words, not a single run
}

// modeStackInlineCap is the number of mode entries the stack holds without
// allocating. Four covers the common case of one level of string
// interpolation plus its embedded expression; deeper nesting (a string
// inside an interpolation inside a string...) spills to the heap.
const modeStackInlineCap = 4

// modeStack is a small-vector: entries up to modeStackInlineCap live in an
// inline array with no allocation; pushing past that appends to a
// heap-backed overflow slice. The stack is
// never empty — index 0 is always modeDefault and popping it is a no-op.
type modeStack struct {
	inline [modeStackInlineCap]lexMode
	depth  int // number of inline entries in use, 0..modeStackInlineCap

	// overflow holds entries past modeStackInlineCap, oldest first. Empty
	// until depth reaches modeStackInlineCap.
	overflow []lexMode
}

func newModeStack() modeStack {
	ms := modeStack{}
	ms.inline[0] = lexMode{tag: modeDefault}
	ms.depth = 1
	return ms
}

// top returns the current mode. Safe to call at any time: the stack's base
// entry guarantees this never operates on an empty stack.
func (ms *modeStack) top() lexMode {
	if n := len(ms.overflow); n > 0 {
		return ms.overflow[n-1]
	}
	return ms.inline[ms.depth-1]
}

// setTop mutates the current mode in place, without a push/pop round trip.
// No scanner in this package calls it.
func (ms *modeStack) setTop(m lexMode) {
	if n := len(ms.overflow); n > 0 {
		ms.overflow[n-1] = m
		return
	}
	ms.inline[ms.depth-1] = m
}

// push opens a new lexical context on top of the stack.
func (ms *modeStack) push(m lexMode) {
	if ms.depth < modeStackInlineCap {
		ms.inline[ms.depth] = m
		ms.depth++
		return
	}
	ms.overflow = append(ms.overflow, m)
}

// pop closes the current lexical context. Popping the base (Default with
// nothing else on the stack) is a defensive no-op — per spec this should
// never be reached on valid input, and a stray pop must not underflow.
func (ms *modeStack) pop() {
	if n := len(ms.overflow); n > 0 {
		ms.overflow = ms.overflow[:n-1]
		return
	}
	if ms.depth > 1 {
		ms.depth--
		return
	}
	// Base entry: reset defensively rather than underflow.
	ms.inline[0] = lexMode{tag: modeDefault}
}

// atBase reports whether the stack holds only the Default base entry.
func (ms *modeStack) atBase() bool {
	return ms.depth == 1 && len(ms.overflow) == 0
}
