package explorer

// tokenScanner is a tiny recursive-descent helper for the series and order-by
// tokens. Once a step fails every later step is a no-op and ok stays false.
type tokenScanner struct {
	rest string
	ok   bool
}

func newTokenScanner(s string) *tokenScanner {
	return &tokenScanner{rest: s, ok: true}
}

// word consumes one or more of [A-Za-z0-9_].
func (t *tokenScanner) word() string {
	if !t.ok {
		return ""
	}
	n := 0
	for n < len(t.rest) && isWordByte(t.rest[n]) {
		n++
	}
	if n == 0 {
		t.ok = false
		return ""
	}
	w := t.rest[:n]
	t.rest = t.rest[n:]
	return w
}

// literal consumes exactly c.
func (t *tokenScanner) literal(c byte) {
	if !t.ok {
		return
	}
	if len(t.rest) == 0 || t.rest[0] != c {
		t.ok = false
		return
	}
	t.rest = t.rest[1:]
}

// done reports whether every step matched and the whole input was consumed.
func (t *tokenScanner) done() bool {
	return t.ok && t.rest == ""
}

func isWordByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
