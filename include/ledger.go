package include

// Ledger records the canonical paths whose expansion has begun during one
// run. A file joins the ledger before its body is scanned, so cyclic or
// repeated references resolve to "already included" instead of recursing.
// The set only grows; one ledger is shared across the whole recursion.
type Ledger map[string]bool

// NewLedger returns an empty ledger.
func NewLedger() Ledger {
	return make(Ledger)
}

// Add marks path as expanded.
func (l Ledger) Add(path string) {
	l[path] = true
}

// Contains reports whether path's expansion has already begun.
func (l Ledger) Contains(path string) bool {
	return l[path]
}
