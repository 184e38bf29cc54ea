package cashbook

import "fmt"

// ValidationError reports malformed input at a boundary: a negative
// amount, an unrecognized kind. It is surfaced immediately and never
// partially applied.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageError reports a persistence I/O failure. The in-memory ledger is
// left unchanged when one is returned, so a retry is always safe.
type StorageError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("could not %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// RowWarning reports a row skipped while loading a ledger file. Skipping
// keeps one corrupt line from blanking the rest of the ledger.
type RowWarning struct {
	Line   int
	Reason string
}

func (w RowWarning) String() string {
	return fmt.Sprintf("line %d skipped: %s", w.Line, w.Reason)
}
