package taxonomy

import (
	"fmt"
	"strings"
)

// SnapshotParseError reports a malformed or schema-violating snapshot.
// Loading stops at the first one; no partial snapshot is returned.
type SnapshotParseError struct {
	// Path is the snapshot file, empty when loading from a reader.
	Path string

	// Index is the zero-based entry index, or -1 when the error is not tied
	// to a single entry.
	Index int

	// Reason is a short human-readable description.
	Reason string

	// Err is the underlying decoder or validator error, if any.
	Err error
}

// Error implements the error interface.
func (e *SnapshotParseError) Error() string {
	var b strings.Builder
	b.WriteString("snapshot")
	if e.Path != "" {
		fmt.Fprintf(&b, " %s", e.Path)
	}
	if e.Index >= 0 {
		fmt.Fprintf(&b, ": entry %d", e.Index)
	}
	fmt.Fprintf(&b, ": %s", e.Reason)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SnapshotParseError) Unwrap() error {
	return e.Err
}
