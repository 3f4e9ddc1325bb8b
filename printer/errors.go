package printer

import "fmt"

// InvariantError reports a violated IR invariant: an unbalanced Start/Finish pair, an underflow,
// or any other structural contract the IR builder was required to uphold. It is always fatal.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("IR invariant violation: %s", e.Msg)
}
