package style

import (
	"fmt"
)

// ColorError reports a hex color literal which cannot be decoded. It is
// scoped to a single token - the offending operation is dropped and the rest
// of the element's resolution proceeds.
type ColorError struct {
	Literal string
	Reason  string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("invalid color literal %q: %s", e.Literal, e.Reason)
}

// LengthError reports a length literal with a missing number or an unknown
// unit. The operation falls back to zero pixels instead of failing the
// element.
type LengthError struct {
	Literal string
	Reason  string
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("invalid length literal %q: %s", e.Literal, e.Reason)
}
