package markup

import (
	"fmt"
)

// SyntaxError reports byte-level markup the tokenizer could not read
// (unterminated constructs and the like). It fails the current parse attempt
// only, never the process.
type SyntaxError struct {
	Offset int
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("markup syntax error at offset %d: %v", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// TagMismatchError reports an end tag which does not close the innermost open
// element.
type TagMismatchError struct {
	Open  string
	Close string
}

func (e *TagMismatchError) Error() string {
	return fmt.Sprintf("end tag </%s> does not match open element <%s>", e.Close, e.Open)
}

// UnclosedTagError reports a start tag still open when the token stream ends.
type UnclosedTagError struct {
	Tag string
}

func (e *UnclosedTagError) Error() string {
	return fmt.Sprintf("element <%s> is not closed at end of input", e.Tag)
}
