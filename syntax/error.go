package syntax

import "fmt"

const defaultParseError = "failed to parse"

// ParseError is a parse failure. The message is optional; an empty
// one renders the default text.
type ParseError struct {
	Message *string
}

// Errorf builds a ParseError with a formatted message.
func Errorf(format string, args ...any) *ParseError {
	msg := fmt.Sprintf(format, args...)
	return &ParseError{Message: &msg}
}

func (e *ParseError) Error() string {
	if e.Message != nil {
		return *e.Message
	}
	return defaultParseError
}
