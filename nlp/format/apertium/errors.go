package apertium

import "fmt"

// UnknownTagError reports a tag missing from the dialect's mapping table.
// Conversion stops on it in every mode.
type UnknownTagError struct {
	Dialect Dialect
	Tag     string
	Field   string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown %v tag %q in analysis %q", e.Dialect, e.Tag, e.Field)
}

// MalformedTokenError reports a stream segment that is not a ^...$ token.
type MalformedTokenError struct {
	Segment string
	Reason  string
}

func (e *MalformedTokenError) Error() string {
	return fmt.Sprintf("malformed token %q: %s", e.Segment, e.Reason)
}
