package parse

import "fmt"

// ParseError reports a page whose required structure is missing or whose
// field content is malformed. Field names the marker that failed.
type ParseError struct {
	SourceURL string
	Field     string
	Err       error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s: field %s: %v", e.SourceURL, e.Field, e.Err)
	}
	return fmt.Sprintf("parse %s: missing %s", e.SourceURL, e.Field)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
