package minihtml

import (
	"errors"
	"fmt"
)

var (
	ErrAttributeNameRequired = errors.New("attribute name was required here")
	ErrDocumentEnd           = errors.New("extra content at document end")
	ErrGtRequired            = errors.New("'>' was required here")
	ErrInvalidTagEnd         = errors.New("tag must end with '>' or '/>'")
	ErrLtRequired            = errors.New("'<' was required here")
	ErrNameRequired          = errors.New("tag name is required")
	ErrPrematureEOF          = errors.New("end of document reached")
	ErrSlashRequired         = errors.New("'/' was required here")
	ErrStringNotClosed       = errors.New("string not closed")
)

// ErrTagMismatch is reported when a closing tag does not match the
// element it is supposed to close.
type ErrTagMismatch struct {
	Open  string
	Close string
}

func (e ErrTagMismatch) Error() string {
	return "closing tag does not match ('" + e.Open + "' != '" + e.Close + "')"
}

// ErrParseError decorates a parse failure with the position at which
// it was detected.
type ErrParseError struct {
	Column     int
	Err        error
	Location   int
	Line       string
	LineNumber int
}

func (e ErrParseError) Error() string {
	return fmt.Sprintf(
		"%s at line %d, column %d\n -> '%s' <-- around here",
		e.Err,
		e.LineNumber,
		e.Column,
		e.Line,
	)
}

func (e ErrParseError) Unwrap() error {
	return e.Err
}
