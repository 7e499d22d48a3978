package arff

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrDuplicateRelation is returned for a second @relation directive.
	ErrDuplicateRelation = errors.New("arff: duplicate relation")

	// ErrAttributesBeforeRelation is returned when @relation follows an @attribute.
	ErrAttributesBeforeRelation = errors.New("arff: attributes declared before relation")

	// ErrEmptyRelationName is returned when @relation has no name.
	ErrEmptyRelationName = errors.New("arff: empty relation name")

	// ErrMissingRelation is returned when the document has no @relation.
	ErrMissingRelation = errors.New("arff: missing relation")

	// ErrRelationNotSet is returned for an @attribute seen before @relation.
	ErrRelationNotSet = errors.New("arff: relation not set")

	ErrUnsupportedAttributeType = errors.New("arff: unsupported attribute type")
	ErrUnknownCategory          = errors.New("arff: unknown category")
	ErrInvalidOperation         = errors.New("arff: invalid operation on numeric attribute")
	ErrEmptyCategories          = errors.New("arff: categorical attribute without categories")
	ErrFieldCountMismatch       = errors.New("arff: field count mismatch")
	ErrMalformedNumber          = errors.New("arff: malformed number")
	ErrMalformedSparseEntry     = errors.New("arff: malformed sparse entry")
	ErrIndexOutOfRange          = errors.New("arff: sparse index out of range")
	ErrLabelCountOutOfRange     = errors.New("arff: label count exceeds attribute count")
	ErrUnexpectedLine           = errors.New("arff: unexpected line in header")

	// ErrIO is matched by every *LoadError.
	ErrIO = errors.New("arff: io error")
)

// ParseError reports the input line that failed to parse.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("line %d: %v (%q)", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LoadError reports a failure to read an ARFF file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("arff: read %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is reports ErrIO as a match so callers can tell I/O failures from parse failures.
func (e *LoadError) Is(target error) bool { return target == ErrIO }
