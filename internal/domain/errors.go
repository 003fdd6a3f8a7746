package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrSchema = errors.New("schema error")
var ErrParse = errors.New("parse error")
var ErrIO = errors.New("io error")

// ErrPrecondition indicates inputs that violate an operation's contract,
// such as warehouse and coordinate lists of different length.
var ErrPrecondition = errors.New("precondition failed")

// SchemaError reports required columns that a loaded table does not carry.
type SchemaError struct {
	Found   []string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf(
		"missing required columns [%s]. Found: [%s]",
		strings.Join(e.Missing, ", "),
		strings.Join(e.Found, ", "),
	)
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }
