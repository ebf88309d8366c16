package schema

import (
	"fmt"
	"strings"
)

// Violation is the error returned when a document does not conform to a schema.
type Violation struct {
	Schema      string
	Constraints []Constraint
}

// Constraint describes one failed schema constraint.
type Constraint struct {
	// Field is the path of the offending value, with "(root)" for the whole document.
	Field string

	// Keyword identifies the kind of constraint, such as "required" or "invalid_type".
	Keyword string

	Description string
}

func (c Constraint) String() string {
	return fmt.Sprintf("%s: %s (%s)", c.Field, c.Description, c.Keyword)
}

func (v *Violation) Error() string {
	lines := []string{fmt.Sprintf("response does not conform to schema %q:", v.Schema)}
	for _, c := range v.Constraints {
		lines = append(lines, "  "+c.String())
	}
	return strings.Join(lines, "\n")
}
