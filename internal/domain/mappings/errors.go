package mappings

import "fmt"

// MalformedHeaderError reports a class header missing its ` -> ` separator
// or trailing `:`.
type MalformedHeaderError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("malformed class header at line %d (%s): %q", e.Line, e.Reason, e.Text)
}

// MalformedMemberError reports a member line that is neither a field nor a
// method declaration.
type MalformedMemberError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedMemberError) Error() string {
	return fmt.Sprintf("malformed member at line %d (%s): %q", e.Line, e.Reason, e.Text)
}
