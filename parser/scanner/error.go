package scanner

import "fmt"

// Error is a lexical error, wrapped by the parser into a SyntaxError
// carrying the same position (spec §7: "a single error kind,
// SyntaxError"). The scanner itself only records the first error it
// hits and stops producing meaningful tokens after that; it performs
// no recovery, matching the parser's own error model.
type Error struct {
	Message string
	Pos     int
	Line    int
	Column  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d:%d)", e.Message, e.Line, e.Column)
}

func (s *Scanner) addError(format string, args ...any) {
	if s.err != nil {
		return
	}
	pos := s.src.position()
	s.err = &Error{
		Message: fmt.Sprintf(format, args...),
		Pos:     pos.Offset,
		Line:    pos.Line,
		Column:  pos.Column,
	}
}

// Err returns the first lexical error encountered, if any.
func (s *Scanner) Err() error {
	if s.err == nil {
		return nil
	}
	return s.err
}
