package ebnflex

import "fmt"

// Position represents a location in source code.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Source is a cursor over the bytes of one input file.
// It is a small value: copying it takes a snapshot that can be restored later.
type Source struct {
	data []byte
	pos  Position
}

// NewSource returns a cursor positioned at the start of data.
func NewSource(filename string, data []byte) Source {
	return Source{
		data: data,
		pos:  Position{Filename: filename, Line: 1, Column: 1},
	}
}

// Position returns the current position in the input.
func (s Source) Position() Position {
	return s.pos
}

// Remaining returns the unread input.
func (s Source) Remaining() []byte {
	return s.data[s.pos.Offset:]
}

// AtEOF reports whether all input has been read.
func (s Source) AtEOF() bool {
	return s.pos.Offset >= len(s.data)
}

// advance moves the cursor n bytes forward, tracking lines and columns.
func (s *Source) advance(n int) {
	for i := 0; i < n && s.pos.Offset < len(s.data); i++ {
		ch := s.data[s.pos.Offset]
		s.pos.Offset++
		if ch == '\n' {
			s.pos.Line++
			s.pos.Column = 1
		} else {
			s.pos.Column++
		}
	}
}
