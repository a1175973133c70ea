package internal

import "fmt"

// Sequence issues codes such as EXP0001. Each service owns its own.
type Sequence struct {
	prefix string
	next   int
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{
		prefix: prefix,
		next:   1,
	}
}

func (s *Sequence) Next() string {
	code := s.Peek()
	s.next++
	return code
}

func (s *Sequence) Peek() string {
	return fmt.Sprintf("%s%04d", s.prefix, s.next)
}
