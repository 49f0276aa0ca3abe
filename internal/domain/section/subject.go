package section

import "errors"

var ErrInvalidSubjectName = errors.New("subject name must not be empty")

// Subject carries the single flag the reservation rules care about: whether
// its sections may only be taught in a lab.
type Subject struct {
	id          int64
	name        string
	requiresLab bool
}

func NewSubject(name string, requiresLab bool) (*Subject, error) {
	if name == "" {
		return nil, ErrInvalidSubjectName
	}
	return &Subject{name: name, requiresLab: requiresLab}, nil
}

func ReconstructSubject(id int64, name string, requiresLab bool) *Subject {
	return &Subject{id: id, name: name, requiresLab: requiresLab}
}

func (s *Subject) ID() int64         { return s.id }
func (s *Subject) Name() string      { return s.name }
func (s *Subject) RequiresLab() bool { return s.requiresLab }
