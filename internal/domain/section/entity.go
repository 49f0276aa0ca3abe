package section

import (
	"errors"
	"time"
)

var (
	ErrInvalidLabel    = errors.New("section label must not be empty")
	ErrInvalidExpected = errors.New("expected student count must be positive")
	ErrInvalidMargin   = errors.New("margin must not be negative")
)

// Section is an enrollment unit of a subject, taught by one professor. It is
// consulted only to size reservations and to decide whether a lab is required.
type Section struct {
	id                int64
	subjectID         int64
	label             string
	professorID       int64
	expected          int
	margin            int
	enrollmentCloseAt time.Time
}

func NewSection(subjectID int64, label string, professorID int64, expected, margin int, enrollmentCloseAt time.Time) (*Section, error) {
	if label == "" {
		return nil, ErrInvalidLabel
	}
	if expected <= 0 {
		return nil, ErrInvalidExpected
	}
	if margin < 0 {
		return nil, ErrInvalidMargin
	}
	return &Section{
		subjectID:         subjectID,
		label:             label,
		professorID:       professorID,
		expected:          expected,
		margin:            margin,
		enrollmentCloseAt: enrollmentCloseAt,
	}, nil
}

func Reconstruct(id, subjectID int64, label string, professorID int64, expected, margin int, enrollmentCloseAt time.Time) *Section {
	return &Section{
		id:                id,
		subjectID:         subjectID,
		label:             label,
		professorID:       professorID,
		expected:          expected,
		margin:            margin,
		enrollmentCloseAt: enrollmentCloseAt,
	}
}

func (s *Section) ID() int64                    { return s.id }
func (s *Section) SubjectID() int64             { return s.subjectID }
func (s *Section) Label() string                { return s.label }
func (s *Section) ProfessorID() int64           { return s.professorID }
func (s *Section) Expected() int                { return s.expected }
func (s *Section) Margin() int                  { return s.margin }
func (s *Section) EnrollmentCloseAt() time.Time { return s.enrollmentCloseAt }

// RequiredCapacity includes the margin while enrollment is still open at now;
// once enrollment has closed the expected count alone is binding.
func (s *Section) RequiredCapacity(now time.Time) int {
	if now.Before(s.enrollmentCloseAt) {
		return s.expected + s.margin
	}
	return s.expected
}
