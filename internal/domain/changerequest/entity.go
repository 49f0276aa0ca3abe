package changerequest

import (
	"errors"
	"time"

	"campus-rooms/internal/domain/schedule"
)

var (
	ErrNotPending  = errors.New("change request is not pending")
	ErrInvalidKind = errors.New("invalid change request kind")
)

// Kind decides the approval side effect: a temporary request spawns a parallel
// reservation, a permanent one rewrites the original in place.
type Kind string

const (
	KindTemporary Kind = "temporary"
	KindPermanent Kind = "permanent"
)

func (k Kind) IsValid() bool {
	return k == KindTemporary || k == KindPermanent
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ChangeRequest asks to move an existing reservation into another room and/or
// schedule. State starts at Pending and transitions exactly once to Approved
// or Rejected; once terminal it is immutable.
type ChangeRequest struct {
	id               int64
	professorID      int64
	reservationID    int64
	roomID           int64
	kind             Kind
	status           Status
	dates            schedule.DateRange
	pattern          schedule.Pattern
	professorComment string
	adminComment     string
	createdAt        time.Time
}

func New(professorID, reservationID, roomID int64, kind Kind, dates schedule.DateRange, pattern schedule.Pattern, professorComment string, createdAt time.Time) (*ChangeRequest, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if err := pattern.Validate(); err != nil {
		return nil, err
	}
	return &ChangeRequest{
		professorID:      professorID,
		reservationID:    reservationID,
		roomID:           roomID,
		kind:             kind,
		status:           StatusPending,
		dates:            dates,
		pattern:          pattern.Normalize(),
		professorComment: professorComment,
		createdAt:        createdAt,
	}, nil
}

func Reconstruct(id, professorID, reservationID, roomID int64, kind Kind, status Status, dates schedule.DateRange, pattern schedule.Pattern, professorComment, adminComment string, createdAt time.Time) *ChangeRequest {
	return &ChangeRequest{
		id:               id,
		professorID:      professorID,
		reservationID:    reservationID,
		roomID:           roomID,
		kind:             kind,
		status:           status,
		dates:            dates,
		pattern:          pattern,
		professorComment: professorComment,
		adminComment:     adminComment,
		createdAt:        createdAt,
	}
}

func (c *ChangeRequest) ID() int64                 { return c.id }
func (c *ChangeRequest) ProfessorID() int64        { return c.professorID }
func (c *ChangeRequest) ReservationID() int64      { return c.reservationID }
func (c *ChangeRequest) RoomID() int64             { return c.roomID }
func (c *ChangeRequest) Kind() Kind                { return c.kind }
func (c *ChangeRequest) Status() Status            { return c.status }
func (c *ChangeRequest) Dates() schedule.DateRange { return c.dates }
func (c *ChangeRequest) Pattern() schedule.Pattern { return c.pattern }
func (c *ChangeRequest) ProfessorComment() string  { return c.professorComment }
func (c *ChangeRequest) AdminComment() string      { return c.adminComment }
func (c *ChangeRequest) CreatedAt() time.Time      { return c.createdAt }

func (c *ChangeRequest) IsPending() bool {
	return c.status == StatusPending
}

func (c *ChangeRequest) Approve(adminComment string) error {
	if c.status != StatusPending {
		return ErrNotPending
	}
	c.status = StatusApproved
	c.adminComment = adminComment
	return nil
}

func (c *ChangeRequest) Reject(adminComment string) error {
	if c.status != StatusPending {
		return ErrNotPending
	}
	c.status = StatusRejected
	c.adminComment = adminComment
	return nil
}

// DuplicateOf reports whether another request asks for exactly the same move:
// same professor, reservation, target room, date range and pattern.
func (c *ChangeRequest) DuplicateOf(other *ChangeRequest) bool {
	return c.professorID == other.professorID &&
		c.reservationID == other.reservationID &&
		c.roomID == other.roomID &&
		c.dates.Start().Equal(other.dates.Start()) &&
		c.dates.End().Equal(other.dates.End()) &&
		c.pattern.Equal(other.pattern)
}
