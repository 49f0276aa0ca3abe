package reservation

import (
	"campus-rooms/internal/domain/schedule"
)

// Reservation occupies one room, on each weekday of its pattern, during each
// listed block, for every week between its start and end date (inclusive).
type Reservation struct {
	id        int64
	roomID    int64
	sectionID int64
	dates     schedule.DateRange
	pattern   schedule.Pattern
}

func New(roomID, sectionID int64, dates schedule.DateRange, pattern schedule.Pattern) (*Reservation, error) {
	if err := pattern.Validate(); err != nil {
		return nil, err
	}
	return &Reservation{
		roomID:    roomID,
		sectionID: sectionID,
		dates:     dates,
		pattern:   pattern.Normalize(),
	}, nil
}

func Reconstruct(id, roomID, sectionID int64, dates schedule.DateRange, pattern schedule.Pattern) *Reservation {
	return &Reservation{
		id:        id,
		roomID:    roomID,
		sectionID: sectionID,
		dates:     dates,
		pattern:   pattern,
	}
}

func (r *Reservation) ID() int64                 { return r.id }
func (r *Reservation) RoomID() int64             { return r.roomID }
func (r *Reservation) SectionID() int64          { return r.sectionID }
func (r *Reservation) Dates() schedule.DateRange { return r.dates }
func (r *Reservation) Pattern() schedule.Pattern { return r.pattern }

// Reschedule replaces room, date range and pattern in place, keeping the
// identifier. Used by updates and by permanent change-request approvals; the
// replacement is atomic at the record level when persisted.
func (r *Reservation) Reschedule(roomID int64, dates schedule.DateRange, pattern schedule.Pattern) error {
	if err := pattern.Validate(); err != nil {
		return err
	}
	r.roomID = roomID
	r.dates = dates
	r.pattern = pattern.Normalize()
	return nil
}

// ConflictsWith reports a three-way collision with another reservation in the
// same room: overlapping date ranges, a shared weekday, and a shared block on
// that weekday.
func (r *Reservation) ConflictsWith(other *Reservation) bool {
	if r.roomID != other.roomID {
		return false
	}
	return schedule.Conflicts(r.dates, r.pattern, other.dates, other.pattern)
}

// OccupiesSchedule reports whether this reservation collides with a candidate
// schedule, regardless of which room the candidate targets.
func (r *Reservation) OccupiesSchedule(dates schedule.DateRange, pattern schedule.Pattern) bool {
	return schedule.Conflicts(r.dates, r.pattern, dates, pattern)
}
