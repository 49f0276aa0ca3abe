package schedule

import (
	"errors"
	"sort"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrEmptyPattern     = errors.New("weekday pattern must not be empty")
	ErrEmptyBlockSet    = errors.New("weekday must map to at least one block")
	ErrUnknownWeekday   = errors.New("unknown weekday")
	ErrUnknownBlock     = errors.New("unknown time block")
)

// Weekday is the lowercase English day name used as the recurrence map key.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

var weekdays = map[Weekday]struct{}{
	Monday: {}, Tuesday: {}, Wednesday: {}, Thursday: {},
	Friday: {}, Saturday: {}, Sunday: {},
}

func (w Weekday) IsValid() bool {
	_, ok := weekdays[w]
	return ok
}

func (w Weekday) String() string {
	return string(w)
}

// DateRange is a closed interval of civil dates; both endpoints are occupied.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateToDate(start)
	end = truncateToDate(end)
	if end.Before(start) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

// Overlaps is the symmetric closed-interval test; touching endpoints overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !other.start.After(r.end)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Pattern maps each weekday of a weekly recurrence to the blocks occupied on
// that day. A reservation holds its room on every listed weekday, during every
// listed block, for each week of its date range.
type Pattern map[Weekday][]Block

// Validate enforces the recurrence invariant: the map is non-empty, every key
// is a known weekday, and every weekday carries at least one known block.
func (p Pattern) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPattern
	}
	for day, blocks := range p {
		if !day.IsValid() {
			return ErrUnknownWeekday
		}
		if len(blocks) == 0 {
			return ErrEmptyBlockSet
		}
		for _, b := range blocks {
			if !b.IsValid() {
				return ErrUnknownBlock
			}
		}
	}
	return nil
}

// Normalize returns a copy with per-day blocks deduplicated and sorted in
// catalog order, so equal patterns have equal serialized forms.
func (p Pattern) Normalize() Pattern {
	out := make(Pattern, len(p))
	for day, blocks := range p {
		seen := make(map[Block]struct{}, len(blocks))
		uniq := make([]Block, 0, len(blocks))
		for _, b := range blocks {
			if _, dup := seen[b]; dup {
				continue
			}
			seen[b] = struct{}{}
			uniq = append(uniq, b)
		}
		sort.Slice(uniq, func(i, j int) bool {
			return blockOrder[uniq[i]] < blockOrder[uniq[j]]
		})
		out[day] = uniq
	}
	return out
}

// Overlaps reports whether some weekday present in both patterns shares a block.
func (p Pattern) Overlaps(other Pattern) bool {
	for day, blocks := range p {
		theirs, ok := other[day]
		if !ok {
			continue
		}
		for _, b := range blocks {
			for _, tb := range theirs {
				if b == tb {
					return true
				}
			}
		}
	}
	return false
}

// Equal compares two patterns as weekday -> block-set maps, ignoring block order.
func (p Pattern) Equal(other Pattern) bool {
	if len(p) != len(other) {
		return false
	}
	for day, blocks := range p {
		theirs, ok := other[day]
		if !ok || len(blocks) != len(theirs) {
			return false
		}
		set := make(map[Block]struct{}, len(theirs))
		for _, b := range theirs {
			set[b] = struct{}{}
		}
		for _, b := range blocks {
			if _, found := set[b]; !found {
				return false
			}
		}
	}
	return true
}

// Conflicts reports whether two schedules collide: their date ranges overlap
// and, on at least one shared weekday, they occupy a common block.
func Conflicts(aRange DateRange, aPattern Pattern, bRange DateRange, bPattern Pattern) bool {
	if !aRange.Overlaps(bRange) {
		return false
	}
	return aPattern.Overlaps(bPattern)
}
