package request

import (
	"errors"
	"strings"
	"time"

	"campus-rooms/internal/domain/schedule"
	"campus-rooms/internal/usecase/commands"
	"campus-rooms/internal/usecase/queries"
)

const dateLayout = "2006-01-02"

var errInvalidSlot = errors.New("slot must look like weekday:block")

type ReservationRequest struct {
	RoomID        int64               `json:"room_id" binding:"required"`
	SectionID     int64               `json:"section_id" binding:"required"`
	StartDate     string              `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate       string              `json:"end_date" binding:"required,datetime=2006-01-02"`
	WeekdayBlocks map[string][]string `json:"weekday_blocks" binding:"required"`
}

func (r ReservationRequest) ToParams() (commands.ReserveParams, error) {
	start, end, err := parseDates(r.StartDate, r.EndDate)
	if err != nil {
		return commands.ReserveParams{}, err
	}
	return commands.ReserveParams{
		RoomID:    r.RoomID,
		SectionID: r.SectionID,
		StartDate: start,
		EndDate:   end,
		Pattern:   toPattern(r.WeekdayBlocks),
	}, nil
}

// AvailableRoomsQuery carries the candidate schedule in query parameters;
// each slot value pairs a weekday with a block, e.g. "monday:morning-1".
type AvailableRoomsQuery struct {
	StartDate      string   `form:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate        string   `form:"end_date" binding:"required,datetime=2006-01-02"`
	Slots          []string `form:"slot" binding:"required"`
	MinCapacity    int      `form:"min_capacity"`
	NeedsProjector bool     `form:"needs_projector"`
	NeedsTV        bool     `form:"needs_tv"`
	LabOnly        bool     `form:"lab_only"`
}

func (q AvailableRoomsQuery) ToParams() (queries.AvailableRoomsParams, error) {
	start, end, err := parseDates(q.StartDate, q.EndDate)
	if err != nil {
		return queries.AvailableRoomsParams{}, err
	}
	dates, err := schedule.NewDateRange(start, end)
	if err != nil {
		return queries.AvailableRoomsParams{}, err
	}

	pattern := make(schedule.Pattern)
	for _, slot := range q.Slots {
		weekday, block, found := strings.Cut(slot, ":")
		if !found {
			return queries.AvailableRoomsParams{}, errInvalidSlot
		}
		wd := schedule.Weekday(weekday)
		pattern[wd] = append(pattern[wd], schedule.Block(block))
	}

	return queries.AvailableRoomsParams{
		Dates:   dates,
		Pattern: pattern,
		Filter: queries.RoomFilter{
			MinCapacity:    q.MinCapacity,
			NeedsProjector: q.NeedsProjector,
			NeedsTV:        q.NeedsTV,
			LabOnly:        q.LabOnly,
		},
	}, nil
}

func parseDates(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func toPattern(m map[string][]string) schedule.Pattern {
	p := make(schedule.Pattern, len(m))
	for weekday, blocks := range m {
		bs := make([]schedule.Block, len(blocks))
		for i, b := range blocks {
			bs[i] = schedule.Block(b)
		}
		p[schedule.Weekday(weekday)] = bs
	}
	return p
}
