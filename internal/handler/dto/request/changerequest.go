package request

import (
	"campus-rooms/internal/domain/changerequest"
	"campus-rooms/internal/usecase/commands"
)

type CreateChangeRequestRequest struct {
	ReservationID int64               `json:"reservation_id" binding:"required"`
	RoomID        int64               `json:"room_id" binding:"required"`
	Kind          string              `json:"kind" binding:"required,oneof=temporary permanent"`
	StartDate     string              `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate       string              `json:"end_date" binding:"required,datetime=2006-01-02"`
	WeekdayBlocks map[string][]string `json:"weekday_blocks" binding:"required"`
	Comment       string              `json:"comment"`
}

func (r CreateChangeRequestRequest) ToParams(professorID int64) (commands.CreateChangeRequestParams, error) {
	start, end, err := parseDates(r.StartDate, r.EndDate)
	if err != nil {
		return commands.CreateChangeRequestParams{}, err
	}
	return commands.CreateChangeRequestParams{
		ProfessorID:   professorID,
		ReservationID: r.ReservationID,
		RoomID:        r.RoomID,
		Kind:          changerequest.Kind(r.Kind),
		StartDate:     start,
		EndDate:       end,
		Pattern:       toPattern(r.WeekdayBlocks),
		Comment:       r.Comment,
	}, nil
}

type DecideChangeRequestRequest struct {
	Comment string `json:"comment"`
}
