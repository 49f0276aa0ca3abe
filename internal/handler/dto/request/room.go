package request

import (
	"campus-rooms/internal/domain/room"
	"campus-rooms/internal/usecase/commands"
)

type RoomRequest struct {
	Number       string `json:"number" binding:"required"`
	Capacity     int    `json:"capacity" binding:"required,gt=0"`
	HasProjector bool   `json:"has_projector"`
	HasTV        bool   `json:"has_tv"`
	Kind         string `json:"kind" binding:"required,oneof=standard lab"`
	Computers    int    `json:"computers"`
}

func (r RoomRequest) ToParams() commands.RoomParams {
	return commands.RoomParams{
		Number:       r.Number,
		Capacity:     r.Capacity,
		HasProjector: r.HasProjector,
		HasTV:        r.HasTV,
		Kind:         room.Kind(r.Kind),
		Computers:    r.Computers,
	}
}
