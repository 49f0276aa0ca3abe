package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "campus-rooms/internal/handler/dto/request"
	"campus-rooms/internal/infra"
	"campus-rooms/internal/usecase/commands"
	"campus-rooms/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomCommands commands.RoomCommands
	roomQueries  queries.RoomQueries
	availability queries.AvailabilityQueries
}

func NewRoomHandler(roomCommands commands.RoomCommands, roomQueries queries.RoomQueries, availability queries.AvailabilityQueries) *RoomHandler {
	return &RoomHandler{
		roomCommands: roomCommands,
		roomQueries:  roomQueries,
		availability: availability,
	}
}

// @Summary List rooms
// @Description List all rooms, optionally filtered by capacity and equipment
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param min_capacity query int false "Minimum capacity"
// @Param needs_projector query bool false "Projector required"
// @Param needs_tv query bool false "TV required"
// @Param lab_only query bool false "Labs only"
// @Success 200 {array} queries.RoomView
// @Failure 401 {object} map[string]string
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	filter := queries.RoomFilter{
		MinCapacity:    queryInt(c, "min_capacity"),
		NeedsProjector: queryBool(c, "needs_projector"),
		NeedsTV:        queryBool(c, "needs_tv"),
		LabOnly:        queryBool(c, "lab_only"),
	}

	rooms, err := h.roomQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// @Summary Get room
// @Description Get room by ID
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} queries.RoomView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	view, err := h.roomQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Find available rooms
// @Description List rooms free for the whole requested schedule
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Param slot query []string true "Weekday:block pairs, e.g. monday:morning-1"
// @Success 200 {array} queries.RoomView
// @Failure 400 {object} map[string]string
// @Router /rooms/available [get]
func (h *RoomHandler) FindAvailableRooms(c *gin.Context) {
	var q reqdto.AvailableRoomsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := q.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid schedule",
		})
		return
	}

	rooms, err := h.availability.FindAvailableRooms(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidSchedule) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid schedule",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// @Summary Create room
// @Description Register a new room (admin only)
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RoomRequest true "Room definition"
// @Success 201 {object} queries.RoomView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req reqdto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.roomCommands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		h.writeRoomError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Update room
// @Description Update a room definition (admin only)
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param request body reqdto.RoomRequest true "Room definition"
// @Success 200 {object} queries.RoomView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	var req reqdto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.roomCommands.Update(c.Request.Context(), id, req.ToParams())
	if err != nil {
		h.writeRoomError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Delete room
// @Description Delete a room with no reservations (admin only)
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	if err := h.roomCommands.Delete(c.Request.Context(), id); err != nil {
		h.writeRoomError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RoomHandler) writeRoomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	case errors.Is(err, commands.ErrInvalidRoom):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room definition",
		})
	case errors.Is(err, commands.ErrDuplicateRoomNumber):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Room number already registered",
		})
	case errors.Is(err, commands.ErrRoomInUse):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Room has active reservations",
		})
	case errors.Is(err, commands.ErrStoreFailure):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Store unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func pathID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}

func queryBool(c *gin.Context, key string) bool {
	v, err := strconv.ParseBool(c.Query(key))
	if err != nil {
		return false
	}
	return v
}
