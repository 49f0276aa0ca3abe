package api

import (
	"errors"
	"net/http"

	reqdto "campus-rooms/internal/handler/dto/request"
	"campus-rooms/internal/infra"
	"campus-rooms/internal/usecase/commands"
	"campus-rooms/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(reservationCommands commands.ReservationCommands, reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Reserve a room for a section over a date range and weekly pattern
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReservationRequest true "Reservation request"
// @Success 201 {object} queries.ReservationView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	view, err := h.reservationCommands.Reserve(c.Request.Context(), params)
	if err != nil {
		writeReservationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} queries.ReservationView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
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

// @Summary List reservations
// @Description List all reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ReservationView
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	views, err := h.reservationQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Update reservation
// @Description Move a reservation to another room and/or schedule
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Param request body reqdto.ReservationRequest true "Reservation request"
// @Success 200 {object} queries.ReservationView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id} [put]
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	var req reqdto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	view, err := h.reservationCommands.Update(c.Request.Context(), id, params)
	if err != nil {
		writeReservationError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Cancel reservation
// @Description Delete a reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	if err := h.reservationCommands.Cancel(c.Request.Context(), id); err != nil {
		writeReservationError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// writeReservationError maps the placement precondition failures shared by
// reservations and change requests onto HTTP statuses.
func writeReservationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrSectionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Section not found",
		})
	case errors.Is(err, commands.ErrSubjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Subject not found",
		})
	case errors.Is(err, commands.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	case errors.Is(err, commands.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, commands.ErrInvalidSchedule):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid schedule",
		})
	case errors.Is(err, commands.ErrRoomUnavailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Room is not available for the requested schedule",
		})
	case errors.Is(err, commands.ErrCapacityInsufficient):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Room capacity is insufficient for the section",
		})
	case errors.Is(err, commands.ErrRoomNotLab):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Subject requires a lab room",
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
