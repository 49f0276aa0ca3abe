package api

import (
	"context"
	"errors"
	"net/http"

	"campus-rooms/internal/domain/changerequest"
	"campus-rooms/internal/domain/user"
	reqdto "campus-rooms/internal/handler/dto/request"
	"campus-rooms/internal/handler/middleware"
	"campus-rooms/internal/usecase/commands"
	"campus-rooms/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ChangeRequestHandler struct {
	requestCommands commands.ChangeRequestCommands
	requestQueries  queries.ChangeRequestQueries
}

func NewChangeRequestHandler(requestCommands commands.ChangeRequestCommands, requestQueries queries.ChangeRequestQueries) *ChangeRequestHandler {
	return &ChangeRequestHandler{
		requestCommands: requestCommands,
		requestQueries:  requestQueries,
	}
}

// @Summary Create change request
// @Description Ask to move an existing reservation to another room or schedule
// @Tags change-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateChangeRequestRequest true "Change request"
// @Success 201 {object} queries.ChangeRequestView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /change-requests [post]
func (h *ChangeRequestHandler) CreateChangeRequest(c *gin.Context) {
	professorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateChangeRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams(professorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	view, err := h.requestCommands.Create(c.Request.Context(), params)
	if err != nil {
		h.writeChangeRequestError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary List change requests
// @Description List change requests by status; professors see only their own
// @Tags change-requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending | approved | rejected" default(pending)
// @Success 200 {array} queries.ChangeRequestView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /change-requests [get]
func (h *ChangeRequestHandler) ListChangeRequests(c *gin.Context) {
	status := changerequest.Status(c.DefaultQuery("status", string(changerequest.StatusPending)))
	switch status {
	case changerequest.StatusPending, changerequest.StatusApproved, changerequest.StatusRejected:
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid status",
		})
		return
	}

	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var (
		views []*queries.ChangeRequestView
		err   error
	)
	if role == user.RoleAdmin {
		views, err = h.requestQueries.ListByStatus(c.Request.Context(), status)
	} else {
		professorID, idOK := middleware.GetUserID(c)
		if !idOK {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		views, err = h.requestQueries.ListByStatusAndProfessor(c.Request.Context(), status, professorID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Approve change request
// @Description Apply the requested move and mark the request approved (admin only)
// @Tags change-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Change request ID"
// @Param request body reqdto.DecideChangeRequestRequest false "Optional admin comment"
// @Success 200 {object} queries.ChangeRequestView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /change-requests/{id}/approve [post]
func (h *ChangeRequestHandler) ApproveChangeRequest(c *gin.Context) {
	h.decide(c, h.requestCommands.Approve)
}

// @Summary Reject change request
// @Description Mark the request rejected without touching any reservation (admin only)
// @Tags change-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Change request ID"
// @Param request body reqdto.DecideChangeRequestRequest false "Optional admin comment"
// @Success 200 {object} queries.ChangeRequestView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /change-requests/{id}/reject [post]
func (h *ChangeRequestHandler) RejectChangeRequest(c *gin.Context) {
	h.decide(c, h.requestCommands.Reject)
}

func (h *ChangeRequestHandler) decide(c *gin.Context, decision func(ctx context.Context, id int64, comment string) (*queries.ChangeRequestView, error)) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid change request ID format",
		})
		return
	}

	var req reqdto.DecideChangeRequestRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	view, err := decision(c.Request.Context(), id, req.Comment)
	if err != nil {
		h.writeChangeRequestError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *ChangeRequestHandler) writeChangeRequestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrChangeRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Change request not found",
		})
	case errors.Is(err, commands.ErrProfessorNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Professor not found",
		})
	case errors.Is(err, commands.ErrRequestNotPending):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Change request already decided",
		})
	case errors.Is(err, commands.ErrDuplicateRequest):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Identical change request already pending",
		})
	case errors.Is(err, commands.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid change request",
		})
	default:
		writeReservationError(c, err)
	}
}
