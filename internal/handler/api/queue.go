package api

import (
	"errors"
	"net/http"

	reqdto "barberline/internal/handler/dto/request"
	resdto "barberline/internal/handler/dto/response"
	"barberline/internal/handler/middleware"
	"barberline/internal/usecase/commands"
	"barberline/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QueueHandler struct {
	queueCommands commands.QueueCommands
	queueQueries  queries.QueueQueries
}

func NewQueueHandler(queueCommands commands.QueueCommands, queueQueries queries.QueueQueries) *QueueHandler {
	return &QueueHandler{
		queueCommands: queueCommands,
		queueQueries:  queueQueries,
	}
}

// @Summary Join a barber's queue
// @Description Place the authenticated customer at the back of the barber's line. A previous entry anywhere is replaced.
// @Tags queue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.JoinQueueRequest true "Join request"
// @Success 201 {object} resdto.QueueStatusResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /queue/join [post]
func (h *QueueHandler) Join(c *gin.Context) {
	customerID, ok := middleware.GetSubjectID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.JoinQueueRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	status, err := h.queueCommands.Join(c.Request.Context(), customerID, req.BarberID, req.ServiceKind)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidServiceKind):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown service kind",
			})
		case errors.Is(err, commands.ErrBarberNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Barber not found",
			})
		case errors.Is(err, commands.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		case errors.Is(err, commands.ErrQueueConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Queue changed underneath the request, retry",
			})
		case errors.Is(err, commands.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Queue store unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromQueueStatus(status))
}

// @Summary Leave the queue
// @Description Remove the authenticated customer's entry wherever it is.
// @Tags queue
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.LeaveQueueResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /queue/leave [post]
func (h *QueueHandler) Leave(c *gin.Context) {
	customerID, ok := middleware.GetSubjectID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result, err := h.queueCommands.Leave(c.Request.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNotInQueue):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Not currently in any queue",
			})
		case errors.Is(err, commands.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		case errors.Is(err, commands.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Queue store unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLeaveResult(result))
}

// @Summary Queue status
// @Description Current position and estimated wait for the authenticated customer. Recomputed on every call.
// @Tags queue
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.QueueStatusResponse
// @Failure 401 {object} map[string]string
// @Router /queue/status [get]
func (h *QueueHandler) Status(c *gin.Context) {
	customerID, ok := middleware.GetSubjectID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	status, err := h.queueQueries.Status(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, queries.ErrQueueUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Queue store unavailable",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromQueueStatus(status))
}
