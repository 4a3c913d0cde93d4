package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "barberline/internal/handler/dto/response"
	"barberline/internal/handler/middleware"
	"barberline/internal/pkg/config"
	"barberline/internal/usecase/commands"
	"barberline/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BarberHandler struct {
	queueCommands commands.QueueCommands
	queueQueries  queries.QueueQueries
	barberQueries queries.BarberQueries
	queueCfg      config.QueueConfig
}

func NewBarberHandler(
	queueCommands commands.QueueCommands,
	queueQueries queries.QueueQueries,
	barberQueries queries.BarberQueries,
	queueCfg config.QueueConfig,
) *BarberHandler {
	return &BarberHandler{
		queueCommands: queueCommands,
		queueQueries:  queueQueries,
		barberQueries: barberQueries,
		queueCfg:      queueCfg,
	}
}

// @Summary Find barbers near a point
// @Description Barbers within radius_km of (lat, long), nearest first, with current queue length.
// @Tags barbers
// @Produce json
// @Security BearerAuth
// @Param lat query number true "Origin latitude"
// @Param long query number true "Origin longitude"
// @Param radius_km query number false "Search radius in km"
// @Success 200 {array} resdto.NearbyBarberResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /barbers/nearby [get]
func (h *BarberHandler) Nearby(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	long, longErr := strconv.ParseFloat(c.Query("long"), 64)
	if latErr != nil || longErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "lat and long are required numbers",
		})
		return
	}

	radiusKm := h.queueCfg.DefaultRadiusKm
	if raw := c.Query("radius_km"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "radius_km must be a positive number",
			})
			return
		}
		radiusKm = parsed
	}

	barbers, err := h.barberQueries.FindNearby(c.Request.Context(), lat, long, radiusKm)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidSearchArea):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Coordinates out of range",
			})
		case errors.Is(err, queries.ErrQueueUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Store unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromNearbyBarbers(barbers))
}

// @Summary List a barber's queue
// @Description Entries in service order. Only the barber themself may look.
// @Tags barbers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Barber ID"
// @Success 200 {object} resdto.QueueListResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /barbers/{id}/queue [get]
func (h *BarberHandler) ListQueue(c *gin.Context) {
	barberID, ok := h.ownBarberID(c)
	if !ok {
		return
	}

	entries, err := h.queueQueries.ListQueue(c.Request.Context(), barberID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBarberNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Barber not found",
			})
		case errors.Is(err, queries.ErrQueueUnavailable):
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

	c.JSON(http.StatusOK, resdto.FromQueueEntries(barberID, entries))
}

// @Summary Remove a customer from the queue
// @Description Remove a customer from this barber's queue as served or no_show. Served visits are recorded in history.
// @Tags barbers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Barber ID"
// @Param customerID path string true "Customer ID"
// @Param reason query string true "served or no_show"
// @Success 200 {object} resdto.RemoveFromQueueResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /barbers/{id}/queue/{customerID} [delete]
func (h *BarberHandler) Remove(c *gin.Context) {
	barberID, ok := h.ownBarberID(c)
	if !ok {
		return
	}

	customerID, err := uuid.Parse(c.Param("customerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid customer ID",
		})
		return
	}

	result, err := h.queueCommands.Remove(c.Request.Context(), barberID, customerID, c.Query("reason"))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidRemovalReason):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "reason must be served or no_show",
			})
		case errors.Is(err, commands.ErrEntryOwnedByOther):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Customer is queued with a different barber",
			})
		case errors.Is(err, commands.ErrEntryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer is not in this queue",
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

	c.JSON(http.StatusOK, resdto.FromRemoveResult(result))
}

// @Summary Service history
// @Description Completed visits for this barber, newest first.
// @Tags barbers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Barber ID"
// @Success 200 {array} resdto.HistoryRecordResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /barbers/{id}/history [get]
func (h *BarberHandler) History(c *gin.Context) {
	barberID, ok := h.ownBarberID(c)
	if !ok {
		return
	}

	records, err := h.barberQueries.History(c.Request.Context(), barberID)
	if err != nil {
		if errors.Is(err, queries.ErrQueueUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Store unavailable",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromHistoryRecords(records))
}

// ownBarberID parses the :id path param and rejects requests where the
// token subject is not that barber. Writes the response on failure.
func (h *BarberHandler) ownBarberID(c *gin.Context) (uuid.UUID, bool) {
	barberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid barber ID",
		})
		return uuid.Nil, false
	}

	subjectID, ok := middleware.GetSubjectID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, false
	}
	if subjectID != barberID {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not your queue",
		})
		return uuid.Nil, false
	}

	return barberID, true
}
