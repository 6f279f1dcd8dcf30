package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/aqualab-backend/internal/experiments/domain"
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/experiments/service"
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/logger"
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/request"
)

const (
	msgUpdated = "Experiment updated with sensor data and AI analysis successfully"
	msgCreated = "Experiment created successfully"

	msgExperimentNotFound = "Experiment not found"
	msgUserNotFound       = "User not found"
)

func (h *Handler) update(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	res, err := h.updates.Update(c.Request.Context(), service.UpdateInput{
		ID:          c.Param("id"),
		ContentType: c.GetHeader("Content-Type"),
		Body:        body,
	})
	if err != nil {
		h.fail(c, err, "Failed to update experiment")
		return
	}

	resp := gin.H{
		"message":    msgUpdated,
		"experiment": res.Experiment,
	}
	if res.SimilarExperimentAnalysis != nil {
		resp["similarExperimentAnalysis"] = *res.SimilarExperimentAnalysis
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	e, err := h.experiments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Failed to fetch experiment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"experiment": e})
}

func (h *Handler) create(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	e, err := h.experiments.Create(c.Request.Context(), c.GetHeader("Content-Type"), body)
	if err != nil {
		h.fail(c, err, "Failed to create experiment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      msgCreated,
		"experimentId": e.ID,
		"experiment":   e,
	})
}

func (h *Handler) listByUser(c *gin.Context) {
	items, err := h.experiments.ListByUser(c.Request.Context(), c.Query("userId"))
	if err != nil {
		h.fail(c, err, "Failed to get experiments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"experiments": items})
}

// fail maps a service error to its response. Unexpected errors are logged
// and answered with the generic message only.
func (h *Handler) fail(c *gin.Context, err error, generic string) {
	if ve, ok := request.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
		return
	}
	switch {
	case errors.Is(err, domain.ErrExperimentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgExperimentNotFound})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgUserNotFound})
	default:
		logger.FromContext(c.Request.Context(), h.log).Error(generic, "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"error": generic})
	}
}

// readBody reads the capped request body, answering the request itself
// when that fails.
func readBody(c *gin.Context) ([]byte, bool) {
	body, err := request.ReadBody(c.Writer, c.Request)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": request.MsgBodyTooLarge})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": request.MsgInvalidJSON})
		return nil, false
	}
	return body, true
}
