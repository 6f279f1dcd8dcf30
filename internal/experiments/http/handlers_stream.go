package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/aqualab-backend/internal/logger"
)

// streamEvents streams experiment changes using Server-Sent Events (SSE).
// The current record is sent first, then one update event per published
// change until the client disconnects.
func (h *Handler) streamEvents(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	e, err := h.experiments.Get(ctx, id)
	if err != nil {
		h.fail(c, err, "Failed to fetch experiment")
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	sub := h.events.Subscribe(ctx, id)
	defer sub.Close()

	// Wait for the subscription to be confirmed so no update published
	// after the initial snapshot is missed.
	if _, err := sub.Receive(ctx); err != nil {
		logger.FromContext(ctx, h.log).Error("subscribe to experiment events failed", "error", err, "experiment_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe to experiment events"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // nginx: disable buffering

	initial, _ := json.Marshal(gin.H{"experiment": e})
	fmt.Fprintf(c.Writer, "event: initial\ndata: %s\n\n", initial)
	flusher.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	msgs := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return

		case <-h.closing:
			return

		case <-ticker.C:
			fmt.Fprint(c.Writer, ": keep-alive\n\n")
			flusher.Flush()

		case msg, ok := <-msgs:
			if !ok {
				return
			}
			fmt.Fprintf(c.Writer, "event: update\ndata: %s\n\n", msg.Payload)
			flusher.Flush()
		}
	}
}
