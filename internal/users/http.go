package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/aqualab-backend/internal/logger"
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/request"
)

type Creator interface {
	Create(ctx context.Context, req CreateRequest) (*User, error)
}

type Handler struct {
	repo Creator
	log  *logger.Logger
}

func NewHandler(repo Creator, log *logger.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

// Register attaches user routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/users", h.create)
}

func (h *Handler) create(c *gin.Context) {
	body, err := request.ReadBody(c.Writer, c.Request)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": request.MsgBodyTooLarge})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": request.MsgInvalidJSON})
		return
	}

	req, err := ValidateCreate(c.GetHeader("Content-Type"), body)
	if err != nil {
		if ve, ok := request.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	u, err := h.repo.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
			return
		}
		logger.FromContext(c.Request.Context(), h.log).Error("create user failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    u,
	})
}
