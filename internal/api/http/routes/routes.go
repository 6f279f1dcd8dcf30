package routes

import (
	"github.com/gin-gonic/gin"

	exphttp "github.com/GoSim-25-26J-441/aqualab-backend/internal/experiments/http"
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/users"
)

type Deps struct {
	Experiments *exphttp.Handler
	Users       *users.Handler
}

// Register mounts the experiment and user endpoints at the router root.
func Register(r *gin.Engine, dep Deps) {
	dep.Experiments.Register(r.Group("/experiments"))
	dep.Users.Register(r.Group(""))
}
