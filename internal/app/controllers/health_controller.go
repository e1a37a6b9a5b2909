package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/santanu2402/Alumni-Management-System/internal/app/models/dto"
)

// Pinger reports whether the backing database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController reports service liveness and database reachability
type HealthController struct {
	pinger Pinger
}

// NewHealthController creates a new HealthController
func NewHealthController(pinger Pinger) *HealthController {
	return &HealthController{pinger: pinger}
}

// Health returns 200 when the service and its database are up
func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.pinger.Ping(pingCtx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.APIResponse{Success: false, Message: "database unreachable"})
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("ok"))
}
