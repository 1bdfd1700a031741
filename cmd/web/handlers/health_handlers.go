package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-frontend/cmd/web/dto"
)

// HealthChecker 는 backendclient.Client 가 구현한다.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler 는 admin backend 에 닿지 않는 동안 503 을 반환한다.
func HealthHandler(backend HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := backend.Health(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponseDTO{Status: "degraded", BackendService: "down", Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponseDTO{Status: "ok"})
	}
}
