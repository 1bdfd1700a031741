package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"blog-frontend/cmd/internal/logger"
	"blog-frontend/cmd/web/trace"
)

// RequestTrace는 모든 inbound HTTP 요청에 검증된 Request ID를 부여해 컨텍스트/응답 헤더에 저장하고,
// 요청이 끝나면 backend 호출 수와 에러를 포함한 완료 로그를 남긴다.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		requestID := trace.RequestIDFromHeader(req.Header)
		ctx, state := trace.NewContext(req.Context(), requestID)
		c.Request = req.WithContext(ctx)
		c.Writer.Header().Set(trace.HeaderRequestID, requestID)

		c.Next()

		fields := logger.Fields{
			"method":        req.Method,
			"path":          req.URL.Path,
			"query_params":  map[string][]string(req.URL.Query()),
			"status":        c.Writer.Status(),
			"duration":      time.Since(start).String(),
			"request_id":    requestID,
			"backend_calls": state.BackendCalls(),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}
		logger.InfoWithFields("completed request", fields)
	}
}
