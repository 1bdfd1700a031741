package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-frontend/cmd/internal/logger"
	"blog-frontend/cmd/web/trace"
	"blog-frontend/cmd/web/view"
)

// ErrorTemplate 은 처리되지 않은 에러에 쓰는 페이지 템플릿 이름이다.
const ErrorTemplate = "errors.500"

type errorPage struct {
	Status    int
	Title     string
	Message   string
	RequestID string
}

// RenderErrorPage 는 처리되지 않은 에러를 로깅하고 공통 에러 페이지를 렌더링한다.
// 에러 템플릿 렌더링마저 실패하면 plain text 로 응답한다.
func RenderErrorPage(c *gin.Context, renderer *view.Renderer, status int, err error) {
	logHandlerError(c, err)

	page := errorPage{
		Status:    status,
		Title:     http.StatusText(status),
		Message:   "Something went wrong while loading this page. Please try again later.",
		RequestID: trace.RequestID(c.Request.Context()),
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if renderer != nil {
		if rerr := renderer.Render(c.Writer, ErrorTemplate, page); rerr == nil {
			c.Abort()
			return
		}
	}
	c.Header("Content-Type", "text/plain; charset=utf-8")
	_, _ = c.Writer.WriteString(http.StatusText(status))
	c.Abort()
}

func logHandlerError(c *gin.Context, err error) {
	_ = c.Error(err)
	logger.ErrorWithFields("request failed", logger.Fields{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"request_id": trace.RequestID(c.Request.Context()),
		"error":      err.Error(),
	})
}
