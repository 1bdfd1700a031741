package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-frontend/cmd/web/services"
	"blog-frontend/cmd/web/view"
)

// DisplayHomepageBlogPostsHandler 는 최신 블로그 포스트로 홈페이지를 렌더링한다.
// backend 장애 시에도 포스트 없이 페이지를 렌더링하고, 그 밖의 실패는 에러 페이지로 보낸다.
func DisplayHomepageBlogPostsHandler(svc *services.HomepageService, renderer *view.Renderer, viewPath string, urls *URLResolver) gin.HandlerFunc {
	templateName := viewPath + ".home"
	return func(c *gin.Context) {
		homepage, err := svc.Build(c.Request.Context(), urls.FullURL(c))
		if err != nil {
			RenderErrorPage(c, renderer, http.StatusInternalServerError, err)
			return
		}

		c.Header("Content-Type", "text/html; charset=utf-8")
		if err := renderer.Render(c.Writer, templateName, homepage); err != nil {
			RenderErrorPage(c, renderer, http.StatusInternalServerError, err)
			return
		}
	}
}

// HomepageJSONHandler godoc
// @Summary      Homepage view-model
// @Description  Returns the data the homepage template is rendered with
// @Tags         homepage
// @Produce      json
// @Success      200  {object}  dto.HomepageView
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /homepage [get]
func HomepageJSONHandler(svc *services.HomepageService, urls *URLResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		homepage, err := svc.Build(c.Request.Context(), urls.FullURL(c))
		if err != nil {
			logHandlerError(c, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, homepage)
	}
}
