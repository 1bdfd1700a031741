package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"blog-frontend/cmd/web/clients/backendclient"
	"blog-frontend/cmd/web/handlers"
	"blog-frontend/cmd/web/middleware"
	"blog-frontend/cmd/web/services"
	"blog-frontend/cmd/web/view"
	"blog-frontend/config"
	_ "blog-frontend/docs"
)

// New 는 설정으로 backend 클라이언트, 서비스, 렌더러를 조립하고 라우트를 등록한다.
// question 이 nil 이면 홈페이지는 보안 질문 없이 렌더링된다.
func New(cfg config.AppConfig, question services.SecurityQuestionProvider) (*gin.Engine, error) {
	renderer, err := view.New(view.Options{
		Dir:    cfg.Frontend.TemplateDir,
		Minify: cfg.Frontend.MinifyHTML,
	})
	if err != nil {
		return nil, err
	}

	// 홈페이지와 에러 페이지 템플릿이 없으면 요청 시점이 아니라 기동 시점에 실패시킨다.
	for _, name := range []string{cfg.Frontend.ViewPath + ".home", handlers.ErrorTemplate} {
		if !renderer.Has(name) {
			return nil, fmt.Errorf("%w: %s", view.ErrTemplateNotFound, name)
		}
	}

	backend := backendclient.New(cfg.Backend)
	homepageSvc, err := services.NewHomepageService(backend, cfg.Frontend, question)
	if err != nil {
		return nil, err
	}

	urls, err := handlers.NewURLResolver(cfg.Server.TrustedProxies)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("server.trusted_proxies: %w", err)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(middleware.SecureHeaders(cfg.Server.SSL))

	r.GET("/health", handlers.HealthHandler(backend))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", handlers.DisplayHomepageBlogPostsHandler(homepageSvc, renderer, cfg.Frontend.ViewPath, urls))

	api := r.Group("/api/v1")
	{
		api.GET("/homepage", handlers.HomepageJSONHandler(homepageSvc, urls))
	}

	return r, nil
}
