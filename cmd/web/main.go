package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gin-gonic/gin"

	"blog-frontend/cmd/internal/logger"
	"blog-frontend/cmd/web/middleware"
	"blog-frontend/cmd/web/router"
	"blog-frontend/cmd/web/securityquestion"
	"blog-frontend/cmd/web/services"
	"blog-frontend/config"
)

var CLI struct {
	ConfigDir string `help:"Directory holding config.yaml and .env (default: nearest parent of the working directory)" type:"path"`
	Addr      string `help:"Listen address, overrides server.addr"`
	LogLevel  string `help:"Log level, overrides LOG_LEVEL and logging.level"`
}

// @title           Blog Frontend API
// @version         1.0
// @description     JSON view of the blog homepage
// @BasePath        /api/v1
func main() {
	kong.Parse(&CLI, kong.Description("Blog front-end: renders the homepage from the admin backend."))

	dir := CLI.ConfigDir
	if dir == "" {
		dir = config.GetBasePath()
	}
	cfg, err := config.Load(dir)
	if err != nil {
		log.Fatal(err)
	}

	if CLI.LogLevel != "" {
		logger.Log = logger.NewLogger(CLI.LogLevel)
	} else {
		logger.Init("LOG_LEVEL", cfg.Logging.Level)
	}
	if CLI.Addr != "" {
		cfg.Server.Addr = CLI.Addr
	}
	if CLI.LogLevel != "debug" && cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 보안 질문 helper 는 설정으로 켜고 끈다. 꺼져 있으면 nil 인터페이스를 넘긴다.
	var question services.SecurityQuestionProvider
	if cfg.SecurityQuestion.Enabled {
		question = securityquestion.New(cfg.SecurityQuestion.Min, cfg.SecurityQuestion.Max)
	}

	r, err := router.New(*cfg, question)
	if err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           middleware.CORS(cfg.Server.CORSAllowedOrigins).Handler(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoWithFields("server starting", logger.Fields{
			"addr":        cfg.Server.Addr,
			"backend_url": cfg.Backend.BaseURL,
			"view_path":   cfg.Frontend.ViewPath,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("server shutdown failed: %v", err)
	}
}
