package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"blog-frontend/cmd/web/trace"
)

// CORS 는 JSON API 의 cross-origin 정책이다.
// 허용 origin 이 비어 있으면 cross-origin 요청을 거부한다. (rs/cors 는 빈 목록을 "*" 로 취급한다.)
func CORS(allowedOrigins []string) *cors.Cors {
	opts := cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", trace.HeaderRequestID},
		ExposedHeaders: []string{trace.HeaderRequestID},
		MaxAge:         600,
	}
	if len(allowedOrigins) == 0 {
		opts.AllowOriginFunc = func(string) bool { return false }
	}
	return cors.New(opts)
}
