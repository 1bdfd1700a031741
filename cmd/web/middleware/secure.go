package middleware

import (
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// SecureHeaders 는 브라우저 보안 헤더를 추가한다.
// HSTS 와 HTTPS redirect 는 애플리케이션이 직접 TLS 를 종료할 때만 켠다. (리버스 프록시가 종료하면 끈다.)
func SecureHeaders(ssl bool) gin.HandlerFunc {
	cfg := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
	if ssl {
		cfg.SSLRedirect = true
		cfg.STSSeconds = 31536000
		cfg.STSIncludeSubdomains = true
	}
	return secure.New(cfg)
}
