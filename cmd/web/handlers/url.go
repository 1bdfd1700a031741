package handlers

import (
	"fmt"
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// URLResolver 는 inbound 요청의 절대 URL(쿼리 포함)을 만든다.
// X-Forwarded-Proto / X-Forwarded-Host 는 직접 연결한 peer 가 신뢰 프록시일 때만 따른다.
// 그 외에는 r.Host 와 r.TLS 만 사용한다.
type URLResolver struct {
	trusted []*net.IPNet
}

// NewURLResolver 는 server.trusted_proxies 와 같은 형식(IP 또는 CIDR)의 목록을 받는다.
// 목록이 비어 있으면 forwarded 헤더를 전혀 신뢰하지 않는다.
func NewURLResolver(trustedProxies []string) (*URLResolver, error) {
	u := &URLResolver{}
	for _, p := range trustedProxies {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.Contains(p, "/") {
			ip := net.ParseIP(p)
			if ip == nil {
				return nil, fmt.Errorf("invalid trusted proxy %q", p)
			}
			if ip.To4() != nil {
				p += "/32"
			} else {
				p += "/128"
			}
		}
		_, cidr, err := net.ParseCIDR(p)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", p, err)
		}
		u.trusted = append(u.trusted, cidr)
	}
	return u, nil
}

// FullURL 은 요청 c 의 절대 URL 을 반환한다.
func (u *URLResolver) FullURL(c *gin.Context) string {
	r := c.Request

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	host := r.Host

	if u.trustedPeer(c.RemoteIP()) {
		switch proto := strings.ToLower(firstHeaderValue(r.Header.Get("X-Forwarded-Proto"))); proto {
		case "http", "https":
			scheme = proto
		}
		if fwd := firstHeaderValue(r.Header.Get("X-Forwarded-Host")); validHost(fwd) {
			host = fwd
		}
	}
	return scheme + "://" + host + r.URL.RequestURI()
}

func (u *URLResolver) trustedPeer(remoteIP string) bool {
	ip := net.ParseIP(remoteIP)
	if ip == nil {
		return false
	}
	for _, cidr := range u.trusted {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

func validHost(h string) bool {
	return h != "" && !strings.ContainsAny(h, "/\\@?# \t")
}

func firstHeaderValue(v string) string {
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}
