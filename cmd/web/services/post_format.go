package services

import (
	"net/url"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/dustin/go-humanize"

	"blog-frontend/cmd/internal/logger"
)

const timeTagDateLayout = "2006-01-02"

// featuredImage 는 포스트에 표시할 이미지를 정한다.
// 비어 있으면 설정된 기본 이미지를 쓰고, 상대 경로는 ImageBaseURL 이 있을 때 그 뒤에 붙인다.
func (s *HomepageService) featuredImage(src string) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return s.cfg.DefaultFeaturedImage
	}
	if s.cfg.ImageBaseURL == "" || isAbsoluteURL(src) {
		return src
	}
	return strings.TrimRight(s.cfg.ImageBaseURL, "/") + "/" + strings.TrimLeft(src, "/")
}

func (s *HomepageService) featuredImageType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	if t == "" {
		return s.cfg.DefaultFeaturedImageType
	}
	return t
}

// formatPublishOn 은 raw 에 대해 사람이 읽는 문자열("January 1st, 2024")과
// <time datetime> 값을 반환한다. 날짜만 있는 값은 datetime 도 날짜만 남긴다.
// 해석할 수 없는 입력은 두 값 모두 그대로 돌려준다.
func (s *HomepageService) formatPublishOn(raw string) (string, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ""
	}

	t, err := dateparse.ParseIn(raw, s.location)
	if err != nil {
		logger.WarnWithFields("unparseable publish_on", logger.Fields{
			"publish_on": raw,
			"error":      err.Error(),
		})
		return raw, raw
	}
	t = t.In(s.location)

	human := t.Format("January") + " " + humanize.Ordinal(t.Day()) + ", " + t.Format("2006")
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return human, t.Format(timeTagDateLayout)
	}
	// 소수점 초를 잘라내면 datetime 이 다른 시각을 가리키게 된다.
	return human, t.Format(time.RFC3339Nano)
}

func isAbsoluteURL(s string) bool {
	if strings.HasPrefix(s, "//") {
		return true
	}
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

// socialHandle 은 twitter 핸들을 "@name" 형태로 맞춘다. 빈 값은 그대로 둔다.
func socialHandle(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	return "@" + strings.TrimLeft(h, "@")
}
