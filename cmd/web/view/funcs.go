package view

import (
	"html/template"
	"strings"

	"github.com/Masterminds/sprig/v3"
)

// Funcs 는 sprig 함수 맵에 기본 템플릿이 쓰는 helper 를 더해 반환한다.
func Funcs() template.FuncMap {
	funcs := sprig.FuncMap()
	funcs["excerpt"] = excerpt
	funcs["isVideo"] = isVideo
	return funcs
}

// excerpt 는 s 를 단어 경계 기준 최대 max rune 으로 자르고 말줄임표를 붙인다.
func excerpt(max int, s string) string {
	s = strings.TrimSpace(s)
	rs := []rune(s)
	if max <= 0 || len(rs) <= max {
		return s
	}
	cut := string(rs[:max])
	if i := strings.LastIndexAny(cut, " \t\n"); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}

func isVideo(featuredImageType string) bool {
	return featuredImageType == "video"
}
