package trace

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// HeaderRequestID 는 inbound 요청과 backend 호출 모두에서 쓰는 요청 식별 헤더다.
const HeaderRequestID = "X-Request-Id"

// HeaderSpanID 는 backend 호출 순번을 전달하는 헤더다.
const HeaderSpanID = "X-Span-Id"

const maxRequestIDLen = 64

type requestKey struct{}

// Request 는 하나의 inbound 페이지 요청 동안 공유되는 추적 상태다.
// backend 호출마다 span 이 1,2,3,... 으로 증가한다.
type Request struct {
	ID           string
	backendCalls atomic.Int64
}

// NewID 는 하이픈 없는 UUIDv4 문자열을 만든다.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// RequestIDFromHeader 는 inbound X-Request-Id 를 검증해서 돌려준다.
// 값이 없거나 길이/문자 조건을 벗어나면 새 ID 를 만든다. (로그와 에러 페이지에 그대로 찍히는 값이다.)
func RequestIDFromHeader(h http.Header) string {
	id := strings.TrimSpace(h.Get(HeaderRequestID))
	if id == "" || len(id) > maxRequestIDLen || !validID(id) {
		return NewID()
	}
	return id
}

func validID(id string) bool {
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}

// NewContext 는 requestID 로 추적 상태를 만들어 컨텍스트에 저장한다.
func NewContext(ctx context.Context, requestID string) (context.Context, *Request) {
	req := &Request{ID: requestID}
	return context.WithValue(ctx, requestKey{}, req), req
}

// fromContext 는 컨텍스트의 추적 상태를 반환한다. 미들웨어 밖이면 nil.
func fromContext(ctx context.Context) *Request {
	if ctx == nil {
		return nil
	}
	req, _ := ctx.Value(requestKey{}).(*Request)
	return req
}

// RequestID 는 컨텍스트의 요청 ID 를 반환한다. 없으면 빈 문자열.
func RequestID(ctx context.Context) string {
	if req := fromContext(ctx); req != nil {
		return req.ID
	}
	return ""
}

// BackendCalls 는 지금까지 나간 backend 호출 수다.
func (r *Request) BackendCalls() int64 {
	return r.backendCalls.Load()
}

// BackendSpan 은 backend 호출 하나를 기록하고 (requestID, spanID) 를 반환한다.
// 페이지 요청 밖(헬스체크 스크립트 등)에서 호출되면 새 요청 ID 와 span 1 을 쓴다.
func BackendSpan(ctx context.Context) (string, string) {
	req := fromContext(ctx)
	if req == nil {
		return NewID(), "1"
	}
	n := req.backendCalls.Add(1)
	return req.ID, strconv.FormatInt(n, 10)
}
