package trace

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIDIsHex32(t *testing.T) {
	id := NewID()
	assert.Regexp(t, "^[0-9a-f]{32}$", id)
	assert.NotEqual(t, id, NewID())
}

func TestRequestIDFromHeader(t *testing.T) {
	testCases := []struct {
		name     string
		header   string
		keepSent bool
	}{
		{name: "upstream id kept", header: "upstream-id_1.2", keepSent: true},
		{name: "missing generates", header: ""},
		{name: "newline rejected", header: "abc\ninjected=1"},
		{name: "space rejected", header: "abc def"},
		{name: "too long rejected", header: strings.Repeat("a", maxRequestIDLen+1)},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			h := http.Header{}
			if testCase.header != "" {
				h[HeaderRequestID] = []string{testCase.header}
			}
			got := RequestIDFromHeader(h)
			if testCase.keepSent {
				assert.Equal(t, testCase.header, got)
				return
			}
			assert.Regexp(t, "^[0-9a-f]{32}$", got)
		})
	}
}

func TestBackendSpanCountsCallsWithinRequest(t *testing.T) {
	ctx, req := NewContext(context.Background(), "req-1")
	assert.Equal(t, int64(0), req.BackendCalls())

	reqID, span := BackendSpan(ctx)
	assert.Equal(t, "req-1", reqID)
	assert.Equal(t, "1", span)

	_, span = BackendSpan(ctx)
	assert.Equal(t, "2", span)
	assert.Equal(t, int64(2), req.BackendCalls())
	assert.Equal(t, "req-1", RequestID(ctx))
}

func TestBackendSpanWithoutRequest(t *testing.T) {
	reqID, span := BackendSpan(context.Background())
	assert.NotEmpty(t, reqID)
	assert.Equal(t, "1", span)
	assert.Equal(t, "", RequestID(context.Background()))
	assert.Nil(t, fromContext(context.Background()))
}
