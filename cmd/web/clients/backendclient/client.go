package backendclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"

	"blog-frontend/cmd/web/httpclient"
	"blog-frontend/config"
)

// Client는 admin backend(콘텐츠 API)를 호출하는 얇은 클라이언트다.
//
// - 컨트롤러 이름으로 엔드포인트 경로를 찾고, 요청 실패는 error 대신 MessageBag 으로 돌려준다.
// - 응답 바디 해석(JSON 디코딩)은 호출 측 서비스가 담당한다.
//
// baseURL 예: http://admin_backend:8000
type Client struct {
	base       *httpclient.BaseClient
	pathPrefix string
	endpoints  map[string]string
}

// HomepageBlogPostsController 는 홈페이지 블로그 포스트 목록을 담당하는 컨트롤러 식별자다.
const HomepageBlogPostsController = "DisplayHomepageBlogPostsController"

// MessageBag 키.
const (
	MessageKeyRequest = "RequestException"
	MessageKeyStatus  = "StatusCode"
)

var ErrUnknownEndpoint = errors.New("unknown backend endpoint")

// defaultEndpoints 는 컨트롤러 이름 -> backend 엔드포인트 매핑의 기본값이다.
// config.yaml 의 backend.endpoints 로 덮어쓸 수 있다.
var defaultEndpoints = map[string]string{
	HomepageBlogPostsController: "homepageblogposts",
}

func New(cfg config.BackendConfig) *Client {
	endpoints := make(map[string]string, len(defaultEndpoints)+len(cfg.Endpoints))
	for k, v := range defaultEndpoints {
		endpoints[k] = v
	}
	for k, v := range cfg.Endpoints {
		endpoints[k] = v
	}

	return &Client{
		base:       httpclient.NewBaseClient(cfg.BaseURL, httpclient.Config{Timeout: cfg.Timeout}),
		pathPrefix: cfg.APIPathPrefix,
		endpoints:  endpoints,
	}
}

// EndpointPath 는 컨트롤러 이름에 대응하는 backend 경로(prefix 포함)를 반환한다.
func (c *Client) EndpointPath(controller string) (string, error) {
	endpoint, ok := c.endpoints[controller]
	if !ok || strings.TrimSpace(endpoint) == "" {
		return "", fmt.Errorf("%w: %s", ErrUnknownEndpoint, controller)
	}
	return path.Join("/", c.pathPrefix, endpoint), nil
}

// SendRequest 는 backend 로 요청을 보낸다.
// 전송 실패나 2xx 가 아닌 응답은 MessageBag 에 기록되고 응답은 nil 이 된다.
// 성공 시 호출 측이 resp.Body 를 닫아야 한다.
func (c *Client) SendRequest(ctx context.Context, endpointPath, method string) (*http.Response, MessageBag) {
	messages := MessageBag{}

	req, err := c.base.NewRequest(ctx, method, endpointPath, nil, nil)
	if err != nil {
		messages.Add(MessageKeyRequest, err.Error())
		return nil, messages
	}

	resp, err := c.base.Do(req)
	if err != nil {
		messages.Add(MessageKeyRequest, err.Error())
		return nil, messages
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		messages.Add(MessageKeyStatus, strconv.Itoa(resp.StatusCode))
		messages.Add(MessageKeyRequest, fmt.Sprintf("backend %s %s: status=%d body=%s", method, endpointPath, resp.StatusCode, string(body)))
		return nil, messages
	}
	return resp, messages
}

// Health 는 backend 의 /health 를 호출한다.
func (c *Client) Health(ctx context.Context) error {
	req, err := c.base.NewRequest(ctx, http.MethodGet, "/health", nil, nil)
	if err != nil {
		return err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("backend Health: status=%d body=%s", resp.StatusCode, string(body))
	}
	return nil
}
