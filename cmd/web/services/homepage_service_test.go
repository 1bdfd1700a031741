package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-frontend/cmd/web/clients/backendclient"
	"blog-frontend/cmd/web/dto"
	"blog-frontend/config"
)

type fakeBackend struct {
	body        string
	messages    backendclient.MessageBag
	endpointErr error

	gotPath   string
	gotMethod string
}

func (f *fakeBackend) EndpointPath(controller string) (string, error) {
	if f.endpointErr != nil {
		return "", f.endpointErr
	}
	return "/api/v1/" + strings.ToLower(controller), nil
}

func (f *fakeBackend) SendRequest(_ context.Context, endpointPath, method string) (*http.Response, backendclient.MessageBag) {
	f.gotPath = endpointPath
	f.gotMethod = method
	if f.messages.Any() {
		return nil, f.messages
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(f.body)),
	}, backendclient.MessageBag{}
}

type fixedQuestion struct {
	values []int
	calls  int
}

func (q *fixedQuestion) RandomNumber() int {
	v := q.values[q.calls%len(q.values)]
	q.calls++
	return v
}

func testFrontendConfig() config.FrontendConfig {
	return config.FrontendConfig{
		AppName:                  "Test Blog",
		ViewPath:                 "blogfrontend",
		Timezone:                 "UTC",
		DefaultFeaturedImage:     "/images/default.jpg",
		DefaultFeaturedImageType: "image",
		SocialMediaDefaultImage:  "/images/social.jpg",
		SocialMediaSite:          "testsite",
		SocialMediaCreator:       "@author",
		Copyright:                "Test Corp",
	}
}

func newTestService(t *testing.T, backend BackendRequester, q SecurityQuestionProvider) *HomepageService {
	t.Helper()
	svc, err := NewHomepageService(backend, testFrontendConfig(), q)
	require.NoError(t, err)
	return svc
}

func TestBuildExampleFromEmptyImageFields(t *testing.T) {
	backend := &fakeBackend{body: `{"posts":[{"title":"A","slug":"a","author":"X","excerpt":"e","featured_image":"","featured_image_type":"","publish_on":"2024-01-01"}]}`}
	svc := newTestService(t, backend, nil)

	view, err := svc.Build(context.Background(), "http://example.test/")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, backend.gotMethod)
	assert.Equal(t, "/api/v1/displayhomepageblogpostscontroller", backend.gotPath)

	require.Equal(t, dto.PostsSuccess, view.Posts.Status)
	require.Len(t, view.Posts.Items, 1)
	assert.Equal(t, 1, view.NumberOfPosts)

	p := view.Posts.Items[0]
	assert.Equal(t, "A", p.Title)
	assert.Equal(t, "a", p.Slug)
	assert.Equal(t, "X", p.Author)
	assert.Equal(t, "e", p.Excerpt)
	assert.Equal(t, "/images/default.jpg", p.FeaturedImage)
	assert.Equal(t, "image", p.FeaturedImageType)
	assert.Equal(t, "January 1st, 2024", p.PublishOn)
	assert.Equal(t, "2024-01-01", p.Datetime)
}

func TestBuildKeepsBackendOrderAndCount(t *testing.T) {
	backend := &fakeBackend{body: `{"posts":[
		{"title":"third","publish_on":"2024-03-03"},
		{"title":"first","publish_on":"2024-01-01"},
		{"title":"first","publish_on":"2024-01-01"}
	]}`}
	svc := newTestService(t, backend, nil)

	view, err := svc.Build(context.Background(), "http://example.test/")
	require.NoError(t, err)

	require.Len(t, view.Posts.Items, 3)
	assert.Equal(t, 3, view.NumberOfPosts)
	assert.Equal(t, "third", view.Posts.Items[0].Title)
	assert.Equal(t, "first", view.Posts.Items[1].Title)
	assert.Equal(t, "first", view.Posts.Items[2].Title)
}

func TestBuildZeroPostsIsSuccessNotDegraded(t *testing.T) {
	svc := newTestService(t, &fakeBackend{body: `{"posts":[]}`}, nil)

	view, err := svc.Build(context.Background(), "http://example.test/")
	require.NoError(t, err)

	assert.Equal(t, dto.PostsSuccess, view.Posts.Status)
	assert.False(t, view.Posts.Degraded())
	assert.NotNil(t, view.Posts.Items)
	assert.Empty(t, view.Posts.Items)
	assert.Equal(t, 0, view.NumberOfPosts)
}

func TestBuildDegradesOnBackendFailure(t *testing.T) {
	messages := backendclient.MessageBag{}
	messages.Add(backendclient.MessageKeyRequest, "connection refused")
	backend := &fakeBackend{
		body:     `{"posts":[{"title":"ignored"}]}`,
		messages: messages,
	}
	svc := newTestService(t, backend, nil)

	view, err := svc.Build(context.Background(), "http://example.test/")
	require.NoError(t, err)

	assert.True(t, view.Posts.Degraded())
	assert.Empty(t, view.Posts.Items)
	assert.Equal(t, 0, view.NumberOfPosts)
	assert.Equal(t, []string{"connection refused"}, view.Posts.Messages)
	assert.Equal(t, "Test Corp", view.Copyright)
	assert.Equal(t, "http://example.test/", view.SocialMediaMetaTags.URL)
}

func TestBuildMalformedJSONReturnsError(t *testing.T) {
	svc := newTestService(t, &fakeBackend{body: `{"posts":[`}, nil)

	_, err := svc.Build(context.Background(), "http://example.test/")
	assert.Error(t, err)
}

func TestBuildMissingPostsArrayReturnsError(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "null body", body: `null`},
		{name: "empty object", body: `{}`},
		{name: "null posts", body: `{"posts":null}`},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			svc := newTestService(t, &fakeBackend{body: testCase.body}, nil)

			_, err := svc.Build(context.Background(), "http://example.test/")
			assert.ErrorIs(t, err, ErrMissingPosts)
		})
	}

	t.Run("empty array is still a success", func(t *testing.T) {
		svc := newTestService(t, &fakeBackend{body: `{"posts":[]}`}, nil)

		view, err := svc.Build(context.Background(), "http://example.test/")
		require.NoError(t, err)
		assert.Equal(t, dto.PostsSuccess, view.Posts.Status)
	})
}

func TestBuildEndpointResolutionError(t *testing.T) {
	sentinel := errors.New("no endpoint")
	svc := newTestService(t, &fakeBackend{endpointErr: sentinel}, nil)

	_, err := svc.Build(context.Background(), "http://example.test/")
	assert.ErrorIs(t, err, sentinel)
}

func TestBuildSocialMediaMetaTags(t *testing.T) {
	svc := newTestService(t, &fakeBackend{body: `{"posts":[]}`}, nil)

	view, err := svc.Build(context.Background(), "https://blog.example.test/?utm_source=x&page=2")
	require.NoError(t, err)

	tags := view.SocialMediaMetaTags
	assert.Equal(t, "summary_large_image", tags.TwitterCard)
	assert.Equal(t, "website", tags.OGType)
	assert.Equal(t, "Test Blog", tags.Title)
	assert.Equal(t, "Test Blog home page", tags.Description)
	assert.Equal(t, "https://blog.example.test/?utm_source=x&page=2", tags.URL)
	assert.Equal(t, "@testsite", tags.Site)
	assert.Equal(t, "@author", tags.Creator)
	assert.Equal(t, "/images/social.jpg", tags.Image)
	assert.Equal(t, "/images/social.jpg", view.FeaturedImageSocialMediaMetaTag)
}

func TestBuildSecurityQuestion(t *testing.T) {
	t.Run("absent provider", func(t *testing.T) {
		svc := newTestService(t, &fakeBackend{body: `{"posts":[]}`}, nil)
		view, err := svc.Build(context.Background(), "http://example.test/")
		require.NoError(t, err)
		assert.Nil(t, view.Question)
	})

	t.Run("injected provider", func(t *testing.T) {
		q := &fixedQuestion{values: []int{4, 7}}
		svc := newTestService(t, &fakeBackend{body: `{"posts":[]}`}, q)
		view, err := svc.Build(context.Background(), "http://example.test/")
		require.NoError(t, err)
		require.NotNil(t, view.Question)
		assert.Equal(t, 4, view.Question.FirstNumber)
		assert.Equal(t, 7, view.Question.SecondNumber)
		assert.Equal(t, 2, q.calls)
	})
}

func TestNewHomepageServiceRejectsBadTimezone(t *testing.T) {
	cfg := testFrontendConfig()
	cfg.Timezone = "Nowhere/Land"

	_, err := NewHomepageService(&fakeBackend{}, cfg, nil)
	assert.Error(t, err)
}
