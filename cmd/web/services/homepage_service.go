package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"blog-frontend/cmd/internal/logger"
	"blog-frontend/cmd/web/clients/backendclient"
	"blog-frontend/cmd/web/dto"
	"blog-frontend/cmd/web/trace"
	"blog-frontend/config"
)

// ErrMissingPosts 는 2xx 응답 바디에 posts 배열이 없을 때(null, {}, {"posts":null}) 반환된다.
var ErrMissingPosts = errors.New("decode homepage posts: missing posts array")

// BackendRequester 는 홈페이지가 사용하는 backendclient.Client 의 메서드 집합이다.
type BackendRequester interface {
	EndpointPath(controller string) (string, error)
	SendRequest(ctx context.Context, endpointPath, method string) (*http.Response, backendclient.MessageBag)
}

// SecurityQuestionProvider 는 contact form 보안 질문에 쓰일 난수를 제공한다.
type SecurityQuestionProvider interface {
	RandomNumber() int
}

// HomepageService 는 홈페이지 view-model 을 만든다.
//
// - backend: admin backend 에서 홈페이지용 포스트 목록을 가져온다.
// - question: nil 이면 보안 질문 없이 렌더링한다.
type HomepageService struct {
	backend  BackendRequester
	cfg      config.FrontendConfig
	location *time.Location
	question SecurityQuestionProvider
}

// NewHomepageService 는 설정된 timezone 을 읽어 서비스를 생성한다. question 은 nil 이어도 된다.
func NewHomepageService(backend BackendRequester, cfg config.FrontendConfig, question SecurityQuestionProvider) (*HomepageService, error) {
	tz := cfg.Timezone
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tz, err)
	}
	return &HomepageService{
		backend:  backend,
		cfg:      cfg,
		location: loc,
		question: question,
	}, nil
}

// Build 는 홈페이지 포스트를 가져와 requestURL(쿼리를 포함한 inbound 요청의 전체 URL)에 대한
// view-model 을 조립한다.
//
// backend 호출 실패는 에러가 아니다. 결과는 degraded 상태로 그대로 렌더링된다.
// 바디가 올바른 JSON 이 아니거나 posts 배열이 없으면 에러를 반환한다.
func (s *HomepageService) Build(ctx context.Context, requestURL string) (dto.HomepageView, error) {
	posts, err := s.fetchPosts(ctx)
	if err != nil {
		return dto.HomepageView{}, err
	}

	numberOfPosts := 0
	if !posts.Degraded() {
		numberOfPosts = len(posts.Items)
	}

	return dto.HomepageView{
		Posts:                           posts,
		NumberOfPosts:                   numberOfPosts,
		Copyright:                       s.cfg.Copyright,
		SocialMediaMetaTags:             s.socialMediaMetaTags(requestURL),
		FeaturedImageSocialMediaMetaTag: s.cfg.SocialMediaDefaultImage,
		Question:                        s.securityQuestion(),
	}, nil
}

func (s *HomepageService) fetchPosts(ctx context.Context) (dto.PostsResult, error) {
	endpointPath, err := s.backend.EndpointPath(backendclient.HomepageBlogPostsController)
	if err != nil {
		return dto.PostsResult{}, err
	}

	resp, messages := s.backend.SendRequest(ctx, endpointPath, http.MethodGet)
	if messages.Any() || resp == nil {
		if resp != nil {
			resp.Body.Close()
		}
		logger.WarnWithFields("homepage posts unavailable, rendering without posts", logger.Fields{
			"endpoint":   endpointPath,
			"messages":   messages.All(),
			"request_id": trace.RequestID(ctx),
		})
		return dto.PostsResult{
			Status:   dto.PostsDegraded,
			Items:    []dto.DisplayPost{},
			Messages: messages.All(),
		}, nil
	}
	defer resp.Body.Close()

	var body backendclient.HomepagePostsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return dto.PostsResult{}, fmt.Errorf("decode homepage posts: %w", err)
	}
	if body.Posts == nil {
		return dto.PostsResult{}, ErrMissingPosts
	}

	items := make([]dto.DisplayPost, 0, len(*body.Posts))
	for _, p := range *body.Posts {
		items = append(items, s.mapPost(p))
	}
	return dto.PostsResult{Status: dto.PostsSuccess, Items: items}, nil
}

// mapPost 는 backend PostSummary 를 DisplayPost 로 변환한다.
func (s *HomepageService) mapPost(p backendclient.PostSummary) dto.DisplayPost {
	publishOn, datetime := s.formatPublishOn(p.PublishOn)
	return dto.DisplayPost{
		Title:             p.Title,
		Slug:              p.Slug,
		Author:            p.Author,
		Excerpt:           p.Excerpt,
		FeaturedImage:     s.featuredImage(p.FeaturedImage),
		FeaturedImageType: s.featuredImageType(p.FeaturedImageType),
		PublishOn:         publishOn,
		Datetime:          datetime,
	}
}

func (s *HomepageService) socialMediaMetaTags(requestURL string) dto.SocialMediaMetaTags {
	return dto.SocialMediaMetaTags{
		TwitterCard: "summary_large_image",
		OGType:      "website",
		Title:       s.cfg.AppName,
		Description: s.cfg.AppName + " home page",
		URL:         requestURL,
		Site:        socialHandle(s.cfg.SocialMediaSite),
		Creator:     socialHandle(s.cfg.SocialMediaCreator),
		Image:       s.cfg.SocialMediaDefaultImage,
	}
}

func (s *HomepageService) securityQuestion() *dto.SecurityQuestion {
	if s.question == nil {
		return nil
	}
	return &dto.SecurityQuestion{
		FirstNumber:  s.question.RandomNumber(),
		SecondNumber: s.question.RandomNumber(),
	}
}
