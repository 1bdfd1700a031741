package dto

// PostsStatus 는 포스트 목록이 어떻게 만들어졌는지 표시한다.
type PostsStatus string

const (
	PostsSuccess  PostsStatus = "success"
	PostsDegraded PostsStatus = "degraded"
)

// DisplayPost 는 홈페이지 템플릿용으로 다듬은 backend 포스트다.
// PublishOn 과 Datetime 은 같은 publish_on 값을 두 가지로 표현한 것이다.
type DisplayPost struct {
	Title             string `json:"title"`
	Slug              string `json:"slug"`
	Author            string `json:"author"`
	Excerpt           string `json:"excerpt"`
	FeaturedImage     string `json:"featured_image"`
	FeaturedImageType string `json:"featured_image_type"`
	PublishOn         string `json:"publish_on"`
	Datetime          string `json:"datetime"`
}

// PostsResult 는 "backend 호출 실패"와 "포스트 0개"를 구분하기 위한 결과 타입이다.
// Items 는 항상 non-nil 이고, Messages 는 Status 가 PostsDegraded 일 때만 채워진다.
type PostsResult struct {
	Status   PostsStatus   `json:"status" example:"success"`
	Items    []DisplayPost `json:"items"`
	Messages []string      `json:"messages,omitempty"`
}

func (r PostsResult) Degraded() bool {
	return r.Status == PostsDegraded
}

// SocialMediaMetaTags 는 페이지 head 의 twitter:*, og:* meta 태그 값이다.
type SocialMediaMetaTags struct {
	TwitterCard string `json:"twitter_card" example:"summary_large_image"`
	OGType      string `json:"og_type" example:"website"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Site        string `json:"site"`
	Creator     string `json:"creator"`
	Image       string `json:"image"`
}

// SecurityQuestion 은 contact form 덧셈 질문의 두 숫자다.
type SecurityQuestion struct {
	FirstNumber  int `json:"first_number"`
	SecondNumber int `json:"second_number"`
}

// HomepageView 는 홈페이지 템플릿에 전달되는 view-model 이다.
// JSON 엔드포인트도 같은 값을 내보내므로 JSON 키는 템플릿 키와 같게 둔다.
type HomepageView struct {
	Posts                           PostsResult         `json:"posts"`
	NumberOfPosts                   int                 `json:"numberOfPosts"`
	Copyright                       string              `json:"copyright"`
	SocialMediaMetaTags             SocialMediaMetaTags `json:"socialMediaMetaTags"`
	FeaturedImageSocialMediaMetaTag string              `json:"featured_image_social_media_meta_tag"`
	Question                        *SecurityQuestion   `json:"question"`
}
