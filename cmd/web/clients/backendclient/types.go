package backendclient

// HomepagePostsResponse 는 홈페이지 블로그 포스트 엔드포인트의 응답 바디다.
// posts 키가 없거나 null 이면 Posts 는 nil 로 남아 계약 위반을 구분할 수 있다.
type HomepagePostsResponse struct {
	Posts *[]PostSummary `json:"posts"`
}

// PostSummary 는 backend 가 보내는 포스트 요약이다.
// backend payload 에서 null 인 필드는 zero value 로 디코딩된다.
type PostSummary struct {
	Title             string `json:"title"`
	Slug              string `json:"slug"`
	Author            string `json:"author"`
	Excerpt           string `json:"excerpt"`
	FeaturedImage     string `json:"featured_image"`
	FeaturedImageType string `json:"featured_image_type"`
	PublishOn         string `json:"publish_on"`
}
