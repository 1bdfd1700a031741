package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

// DefaultCopyrightEnv 는 footer 저작권 문구를 읽어오는 기본 환경변수 이름이다.
const DefaultCopyrightEnv = "LASALLE_COPYRIGHT_IN_FOOTER"

type AppConfig struct {
	Logging          LoggingConfig          `yaml:"logging"`
	Server           ServerConfig           `yaml:"server"`
	Backend          BackendConfig          `yaml:"backend"`
	Frontend         FrontendConfig         `yaml:"frontend"`
	SecurityQuestion SecurityQuestionConfig `yaml:"security_question"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// ServerConfig 는 inbound HTTP 서버 설정이다.
type ServerConfig struct {
	Addr string `yaml:"addr"`
	// SSL 이 true 이면 애플리케이션이 직접 TLS 를 종료한다고 보고 HSTS/redirect 헤더를 추가한다.
	// nginx 같은 리버스 프록시 뒤에서 동작할 때는 false 로 둔다.
	SSL                bool     `yaml:"ssl"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	// TrustedProxies 에 속한 peer 의 X-Forwarded-* 헤더만 따른다. (IP 또는 CIDR, 비어 있으면 신뢰 안 함)
	TrustedProxies []string `yaml:"trusted_proxies"`
}

// BackendConfig 는 admin backend(콘텐츠 API) 호출 설정이다.
type BackendConfig struct {
	BaseURL       string        `yaml:"base_url"`
	APIPathPrefix string        `yaml:"api_path_prefix"`
	Timeout       time.Duration `yaml:"timeout"`
	// Endpoints 는 컨트롤러 이름 -> 엔드포인트 경로 매핑을 덮어쓴다.
	Endpoints map[string]string `yaml:"endpoints"`
}

// FrontendConfig 는 홈페이지 view-model 생성에 필요한 설정이다.
type FrontendConfig struct {
	AppName                  string `yaml:"app_name"`
	ViewPath                 string `yaml:"view_path"`
	TemplateDir              string `yaml:"template_dir"`
	MinifyHTML               bool   `yaml:"minify_html"`
	Timezone                 string `yaml:"timezone"`
	ImageBaseURL             string `yaml:"image_base_url"`
	DefaultFeaturedImage     string `yaml:"default_featured_image"`
	DefaultFeaturedImageType string `yaml:"default_featured_image_type"`
	SocialMediaDefaultImage  string `yaml:"social_media_meta_tag_default_image"`
	SocialMediaSite          string `yaml:"social_media_meta_tag_site"`
	SocialMediaCreator       string `yaml:"social_media_meta_tag_creator"`
	CopyrightEnv             string `yaml:"copyright_env"`

	// Copyright 는 config.yaml 이 아니라 CopyrightEnv 환경변수에서 채워진다.
	Copyright string `yaml:"-"`
}

// SecurityQuestionConfig 는 contact form 보안 질문 helper 설정이다.
type SecurityQuestionConfig struct {
	Enabled bool `yaml:"enabled"`
	Min     int  `yaml:"min"`
	Max     int  `yaml:"max"`
}

// Load 는 dir 의 .env 와 config.yaml 을 읽어 기본값을 채운 AppConfig 를 반환한다.
// .env 는 없어도 되지만 config.yaml 은 반드시 있어야 한다.
func Load(dir string) (*AppConfig, error) {
	// load environment variables
	_ = godotenv.Load(filepath.Join(dir, ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(dir, CONFIG_FILE))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", CONFIG_FILE, err)
	}

	var c AppConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", CONFIG_FILE, err)
	}
	c.applyDefaults()
	c.Frontend.Copyright = os.Getenv(c.Frontend.CopyrightEnv)

	if _, err := time.LoadLocation(c.Frontend.Timezone); err != nil {
		return nil, fmt.Errorf("invalid frontend.timezone %q: %w", c.Frontend.Timezone, err)
	}
	if c.SecurityQuestion.Enabled && c.SecurityQuestion.Min > c.SecurityQuestion.Max {
		return nil, fmt.Errorf("security_question.min (%d) must not exceed max (%d)", c.SecurityQuestion.Min, c.SecurityQuestion.Max)
	}
	return &c, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = "http://admin_backend:8000"
	}
	if c.Backend.APIPathPrefix == "" {
		c.Backend.APIPathPrefix = "/api/v1"
	}
	if c.Backend.Timeout <= 0 {
		c.Backend.Timeout = 10 * time.Second
	}

	f := &c.Frontend
	if f.AppName == "" {
		f.AppName = "LaSalle Blog"
	}
	if f.ViewPath == "" {
		f.ViewPath = "blogfrontend"
	}
	f.ViewPath = strings.Trim(f.ViewPath, "./")
	if f.Timezone == "" {
		f.Timezone = "UTC"
	}
	if f.DefaultFeaturedImage == "" {
		f.DefaultFeaturedImage = "/images/default_featured_image.jpg"
	}
	if f.DefaultFeaturedImageType == "" {
		f.DefaultFeaturedImageType = "image"
	}
	if f.SocialMediaDefaultImage == "" {
		f.SocialMediaDefaultImage = f.DefaultFeaturedImage
	}
	if f.CopyrightEnv == "" {
		f.CopyrightEnv = DefaultCopyrightEnv
	}

	if c.SecurityQuestion.Min == 0 && c.SecurityQuestion.Max == 0 {
		c.SecurityQuestion.Min = 1
		c.SecurityQuestion.Max = 10
	}
}

// GetBasePath 는 작업 디렉터리부터 상위로 올라가며 config.yaml 이 있는 디렉터리를 찾는다.
func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
