package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeaturedImage(t *testing.T) {
	svc := newTestService(t, &fakeBackend{}, nil)

	testCases := []struct {
		name    string
		baseURL string
		src     string
		want    string
	}{
		{name: "empty uses default", src: "", want: "/images/default.jpg"},
		{name: "blank uses default", src: "   ", want: "/images/default.jpg"},
		{name: "relative without base", src: "/uploads/a.jpg", want: "/uploads/a.jpg"},
		{name: "relative with base", baseURL: "https://cdn.test/", src: "/uploads/a.jpg", want: "https://cdn.test/uploads/a.jpg"},
		{name: "absolute kept", baseURL: "https://cdn.test", src: "https://img.test/a.jpg", want: "https://img.test/a.jpg"},
		{name: "protocol relative kept", baseURL: "https://cdn.test", src: "//img.test/a.jpg", want: "//img.test/a.jpg"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			svc.cfg.ImageBaseURL = testCase.baseURL
			assert.Equal(t, testCase.want, svc.featuredImage(testCase.src))
		})
	}
}

func TestFeaturedImageType(t *testing.T) {
	svc := newTestService(t, &fakeBackend{}, nil)

	assert.Equal(t, "image", svc.featuredImageType(""))
	assert.Equal(t, "video", svc.featuredImageType(" Video "))
	assert.Equal(t, "external_file", svc.featuredImageType("external_file"))
}

func TestFormatPublishOn(t *testing.T) {
	svc := newTestService(t, &fakeBackend{}, nil)

	testCases := []struct {
		raw          string
		wantHuman    string
		wantDatetime string
	}{
		{raw: "2024-01-01", wantHuman: "January 1st, 2024", wantDatetime: "2024-01-01"},
		{raw: "2023-02-22", wantHuman: "February 22nd, 2023", wantDatetime: "2023-02-22"},
		{raw: "2023-11-13 00:00:00", wantHuman: "November 13th, 2023", wantDatetime: "2023-11-13"},
		{raw: "2024-05-03 14:30:00", wantHuman: "May 3rd, 2024", wantDatetime: "2024-05-03T14:30:00Z"},
		{raw: "2024-05-03T14:30:00Z", wantHuman: "May 3rd, 2024", wantDatetime: "2024-05-03T14:30:00Z"},
		{raw: "2024-05-03T14:30:00.750Z", wantHuman: "May 3rd, 2024", wantDatetime: "2024-05-03T14:30:00.75Z"},
		{raw: "", wantHuman: "", wantDatetime: ""},
		{raw: "not a date", wantHuman: "not a date", wantDatetime: "not a date"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.raw, func(t *testing.T) {
			human, datetime := svc.formatPublishOn(testCase.raw)
			assert.Equal(t, testCase.wantHuman, human)
			assert.Equal(t, testCase.wantDatetime, datetime)
		})
	}
}

func TestFormatPublishOnUsesConfiguredTimezone(t *testing.T) {
	cfg := testFrontendConfig()
	cfg.Timezone = "America/Toronto"
	svc, err := NewHomepageService(&fakeBackend{}, cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	human, datetime := svc.formatPublishOn("2024-01-01T03:00:00Z")
	assert.Equal(t, "December 31st, 2023", human)
	assert.Equal(t, "2023-12-31T22:00:00-05:00", datetime)
}

func TestSocialHandle(t *testing.T) {
	assert.Equal(t, "", socialHandle(""))
	assert.Equal(t, "@name", socialHandle("name"))
	assert.Equal(t, "@name", socialHandle("@name"))
	assert.Equal(t, "@name", socialHandle(" @@name "))
}
