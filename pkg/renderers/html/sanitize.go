package html

import (
	"net/url"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-devme/pkg/document"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// SanitizeText strips every tag from user text and returns escaped output.
func SanitizeText(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	return textSanitizer().Sanitize(raw)
}

// SafeURL returns raw when it is an absolute http(s) URL and "" otherwise.
func SafeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	u, err := url.Parse(trimmed)
	if err != nil || u.Host == "" {
		return ""
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return u.String()
	default:
		return ""
	}
}

// SafeImage returns raw when it is a base64 image data URI and "" otherwise.
func SafeImage(raw string) string {
	if !document.IsImageDataURI(raw) {
		return ""
	}
	return raw
}

func filterSanitize(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsSafeValue(SanitizeText(in.String())), nil
}

func filterSafeURL(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(SafeURL(in.String())), nil
}

func filterSafeImage(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(SafeImage(in.String())), nil
}

func filters() map[string]pongo2.FilterFunction {
	return map[string]pongo2.FilterFunction{
		"sanitize":   filterSanitize,
		"safe_url":   filterSafeURL,
		"safe_image": filterSafeImage,
	}
}
