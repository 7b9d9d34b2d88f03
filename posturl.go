package newsdesk

import (
	"regexp"
	"strings"
)

// postURLPatterns are the LinkedIn path shapes the importer accepts.
var postURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:https?://)?(?:[a-z0-9-]+\.)*linkedin\.com/posts/\S+`),
	regexp.MustCompile(`(?i)^(?:https?://)?(?:[a-z0-9-]+\.)*linkedin\.com/pulse/\S+`),
	regexp.MustCompile(`(?i)^(?:https?://)?(?:[a-z0-9-]+\.)*linkedin\.com/feed/update/\S+`),
	regexp.MustCompile(`(?i)^(?:https?://)?(?:[a-z0-9-]+\.)*linkedin\.com/in/[^/\s]+/activity/\S*`),
	regexp.MustCompile(`(?i)^(?:https?://)?(?:[a-z0-9-]+\.)*linkedin\.com/detail/activity/\S*`),
}

// ValidatePostURL returns EINVALID unless raw is the URL of a LinkedIn
// post, article or activity.
func ValidatePostURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Errorf(EINVALID, "post URL required")
	}
	for _, re := range postURLPatterns {
		if re.MatchString(raw) {
			return nil
		}
	}
	return Errorf(EINVALID, "%q is not a LinkedIn post URL", raw)
}

// StripScheme removes a leading http:// or https:// from raw.
func StripScheme(raw string) string {
	raw = strings.TrimSpace(raw)
	lower := strings.ToLower(raw)
	for _, scheme := range []string{"https://", "http://"} {
		if strings.HasPrefix(lower, scheme) {
			return raw[len(scheme):]
		}
	}
	return raw
}
