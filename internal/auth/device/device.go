// Package device derives human-readable device names from User-Agent strings
// for audit enrichment.
package device

import (
	"strings"

	"github.com/mssola/useragent"
)

// ParseUserAgent returns a display name like "Chrome on Mac OS X". Unknown or
// empty agents yield a stable fallback rather than raw header text.
func ParseUserAgent(ua string) string {
	if strings.TrimSpace(ua) == "" {
		return "Unknown Device"
	}

	parsed := useragent.New(ua)
	browser, _ := parsed.Browser()
	os := parsed.OSInfo().Name
	if os == "" {
		os = parsed.Platform()
	}

	if browser == "" {
		browser = "Unknown Browser"
	}
	if os == "" {
		os = "Unknown OS"
	}
	return browser + " on " + os
}
