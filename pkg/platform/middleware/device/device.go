// Package device turns raw User-Agent headers into the browser and operating
// system labels used in access logs.
package device

import "github.com/mssola/useragent"

const unknown = "unknown"

// Describe returns the browser name and OS of a User-Agent string. Empty or
// unrecognised agents yield "unknown" for the missing part.
func Describe(userAgent string) (browser, os string) {
	if userAgent == "" {
		return unknown, unknown
	}
	ua := useragent.New(userAgent)

	browser, _ = ua.Browser()
	if browser == "" {
		browser = unknown
	}
	os = ua.OSInfo().Name
	if os == "" {
		os = unknown
	}
	return browser, os
}
