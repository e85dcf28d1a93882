package http

import (
	"regexp"
	"strings"
)

var slashes = regexp.MustCompile(`\/+`)

// CanonicalHref always lead by "/"
func CanonicalHref(href string) string {
	p := slashes.ReplaceAllString(href, "/")
	p = strings.TrimLeft(p, "/")
	p = strings.TrimRight(p, "/")

	return "/" + p
}

// JoinURL appends the canonical form of href to the base URL without its trailing slashes.
func JoinURL(base, href string) string {
	return strings.TrimRight(base, "/") + CanonicalHref(href)
}
