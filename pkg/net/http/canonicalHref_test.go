package http_test

import (
	"testing"

	pkgHttp "github.com/plgd-dev/notification2/pkg/net/http"
	"github.com/stretchr/testify/require"
)

func TestCanonicalHref(t *testing.T) {
	tests := []struct {
		href string
		want string
	}{
		{href: "", want: "/"},
		{href: "a", want: "/a"},
		{href: "//a//b/", want: "/a/b"},
		{href: "/notification2/subscriptions", want: "/notification2/subscriptions"},
	}
	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			require.Equal(t, tt.want, pkgHttp.CanonicalHref(tt.href))
		})
	}
}

func TestJoinURL(t *testing.T) {
	require.Equal(t, "https://tenant.example.com/notification2/token", pkgHttp.JoinURL("https://tenant.example.com/", "notification2/token"))
	require.Equal(t, "http://127.0.0.1:8080/a/b", pkgHttp.JoinURL("http://127.0.0.1:8080", "/a//b"))
}
