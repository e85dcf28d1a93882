package http

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicAuthorization(t *testing.T) {
	auth := BasicAuthorization("Aladdin", "open sesame")
	require.Equal(t, "Basic QWxhZGRpbjpvcGVuIHNlc2FtZQ==", auth)

	user, password, err := ParseBasicAuthorization(auth)
	require.NoError(t, err)
	require.Equal(t, "Aladdin", user)
	require.Equal(t, "open sesame", password)

	user, password, err = ParseBasicAuthorization(BasicAuthorization("user", "pass:with:colons"))
	require.NoError(t, err)
	require.Equal(t, "user", user)
	require.Equal(t, "pass:with:colons", password)

	_, _, err = ParseBasicAuthorization("Bearer abc")
	require.Error(t, err)
	_, _, err = ParseBasicAuthorization("Basic !!!")
	require.Error(t, err)
}
