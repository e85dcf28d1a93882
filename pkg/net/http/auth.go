package http

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const basicKey = "Basic"

// BasicAuthorization returns the value of the Authorization header for HTTP basic authentication.
func BasicAuthorization(user, password string) string {
	return basicKey + " " + base64.StdEncoding.EncodeToString([]byte(user+":"+password))
}

// ParseBasicAuthorization is the inverse of BasicAuthorization.
func ParseBasicAuthorization(auth string) (user, password string, err error) {
	if !strings.HasPrefix(strings.ToLower(auth), strings.ToLower(basicKey)+" ") {
		return "", "", fmt.Errorf("cannot parse basic authorization: prefix '%v ' not found", basicKey)
	}
	raw, err := base64.StdEncoding.DecodeString(auth[len(basicKey)+1:])
	if err != nil {
		return "", "", fmt.Errorf("cannot parse basic authorization: %w", err)
	}
	user, password, ok := strings.Cut(string(raw), ":")
	if !ok {
		return "", "", fmt.Errorf("cannot parse basic authorization: separator ':' not found")
	}
	return user, password, nil
}
