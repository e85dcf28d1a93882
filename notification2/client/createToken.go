package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/plgd-dev/notification2/notification2/events"
	"github.com/plgd-dev/notification2/notification2/uri"
	pkgHttp "github.com/plgd-dev/notification2/pkg/net/http"
)

// CreateToken requests a token which authorizes a consumer of the subscription created by Initialize.
func (m *Manager) CreateToken(ctx context.Context) (string, error) {
	if m.subscription == nil {
		return "", ErrNotInitialized
	}
	payload, err := json.Marshal(events.TokenRequest{
		Subscriber:       m.subscriber,
		Subscription:     m.subscription.Subscription,
		ExpiresInMinutes: m.cfg.Token.ExpiresInMinutes,
	})
	if err != nil {
		return "", fmt.Errorf("cannot encode token request: %w", err)
	}
	status, body, err := m.do(ctx, request{
		op:     "create token",
		method: http.MethodPost,
		href:   uri.Token,
		body:   payload,
		header: map[string]string{
			pkgHttp.ContentTypeHeaderKey: pkgHttp.ApplicationJsonContentType,
			pkgHttp.AcceptHeaderKey:      pkgHttp.ApplicationJsonContentType,
		},
	})
	if err != nil {
		return "", fmt.Errorf("cannot create token: %w", err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("cannot create token: %w", &StatusError{Op: "create token", StatusCode: status, Body: body})
	}
	var resp events.TokenResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("cannot decode token: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("cannot create token: empty token in response")
	}
	return resp.Token, nil
}
