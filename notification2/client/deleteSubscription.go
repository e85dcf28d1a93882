package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/plgd-dev/notification2/notification2/uri"
)

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

func (m *Manager) deleteSubscription(ctx context.Context, subscriptionID string) error {
	path, err := uri.SubscriptionPath(subscriptionID)
	if err != nil {
		return err
	}
	m.logger.Infof("deleting %v", path)
	status, body, err := m.do(ctx, request{
		op:     "delete subscription",
		method: http.MethodDelete,
		href:   path,
	})
	if err != nil {
		return err
	}
	if !isSuccess(status) {
		return &StatusError{Op: "delete subscription", StatusCode: status, Body: body}
	}
	return nil
}

// Unsubscribe deletes the subscription created by Initialize. A subscription
// that is already gone on the platform is not an error.
func (m *Manager) Unsubscribe(ctx context.Context) error {
	if m.subscription == nil {
		return nil
	}
	err := m.deleteSubscription(ctx, m.subscription.ID)
	var statusErr *StatusError
	if err != nil && !(errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound) {
		return fmt.Errorf("cannot unsubscribe %v: %w", m.subscription.ID, err)
	}
	if err != nil {
		m.logger.Debugf("subscription %v was already deleted", m.subscription.ID)
	}
	m.subscription = nil
	m.state = State_Unconfigured
	return nil
}
