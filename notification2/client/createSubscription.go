package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/plgd-dev/notification2/notification2/events"
	"github.com/plgd-dev/notification2/notification2/uri"
	pkgHttp "github.com/plgd-dev/notification2/pkg/net/http"
	"github.com/tidwall/sjson"
)

const SubscriptionContentType = "application/vnd.com.nsn.cumulocity.subscription+json"

// createPayload builds the body of the create request. The type filter and the
// source are present only when they select something narrower than all.
func createPayload(d Descriptor) ([]byte, error) {
	payload := []byte(`{}`)
	var err error
	set := func(path string, value interface{}) {
		if err != nil {
			return
		}
		payload, err = sjson.SetBytes(payload, path, value)
	}
	set("context", string(d.Context))
	set("subscription", d.Name)
	set("subscriptionFilter.apis", []string{string(d.EventType)})
	if d.TypeFilter != events.AllTypes {
		set("subscriptionFilter.typeFilter", d.TypeFilter)
	}
	if d.DeviceID != events.AllDevices {
		set("source.id", d.DeviceID)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot build payload: %w", err)
	}
	return payload, nil
}

func (m *Manager) createSubscription(ctx context.Context, d Descriptor) (events.Subscription, error) {
	payload, err := createPayload(d)
	if err != nil {
		return events.Subscription{}, err
	}
	m.logger.Debugf("subscription payload %s", payload)
	status, body, err := m.do(ctx, request{
		op:     "create subscription",
		method: http.MethodPost,
		href:   uri.Subscriptions,
		body:   payload,
		header: map[string]string{
			pkgHttp.ContentTypeHeaderKey: pkgHttp.ApplicationJsonContentType,
			pkgHttp.AcceptHeaderKey:      SubscriptionContentType,
		},
	})
	if err != nil {
		return events.Subscription{}, err
	}
	if status != http.StatusCreated {
		return events.Subscription{}, &CreateFailedError{StatusCode: status, Payload: payload}
	}
	var sub events.Subscription
	if err = json.Unmarshal(body, &sub); err != nil {
		return events.Subscription{}, fmt.Errorf("cannot decode created subscription: %w", err)
	}
	return sub, nil
}
