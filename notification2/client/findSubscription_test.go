package client

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSubscriptionsPage(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    subscriptionsPage
		wantErr bool
	}{
		{
			name: "found with string id",
			body: `{"subscriptions":[{"id":"1","subscription":"a"},{"id":"2","subscription":"b"}],"statistics":{"totalPages":3}}`,
			want: subscriptionsPage{
				found:      foundSubscription{ID: "2", Raw: `{"id":"2","subscription":"b"}`},
				ok:         true,
				totalPages: 3,
			},
		},
		{
			name: "found with numeric id",
			body: `{"subscriptions":[{"id":42,"subscription":"b"}],"statistics":{"totalPages":1}}`,
			want: subscriptionsPage{
				found:      foundSubscription{ID: "42", Raw: `{"id":42,"subscription":"b"}`},
				ok:         true,
				totalPages: 1,
			},
		},
		{
			name: "first match wins",
			body: `{"subscriptions":[{"id":"1","subscription":"b"},{"id":"2","subscription":"b"}]}`,
			want: subscriptionsPage{
				found:      foundSubscription{ID: "1", Raw: `{"id":"1","subscription":"b"}`},
				ok:         true,
				totalPages: 1,
			},
		},
		{
			name: "name must match exactly",
			body: `{"subscriptions":[{"id":"1","subscription":"bb"},{"id":"2","subscription":"B"}],"statistics":{"totalPages":2}}`,
			want: subscriptionsPage{totalPages: 2},
		},
		{
			name: "missing statistics",
			body: `{"subscriptions":[]}`,
			want: subscriptionsPage{totalPages: 1},
		},
		{
			name: "missing subscriptions",
			body: `{"statistics":{"totalPages":4}}`,
			want: subscriptionsPage{totalPages: 4},
		},
		{
			name:    "invalid json",
			body:    `{"subscriptions":[`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSubscriptionsPage("b", []byte(tt.body))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCreatePayloadEscapesValues(t *testing.T) {
	d := NewDescriptor(`name "quoted".with.dots`, "", "device.1", `type*"x"`)
	payload, err := createPayload(d)
	require.NoError(t, err)
	require.JSONEq(t, `{"context":"mo","subscription":"name \"quoted\".with.dots","subscriptionFilter":{"apis":["*"],"typeFilter":"type*\"x\""},"source":{"id":"device.1"}}`, string(payload))
}
