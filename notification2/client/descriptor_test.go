package client_test

import (
	"testing"

	"github.com/plgd-dev/notification2/notification2/client"
	"github.com/plgd-dev/notification2/notification2/events"
	"github.com/plgd-dev/notification2/notification2/test"
	"github.com/stretchr/testify/require"
)

func requireCoupling(t *testing.T, d client.Descriptor) {
	if d.DeviceID == events.AllDevices {
		require.Equal(t, events.Context_Tenant, d.Context)
		require.True(t, d.EventType.TenantWide(), "event type %v", d.EventType)
	} else {
		require.Equal(t, events.Context_ManagedObject, d.Context)
	}
	if !d.EventType.TenantWide() {
		require.Equal(t, events.Context_ManagedObject, d.Context)
	}
}

func permutations(n int) [][]int {
	if n == 1 {
		return [][]int{{0}}
	}
	var res [][]int
	for _, p := range permutations(n - 1) {
		for i := 0; i <= len(p); i++ {
			q := make([]int, 0, n)
			q = append(q, p[:i]...)
			q = append(q, n-1)
			q = append(q, p[i:]...)
			res = append(res, q)
		}
	}
	return res
}

func TestBuilderOrderIndependence(t *testing.T) {
	eventTypes := []events.EventType{
		events.EventType_All, events.EventType_Alarms, events.EventType_Events,
		events.EventType_Measurements, events.EventType_Inventory, events.EventType_Operations,
	}
	devices := []string{events.AllDevices, "16412"}
	typeFilters := []string{events.AllTypes, "ProgramStatusChanged"}
	a := test.NewAPI(t)

	for _, eventType := range eventTypes {
		for _, device := range devices {
			for _, typeFilter := range typeFilters {
				setters := []func(m *client.Manager) *client.Manager{
					func(m *client.Manager) *client.Manager { return m.WithEventType(eventType) },
					func(m *client.Manager) *client.Manager { return m.WithDevice(device) },
					func(m *client.Manager) *client.Manager { return m.WithTypeFilter(typeFilter) },
				}
				var want *client.Descriptor
				for _, order := range permutations(len(setters)) {
					m, err := client.New(test.MakeConfig(a.URL()), nil, nil)
					require.NoError(t, err)
					for _, i := range order {
						m = setters[i](m)
					}
					got := m.Descriptor()
					requireCoupling(t, got)
					if want == nil {
						want = &got
						continue
					}
					require.Equal(t, *want, got, "order %v", order)
				}
			}
		}
	}
}

func TestNewDescriptor(t *testing.T) {
	type args struct {
		eventType  events.EventType
		deviceID   string
		typeFilter string
	}
	tests := []struct {
		name string
		args args
		want client.Descriptor
	}{
		{
			name: "defaults",
			want: client.Descriptor{
				Name:       test.SubscriptionName,
				Context:    events.Context_Tenant,
				EventType:  events.EventType_All,
				DeviceID:   events.AllDevices,
				TypeFilter: events.AllTypes,
			},
		},
		{
			name: "all devices keep alarms",
			args: args{eventType: events.EventType_Alarms, deviceID: events.AllDevices},
			want: client.Descriptor{
				Name:       test.SubscriptionName,
				Context:    events.Context_Tenant,
				EventType:  events.EventType_Alarms,
				DeviceID:   events.AllDevices,
				TypeFilter: events.AllTypes,
			},
		},
		{
			name: "all devices keep inventory",
			args: args{eventType: events.EventType_Inventory, deviceID: events.AllDevices},
			want: client.Descriptor{
				Name:       test.SubscriptionName,
				Context:    events.Context_Tenant,
				EventType:  events.EventType_Inventory,
				DeviceID:   events.AllDevices,
				TypeFilter: events.AllTypes,
			},
		},
		{
			name: "all devices widen measurements",
			args: args{eventType: events.EventType_Measurements, deviceID: events.AllDevices},
			want: client.Descriptor{
				Name:       test.SubscriptionName,
				Context:    events.Context_Tenant,
				EventType:  events.EventType_All,
				DeviceID:   events.AllDevices,
				TypeFilter: events.AllTypes,
			},
		},
		{
			name: "device with operations",
			args: args{eventType: events.EventType_Operations, deviceID: "16412", typeFilter: "c8y_Restart"},
			want: client.Descriptor{
				Name:       test.SubscriptionName,
				Context:    events.Context_ManagedObject,
				EventType:  events.EventType_Operations,
				DeviceID:   "16412",
				TypeFilter: "c8y_Restart",
			},
		},
		{
			name: "device with all",
			args: args{eventType: events.EventType_All, deviceID: "16412"},
			want: client.Descriptor{
				Name:       test.SubscriptionName,
				Context:    events.Context_ManagedObject,
				EventType:  events.EventType_All,
				DeviceID:   "16412",
				TypeFilter: events.AllTypes,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := client.NewDescriptor(test.SubscriptionName, tt.args.eventType, tt.args.deviceID, tt.args.typeFilter)
			require.Equal(t, tt.want, got)
			requireCoupling(t, got)
		})
	}
}
