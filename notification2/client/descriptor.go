package client

import "github.com/plgd-dev/notification2/notification2/events"

// Descriptor is the normalized description of the subscription sent to the platform.
type Descriptor struct {
	Name       string
	Context    events.Context
	EventType  events.EventType
	DeviceID   string
	TypeFilter string
}

// NewDescriptor applies the platform rules that couple the selectors:
//   - a concrete device requires the managed object context
//   - all devices require the tenant context, which supports only alarms and
//     inventory, so any other event type is widened to all
//
// The result depends only on the arguments, not on the order in which they were chosen.
func NewDescriptor(name string, eventType events.EventType, deviceID, typeFilter string) Descriptor {
	d := Descriptor{
		Name:       name,
		EventType:  eventType,
		DeviceID:   deviceID,
		TypeFilter: typeFilter,
	}
	if d.EventType == "" {
		d.EventType = events.EventType_All
	}
	if d.DeviceID == "" {
		d.DeviceID = events.AllDevices
	}
	if d.TypeFilter == "" {
		d.TypeFilter = events.AllTypes
	}
	if d.DeviceID != events.AllDevices {
		d.Context = events.Context_ManagedObject
		return d
	}
	d.Context = events.Context_Tenant
	if d.EventType != events.EventType_Alarms && d.EventType != events.EventType_Inventory {
		d.EventType = events.EventType_All
	}
	return d
}
