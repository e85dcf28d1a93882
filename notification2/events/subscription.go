package events

import (
	"fmt"
	"strings"
)

// Context of the subscription on the platform.
type Context string

const (
	Context_ManagedObject Context = "mo"
	Context_Tenant        Context = "tenant"
)

// EventType selects the API whose notifications are forwarded by the subscription.
type EventType string

const (
	EventType_All          EventType = "*"
	EventType_Alarms       EventType = "alarms"
	EventType_Events       EventType = "events"
	EventType_Measurements EventType = "measurements"
	EventType_Inventory    EventType = "managedobjects"
	EventType_Operations   EventType = "operations"
)

// Wildcards of the device and type selectors.
const (
	AllDevices = "*"
	AllTypes   = "*"
)

var eventTypeNames = map[string]EventType{
	"all":            EventType_All,
	"*":              EventType_All,
	"alarms":         EventType_Alarms,
	"events":         EventType_Events,
	"measurements":   EventType_Measurements,
	"inventory":      EventType_Inventory,
	"managedobjects": EventType_Inventory,
	"operations":     EventType_Operations,
}

// ParseEventType accepts both the configuration names (all, inventory, ...) and the wire values (*, managedobjects, ...).
func ParseEventType(s string) (EventType, error) {
	v, ok := eventTypeNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unknown event type '%v'", s)
	}
	return v, nil
}

// TenantWide reports whether the event type can be subscribed in the tenant context.
func (e EventType) TenantWide() bool {
	switch e {
	case EventType_All, EventType_Alarms, EventType_Inventory:
		return true
	}
	return false
}

type Source struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type SubscriptionFilter struct {
	APIs       []EventType `json:"apis,omitempty"`
	TypeFilter string      `json:"typeFilter,omitempty"`
}

// Subscription is the part of the remote subscription record kept by the client.
type Subscription struct {
	ID                 string             `json:"id"`
	Subscription       string             `json:"subscription"`
	Context            Context            `json:"context"`
	SubscriptionFilter SubscriptionFilter `json:"subscriptionFilter"`
	Source             *Source            `json:"source,omitempty"`
	FragmentsToCopy    []string           `json:"fragmentsToCopy,omitempty"`
}

type TokenRequest struct {
	Subscriber       string `json:"subscriber"`
	Subscription     string `json:"subscription"`
	ExpiresInMinutes int    `json:"expiresInMinutes"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
