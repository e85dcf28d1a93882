package client

import (
	"fmt"
	"net/url"

	"github.com/plgd-dev/notification2/notification2/events"
)

const (
	DefaultPageSize         = 100
	DefaultMaxPages         = 100
	DefaultExpiresInMinutes = 1
)

type SubscriptionConfig struct {
	Name string `yaml:"name" json:"name"`
	// EventType is one of all, alarms, events, measurements, inventory, operations.
	EventType string `yaml:"eventType" json:"eventType"`
	// Device is the managed object id of the device or "*" for all devices.
	Device string `yaml:"device" json:"device"`
	// TypeFilter restricts notifications to the type or "*" for all types.
	TypeFilter    string `yaml:"typeFilter" json:"typeFilter"`
	PageSize      int    `yaml:"pageSize" json:"pageSize"`
	MaxPages      int    `yaml:"maxPages" json:"maxPages"`
	UseNameFilter bool   `yaml:"useNameFilter" json:"useNameFilter"`
}

func (c *SubscriptionConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name('%v') - is empty", c.Name)
	}
	if c.EventType == "" {
		c.EventType = "all"
	}
	if _, err := events.ParseEventType(c.EventType); err != nil {
		return fmt.Errorf("eventType('%v') - %w", c.EventType, err)
	}
	if c.Device == "" {
		c.Device = events.AllDevices
	}
	if c.TypeFilter == "" {
		c.TypeFilter = events.AllTypes
	}
	if c.PageSize < 0 {
		return fmt.Errorf("pageSize('%v') - is negative", c.PageSize)
	}
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.MaxPages < 0 {
		return fmt.Errorf("maxPages('%v') - is negative", c.MaxPages)
	}
	if c.MaxPages == 0 {
		c.MaxPages = DefaultMaxPages
	}
	return nil
}

type TokenConfig struct {
	// Subscriber name used for tokens. Generated when empty.
	Subscriber       string `yaml:"subscriber" json:"subscriber"`
	ExpiresInMinutes int    `yaml:"expiresInMinutes" json:"expiresInMinutes"`
}

func (c *TokenConfig) Validate() error {
	if c.ExpiresInMinutes < 0 {
		return fmt.Errorf("expiresInMinutes('%v') - is negative", c.ExpiresInMinutes)
	}
	if c.ExpiresInMinutes == 0 {
		c.ExpiresInMinutes = DefaultExpiresInMinutes
	}
	return nil
}

type Config struct {
	URL          string             `yaml:"url" json:"url"`
	User         string             `yaml:"user" json:"user"`
	Password     string             `yaml:"password" json:"-"`
	Subscription SubscriptionConfig `yaml:"subscription" json:"subscription"`
	Token        TokenConfig        `yaml:"token" json:"token"`
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("url('%v') - %w", c.URL, err)
	}
	if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return fmt.Errorf("url('%v') - expected absolute http(s) url", c.URL)
	}
	if c.User == "" {
		return fmt.Errorf("user('%v') - is empty", c.User)
	}
	if c.Password == "" {
		return fmt.Errorf("password - is empty")
	}
	if err := c.Subscription.Validate(); err != nil {
		return fmt.Errorf("subscription.%w", err)
	}
	if err := c.Token.Validate(); err != nil {
		return fmt.Errorf("token.%w", err)
	}
	return nil
}
