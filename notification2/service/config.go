package service

import (
	"fmt"
	"time"

	"github.com/plgd-dev/notification2/notification2/client"
	"github.com/plgd-dev/notification2/pkg/config"
	"github.com/plgd-dev/notification2/pkg/log"
	httpClient "github.com/plgd-dev/notification2/pkg/net/http/client"
)

const DefaultErrorDelay = 5 * time.Second

type Notification2Config struct {
	Connection client.Config     `yaml:",inline" json:",inline"`
	HTTP       httpClient.Config `yaml:"http" json:"http"`
}

func (c *Notification2Config) Validate() error {
	if err := c.Connection.Validate(); err != nil {
		return err
	}
	if err := c.HTTP.Validate(); err != nil {
		return fmt.Errorf("http.%w", err)
	}
	return nil
}

type ClientsConfig struct {
	Notification2 Notification2Config `yaml:"notification2" json:"notification2"`
}

func (c *ClientsConfig) Validate() error {
	if err := c.Notification2.Validate(); err != nil {
		return fmt.Errorf("notification2.%w", err)
	}
	return nil
}

// Config represent application configuration
type Config struct {
	Log     log.Config    `yaml:"log" json:"log"`
	Clients ClientsConfig `yaml:"clients" json:"clients"`
	// ErrorDelay is the time to wait after a failed initialization before the service gives up.
	ErrorDelay time.Duration `yaml:"errorDelay" json:"errorDelay"`
	// CreateToken requests a consumer token once the subscription is ready.
	CreateToken        bool `yaml:"createToken" json:"createToken"`
	UnsubscribeOnClose bool `yaml:"unsubscribeOnClose" json:"unsubscribeOnClose"`
}

func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log.%w", err)
	}
	if err := c.Clients.Validate(); err != nil {
		return fmt.Errorf("clients.%w", err)
	}
	if c.ErrorDelay < 0 {
		return fmt.Errorf("errorDelay('%v') - is negative", c.ErrorDelay)
	}
	if c.ErrorDelay == 0 {
		c.ErrorDelay = DefaultErrorDelay
	}
	return nil
}

// String return string representation of Config
func (c Config) String() string {
	if c.Clients.Notification2.Connection.Password != "" {
		c.Clients.Notification2.Connection.Password = "****"
	}
	return config.ToString(c)
}
