package client

import (
	"fmt"
	"time"
)

const (
	DefaultTimeout         = 10 * time.Second
	DefaultIdleConnTimeout = 30 * time.Second
)

type TLSConfig struct {
	// CAPool is a path to the PEM file with trusted certificate authorities.
	CAPool             string `yaml:"caPool" json:"caPool" description:"file path to the root certificates in PEM format"`
	UseSystemCAPool    bool   `yaml:"useSystemCAPool" json:"useSystemCAPool" description:"use system certification pool"`
	InsecureSkipVerify bool   `yaml:"insecureSkipVerify" json:"insecureSkipVerify"`
}

func (c *TLSConfig) Validate() error {
	if c.CAPool == "" && !c.UseSystemCAPool && !c.InsecureSkipVerify {
		c.UseSystemCAPool = true
	}
	return nil
}

type Config struct {
	// MaxIdleConns controls the maximum number of idle (keep-alive)
	// connections across all hosts. Zero means no limit.
	MaxIdleConns int `yaml:"maxIdleConns" json:"maxIdleConns"`

	// MaxConnsPerHost optionally limits the total number of
	// connections per host, including connections in the dialing,
	// active, and idle states. On limit violation, dials will block.
	//
	// Zero means no limit.
	MaxConnsPerHost int `yaml:"maxConnsPerHost" json:"maxConnsPerHost"`

	// MaxIdleConnsPerHost, if non-zero, controls the maximum idle
	// (keep-alive) connections to keep per-host. If zero,
	// DefaultMaxIdleConnsPerHost is used.
	MaxIdleConnsPerHost int `yaml:"maxIdleConnsPerHost" json:"maxIdleConnsPerHost"`

	// IdleConnTimeout is the maximum amount of time an idle
	// (keep-alive) connection will remain idle before closing
	// itself.
	IdleConnTimeout time.Duration `yaml:"idleConnTimeout" json:"idleConnTimeout"`

	// Timeout specifies a time limit for one request including reading
	// of the response body. Zero is replaced by DefaultTimeout.
	Timeout time.Duration `yaml:"timeout" json:"timeout"`

	TLS TLSConfig `yaml:"tls" json:"tls"`
}

func MakeDefaultConfig() Config {
	return Config{
		MaxIdleConns:        16,
		MaxConnsPerHost:     4,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     DefaultIdleConnTimeout,
		Timeout:             DefaultTimeout,
		TLS: TLSConfig{
			UseSystemCAPool: true,
		},
	}
}

func (c *Config) Validate() error {
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("maxIdleConns('%v')", c.MaxIdleConns)
	}
	if c.MaxConnsPerHost < 0 {
		return fmt.Errorf("maxConnsPerHost('%v')", c.MaxConnsPerHost)
	}
	if c.MaxIdleConnsPerHost < 0 {
		return fmt.Errorf("maxIdleConnsPerHost('%v')", c.MaxIdleConnsPerHost)
	}
	if c.IdleConnTimeout < 0 {
		return fmt.Errorf("idleConnTimeout('%v')", c.IdleConnTimeout)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout('%v')", c.Timeout)
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if err := c.TLS.Validate(); err != nil {
		return fmt.Errorf("tls.%w", err)
	}
	return nil
}
