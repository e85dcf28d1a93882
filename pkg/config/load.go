package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

type ConfigPath struct {
	ConfigPath string `long:"config" description:"yaml config file path"`
}

type Validator interface {
	Validate() error
}

func LoadAndValidateConfig(v Validator) error {
	err := Load(v)
	if err != nil {
		return err
	}
	return v.Validate()
}

// Load loads config from the yaml file passed by --config argument.
func Load(config interface{}) error {
	var c ConfigPath
	_, err := flags.NewParser(&c, flags.Default|flags.IgnoreUnknown).Parse()
	if err != nil {
		return err
	}
	if c.ConfigPath == "" {
		return fmt.Errorf("missing --config argument")
	}
	return Read(c.ConfigPath, config)
}

// Read reads config from file.
func Read(filename string, config interface{}) error {
	cfg, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return Parse(cfg, config)
}

// Parse decodes yaml document into config. Unknown fields are rejected.
func Parse(data []byte, config interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(config); err != nil {
		return fmt.Errorf("cannot parse config: %w", err)
	}
	return nil
}

// ToString returns yaml representation of the config.
func ToString(config interface{}) string {
	out, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Sprintf("cannot marshal config: %v", err)
	}
	return string(out)
}
