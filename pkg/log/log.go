package log

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log atomic.Value

const (
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// Config configuration for setup logging.
type Config struct {
	// Level of the logger. Debug overrides it to debug.
	Level zapcore.Level `yaml:"level" json:"level" description:"minimal level of logs"`
	// Encoding of the logs: json or console.
	Encoding string `yaml:"encoding" json:"encoding" description:"json or console"`
	Debug    bool   `yaml:"debug" json:"debug" description:"enable debug logs"`
}

func MakeDefaultConfig() Config {
	return Config{
		Level:    zapcore.InfoLevel,
		Encoding: EncodingJSON,
	}
}

func (c *Config) Validate() error {
	switch c.Encoding {
	case "":
		c.Encoding = EncodingJSON
	case EncodingJSON, EncodingConsole:
	default:
		return fmt.Errorf("encoding('%v') - unsupported, use %v or %v", c.Encoding, EncodingJSON, EncodingConsole)
	}
	if c.Level < zapcore.DebugLevel || c.Level > zapcore.FatalLevel {
		return fmt.Errorf("level('%v') - unsupported", c.Level)
	}
	return nil
}

func init() {
	config := zap.NewProductionConfig()
	logger, err := config.Build()
	if err != nil {
		panic("Unable to create logger")
	}
	log.Store(logger.Sugar())
}

// Setup changes log configuration for the application.
// Call ASAP in main after parse args/env.
func Setup(config Config) {
	if err := Build(config); err != nil {
		panic(err)
	}
}

// Set logger for global log fuctions
func Set(logger *zap.Logger) {
	log.Store(logger.Sugar())
}

// NewLogger creates logger
func NewLogger(config Config) (*zap.Logger, error) {
	var cfg zap.Config
	if config.Debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(config.Level)
	}
	if config.Encoding != "" {
		cfg.Encoding = config.Encoding
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// Build is a panic-free version of Setup.
func Build(config Config) error {
	logger, err := NewLogger(config)
	if err != nil {
		return fmt.Errorf("logger creation failed: %w", err)
	}
	Set(logger)
	return nil
}

func Get() *zap.SugaredLogger {
	return log.Load().(*zap.SugaredLogger)
}

// Debugf uses fmt.Sprintf to log a templated message.
func Debugf(template string, args ...interface{}) {
	Get().Debugf(template, args...)
}

// Infof uses fmt.Sprintf to log a templated message.
func Infof(template string, args ...interface{}) {
	Get().Infof(template, args...)
}

// Warnf uses fmt.Sprintf to log a templated message.
func Warnf(template string, args ...interface{}) {
	Get().Warnf(template, args...)
}

// Errorf uses fmt.Sprintf to log a templated message.
func Errorf(template string, args ...interface{}) {
	Get().Errorf(template, args...)
}

// Fatalf uses fmt.Sprintf to log a templated message, then calls os.Exit.
func Fatalf(template string, args ...interface{}) {
	Get().Fatalf(template, args...)
}
