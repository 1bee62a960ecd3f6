// Package configuration implements the reading of the application
// configuration from generic Unix-type KEY=VALUE configuration files.
package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"

	"github.com/desertwitch/fsmeta/internal/links"
)

const (
	// KeyLogLevel is the minimum level of emitted log records.
	KeyLogLevel = "FSMETA_LOG_LEVEL"

	// KeyStrictLStat makes LStat fail on platforms without distinct link
	// metadata, instead of degrading to Stat.
	KeyStrictLStat = "FSMETA_STRICT_LSTAT"

	// KeyMaxLinkHops is the amount of links followed in a chain before it is
	// considered cyclic.
	KeyMaxLinkHops = "FSMETA_MAX_LINK_HOPS"

	// KeyUI enables the terminal user interface for recursive changes.
	KeyUI = "FSMETA_UI"
)

// ErrInvalidValue is an error that occurs when a configuration value cannot
// be parsed.
var ErrInvalidValue = errors.New("invalid configuration value")

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// AppConfiguration is the principal structure holding the application
// configuration.
type AppConfiguration struct {
	LogLevel    slog.Level
	StrictLStat bool
	MaxLinkHops int
	UI          bool
}

// NewAppConfiguration returns a pointer to a new [AppConfiguration] holding
// the default values.
func NewAppConfiguration() *AppConfiguration {
	return &AppConfiguration{
		LogLevel:    slog.LevelInfo,
		StrictLStat: false,
		MaxLinkHops: links.DefaultMaxHops,
		UI:          false,
	}
}

// Handler is the principal implementation for reading configuration files.
type Handler struct {
	GenericHandler genericConfigProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		GenericHandler: genericHandler,
	}
}

// Load reads the configuration files into an [AppConfiguration]. Keys that
// are not set keep their default values, and missing files are not an error.
func (c *Handler) Load(filenames ...string) (*AppConfiguration, error) {
	config := NewAppConfiguration()

	envMap, err := c.ReadGeneric(filenames...)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("(config-load) %w", err)
		}

		slog.Debug("Configuration file not found, using defaults", "files", filenames)

		return config, nil
	}

	if v, ok := c.MapKeyToString(envMap, KeyLogLevel); ok {
		if err := config.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("(config-load) %w: %s=%q", ErrInvalidValue, KeyLogLevel, v)
		}
	}

	if v, ok, err := c.MapKeyToBool(envMap, KeyStrictLStat); err != nil {
		return nil, fmt.Errorf("(config-load) %w", err)
	} else if ok {
		config.StrictLStat = v
	}

	if v, ok, err := c.MapKeyToBool(envMap, KeyUI); err != nil {
		return nil, fmt.Errorf("(config-load) %w", err)
	} else if ok {
		config.UI = v
	}

	if v, ok, err := c.MapKeyToInt(envMap, KeyMaxLinkHops); err != nil {
		return nil, fmt.Errorf("(config-load) %w", err)
	} else if ok {
		if v <= 0 {
			return nil, fmt.Errorf("(config-load) %w: %s=%d", ErrInvalidValue, KeyMaxLinkHops, v)
		}
		config.MaxLinkHops = v
	}

	return config, nil
}

// ReadGeneric reads the configuration files into a map (map[key]value).
func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.GenericHandler.Read(filenames...)
}

// MapKeyToString returns the value of a key and if it was set at all.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) (string, bool) {
	value, exists := envMap[key]
	if !exists || value == "" {
		return "", false
	}

	return value, true
}

// MapKeyToInt returns the integer value of a key and if it was set at all.
func (c *Handler) MapKeyToInt(envMap map[string]string, key string) (int, bool, error) {
	value, ok := c.MapKeyToString(envMap, key)
	if !ok {
		return 0, false, nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
	}

	return intValue, true, nil
}

// MapKeyToBool returns the boolean value of a key and if it was set at all.
func (c *Handler) MapKeyToBool(envMap map[string]string, key string) (bool, bool, error) {
	value, ok := c.MapKeyToString(envMap, key)
	if !ok {
		return false, false, nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, false, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
	}

	return boolValue, true, nil
}
