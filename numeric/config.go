package numeric

import (
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultScale is the number of digits kept after the decimal point when
	// nothing is configured.
	DefaultScale = 32

	// MaxScale bounds the configurable scale.
	MaxScale = 4096

	// EnvPrefix prefixes the environment variables read by ConfigFromEnv.
	EnvPrefix = "BIGVECTOR"
)

var (
	// ErrInvalidConfig is returned for an out-of-range scale or an unknown
	// rounding mode.
	ErrInvalidConfig = errors.New("numeric: invalid config")

	// ErrAlreadyConfigured is returned by Configure once the process-wide
	// context has been installed or used.
	ErrAlreadyConfigured = errors.New("numeric: precision already fixed")
)

// Config describes a precision policy.
type Config struct {
	// Scale is the number of digits kept after the decimal point by division
	// and square root.
	Scale int32 `yaml:"scale" envconfig:"SCALE"`
	// Rounding resolves the discarded digits.
	Rounding RoundingMode `yaml:"rounding" envconfig:"ROUNDING"`
}

// DefaultConfig returns scale 32 with banker's rounding.
func DefaultConfig() Config {
	return Config{Scale: DefaultScale, Rounding: HalfEven}
}

// Validate checks the scale range and the rounding mode.
func (c Config) Validate() error {
	if c.Scale < 1 || c.Scale > MaxScale {
		return errors.Wrapf(ErrInvalidConfig, "scale %d outside [1, %d]", c.Scale, MaxScale)
	}
	if _, ok := roundingNames[c.Rounding]; !ok {
		return errors.Wrapf(ErrInvalidConfig, "unknown rounding mode %d", int(c.Rounding))
	}
	return nil
}

// ParseConfig reads a YAML document such as
//
//	scale: 40
//	rounding: half_up
//
// Keys that are absent keep their DefaultConfig value.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "numeric: parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigFromEnv reads BIGVECTOR_SCALE and BIGVECTOR_ROUNDING. Unset variables
// keep their DefaultConfig value.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "numeric: read environment")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var (
	mu      sync.Mutex
	current *Context
)

// Configure installs cfg as the process-wide precision. It must run before
// the first call to Current, and only once.
func Configure(cfg Config) error {
	ctx, err := NewContext(cfg)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	if current != nil {
		return errors.Wrapf(ErrAlreadyConfigured, "scale %d, rounding %s", current.scale, current.mode)
	}
	current = ctx
	log.WithFields(log.Fields{
		"scale":    cfg.Scale,
		"rounding": cfg.Rounding.String(),
	}).Info("numeric precision configured")
	return nil
}

// Current returns the process-wide context, installing DefaultConfig when
// Configure was never called. The returned context never changes afterwards.
func Current() *Context {
	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		ctx, err := NewContext(DefaultConfig())
		if err != nil {
			panic(err)
		}
		current = ctx
		log.WithField("scale", ctx.scale).Debug("numeric precision defaulted")
	}
	return current
}
