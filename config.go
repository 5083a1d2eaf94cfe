package pia

import (
	"fmt"
	"log"
)

// The Config type carries configuration options for packed integer
// arrays.
//
// Config implements the Option interface so it can be used directly as
// argument to the New function when needed, for example:
//
//	a, err := pia.New(3, 9, &pia.Config{
//		OnTruncate: myTruncateHandler,
//	})
type Config struct {
	// OnTruncate is called when Set receives a value that does not fit
	// in the bit width of the array, with the index being written, the
	// value that was passed, and the value that is stored after its high
	// bits were discarded.
	//
	// Defaults to logging a warning through the standard library logger.
	OnTruncate TruncateFunc
}

// DefaultConfig returns a new Config initialized with default values.
func DefaultConfig() *Config {
	return &Config{
		OnTruncate: logTruncate,
	}
}

// NewConfig constructs a new array configuration applying the given list
// of options, and returns an error if the resulting configuration is
// invalid.
func NewConfig(options ...Option) (*Config, error) {
	config := DefaultConfig()
	config.Apply(options...)
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Apply applies the given list of options to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Configure applies configuration options from c to config.
func (c *Config) Configure(config *Config) {
	*config = Config{
		OnTruncate: coalesceTruncateFunc(c.OnTruncate, config.OnTruncate),
	}
}

// Validate returns a non-nil error if the configuration of c is invalid.
func (c *Config) Validate() error {
	if c.OnTruncate == nil {
		return fmt.Errorf("pia: invalid option value: OnTruncate: nil")
	}
	return nil
}

// Option is an interface implemented by types that carry configuration
// options for packed integer arrays.
type Option interface {
	Configure(*Config)
}

// TruncateFunc is the type of handlers notified when a Set call discards
// the high bits of a value that does not fit in the bit width of the
// array. The write succeeds regardless, the notification is advisory.
type TruncateFunc func(index int, value, stored uint8)

// OnTruncate creates a configuration option which installs f as the
// truncation handler of an array.
func OnTruncate(f TruncateFunc) Option {
	return option(func(config *Config) { config.OnTruncate = f })
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

func coalesceTruncateFunc(f1, f2 TruncateFunc) TruncateFunc {
	if f1 != nil {
		return f1
	}
	return f2
}

func logTruncate(index int, value, stored uint8) {
	log.Printf("pia: truncating value %d to %d at index %d: this may cause unintended collisions", value, stored, index)
}
