package array

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Config is the JSON form of the array options.
type Config struct {
	// InitialCapacity is the slot count allocated at creation.
	InitialCapacity int `json:"initial_capacity,omitempty"`
	// Allocator names a registered memory allocator, "heap" by default.
	Allocator string `json:"allocator,omitempty"`
}

// LoadConfig decodes a Config, rejecting unknown fields.
func LoadConfig(b []byte) (Config, error) {
	c := Config{}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("decode config error: %w", err)
	}
	if c.InitialCapacity < 0 {
		return Config{}, fmt.Errorf("initial_capacity %d: %w", c.InitialCapacity, ErrNegativeCapacity)
	}
	return c, nil
}

// Options converts c into Options.
func (c Config) Options() []Option {
	if c.Allocator == "" {
		return nil
	}
	return []Option{WithAllocatorName(c.Allocator)}
}
