/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"fmt"

	"go.uber.org/zap"

	"dirpx.dev/trax/apis"
)

const (
	// DefaultMaxEmbedDepth represents the default for MaxEmbedDepth.
	// A value of 4 should be sufficient for all practical embedding chains.
	DefaultMaxEmbedDepth = 4
	// DefaultCollectStats represents the default for CollectStats.
	// When true, trackers keep hit/miss/reload/eviction counters.
	DefaultCollectStats = true
)

// DefaultFlightKey derives the in-flight deduplication key for an id.
// It is injective for the common id kinds (integers, strings, UUIDs);
// callers with exotic composite ids should supply their own via
// WithFlightKey.
func DefaultFlightKey(id any) string {
	return fmt.Sprintf("%T/%v", id, id)
}

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxEmbedDepth is valid.
	if cfg.MaxEmbedDepth <= 0 {
		cfg.MaxEmbedDepth = DefaultMaxEmbedDepth
	}
	if cfg.FlightKey == nil {
		cfg.FlightKey = DefaultFlightKey
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		FlightKey:     DefaultFlightKey,
		MaxEmbedDepth: DefaultMaxEmbedDepth,
		CollectStats:  DefaultCollectStats,
		Logger:        zap.NewNop(),
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithFlightKey sets the FlightKey option.
// A nil fn resets to the default.
func WithFlightKey(fn func(id any) string) Option {
	return func(c *apis.Config) {
		if fn == nil {
			c.FlightKey = DefaultFlightKey
			return
		}
		c.FlightKey = fn
	}
}

// WithMaxEmbedDepth sets the MaxEmbedDepth option.
// A non-positive value resets to the default.
func WithMaxEmbedDepth(depth int) Option {
	return func(c *apis.Config) {
		if depth <= 0 {
			c.MaxEmbedDepth = DefaultMaxEmbedDepth
			return
		}
		c.MaxEmbedDepth = depth
	}
}

// WithCollectStats sets the CollectStats option.
func WithCollectStats(collect bool) Option {
	return func(c *apis.Config) {
		c.CollectStats = collect
	}
}

// WithLogger sets the Logger option.
// A nil logger resets to the no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *apis.Config) {
		if log == nil {
			c.Logger = zap.NewNop()
			return
		}
		c.Logger = log
	}
}
