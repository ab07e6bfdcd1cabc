package config

import (
	"fmt"
	"time"
)

// Duration is a time.Duration that supports YAML parsing from strings like
// "30s", "5m", or "1h30m". Bare integers are read as nanoseconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		var ns int64
		if err := unmarshal(&ns); err != nil {
			return fmt.Errorf("duration must be a string (e.g. \"5m\") or integer nanoseconds")
		}
		*d = Duration(ns)
		return nil
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler for Duration.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// String returns the string representation.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// boolValue dereferences an optional YAML bool, falling back to def when the
// field was omitted.
func boolValue(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
