package configfile

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns the raw value for key, or def if the keyword was not set.
func (c *Config) String(key string, def string) string {
	if v, ok := c.Values[strings.ToLower(key)]; ok {
		return v
	}
	return def
}

// Int parses key as an integer, returning def if absent.
func (c *Config) Int(key string, def int) (int, error) {
	v, ok := c.Values[strings.ToLower(key)]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("configfile: %s: %w", key, err)
	}
	return n, nil
}

// Float64 parses key as a float, returning def if absent.
func (c *Config) Float64(key string, def float64) (float64, error) {
	v, ok := c.Values[strings.ToLower(key)]
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("configfile: %s: %w", key, err)
	}
	return f, nil
}

// Bool parses key as True/False (case-insensitive per spec.md §6),
// returning def if absent.
func (c *Config) Bool(key string, def bool) (bool, error) {
	v, ok := c.Values[strings.ToLower(key)]
	if !ok {
		return def, nil
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("configfile: %s: not a boolean: %q", key, v)
	}
}

// Has reports whether key was present in the file.
func (c *Config) Has(key string) bool {
	_, ok := c.Values[strings.ToLower(key)]
	return ok
}
