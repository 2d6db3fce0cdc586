// Package env provides access to environment variables and flat .env files.
//
// Environment access goes through the Provider interface so callers can
// substitute a fixed map in tests instead of mutating the process environment.
package env

import "os"

// Provider reads environment variables.
type Provider interface {
	LookupEnv(key string) (string, bool)
}

// OSProvider implements Provider using the process environment
type OSProvider struct{}

// LookupEnv returns the value of the process environment variable named by key
func (OSProvider) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapProvider implements Provider over a fixed map.
type MapProvider map[string]string

// LookupEnv returns the value stored under key
func (m MapProvider) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Value returns the value of key, or the empty string when it is unset.
func Value(p Provider, key string) string {
	v, _ := p.LookupEnv(key)
	return v
}

// IsSet reports whether key is set to a non-empty value. An empty string
// counts as unset, matching shell conventions.
func IsSet(p Provider, key string) bool {
	return Value(p, key) != ""
}
