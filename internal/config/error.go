package config

import "fmt"

// LoadError reports an unreadable or invalid configuration file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid configuration: %v", e.Err)
	}
	return fmt.Sprintf("reading configuration file %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
