package app

import (
	"fmt"
	"strings"
)

type MissingConfigError struct {
	Fields []string
}

func (e MissingConfigError) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("missing required configuration value '%s'", e.Fields[0])
	}
	return fmt.Sprintf("missing required configuration values [%s]", strings.Join(e.Fields, ", "))
}

// NetworkError covers every way a Steam lookup can fail: transport, status code and decoding.
type NetworkError struct {
	Op      string
	Address string
	Err     error
}

func (e NetworkError) Error() string {
	if e.Address == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Address, e.Err)
}

func (e NetworkError) Unwrap() error {
	return e.Err
}

type StatusError struct {
	StatusCode int
	Status     string
}

func (e StatusError) Error() string {
	return fmt.Sprintf("unexpected response status '%s'", e.Status)
}
