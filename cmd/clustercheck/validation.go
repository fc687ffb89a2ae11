package main

import (
	"fmt"
	"strings"
)

// flagValue represents a flag name and its current value for validation.
type flagValue struct {
	name  string
	value string
}

// requireOneOf returns an error if the flag value is not one of allowed.
func requireOneOf(f flagValue, allowed ...string) error {
	for _, a := range allowed {
		if f.value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid --%s %q: must be one of %s", f.name, f.value, strings.Join(allowed, ", "))
}

func validateFlags() error {
	if err := requireOneOf(flagValue{"output", outputFormat}, "text", "json"); err != nil {
		return err
	}
	if err := requireOneOf(flagValue{"log-level", logLevel}, "trace", "debug", "info", "warn", "error", "off"); err != nil {
		return err
	}
	if cmdTimeout <= 0 {
		return fmt.Errorf("invalid --timeout %s: must be positive", cmdTimeout)
	}
	return nil
}
