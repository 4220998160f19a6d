package registry

import "fmt"

// ConfigError reports a catalogue that cannot be resolved.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "registry configuration error: " + e.Reason
}

// DuplicateNameError reports two types sharing a (module, name) pair.
type DuplicateNameError struct {
	Module string
	Name   string
	First  string
	Second string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate type name %s.%s declared by %s and %s", moduleOrNone(e.Module), e.Name, e.First, e.Second)
}

func moduleOrNone(m string) string {
	if m == "" {
		return "<none>"
	}
	return m
}

func configPanic(format string, args ...any) {
	panic(&ConfigError{Reason: fmt.Sprintf(format, args...)})
}
