package style

import "fmt"

// ConfigurationError reports a suite type with no style metadata anywhere in
// its hierarchy.
type ConfigurationError struct {
	Type string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("no style declared for %s or any of its supertypes", e.Type)
}

// InstantiationError reports a declared style whose resolver could not be
// constructed.
type InstantiationError struct {
	Type  string
	Style Style
	Err   error
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("creating %s resolver for %s: %v", e.Style, e.Type, e.Err)
}

func (e *InstantiationError) Unwrap() error { return e.Err }
