package config

import "fmt"

// MalformedError reports a document that cannot be parsed into the
// expected shape. It wraps the underlying parse or validation failure,
// which may be a multierror listing every bad entry.
type MalformedError struct {
	Err error
}

func (e *MalformedError) Error() string {
	return "malformed customization: " + e.Err.Error()
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// TypeMismatchError reports a key whose kind differs between the
// compiled-in document and the user override, e.g. a prompt entry
// overridden with a list.
type TypeMismatchError struct {
	Key          string
	CompiledKind string
	UserKind     string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("key %q: compiled-in value is a %s but the user override is a %s",
		e.Key, e.CompiledKind, e.UserKind)
}
