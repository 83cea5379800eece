// Package yamlutil decodes and encodes the CLI configuration file.
// Decode failures carry go-yaml's annotated message, which points at the
// offending line of the source.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize bounds the accepted input in bytes.
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// DecodeError reports a syntax error or an unknown field.
type DecodeError struct {
	// Detail is the message with the source excerpt, uncolored.
	Detail string
	err    error
}

func (e *DecodeError) Error() string { return "yamlutil: " + e.Detail }

func (e *DecodeError) Unwrap() error { return e.err }

// UnmarshalStrict decodes data into v. Fields not present in v are errors.
func UnmarshalStrict(data []byte, v any) error {
	switch {
	case len(data) == 0:
		return ErrNilData
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	case v == nil:
		return ErrNilDestination
	}

	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return &DecodeError{Detail: yaml.FormatError(err, false, true), err: err}
	}
	return nil
}

// Marshal encodes v as block YAML with two-space indentation and
// indented sequences.
func Marshal(v any) ([]byte, error) {
	out, err := yaml.MarshalWithOptions(v, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}
