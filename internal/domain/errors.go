package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrTranslation is matched by every *TranslationError.
	ErrTranslation = errors.New("translation failed")
	// ErrConfiguration is matched by every *ConfigurationError.
	ErrConfiguration = errors.New("invalid configuration")
)

const reasonLengthNotMultipleOfThree = "length not multiple of three"

// TranslationError reports a nucleotide sequence that cannot be read as codons.
type TranslationError struct {
	Length int
	Reason string
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translation error: %s (length %d)", e.Reason, e.Length)
}

// Is lets errors.Is match ErrTranslation.
func (e *TranslationError) Is(target error) bool {
	return target == ErrTranslation
}

// ConfigurationError reports an invalid simulation parameter.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Is lets errors.Is match ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
