package model

import (
	"fmt"
	"strings"
)

// Environment tags the conditions a lineage evolves under.
type Environment string

const (
	// EnvironmentNormal leaves the base rate unchanged.
	EnvironmentNormal Environment = "normal"
	// EnvironmentHighRadiation doubles the base rate.
	EnvironmentHighRadiation Environment = "high_radiation"
	// EnvironmentHighPressure halves the base rate.
	EnvironmentHighPressure Environment = "high_pressure"
)

// Environments lists every recognised tag.
var Environments = []Environment{
	EnvironmentNormal,
	EnvironmentHighRadiation,
	EnvironmentHighPressure,
}

// ParseEnvironment resolves a tag name. Hyphens are accepted in place of
// underscores.
func ParseEnvironment(value string) (Environment, error) {
	env := Environment(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(value)), "-", "_"))
	for _, known := range Environments {
		if env == known {
			return env, nil
		}
	}

	return "", fmt.Errorf("unknown environment: %q", value)
}
