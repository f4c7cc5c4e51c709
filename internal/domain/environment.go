package domain

import m "mutagene.dev/pkg/mutagene/internal/model"

var environmentMultipliers = map[m.Environment]float64{
	m.EnvironmentNormal:        1.0,
	m.EnvironmentHighRadiation: 2.0,
	m.EnvironmentHighPressure:  0.5,
}

// EffectiveRate scales base by the environment multiplier. Unrecognised
// environments fall back to the unscaled rate. The result is not clamped: a
// rate above 1 behaves like 1 at every gate.
func EffectiveRate(base float64, env m.Environment) float64 {
	multiplier, ok := environmentMultipliers[env]
	if !ok {
		return base
	}

	return base * multiplier
}
