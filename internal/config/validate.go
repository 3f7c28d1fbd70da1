package config

import (
	"errors"
	"fmt"
	"strconv"
)

// Validate checks the model for values the external tools would reject.
// It reports every problem it finds rather than stopping at the first.
func (m *Model) Validate() error {
	var errs []error

	if m.Common.Base == "" {
		errs = append(errs, errors.New("common: base must not be empty"))
	}
	if m.Common.EventClass < 0 {
		errs = append(errs, fmt.Errorf("common: event_class %d must not be negative", m.Common.EventClass))
	}
	if m.Common.IRFs == "" {
		errs = append(errs, errors.New("common: irfs must not be empty"))
	}

	a := m.Analysis
	if a.RA < 0 || a.RA > 360 {
		errs = append(errs, fmt.Errorf("analysis: ra %g out of range [0, 360]", a.RA))
	}
	if a.Dec < -90 || a.Dec > 90 {
		errs = append(errs, fmt.Errorf("analysis: dec %g out of range [-90, 90]", a.Dec))
	}
	if a.Radius <= 0 {
		errs = append(errs, fmt.Errorf("analysis: rad %g must be positive", a.Radius))
	}
	if a.EMin <= 0 || a.EMax <= 0 || a.EMin >= a.EMax {
		errs = append(errs, fmt.Errorf("analysis: energy range [%g, %g] must satisfy 0 < emin < emax", a.EMin, a.EMax))
	}
	if a.ZMax <= 0 || a.ZMax > 180 {
		errs = append(errs, fmt.Errorf("analysis: zmax %g out of range (0, 180]", a.ZMax))
	}
	if err := validateMET("tmin", a.TMin); err != nil {
		errs = append(errs, err)
	}
	if err := validateMET("tmax", a.TMax); err != nil {
		errs = append(errs, err)
	}
	switch a.ConvType {
	case -1, 0, 1:
	default:
		errs = append(errs, fmt.Errorf("analysis: convtype %d must be -1, 0, or 1", a.ConvType))
	}
	if a.BinSize <= 0 {
		errs = append(errs, fmt.Errorf("analysis: bin_size %g must be positive", a.BinSize))
	}
	if a.EnergyBins <= 0 {
		errs = append(errs, fmt.Errorf("analysis: energy_bins %d must be positive", a.EnergyBins))
	}

	return errors.Join(errs...)
}

// validateMET accepts either the literal "INDEF" or a numeric mission
// elapsed time.
func validateMET(name, v string) error {
	if v == "INDEF" {
		return nil
	}
	if _, err := strconv.ParseFloat(v, 64); err != nil {
		return fmt.Errorf("analysis: %s %q is neither INDEF nor a number", name, v)
	}
	return nil
}
