package registry

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/asymmetrica/rotaforge/internal/rerr"
)

// LoadTables reads a parameter snapshot from path (YAML or JSON, inferred
// from the extension) layered over the builtin defaults: any key the
// snapshot omits falls back to DefaultTables. Only the force_field,
// vdw_radius and partial_charge sections are read, each as a whole section;
// force_field keys are the lower-cased field names (e.g.
// force_field.ljepsilon). The viper instance has AutomaticEnv with the
// ROTAFORGE prefix, but no per-field environment override is wired up: a
// variable such as ROTAFORGE_FORCEFIELD_LJEPSILON is not read.
//
// This loader exists for local development and test fixtures; the
// production parameter source is whatever build step stamps the
// organization's curated snapshot onto disk, which is out of scope here.
func LoadTables(path string) (*Tables, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("ROTAFORGE")
	v.AutomaticEnv()

	base := DefaultTables()
	seedDefaults(v, base)

	if err := v.ReadInConfig(); err != nil {
		return nil, &rerr.ConfigurationError{Source: path, Detail: err.Error()}
	}

	out := &Tables{
		CovalentRadius: base.CovalentRadius,
		VdWRadius:      base.VdWRadius,
		PartialCharge:  base.PartialCharge,
		BondLengths:    base.BondLengths,
		RotatableBonds: base.RotatableBonds,
		HydrogenNames:  base.HydrogenNames,
	}

	ff := base.ForceField
	if err := v.UnmarshalKey("force_field", &ff); err != nil {
		return nil, &rerr.ConfigurationError{Source: path, Detail: fmt.Sprintf("force_field: %v", err)}
	}
	out.ForceField = ff

	if v.IsSet("vdw_radius") {
		vdw := map[string]float64{}
		if err := v.UnmarshalKey("vdw_radius", &vdw); err != nil {
			return nil, &rerr.ConfigurationError{Source: path, Detail: fmt.Sprintf("vdw_radius: %v", err)}
		}
		out.VdWRadius = vdw
	}

	if v.IsSet("partial_charge") {
		pc := map[string]float64{}
		if err := v.UnmarshalKey("partial_charge", &pc); err != nil {
			return nil, &rerr.ConfigurationError{Source: path, Detail: fmt.Sprintf("partial_charge: %v", err)}
		}
		out.PartialCharge = pc
	}

	return out, nil
}

// seedDefaults primes viper with the default force-field values so that
// UnmarshalKey("force_field", ...) sees them even when the snapshot file
// overrides only a subset of fields.
func seedDefaults(v *viper.Viper, base *Tables) {
	v.SetDefault("force_field.ljepsilon", base.ForceField.LJEpsilon)
	v.SetDefault("force_field.hbondepsilon", base.ForceField.HBondEpsilon)
	v.SetDefault("force_field.rsigma", base.ForceField.RSigma)
	v.SetDefault("force_field.coulombk", base.ForceField.CoulombK)
	v.SetDefault("force_field.softspheren", base.ForceField.SoftSphereN)
	v.SetDefault("force_field.torsionphase", base.ForceField.TorsionPhase)
	v.SetDefault("force_field.cutoffatom", base.ForceField.CutoffAtom)
	v.SetDefault("force_field.cutoffresidue", base.ForceField.CutoffResidue)
	v.SetDefault("force_field.cutoffstart", base.ForceField.CutoffStart)
	v.SetDefault("force_field.cutoffend", base.ForceField.CutoffEnd)
	v.SetDefault("force_field.lengtherror", base.ForceField.LengthError)
}
