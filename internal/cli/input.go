package cli

import (
	"fmt"

	"Vesselcalc/internal/calc/vessel"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// vesselFlags binds the vessel definition flags of a command.
type vesselFlags struct {
	file string
	in   vessel.Input
	kind string
}

func (f *vesselFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "TOML vessel definition")
	fl.StringVarP(&f.kind, "kind", "k", "", "vessel kind (see the catalog command)")
	fl.Float64VarP(&f.in.Diameter, "diameter", "d", 0, "inside diameter, m")
	fl.Float64VarP(&f.in.Length, "length", "l", 0, "tangent-to-tangent length, m")
	fl.Float64Var(&f.in.HeadDistance, "head-distance", 0, "conical head depth, m")
	fl.Float64Var(&f.in.Fd, "fd", 0, "dish radius factor")
	fl.Float64Var(&f.in.Fk, "fk", 0, "knuckle radius factor")
	fl.Float64Var(&f.in.High, "high", 0, "high liquid level, m")
	fl.Float64Var(&f.in.Low, "low", 0, "low liquid level, m")
	fl.Float64Var(&f.in.Liquid, "liquid", 0, "liquid level, m")
	fl.BoolVar(&f.in.Overflow, "overflow", false, "reserve overflow volume")
	fl.Float64Var(&f.in.FlowRate, "flow-rate", 0, "outlet flow rate, m³ per time unit")
}

// input merges the file, if any, with the flags that were set explicitly.
func (f *vesselFlags) input(cmd *cobra.Command) (vessel.Input, error) {
	f.in.Kind = vessel.Kind(f.kind)
	if f.file == "" {
		return f.in, nil
	}
	var in vessel.Input
	if _, err := toml.DecodeFile(f.file, &in); err != nil {
		return vessel.Input{}, fmt.Errorf("read %s: %w", f.file, err)
	}
	fl := cmd.Flags()
	set := func(name string, dst *float64, v float64) {
		if fl.Changed(name) {
			*dst = v
		}
	}
	if fl.Changed("kind") {
		in.Kind = f.in.Kind
	}
	set("diameter", &in.Diameter, f.in.Diameter)
	set("length", &in.Length, f.in.Length)
	set("head-distance", &in.HeadDistance, f.in.HeadDistance)
	set("fd", &in.Fd, f.in.Fd)
	set("fk", &in.Fk, f.in.Fk)
	set("high", &in.High, f.in.High)
	set("low", &in.Low, f.in.Low)
	set("liquid", &in.Liquid, f.in.Liquid)
	set("flow-rate", &in.FlowRate, f.in.FlowRate)
	if fl.Changed("overflow") {
		in.Overflow = f.in.Overflow
	}
	return in, nil
}
