package vessel

import (
	"fmt"
	"strings"
)

// Summary is a snapshot of every derived quantity at the current levels.
type Summary struct {
	Kind       Kind       `json:"kind"`
	Label      string     `json:"label"`
	Dimensions Dimensions `json:"dimensions"`
	Levels     Levels     `json:"levels"`
	Overflow   bool       `json:"overflow"`

	TotalHeight      float64 `json:"total_height"`
	TotalLength      float64 `json:"total_length"`
	TangentHeight    float64 `json:"tangent_height"`
	BottomHeadHeight float64 `json:"bottom_head_height"`
	TopHeadHeight    float64 `json:"top_head_height"`

	HeadVolume   float64 `json:"head_volume"`
	ShellVolume  float64 `json:"shell_volume"`
	TotalVolume  float64 `json:"total_volume"`
	HeadArea     float64 `json:"head_surface_area"`
	ShellArea    float64 `json:"shell_surface_area"`
	TotalArea    float64 `json:"total_surface_area"`
	LiquidVolume float64 `json:"liquid_volume"`
	WettedArea   float64 `json:"wetted_area"`

	EffectiveVolume  float64 `json:"effective_volume"`
	WorkingVolume    float64 `json:"working_volume"`
	TangentVolume    float64 `json:"tangent_volume"`
	EfficiencyVolume float64 `json:"efficiency_volume"`
	OverflowVolume   float64 `json:"overflow_volume"`
}

func (v *Vessel) Summary() Summary {
	return Summary{
		Kind:       v.opt.Kind,
		Label:      v.opt.Label,
		Dimensions: v.dims,
		Levels:     v.levels,
		Overflow:   v.overflow,

		TotalHeight:      v.TotalHeight(),
		TotalLength:      v.TotalLength(),
		TangentHeight:    v.TangentHeight(),
		BottomHeadHeight: v.BottomHeadHeight(),
		TopHeadHeight:    v.TopHeadHeight(),

		HeadVolume:   v.HeadVolume(),
		ShellVolume:  v.ShellVolume(),
		TotalVolume:  v.TotalVolume(),
		HeadArea:     v.HeadSurfaceArea(),
		ShellArea:    v.ShellSurfaceArea(),
		TotalArea:    v.TotalSurfaceArea(),
		LiquidVolume: v.CurrentVolume(),
		WettedArea:   v.CurrentWettedArea(),

		EffectiveVolume:  v.EffectiveVolume(),
		WorkingVolume:    v.WorkingVolume(),
		TangentVolume:    v.TangentVolume(),
		EfficiencyVolume: v.EfficiencyVolume(),
		OverflowVolume:   v.OverflowVolume(),
	}
}

// Lines is the datasheet as label/value pairs, in print order.
func (s Summary) Lines() [][2]string {
	m := func(x float64) string { return fmt.Sprintf("%.4f m", x) }
	m2 := func(x float64) string { return fmt.Sprintf("%.4f m²", x) }
	m3 := func(x float64) string { return fmt.Sprintf("%.4f m³", x) }
	return [][2]string{
		{"Diameter", m(s.Dimensions.Diameter)},
		{"Length", m(s.Dimensions.Length)},
		{"Head distance", m(s.Dimensions.HeadDistance)},
		{"Total height", m(s.TotalHeight)},
		{"Total length", m(s.TotalLength)},
		{"High liquid level", m(s.Levels.High)},
		{"Low liquid level", m(s.Levels.Low)},
		{"Liquid level", m(s.Levels.Liquid)},
		{"Head volume", m3(s.HeadVolume)},
		{"Shell volume", m3(s.ShellVolume)},
		{"Total volume", m3(s.TotalVolume)},
		{"Head surface area", m2(s.HeadArea)},
		{"Shell surface area", m2(s.ShellArea)},
		{"Total surface area", m2(s.TotalArea)},
		{"Liquid volume", m3(s.LiquidVolume)},
		{"Wetted area", m2(s.WettedArea)},
		{"Effective volume", m3(s.EffectiveVolume)},
		{"Working volume", m3(s.WorkingVolume)},
		{"Tangent volume", m3(s.TangentVolume)},
		{"Efficiency", fmt.Sprintf("%.2f %%", s.EfficiencyVolume)},
		{"Overflow volume", m3(s.OverflowVolume)},
	}
}

// String renders the vessel as a plain-text datasheet.
func (v *Vessel) String() string {
	s := v.Summary()
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", s.Label)
	for _, l := range s.Lines() {
		fmt.Fprintf(&b, "  %-20s %s\n", l[0]+":", l[1])
	}
	return b.String()
}
