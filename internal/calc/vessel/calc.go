package vessel

import (
	"Vesselcalc/internal/calc/profile"
)

type Input struct {
	Kind Kind `json:"kind" toml:"kind"`
	Dimensions
	Levels
	Overflow bool    `json:"overflow" toml:"overflow"`
	FlowRate float64 `json:"flow_rate,omitempty" toml:"flow_rate"`
}

type Result struct {
	Summary
	SurgeTime float64 `json:"surge_time,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

// Build constructs the vessel described by in and applies its levels.
func Build(in Input) (*Vessel, error) {
	v, err := New(in.Kind, in.Dimensions)
	if err != nil {
		return nil, err
	}
	if err := v.SetLevels(in.Levels); err != nil {
		return nil, err
	}
	v.SetOverflow(in.Overflow)
	return v, nil
}

func Calculate(in Input) (Result, error) {
	v, err := Build(in)
	if err != nil {
		return Result{}, err
	}
	res := Result{Summary: v.Summary()}
	if in.FlowRate != 0 {
		t, err := v.SurgeTime(in.FlowRate)
		if err != nil {
			return Result{}, err
		}
		res.SurgeTime = t
	}
	if h := res.TotalHeight; in.High > h || in.Low > h || in.Liquid > h {
		res.Notes = "Liquid level above total height."
	} else if in.Low > in.High {
		res.Notes = "Low liquid level above high liquid level."
	}
	return res, nil
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ProfileResult is the head outline in profile coordinates: x radial, y
// axial with the tangent line at 0 and the apex at -depth.
type ProfileResult struct {
	Kind      Kind    `json:"kind"`
	HeadDepth float64 `json:"head_depth"`
	A1        float64 `json:"a1,omitempty"`
	A2        float64 `json:"a2,omitempty"`
	Points    []Point `json:"points"`
}

func Profile(in Input) (ProfileResult, error) {
	v, err := New(in.Kind, in.Dimensions)
	if err != nil {
		return ProfileResult{}, err
	}
	res := ProfileResult{Kind: v.Kind(), HeadDepth: v.TopHeadHeight(), Points: []Point{}}
	if v.Option().Head == Torispherical {
		d := v.Dimensions()
		t := profile.Torispherical{Diameter: d.Diameter, Fd: d.Fd, Fk: d.Fk}
		if t.Check() == nil {
			res.A1, res.A2 = t.A1(), t.A2()
		}
	}
	for p := range v.HeadProfile() {
		res.Points = append(res.Points, Point{X: p.X, Y: p.Y})
	}
	return res, nil
}
