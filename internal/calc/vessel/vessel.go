// Package vessel computes volumes, surface areas and partial-fill quantities
// for the catalog of process vessels and storage tanks: vertical and
// horizontal cylinders with flat, torispherical, elliptical, hemispherical or
// conical heads, and the spherical tank.
//
// A Vessel is built once from its shape dimensions. Only the liquid levels
// change afterwards. Every derived quantity is recomputed on read, so reads
// may run concurrently while setters must not.
package vessel

import (
	"errors"
	"fmt"
	"iter"

	"Vesselcalc/internal/calc/profile"

	"gonum.org/v1/gonum/spatial/r2"
)

// OverflowFraction is the share of the total volume reserved for overflow.
const OverflowFraction = 0.02

var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrUnknownKind      = errors.New("unknown vessel kind")
	ErrInvalidFlowRate  = errors.New("flow rate must be positive")
)

// Dimensions are the shape-defining inputs. HeadDistance is the head depth
// of conical heads and is ignored by heads whose depth follows from D.
// Zero Fd or Fk selects the standard flanged-and-dished factors.
type Dimensions struct {
	Diameter     float64 `json:"diameter" toml:"diameter"`
	Length       float64 `json:"length" toml:"length"`
	HeadDistance float64 `json:"head_distance" toml:"head_distance"`
	Fd           float64 `json:"fd,omitempty" toml:"fd"`
	Fk           float64 `json:"fk,omitempty" toml:"fk"`
}

// Levels are liquid heights measured from the lowest point of the vessel.
type Levels struct {
	High   float64 `json:"high_liquid_level" toml:"high_liquid_level"`
	Low    float64 `json:"low_liquid_level" toml:"low_liquid_level"`
	Liquid float64 `json:"liquid_level" toml:"liquid_level"`
}

type Vessel struct {
	opt      Option
	dims     Dimensions
	geo      Geometry
	levels   Levels
	overflow bool
}

// New validates dims and builds the vessel of the given kind.
func New(kind Kind, dims Dimensions) (*Vessel, error) {
	opt, err := Lookup(kind)
	if err != nil {
		return nil, err
	}
	if err := validate(opt, dims); err != nil {
		return nil, err
	}
	if dims.Fd == 0 {
		dims.Fd = profile.DefaultFd
	}
	if dims.Fk == 0 {
		dims.Fk = profile.DefaultFk
	}
	if opt.Orientation == Spherical {
		dims.Length = 0
	}

	v := &Vessel{opt: opt, dims: dims}
	switch opt.Orientation {
	case Vertical:
		var bottom head = flatHead{d: dims.Diameter}
		top := verticalHead(opt.Head, dims)
		if !opt.Tank {
			bottom = top
		}
		v.geo = &verticalGeometry{d: dims.Diameter, l: dims.Length, bottom: bottom, top: top}
	case Horizontal:
		v.geo = &horizontalGeometry{d: dims.Diameter, l: dims.Length, ends: horizontalEnds(opt.Head, dims)}
	default:
		v.geo = &sphericalGeometry{d: dims.Diameter}
	}
	v.dims.HeadDistance = v.geo.TopHeadHeight()
	return v, nil
}

func validate(opt Option, d Dimensions) error {
	switch {
	case d.Diameter <= 0:
		return fmt.Errorf("%w: diameter must be positive", ErrInvalidDimension)
	case opt.RequiresLength && d.Length <= 0:
		return fmt.Errorf("%w: length must be positive", ErrInvalidDimension)
	case d.HeadDistance < 0:
		return fmt.Errorf("%w: head distance must not be negative", ErrInvalidDimension)
	case d.Fd < 0 || d.Fk < 0:
		return fmt.Errorf("%w: head factors must not be negative", ErrInvalidDimension)
	}
	return nil
}

func verticalHead(h HeadType, d Dimensions) head {
	switch h {
	case Torispherical:
		return toriHead{t: profile.Torispherical{Diameter: d.Diameter, Fd: d.Fd, Fk: d.Fk}}
	case Elliptical:
		return ellipHead{d: d.Diameter}
	case Hemispherical:
		return hemiHead{d: d.Diameter}
	case Conical:
		return coneHead{d: d.Diameter, h: d.HeadDistance}
	}
	return flatHead{d: d.Diameter}
}

func horizontalEnds(h HeadType, d Dimensions) ends {
	switch h {
	case Torispherical:
		return sectionEnds{d: d.Diameter, s: profile.Torispherical{Diameter: d.Diameter, Fd: d.Fd, Fk: d.Fk}}
	case Elliptical:
		return ellipEnds{d: d.Diameter, s: profile.Elliptical{Diameter: d.Diameter, Length: d.Diameter / 4}}
	case Hemispherical:
		return hemiEnds{d: d.Diameter}
	case Conical:
		return sectionEnds{d: d.Diameter, s: profile.Conical{Diameter: d.Diameter, Length: d.HeadDistance}}
	}
	return flatEnds{d: d.Diameter}
}

func (v *Vessel) Kind() Kind     { return v.opt.Kind }
func (v *Vessel) Option() Option { return v.opt }

// Dimensions returns the effective dimensions: defaults filled in and
// HeadDistance set to the resolved head depth.
func (v *Vessel) Dimensions() Dimensions { return v.dims }
func (v *Vessel) Geometry() Geometry     { return v.geo }
func (v *Vessel) Levels() Levels         { return v.levels }
func (v *Vessel) Overflow() bool         { return v.overflow }

func checkLevel(name string, h float64) error {
	if h < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidDimension, name)
	}
	return nil
}

func (v *Vessel) SetHighLiquidLevel(h float64) error {
	if err := checkLevel("high liquid level", h); err != nil {
		return err
	}
	v.levels.High = h
	return nil
}

func (v *Vessel) SetLowLiquidLevel(h float64) error {
	if err := checkLevel("low liquid level", h); err != nil {
		return err
	}
	v.levels.Low = h
	return nil
}

func (v *Vessel) SetLiquidLevel(h float64) error {
	if err := checkLevel("liquid level", h); err != nil {
		return err
	}
	v.levels.Liquid = h
	return nil
}

// SetLevels applies all three levels or none of them.
func (v *Vessel) SetLevels(l Levels) error {
	for _, c := range []struct {
		name string
		h    float64
	}{{"high liquid level", l.High}, {"low liquid level", l.Low}, {"liquid level", l.Liquid}} {
		if err := checkLevel(c.name, c.h); err != nil {
			return err
		}
	}
	v.levels = l
	return nil
}

func (v *Vessel) SetOverflow(on bool) { v.overflow = on }

func (v *Vessel) TotalHeight() float64      { return v.geo.TotalHeight() }
func (v *Vessel) TangentHeight() float64    { return v.geo.TangentHeight() }
func (v *Vessel) BottomHeadHeight() float64 { return v.geo.BottomHeadHeight() }
func (v *Vessel) TopHeadHeight() float64    { return v.geo.TopHeadHeight() }

// TotalLength is the overall axial length of a horizontal vessel, or the
// total height otherwise.
func (v *Vessel) TotalLength() float64 {
	if v.opt.Orientation == Horizontal {
		return v.dims.Length + v.geo.BottomHeadHeight() + v.geo.TopHeadHeight()
	}
	return v.TotalHeight()
}

func (v *Vessel) HeadVolume() float64       { return v.geo.HeadVolume() }
func (v *Vessel) ShellVolume() float64      { return v.geo.ShellVolume() }
func (v *Vessel) TotalVolume() float64      { return v.geo.ShellVolume() + v.geo.HeadVolume() }
func (v *Vessel) HeadSurfaceArea() float64  { return v.geo.HeadSurfaceArea() }
func (v *Vessel) ShellSurfaceArea() float64 { return v.geo.ShellSurfaceArea() }

func (v *Vessel) TotalSurfaceArea() float64 {
	return v.geo.ShellSurfaceArea() + v.geo.HeadSurfaceArea()
}

func (v *Vessel) HeadLiquidVolume(h float64) float64  { return v.geo.HeadLiquidVolume(h) }
func (v *Vessel) ShellLiquidVolume(h float64) float64 { return v.geo.ShellLiquidVolume(h) }
func (v *Vessel) HeadWettedArea(h float64) float64    { return v.geo.HeadWettedArea(h) }
func (v *Vessel) ShellWettedArea(h float64) float64   { return v.geo.ShellWettedArea(h) }

func (v *Vessel) LiquidVolume(h float64) float64 {
	return v.geo.ShellLiquidVolume(h) + v.geo.HeadLiquidVolume(h)
}

func (v *Vessel) WettedArea(h float64) float64 {
	return v.geo.ShellWettedArea(h) + v.geo.HeadWettedArea(h)
}

// EffectiveVolume is the liquid volume at the high liquid level.
func (v *Vessel) EffectiveVolume() float64 { return v.LiquidVolume(v.levels.High) }

// WorkingVolume is the liquid volume between the low and high levels.
func (v *Vessel) WorkingVolume() float64 {
	return v.geo.WorkingVolume(v.levels.Low, v.levels.High)
}

// TangentVolume is the liquid volume up to the upper tangent line.
func (v *Vessel) TangentVolume() float64 { return v.geo.TangentVolume() }

// EfficiencyVolume is the effective volume as a percentage of the total.
func (v *Vessel) EfficiencyVolume() float64 {
	total := v.TotalVolume()
	if total == 0 {
		return 0
	}
	return v.EffectiveVolume() / total * 100
}

func (v *Vessel) OverflowVolume() float64 {
	if !v.overflow {
		return 0
	}
	return v.TotalVolume() * OverflowFraction
}

func (v *Vessel) CurrentVolume() float64     { return v.LiquidVolume(v.levels.Liquid) }
func (v *Vessel) CurrentWettedArea() float64 { return v.WettedArea(v.levels.Liquid) }

// SurgeTime is the time the working volume lasts at flowRate, in the time
// unit of the rate.
func (v *Vessel) SurgeTime(flowRate float64) (float64, error) {
	if flowRate <= 0 {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidFlowRate, flowRate)
	}
	return v.WorkingVolume() / flowRate, nil
}

// HeadProfile is the torispherical head outline, empty for other heads.
func (v *Vessel) HeadProfile() iter.Seq[r2.Vec] {
	if v.opt.Head != Torispherical {
		return func(func(r2.Vec) bool) {}
	}
	t := profile.Torispherical{Diameter: v.dims.Diameter, Fd: v.dims.Fd, Fk: v.dims.Fk}
	return t.Points(profile.KnuckleSteps, profile.DishSteps)
}
