package vessel

import "fmt"

type Kind string

const (
	VerticalFlatVessel          Kind = "vertical-flat-vessel"
	VerticalTorisphericalVessel Kind = "vertical-torispherical-vessel"
	VerticalEllipticalVessel    Kind = "vertical-elliptical-vessel"
	VerticalHemisphericalVessel Kind = "vertical-hemispherical-vessel"
	VerticalConicalVessel       Kind = "vertical-conical-vessel"

	VerticalFlatTank          Kind = "vertical-flat-tank"
	VerticalTorisphericalTank Kind = "vertical-torispherical-tank"
	VerticalEllipticalTank    Kind = "vertical-elliptical-tank"
	VerticalHemisphericalTank Kind = "vertical-hemispherical-tank"
	VerticalConicalTank       Kind = "vertical-conical-tank"

	HorizontalFlatVessel          Kind = "horizontal-flat-vessel"
	HorizontalTorisphericalVessel Kind = "horizontal-torispherical-vessel"
	HorizontalEllipticalVessel    Kind = "horizontal-elliptical-vessel"
	HorizontalHemisphericalVessel Kind = "horizontal-hemispherical-vessel"
	HorizontalConicalVessel       Kind = "horizontal-conical-vessel"

	SphericalTank Kind = "spherical-tank"
)

type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
	Spherical  Orientation = "spherical"
)

type HeadType string

const (
	Flat          HeadType = "flat"
	Torispherical HeadType = "torispherical"
	Elliptical    HeadType = "elliptical"
	Hemispherical HeadType = "hemispherical"
	Conical       HeadType = "conical"
)

// Option is a catalog entry with the inputs a form has to ask for.
type Option struct {
	Kind                 Kind        `json:"key"`
	Label                string      `json:"label"`
	Orientation          Orientation `json:"orientation"`
	Head                 HeadType    `json:"head"`
	Tank                 bool        `json:"tank"`
	RequiresLength       bool        `json:"requires_length"`
	RequiresHeadDistance bool        `json:"requires_head_distance"`
}

var catalog = []Option{
	{VerticalFlatVessel, "Vertical Flat Vessel", Vertical, Flat, false, true, false},
	{VerticalTorisphericalVessel, "Vertical Torispherical Vessel", Vertical, Torispherical, false, true, false},
	{VerticalEllipticalVessel, "Vertical Elliptical Vessel", Vertical, Elliptical, false, true, false},
	{VerticalHemisphericalVessel, "Vertical Hemispherical Vessel", Vertical, Hemispherical, false, true, false},
	{VerticalConicalVessel, "Vertical Conical Vessel", Vertical, Conical, false, true, true},
	{VerticalFlatTank, "Vertical Flat Tank", Vertical, Flat, true, true, false},
	{VerticalTorisphericalTank, "Vertical Torispherical Tank", Vertical, Torispherical, true, true, false},
	{VerticalEllipticalTank, "Vertical Elliptical Tank", Vertical, Elliptical, true, true, false},
	{VerticalHemisphericalTank, "Vertical Hemispherical Tank", Vertical, Hemispherical, true, true, false},
	{VerticalConicalTank, "Vertical Conical Tank", Vertical, Conical, true, true, true},
	{HorizontalFlatVessel, "Horizontal Flat Vessel", Horizontal, Flat, false, true, false},
	{HorizontalTorisphericalVessel, "Horizontal Torispherical Vessel", Horizontal, Torispherical, false, true, false},
	{HorizontalEllipticalVessel, "Horizontal Elliptical Vessel", Horizontal, Elliptical, false, true, false},
	{HorizontalHemisphericalVessel, "Horizontal Hemispherical Vessel", Horizontal, Hemispherical, false, true, false},
	{HorizontalConicalVessel, "Horizontal Conical Vessel", Horizontal, Conical, false, true, true},
	{SphericalTank, "Spherical Tank", Spherical, Hemispherical, false, false, false},
}

// Catalog lists every supported vessel kind in display order.
func Catalog() []Option {
	out := make([]Option, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog entry of k.
func Lookup(k Kind) (Option, error) {
	for _, o := range catalog {
		if o.Kind == k {
			return o, nil
		}
	}
	return Option{}, fmt.Errorf("%w: %q", ErrUnknownKind, k)
}

func (k Kind) String() string { return string(k) }
