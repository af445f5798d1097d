// Package sizing picks vessel dimensions and levels for a duty: the
// diameter that holds a required volume, and the high liquid level that
// gives a required surge time.
package sizing

import (
	"errors"
	"fmt"
	"math"

	"Vesselcalc/internal/calc/vessel"
)

const (
	DefaultRatio     = 3.0
	DefaultConeRatio = 0.5
	tolerance        = 1e-9
	maxIter          = 200
)

var ErrInvalidInput = errors.New("invalid input")

type AutoInput struct {
	Kind vessel.Kind `json:"kind"`
	// Volume is the required total volume in m³.
	Volume float64 `json:"volume"`
	// Ratio is the shell length over the diameter.
	Ratio float64 `json:"ratio"`
	// ConeRatio is the conical head depth over the diameter.
	ConeRatio float64 `json:"cone_ratio"`
	Fd        float64 `json:"fd,omitempty"`
	Fk        float64 `json:"fk,omitempty"`
}

type AutoResult struct {
	Dimensions  vessel.Dimensions `json:"dimensions"`
	TotalHeight float64           `json:"total_height"`
	TotalVolume float64           `json:"total_volume"`
	Iterations  int               `json:"iterations"`
	Notes       string            `json:"notes"`
}

func (in AutoInput) dims(d float64) vessel.Dimensions {
	return vessel.Dimensions{
		Diameter:     d,
		Length:       in.Ratio * d,
		HeadDistance: in.ConeRatio * d,
		Fd:           in.Fd,
		Fk:           in.Fk,
	}
}

func (in AutoInput) volume(d float64) (float64, error) {
	v, err := vessel.New(in.Kind, in.dims(d))
	if err != nil {
		return 0, err
	}
	return v.TotalVolume(), nil
}

// Auto finds the diameter whose vessel, at the given length ratio, holds
// exactly the required volume.
func Auto(in AutoInput) (AutoResult, error) {
	if in.Volume <= 0 || in.Ratio < 0 || in.ConeRatio < 0 {
		return AutoResult{}, fmt.Errorf("%w: volume must be positive", ErrInvalidInput)
	}
	opt, err := vessel.Lookup(in.Kind)
	if err != nil {
		return AutoResult{}, err
	}
	if in.Ratio == 0 {
		in.Ratio = DefaultRatio
	}
	if in.ConeRatio == 0 && opt.RequiresHeadDistance {
		in.ConeRatio = DefaultConeRatio
	}

	lo, hi := 0.0, 1.0
	for {
		v, err := in.volume(hi)
		if err != nil {
			return AutoResult{}, err
		}
		if v >= in.Volume {
			break
		}
		lo, hi = hi, hi*2
		if math.IsInf(hi, 0) {
			return AutoResult{}, fmt.Errorf("%w: volume out of range", ErrInvalidInput)
		}
	}

	iter := 0
	for ; iter < maxIter && hi-lo > tolerance*hi; iter++ {
		mid := (lo + hi) / 2
		v, err := in.volume(mid)
		if err != nil {
			return AutoResult{}, err
		}
		if v < in.Volume {
			lo = mid
		} else {
			hi = mid
		}
	}

	v, err := vessel.New(in.Kind, in.dims(hi))
	if err != nil {
		return AutoResult{}, err
	}
	return AutoResult{
		Dimensions:  v.Dimensions(),
		TotalHeight: v.TotalHeight(),
		TotalVolume: v.TotalVolume(),
		Iterations:  iter,
		Notes:       "Auto-sized vessel (diameter selected to hold the required volume).",
	}, nil
}
