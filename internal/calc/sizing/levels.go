package sizing

import (
	"fmt"

	"Vesselcalc/internal/calc/vessel"
)

type LevelInput struct {
	vessel.Input
	// SurgeTime is the required hold-up time in the time unit of FlowRate.
	SurgeTime float64 `json:"surge_time"`
}

type LevelResult struct {
	HighLiquidLevel float64 `json:"high_liquid_level"`
	WorkingVolume   float64 `json:"working_volume"`
	RequiredVolume  float64 `json:"required_volume"`
	SurgeTime       float64 `json:"surge_time"`
	OK              bool    `json:"ok"`
	Notes           string  `json:"notes"`
}

// HighLevel recommends the high liquid level that holds FlowRate·SurgeTime
// above the low liquid level. When the vessel is too small the level is
// the top of the vessel and OK is false.
func HighLevel(in LevelInput) (LevelResult, error) {
	if in.SurgeTime <= 0 {
		return LevelResult{}, fmt.Errorf("%w: surge time must be positive", ErrInvalidInput)
	}
	if in.FlowRate <= 0 {
		return LevelResult{}, vessel.ErrInvalidFlowRate
	}
	v, err := vessel.Build(in.Input)
	if err != nil {
		return LevelResult{}, err
	}

	need := in.FlowRate * in.SurgeTime
	low, top := in.Low, v.TotalHeight()
	working := func(h float64) (float64, error) {
		if err := v.SetHighLiquidLevel(h); err != nil {
			return 0, err
		}
		return v.WorkingVolume(), nil
	}

	full, err := working(max(low, top))
	if err != nil {
		return LevelResult{}, err
	}
	if low >= top || full < need {
		high, w := max(low, top), full
		return LevelResult{
			HighLiquidLevel: high,
			WorkingVolume:   w,
			RequiredVolume:  need,
			SurgeTime:       w / in.FlowRate,
			Notes:           "Vessel too small for the required surge time.",
		}, nil
	}

	lo, hi := low, top
	for i := 0; i < maxIter && hi-lo > tolerance*top; i++ {
		mid := (lo + hi) / 2
		w, err := working(mid)
		if err != nil {
			return LevelResult{}, err
		}
		if w < need {
			lo = mid
		} else {
			hi = mid
		}
	}
	w, err := working(hi)
	if err != nil {
		return LevelResult{}, err
	}
	return LevelResult{
		HighLiquidLevel: hi,
		WorkingVolume:   w,
		RequiredVolume:  need,
		SurgeTime:       w / in.FlowRate,
		OK:              true,
		Notes:           "Recommended high liquid level for surge time.",
	}, nil
}
