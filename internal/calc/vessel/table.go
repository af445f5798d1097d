package vessel

// DefaultTablePoints is the number of intervals of a capacity table.
const DefaultTablePoints = 10

// TableRow is one line of a capacity (strapping) table.
type TableRow struct {
	Height         float64 `json:"height"`
	HeightFraction float64 `json:"height_fraction"`
	Volume         float64 `json:"volume"`
	VolumeFraction float64 `json:"volume_fraction"`
	WettedArea     float64 `json:"wetted_area"`
	AreaFraction   float64 `json:"area_fraction"`
}

// Table samples the fill curve at n+1 evenly spaced heights from empty to
// full. n <= 0 selects DefaultTablePoints.
func (v *Vessel) Table(n int) []TableRow {
	if n <= 0 {
		n = DefaultTablePoints
	}
	total := v.TotalHeight()
	vol, area := v.TotalVolume(), v.TotalSurfaceArea()

	rows := make([]TableRow, 0, n+1)
	for i := 0; i <= n; i++ {
		f := float64(i) / float64(n)
		h := f * total
		r := TableRow{
			Height:         h,
			HeightFraction: f,
			Volume:         v.LiquidVolume(h),
			WettedArea:     v.WettedArea(h),
		}
		if vol > 0 {
			r.VolumeFraction = r.Volume / vol
		}
		if area > 0 {
			r.AreaFraction = r.WettedArea / area
		}
		rows = append(rows, r)
	}
	return rows
}
