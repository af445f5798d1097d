package vessel

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"Vesselcalc/internal/calc/profile"
)

func mustNew(t *testing.T, k Kind, d Dimensions) *Vessel {
	t.Helper()
	v, err := New(k, d)
	if err != nil {
		t.Fatalf("New(%s, %+v): %v", k, d, err)
	}
	return v
}

func near(got, want, rel float64) bool {
	if want == 0 {
		return math.Abs(got) <= rel
	}
	return math.Abs(got-want) <= rel*math.Abs(want)
}

func TestScenarios(t *testing.T) {
	flat := mustNew(t, VerticalFlatVessel, Dimensions{Diameter: 3, Length: 9})
	sphere := mustNew(t, SphericalTank, Dimensions{Diameter: 3})
	hemi := mustNew(t, VerticalHemisphericalVessel, Dimensions{Diameter: 3, Length: 5})
	horizontal := mustNew(t, HorizontalFlatVessel, Dimensions{Diameter: 3, Length: 9})
	cone := mustNew(t, VerticalConicalVessel, Dimensions{Diameter: 3, Length: 5, HeadDistance: 1})

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"vertical flat shell volume", flat.ShellVolume(), 63.6172},
		{"vertical flat total volume", flat.TotalVolume(), 63.6172},
		{"vertical flat head volume", flat.HeadVolume(), 0},
		{"spherical head volume", sphere.HeadVolume(), 14.1372},
		{"spherical total volume", sphere.TotalVolume(), 14.1372},
		{"vertical hemispherical bottom head at its depth", hemi.HeadLiquidVolume(1.5), 7.0686},
		{"horizontal flat half full shell", horizontal.ShellLiquidVolume(1.5), 31.8086},
		{"vertical conical head", cone.HeadLiquidVolume(0.5), 0.2945},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 1e-4 {
				t.Errorf("got %.6f, want %.4f", tt.got, tt.want)
			}
		})
	}
}

func TestSphericalShellIsZero(t *testing.T) {
	v := mustNew(t, SphericalTank, Dimensions{Diameter: 3, Length: 7})
	if v.ShellVolume() != 0 || v.ShellSurfaceArea() != 0 {
		t.Errorf("shell = %v / %v, want 0", v.ShellVolume(), v.ShellSurfaceArea())
	}
	if v.Dimensions().Length != 0 {
		t.Errorf("Length = %v, want 0 for a sphere", v.Dimensions().Length)
	}
	if got := v.HeadSurfaceArea(); math.Abs(got-9*math.Pi) > 1e-12 {
		t.Errorf("HeadSurfaceArea() = %v, want %v", got, 9*math.Pi)
	}
}

func TestAllKinds(t *testing.T) {
	dims := Dimensions{Diameter: 3, Length: 9, HeadDistance: 1}

	for _, opt := range Catalog() {
		t.Run(string(opt.Kind), func(t *testing.T) {
			v := mustNew(t, opt.Kind, dims)
			total := v.TotalHeight()

			if got := v.LiquidVolume(0); got != 0 {
				t.Errorf("LiquidVolume(0) = %v, want 0", got)
			}
			if got := v.WettedArea(0); got != 0 {
				t.Errorf("WettedArea(0) = %v, want 0", got)
			}
			if got, want := v.LiquidVolume(total), v.TotalVolume(); !near(got, want, 1e-6) {
				t.Errorf("LiquidVolume(total) = %v, want %v", got, want)
			}
			if got, want := v.HeadWettedArea(total), v.HeadSurfaceArea(); !near(got, want, 1e-6) {
				t.Errorf("HeadWettedArea(total) = %v, want %v", got, want)
			}
			if got, want := v.ShellWettedArea(total), v.ShellSurfaceArea(); !near(got, want, 1e-6) {
				t.Errorf("ShellWettedArea(total) = %v, want %v", got, want)
			}
			if got, want := v.TotalVolume(), v.ShellVolume()+v.HeadVolume(); got != want {
				t.Errorf("TotalVolume() = %v, want %v", got, want)
			}
			if got, want := v.TotalSurfaceArea(), v.ShellSurfaceArea()+v.HeadSurfaceArea(); got != want {
				t.Errorf("TotalSurfaceArea() = %v, want %v", got, want)
			}

			prev := 0.0
			for i := 1; i <= 60; i++ {
				h := total * float64(i) / 60
				got := v.LiquidVolume(h)
				if got < prev-1e-9 || math.IsNaN(got) {
					t.Fatalf("LiquidVolume not monotonic at h=%v: %v < %v", h, got, prev)
				}
				prev = got
			}

			// Beyond the top nothing more fits.
			if got := v.LiquidVolume(2 * total); !near(got, v.TotalVolume(), 1e-9) {
				t.Errorf("LiquidVolume(2·total) = %v, want %v", got, v.TotalVolume())
			}
		})
	}
}

func TestHeightInvariants(t *testing.T) {
	dims := Dimensions{Diameter: 3, Length: 9, HeadDistance: 1}

	for _, opt := range Catalog() {
		v := mustNew(t, opt.Kind, dims)
		switch opt.Orientation {
		case Vertical:
			want := v.Dimensions().Length + v.BottomHeadHeight() + v.TopHeadHeight()
			if got := v.TotalHeight(); math.Abs(got-want) > 1e-12 {
				t.Errorf("%s: TotalHeight() = %v, want %v", opt.Kind, got, want)
			}
			if opt.Tank && v.BottomHeadHeight() != 0 {
				t.Errorf("%s: tank bottom head height = %v, want 0", opt.Kind, v.BottomHeadHeight())
			}
		case Horizontal:
			if got := v.TotalHeight(); got != 3 {
				t.Errorf("%s: TotalHeight() = %v, want 3", opt.Kind, got)
			}
			if got, want := v.TotalLength(), 9+2*v.TopHeadHeight(); got != want {
				t.Errorf("%s: TotalLength() = %v, want %v", opt.Kind, got, want)
			}
		case Spherical:
			if v.BottomHeadHeight() != 1.5 || v.TopHeadHeight() != 1.5 || v.TotalHeight() != 3 {
				t.Errorf("%s: heights = %v/%v/%v", opt.Kind, v.BottomHeadHeight(), v.TopHeadHeight(), v.TotalHeight())
			}
		}
	}
}

func TestHeadDepths(t *testing.T) {
	tori := profile.Torispherical{Diameter: 3, Fd: profile.DefaultFd, Fk: profile.DefaultFk}
	tests := []struct {
		kind Kind
		want float64
	}{
		{VerticalFlatVessel, 0},
		{VerticalHemisphericalVessel, 1.5},
		{VerticalEllipticalVessel, 0.75},
		{VerticalConicalVessel, 1},
		{VerticalTorisphericalVessel, tori.Depth()},
		{HorizontalEllipticalVessel, 0.75},
		{HorizontalTorisphericalVessel, tori.Depth()},
	}
	for _, tt := range tests {
		v := mustNew(t, tt.kind, Dimensions{Diameter: 3, Length: 9, HeadDistance: 1})
		if got := v.TopHeadHeight(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s: TopHeadHeight() = %v, want %v", tt.kind, got, tt.want)
		}
		if got := v.Dimensions().HeadDistance; math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s: HeadDistance = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestVerticalEllipticalVolume(t *testing.T) {
	// A 2:1 head holds half a sphere of the same diameter squashed to D/4.
	v := mustNew(t, VerticalEllipticalVessel, Dimensions{Diameter: 3, Length: 9})
	want := 2 * (2.0 / 3 * math.Pi * 1.5 * 1.5 * 0.75)
	if got := v.HeadVolume(); math.Abs(got-want) > 1e-9 {
		t.Errorf("HeadVolume() = %v, want %v", got, want)
	}
}

func TestHorizontalHeadSymmetry(t *testing.T) {
	const d = 3.0
	tests := []struct {
		name  string
		ends  ends
		slice profile.Section
	}{
		{"hemispherical", hemiEnds{d: d}, profile.Elliptical{Diameter: d, Length: d / 2}},
		{"elliptical", ellipEnds{d: d, s: profile.Elliptical{Diameter: d, Length: d / 4}}, profile.Elliptical{Diameter: d, Length: d / 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, h := range []float64{0.75, 1.5, 2.25, 3} {
				if got, want := tt.ends.volume(h), 2*sectionVolume(tt.slice, d, h); !near(got, want, 1e-2) {
					t.Errorf("volume(%v) = %v, want 2·single head %v", h, got, want)
				}
			}
		})
	}

	// The closed-form sphere area matches the integrated pair of heads.
	hemi := profile.Elliptical{Diameter: d, Length: d / 2}
	sphere := hemiEnds{d: d}
	for _, h := range []float64{1.5, 3} {
		if got, want := sphere.area(h), 2*sectionArea(hemi, d, h); !near(got, want, 1e-2) {
			t.Errorf("area(%v) = %v, want %v", h, got, want)
		}
	}
}

func TestSliceDepth(t *testing.T) {
	tests := []struct {
		name        string
		r, d, h     float64
		depth       float64
		full, empty bool
	}{
		{"below axis", 1, 4, 1.5, 0.5, false, false},
		{"above axis", 1, 4, 2.5, 1.5, false, false},
		{"on axis", 1, 4, 2, 1, false, false},
		{"section above surface", 1, 4, 0.5, 0, false, true},
		{"section under surface", 1, 4, 3.5, 2, true, false},
		{"apex", 0, 4, 3, 0, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dep, full, empty := slice(tt.r, tt.d, tt.h)
			if math.Abs(dep-tt.depth) > 1e-12 || full != tt.full || empty != tt.empty {
				t.Errorf("slice = (%v, %v, %v), want (%v, %v, %v)", dep, full, empty, tt.depth, tt.full, tt.empty)
			}
		})
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		dims Dimensions
		want error
	}{
		{"unknown kind", "vertical-square-vessel", Dimensions{Diameter: 3, Length: 9}, ErrUnknownKind},
		{"zero diameter", VerticalFlatVessel, Dimensions{Length: 9}, ErrInvalidDimension},
		{"negative diameter", SphericalTank, Dimensions{Diameter: -1}, ErrInvalidDimension},
		{"zero length", HorizontalFlatVessel, Dimensions{Diameter: 3}, ErrInvalidDimension},
		{"negative head distance", VerticalConicalVessel, Dimensions{Diameter: 3, Length: 9, HeadDistance: -1}, ErrInvalidDimension},
		{"negative knuckle", VerticalTorisphericalVessel, Dimensions{Diameter: 3, Length: 9, Fk: -0.1}, ErrInvalidDimension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.kind, tt.dims); !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := New(SphericalTank, Dimensions{Diameter: 3}); err != nil {
		t.Errorf("spherical tank without length: %v", err)
	}
}

func TestSetters(t *testing.T) {
	v := mustNew(t, VerticalFlatVessel, Dimensions{Diameter: 2, Length: 4})

	setters := map[string]func(float64) error{
		"high":   v.SetHighLiquidLevel,
		"low":    v.SetLowLiquidLevel,
		"liquid": v.SetLiquidLevel,
	}
	for name, set := range setters {
		if err := set(-0.1); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("%s: set(-0.1) = %v, want ErrInvalidDimension", name, err)
		}
		// No clamping against the total height.
		if err := set(100); err != nil {
			t.Errorf("%s: set(100) = %v, want nil", name, err)
		}
	}
	if got := v.Levels(); got != (Levels{High: 100, Low: 100, Liquid: 100}) {
		t.Errorf("Levels() = %+v", got)
	}

	if err := v.SetLevels(Levels{High: 3, Low: -1, Liquid: 1}); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("SetLevels() = %v, want ErrInvalidDimension", err)
	}
	if got := v.Levels().High; got != 100 {
		t.Errorf("failed SetLevels changed High to %v", got)
	}
}

func TestDerivedQuantities(t *testing.T) {
	v := mustNew(t, VerticalFlatVessel, Dimensions{Diameter: 2, Length: 4})
	if err := v.SetLevels(Levels{High: 2, Low: 1, Liquid: 3}); err != nil {
		t.Fatal(err)
	}

	if got := v.EffectiveVolume(); math.Abs(got-2*math.Pi) > 1e-12 {
		t.Errorf("EffectiveVolume() = %v, want 2π", got)
	}
	if got := v.WorkingVolume(); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("WorkingVolume() = %v, want π", got)
	}
	if got := v.EfficiencyVolume(); math.Abs(got-50) > 1e-9 {
		t.Errorf("EfficiencyVolume() = %v, want 50", got)
	}
	if got := v.CurrentVolume(); math.Abs(got-3*math.Pi) > 1e-12 {
		t.Errorf("CurrentVolume() = %v, want 3π", got)
	}
	if got := v.TangentVolume(); math.Abs(got-4*math.Pi) > 1e-12 {
		t.Errorf("TangentVolume() = %v, want 4π", got)
	}

	if got := v.OverflowVolume(); got != 0 {
		t.Errorf("OverflowVolume() without flag = %v, want 0", got)
	}
	v.SetOverflow(true)
	if got := v.OverflowVolume(); math.Abs(got-0.02*4*math.Pi) > 1e-12 {
		t.Errorf("OverflowVolume() = %v, want %v", got, 0.02*4*math.Pi)
	}

	surge, err := v.SurgeTime(1)
	if err != nil || math.Abs(surge-math.Pi) > 1e-12 {
		t.Errorf("SurgeTime(1) = %v, %v, want π", surge, err)
	}
	for _, q := range []float64{0, -2} {
		if _, err := v.SurgeTime(q); !errors.Is(err, ErrInvalidFlowRate) {
			t.Errorf("SurgeTime(%v) error = %v, want ErrInvalidFlowRate", q, err)
		}
	}
}

func TestWorkingVolumeByOrientation(t *testing.T) {
	levels := Levels{High: 2, Low: 1}
	for _, k := range []Kind{HorizontalTorisphericalVessel, HorizontalConicalVessel, SphericalTank} {
		v := mustNew(t, k, Dimensions{Diameter: 3, Length: 9, HeadDistance: 1})
		if err := v.SetLevels(levels); err != nil {
			t.Fatal(err)
		}
		want := v.LiquidVolume(2) - v.LiquidVolume(1)
		if got := v.WorkingVolume(); math.Abs(got-want) > 1e-9 {
			t.Errorf("%s: WorkingVolume() = %v, want %v", k, got, want)
		}
	}

	h := mustNew(t, HorizontalFlatVessel, Dimensions{Diameter: 3, Length: 9})
	if got, want := h.TangentVolume(), h.ShellVolume(); got != want {
		t.Errorf("horizontal TangentVolume() = %v, want %v", got, want)
	}
	s := mustNew(t, SphericalTank, Dimensions{Diameter: 3})
	if got, want := s.TangentVolume(), s.TotalVolume(); got != want {
		t.Errorf("spherical TangentVolume() = %v, want %v", got, want)
	}
}

func TestVerticalTopHead(t *testing.T) {
	v := mustNew(t, VerticalHemisphericalVessel, Dimensions{Diameter: 2, Length: 3})
	// Liquid up to the upper tangent line fills the bottom head and shell.
	tangent := v.TangentHeight()
	want := 2.0/3*math.Pi + math.Pi*3
	if got := v.LiquidVolume(tangent); math.Abs(got-want) > 1e-12 {
		t.Errorf("LiquidVolume(tangent) = %v, want %v", got, want)
	}
	// Half way into the top head the dry cap is a cap of depth 0.5.
	h := tangent + 0.5
	dry := math.Pi * 0.25 * (3 - 0.5) / 3
	want = 4.0/3*math.Pi - dry + 3*math.Pi
	if got := v.LiquidVolume(h); math.Abs(got-want) > 1e-12 {
		t.Errorf("LiquidVolume(tangent+0.5) = %v, want %v", got, want)
	}
}

func TestFlatHeadSteps(t *testing.T) {
	v := mustNew(t, VerticalFlatVessel, Dimensions{Diameter: 2, Length: 3})
	d := math.Pi
	tests := []struct {
		h    float64
		want float64
	}{
		{0, 0},
		{0.1, d},
		{2.9, d},
		{3, 2 * d},
	}
	for _, tt := range tests {
		if got := v.HeadWettedArea(tt.h); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("HeadWettedArea(%v) = %v, want %v", tt.h, got, tt.want)
		}
	}
}

func TestHeadProfile(t *testing.T) {
	tori := mustNew(t, HorizontalTorisphericalVessel, Dimensions{Diameter: 3, Length: 9})
	if n := len(slices.Collect(tori.HeadProfile())); n == 0 {
		t.Error("torispherical HeadProfile() is empty")
	}
	flat := mustNew(t, VerticalFlatVessel, Dimensions{Diameter: 3, Length: 9})
	if n := len(slices.Collect(flat.HeadProfile())); n != 0 {
		t.Errorf("flat HeadProfile() len = %d, want 0", n)
	}
}

func TestTable(t *testing.T) {
	v := mustNew(t, HorizontalEllipticalVessel, Dimensions{Diameter: 3, Length: 9})
	rows := v.Table(4)
	if len(rows) != 5 {
		t.Fatalf("len = %d, want 5", len(rows))
	}
	if rows[0].Volume != 0 || rows[0].HeightFraction != 0 {
		t.Errorf("first row = %+v", rows[0])
	}
	last := rows[4]
	if !near(last.VolumeFraction, 1, 1e-9) || !near(last.AreaFraction, 1, 1e-9) || last.Height != 3 {
		t.Errorf("last row = %+v", last)
	}
	if !near(rows[2].VolumeFraction, 0.5, 1e-6) {
		t.Errorf("half height fraction = %v, want 0.5", rows[2].VolumeFraction)
	}
	if n := len(v.Table(0)); n != DefaultTablePoints+1 {
		t.Errorf("Table(0) len = %d, want %d", n, DefaultTablePoints+1)
	}
}

func TestString(t *testing.T) {
	v := mustNew(t, SphericalTank, Dimensions{Diameter: 3})
	s := v.String()
	for _, want := range []string{"Spherical Tank", "Total volume:", "14.1372 m³"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestCatalog(t *testing.T) {
	c := Catalog()
	if len(c) != 16 {
		t.Fatalf("len = %d, want 16", len(c))
	}
	seen := map[Kind]bool{}
	for _, o := range c {
		if seen[o.Kind] {
			t.Errorf("duplicate kind %s", o.Kind)
		}
		seen[o.Kind] = true
		if o.RequiresHeadDistance != (o.Head == Conical) {
			t.Errorf("%s: RequiresHeadDistance = %v", o.Kind, o.RequiresHeadDistance)
		}
	}
	c[0].Label = "changed"
	if Catalog()[0].Label == "changed" {
		t.Error("Catalog() exposes internal state")
	}
}

func TestHorizontalEllipticalHeadArea(t *testing.T) {
	v, err := New(HorizontalEllipticalVessel, Dimensions{Diameter: 3, Length: 9})
	if err != nil {
		t.Fatal(err)
	}
	// Both heads together form an oblate spheroid with semi-axes R and D/4.
	a, c := 1.5, 0.75
	e := math.Sqrt(1 - c*c/(a*a))
	want := 2*math.Pi*a*a + math.Pi*c*c/e*math.Log((1+e)/(1-e))
	if got := v.HeadSurfaceArea(); !near(got, want, 1e-5) {
		t.Errorf("HeadSurfaceArea() = %v, want %v", got, want)
	}
	if got := v.HeadWettedArea(3); !near(got, want, 1e-5) {
		t.Errorf("HeadWettedArea(D) = %v, want %v", got, want)
	}
}
