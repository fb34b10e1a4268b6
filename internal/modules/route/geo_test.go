// README: Geo math tests.
package route

import (
	"math"
	"testing"

	"urnav/internal/types"
)

// TestHaversineKm_KnownDistances checks against externally computed distances.
func TestHaversineKm_KnownDistances(t *testing.T) {
	cases := []struct {
		name   string
		a, b   types.Point
		wantKm float64
		tolKm  float64
	}{
		{
			name:   "same point",
			a:      types.Point{Lat: 26.9124, Lng: 75.7873},
			b:      types.Point{Lat: 26.9124, Lng: 75.7873},
			wantKm: 0,
			tolKm:  0.001,
		},
		{
			name:   "jaipur to delhi",
			a:      types.Point{Lat: 26.9124, Lng: 75.7873},
			b:      types.Point{Lat: 28.7041, Lng: 77.1025},
			wantKm: 238,
			tolKm:  5,
		},
		{
			name:   "one degree latitude",
			a:      types.Point{Lat: 0, Lng: 0},
			b:      types.Point{Lat: 1, Lng: 0},
			wantKm: 111.2,
			tolKm:  0.5,
		},
	}
	for _, tc := range cases {
		got := HaversineKm(tc.a, tc.b)
		if math.Abs(got-tc.wantKm) > tc.tolKm {
			t.Errorf("%s: got %.2f km, want %.2f +/- %.2f", tc.name, got, tc.wantKm, tc.tolKm)
		}
	}
}

// TestHaversineKm_Symmetric verifies distance does not depend on direction.
func TestHaversineKm_Symmetric(t *testing.T) {
	a := types.Point{Lat: 26.9124, Lng: 75.7873}
	b := types.Point{Lat: 32.2432, Lng: 77.1892}
	if d1, d2 := HaversineKm(a, b), HaversineKm(b, a); math.Abs(d1-d2) > 1e-9 {
		t.Errorf("asymmetric distances: %v vs %v", d1, d2)
	}
}

func TestSortByDistance(t *testing.T) {
	items := []float64{5, 1, 4, 2, 3}
	SortByDistance(items, func(v float64) float64 { return v })
	for i := 1; i < len(items); i++ {
		if items[i-1] > items[i] {
			t.Fatalf("not sorted: %v", items)
		}
	}
}

// TestSortByDistance_Stable verifies equal keys keep their original order.
func TestSortByDistance_Stable(t *testing.T) {
	type tagged struct {
		d   float64
		tag string
	}
	items := []tagged{{2, "a"}, {1, "x"}, {2, "b"}, {2, "c"}}
	SortByDistance(items, func(v tagged) float64 { return v.d })
	if items[0].tag != "x" || items[1].tag != "a" || items[2].tag != "b" || items[3].tag != "c" {
		t.Errorf("unexpected order: %v", items)
	}
}
