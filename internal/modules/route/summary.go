// README: Route summary; reduces an ordered stop list to distance and ETA.
package route

import (
	"math"

	"urnav/internal/types"
)

// walkingSpeedKmh is the fixed speed assumption behind every ETA. There is no
// road-network routing here; distances are great-circle.
const walkingSpeedKmh = 4.5

type Summary struct {
	DistanceKm float64 `json:"distance_km"`
	ETAMinutes int     `json:"eta_min"`
}

// Summarize computes the total great-circle distance over consecutive stops
// and a walking-time estimate. Empty and single-stop lists summarize to zero.
func Summarize(stops []types.Point) Summary {
	var distanceKm float64
	for i := 0; i+1 < len(stops); i++ {
		distanceKm += HaversineKm(stops[i], stops[i+1])
	}
	return Summary{
		DistanceKm: math.Round(distanceKm*10) / 10,
		ETAMinutes: walkMinutes(distanceKm),
	}
}

// walkMinutes converts a distance to whole minutes at walking speed,
// truncating the fraction.
func walkMinutes(distanceKm float64) int {
	return int(distanceKm / walkingSpeedKmh * 60)
}

// SummarizeFrom prepends origin as the implicit first stop.
func SummarizeFrom(origin types.Point, stops []types.Point) Summary {
	all := make([]types.Point, 0, len(stops)+1)
	all = append(all, origin)
	all = append(all, stops...)
	return Summarize(all)
}
