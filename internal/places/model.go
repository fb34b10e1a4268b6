// README: Search result model and provider payload mapping.
package places

import "github.com/tidwall/gjson"

// Candidate is a transient search result. It is consumed within one
// resolution or mode request and never persisted.
type Candidate struct {
	Name           string  `json:"name"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
	Category       string  `json:"category"`
	DistanceM      float64 `json:"distance"`
	Rating         float64 `json:"rating"`
	ExternalID     string  `json:"fsq_id"`
	SourceCategory string  `json:"search_category,omitempty"`
	Photos         []string `json:"photos,omitempty"`
}

// HasCoordinates reports whether the provider returned a usable position.
// The provider sometimes omits geocodes entirely; such results are useless
// for routing and are dropped.
func (c Candidate) HasCoordinates() bool {
	return c.Lat != 0 && c.Lng != 0
}

// candidateFromResult maps one provider result object onto a Candidate.
// Field names vary across provider API versions (latitude vs lat), so both
// spellings are tried.
func candidateFromResult(r gjson.Result) Candidate {
	lat := r.Get("latitude")
	if !lat.Exists() {
		lat = r.Get("lat")
	}
	lng := r.Get("longitude")
	if !lng.Exists() {
		lng = r.Get("lon")
	}

	category := "Place"
	if cat := r.Get("categories.0.name"); cat.Exists() && cat.String() != "" {
		category = cat.String()
	}

	return Candidate{
		Name:       firstNonEmpty(r.Get("name").String(), "Unknown"),
		Lat:        lat.Float(),
		Lng:        lng.Float(),
		Category:   category,
		DistanceM:  r.Get("distance").Float(),
		Rating:     r.Get("rating").Float(),
		ExternalID: r.Get("fsq_place_id").String(),
	}
}

func firstNonEmpty(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
