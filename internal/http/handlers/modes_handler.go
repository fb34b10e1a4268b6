// README: Discovery mode handlers (free places, explorer, meet a friend).
package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"urnav/internal/modules/route"
	"urnav/internal/places"
	"urnav/internal/types"
)

const photosPerPlace = 3

// PlaceFinder covers the search and photo lookups the discovery modes need.
type PlaceFinder interface {
	Search(ctx context.Context, p places.SearchParams) ([]places.Candidate, error)
	PhotoURLs(ctx context.Context, placeID string, limit int) []string
}

type ModesHandler struct {
	finder PlaceFinder
}

func NewModesHandler(finder PlaceFinder) *ModesHandler {
	return &ModesHandler{finder: finder}
}

func queryFloat(c *gin.Context, key string, def float64) float64 {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	}
	return def
}

func queryInt(c *gin.Context, key string, def int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return def
}

func (h *ModesHandler) attachPhotos(ctx context.Context, cands []places.Candidate) {
	for i := range cands {
		if cands[i].ExternalID == "" {
			cands[i].Photos = []string{}
			continue
		}
		photos := h.finder.PhotoURLs(ctx, cands[i].ExternalID, photosPerPlace)
		if photos == nil {
			photos = []string{}
		}
		cands[i].Photos = photos
	}
}

// FreePlaces handles GET /api/modes/free-places: parks within walking range.
func (h *ModesHandler) FreePlaces(c *gin.Context) {
	lat := queryFloat(c, "lat", 26.9124)
	lng := queryFloat(c, "lon", 75.9231)

	cands, err := h.finder.Search(c.Request.Context(), places.SearchParams{
		Lat:     &lat,
		Lng:     &lng,
		Query:   "park",
		RadiusM: 3000,
	})
	if err != nil {
		// Provider failure degrades to demo places around the caller.
		writeJSON(c, http.StatusOK, gin.H{"results": freePlacesDemo(lat, lng)})
		return
	}

	if cands == nil {
		cands = []places.Candidate{}
	}
	h.attachPhotos(c.Request.Context(), cands)
	writeJSON(c, http.StatusOK, gin.H{"results": cands})
}

var explorerQueries = []string{"", "restaurant", "park", "cafe", "shop"}

// Explorer handles GET /api/modes/explorer: a wide fan of category searches
// merged into one distance-sorted list.
func (h *ModesHandler) Explorer(c *gin.Context) {
	lat := queryFloat(c, "lat", 26.9124)
	lng := queryFloat(c, "lon", 75.9231)
	radius := queryInt(c, "radius", 20000)

	seen := make(map[string]bool)
	var merged []places.Candidate
	for _, q := range explorerQueries {
		cands, err := h.finder.Search(c.Request.Context(), places.SearchParams{
			Lat:     &lat,
			Lng:     &lng,
			Query:   q,
			RadiusM: radius,
		})
		if err != nil {
			continue
		}
		for _, cand := range cands {
			if cand.ExternalID == "" || seen[cand.ExternalID] {
				continue
			}
			seen[cand.ExternalID] = true
			merged = append(merged, cand)
		}
	}

	if merged == nil {
		merged = []places.Candidate{}
	}
	route.SortByDistance(merged, func(p places.Candidate) float64 { return p.DistanceM })
	h.attachPhotos(c.Request.Context(), merged)
	writeJSON(c, http.StatusOK, gin.H{"results": merged})
}

type latLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type meetFriendReq struct {
	User     *latLon `json:"user"`
	Friend   *latLon `json:"friend"`
	Activity string  `json:"activity"`
	RadiusM  int     `json:"radius"`
}

// MeetFriend handles POST /api/modes/meet-friend: searches around the
// midpoint of two people and keeps places roughly between them.
func (h *ModesHandler) MeetFriend(c *gin.Context) {
	var req meetFriendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	user := latLon{Lat: 26.9124, Lon: 75.7873}
	if req.User != nil {
		user = *req.User
	}
	friend := latLon{Lat: 26.9154, Lon: 75.7903}
	if req.Friend != nil {
		friend = *req.Friend
	}
	radius := req.RadiusM
	if radius <= 0 {
		radius = 1500
	}

	mid := latLon{Lat: (user.Lat + friend.Lat) / 2, Lon: (user.Lon + friend.Lon) / 2}
	apartKm := route.HaversineKm(
		types.Point{Lat: user.Lat, Lng: user.Lon},
		types.Point{Lat: friend.Lat, Lng: friend.Lon},
	)

	// Keep the search between the two people: at most 80% of their
	// separation, never beyond 2km.
	searchRadius := radius
	if capped := int(apartKm * 1000 * 0.8); capped < searchRadius {
		searchRadius = capped
	}
	if searchRadius > 2000 {
		searchRadius = 2000
	}

	cands, err := h.finder.Search(c.Request.Context(), places.SearchParams{
		Lat:     &mid.Lat,
		Lng:     &mid.Lon,
		Query:   req.Activity,
		RadiusM: searchRadius,
	})
	if err != nil {
		// Provider failure degrades to demo meetup spots, unfiltered.
		writeJSON(c, http.StatusOK, gin.H{"midpoint": mid, "results": meetFriendDemo()})
		return
	}

	midPoint := types.Point{Lat: mid.Lat, Lng: mid.Lon}
	var between []places.Candidate
	for _, cand := range cands {
		if !cand.HasCoordinates() {
			continue
		}
		d := route.HaversineKm(midPoint, types.Point{Lat: cand.Lat, Lng: cand.Lng})
		if d <= apartKm*0.6 {
			between = append(between, cand)
		}
	}
	if len(between) == 0 {
		between = cands
	}
	if between == nil {
		between = []places.Candidate{}
	}

	writeJSON(c, http.StatusOK, gin.H{"midpoint": mid, "results": between})
}

// freePlacesDemo is the canned park list served when the place provider is
// unreachable, offset slightly from the caller's coordinates.
func freePlacesDemo(lat, lng float64) []places.Candidate {
	return []places.Candidate{
		{
			ExternalID: "demo-park-1",
			Name:       "Central Park",
			Category:   "Park",
			DistanceM:  400,
			Rating:     4.3,
			Lat:        lat + 0.001,
			Lng:        lng + 0.001,
			Photos:     []string{"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=400&h=300&fit=crop"},
		},
		{
			ExternalID: "demo-park-2",
			Name:       "Garden Square",
			Category:   "Garden",
			DistanceM:  600,
			Rating:     4.1,
			Lat:        lat - 0.001,
			Lng:        lng - 0.001,
			Photos:     []string{"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=300&fit=crop"},
		},
		{
			ExternalID: "demo-park-3",
			Name:       "Riverside Walk",
			Category:   "Walking Trail",
			DistanceM:  800,
			Rating:     4.5,
			Lat:        lat + 0.002,
			Lng:        lng + 0.002,
			Photos:     []string{"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop"},
		},
	}
}

func meetFriendDemo() []places.Candidate {
	return []places.Candidate{
		{
			ExternalID: "demo-mf-1",
			Name:       "Midpoint Café",
			Category:   "Cafe",
			DistanceM:  600,
			Rating:     4.4,
			Photos:     []string{"https://images.unsplash.com/photo-1554118811-1e0d58224f24?w=400&h=300&fit=crop"},
		},
		{
			ExternalID: "demo-mf-2",
			Name:       "City Park Meetup Spot",
			Category:   "Park",
			DistanceM:  900,
			Rating:     4.5,
			Photos:     []string{"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=400&h=300&fit=crop"},
		},
	}
}
