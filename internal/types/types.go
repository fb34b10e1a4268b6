// README: Common value types shared across modules.
package types

// ID identifies a user across sessions and conversations.
type ID string

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
