package domain

// View is a viewer-specific projection of a room, ready to be encoded as JSON.
// Engine projections are opaque and merged into it as-is.
type View map[string]any

// CurrentSeat is the placeholder seat of a viewer in a room that has not started.
type CurrentSeat struct {
	ID int `json:"id"`
}
