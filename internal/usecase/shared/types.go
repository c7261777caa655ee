package shared

// RoomOccupancy is the availability query's per-room snapshot: every
// administratively available room plus whether any occupying booking overlaps
// the requested stay.
type RoomOccupancy struct {
	ID       int64
	Type     string
	Price    float64
	Occupied bool
}
