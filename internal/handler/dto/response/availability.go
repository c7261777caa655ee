package response

import "hotel-reservas/internal/usecase/readmodel"

type CategoryAvailability struct {
	Available bool    `json:"available"`
	Price     float64 `json:"price"`
	Rooms     int     `json:"rooms"`
}

// AvailabilityResponse is keyed by presentation category name, flat as the
// booking frontend expects.
type AvailabilityResponse map[string]CategoryAvailability

func FromAvailabilityRM(rm map[string]readmodel.CategoryAvailabilityRM) AvailabilityResponse {
	resp := make(AvailabilityResponse, len(rm))
	for category, entry := range rm {
		resp[category] = CategoryAvailability{
			Available: entry.Available,
			Price:     entry.Price,
			Rooms:     entry.Rooms,
		}
	}
	return resp
}
