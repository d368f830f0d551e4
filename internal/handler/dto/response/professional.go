package response

import (
	"probook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProfessionalSearchResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	HourlyRateCents int64     `json:"hourlyRateCents"`
	TravelMode      string    `json:"travelMode"`
	DistanceKm      *float64  `json:"distanceKm,omitempty"`
}

func FromProfessionalSearchItems(items []*queries.ProfessionalSearchItem) []ProfessionalSearchResponse {
	responses := make([]ProfessionalSearchResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ProfessionalSearchResponse{
			ID:              item.ID,
			Name:            item.Name,
			Category:        item.Category,
			HourlyRateCents: item.HourlyRateCents,
			TravelMode:      item.TravelMode,
			DistanceKm:      item.DistanceKm,
		})
	}
	return responses
}
