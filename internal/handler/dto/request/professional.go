package request

import (
	"probook/internal/usecase/queries"
)

type SearchProfessionalsRequest struct {
	Category           *string  `form:"category"`
	TravelMode         *string  `form:"travelMode" binding:"omitempty,oneof=local travel"`
	MaxHourlyRateCents *int64   `form:"maxHourlyRateCents" binding:"omitempty,gte=0"`
	LocationLat        *float64 `form:"locationLat" binding:"omitempty,gte=-90,lte=90"`
	LocationLng        *float64 `form:"locationLng" binding:"omitempty,gte=-180,lte=180"`
	MaxDistanceKm      *float64 `form:"maxDistanceKm" binding:"omitempty,gt=0"`
}

func (r SearchProfessionalsRequest) ToParams() queries.SearchProfessionalsParams {
	return queries.SearchProfessionalsParams{
		Category:           r.Category,
		TravelMode:         r.TravelMode,
		MaxHourlyRateCents: r.MaxHourlyRateCents,
		LocationLat:        r.LocationLat,
		LocationLng:        r.LocationLng,
		MaxDistanceKm:      r.MaxDistanceKm,
	}
}
