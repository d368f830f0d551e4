package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProfessionalSearchItem mirrors the search projection: rate-ordered by
// default, distance-ordered when coordinates are supplied.
type ProfessionalSearchItem struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Category        string    `json:"category"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	TravelMode      string    `json:"travel_mode"`
	LocationLat     float64   `json:"location_lat"`
	LocationLng     float64   `json:"location_lng"`
	DistanceKm      *float64  `json:"distance_km,omitempty"`
}

type SearchProfessionalsParams struct {
	Category           *string
	TravelMode         *string
	MaxHourlyRateCents *int64
	LocationLat        *float64
	LocationLng        *float64
	MaxDistanceKm      *float64
}

func (p SearchProfessionalsParams) HasLocation() bool {
	return p.LocationLat != nil && p.LocationLng != nil
}

type ProfessionalSearchStore interface {
	Search(ctx context.Context, params SearchProfessionalsParams) ([]*ProfessionalSearchItem, error)
}

type ProfessionalQueries interface {
	Search(ctx context.Context, params SearchProfessionalsParams) ([]*ProfessionalSearchItem, error)
}

type professionalQueriesImpl struct {
	store ProfessionalSearchStore
}

func NewProfessionalQueries(store ProfessionalSearchStore) ProfessionalQueries {
	return &professionalQueriesImpl{store: store}
}

func (q *professionalQueriesImpl) Search(ctx context.Context, params SearchProfessionalsParams) ([]*ProfessionalSearchItem, error) {
	return q.store.Search(ctx, params)
}

// ClientView is the directory projection for a client.
type ClientView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
