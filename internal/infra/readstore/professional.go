package readstore

import (
	"context"
	"strconv"

	"probook/internal/infra"
	"probook/internal/infra/db"
	"probook/internal/usecase/commands"
	"probook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProfessionalReadStore struct {
	db db.DBTX
}

func NewProfessionalReadStore(dbtx db.DBTX) *ProfessionalReadStore {
	return &ProfessionalReadStore{db: dbtx}
}

func (r *ProfessionalReadStore) FindActiveByID(ctx context.Context, id uuid.UUID) (*commands.ProfessionalSnapshot, error) {
	const query = `
		SELECT id, name, category, hourly_rate_cents, travel_mode, is_active
		FROM professionals
		WHERE id = $1 AND is_active
	`

	var snapshot commands.ProfessionalSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snapshot.ID,
		&snapshot.Name,
		&snapshot.Category,
		&snapshot.HourlyRateCents,
		&snapshot.TravelMode,
		&snapshot.IsActive,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("professional not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find professional by ID", err)
	}

	return &snapshot, nil
}

// Search filters active professionals and, when coordinates are given, ranks
// by Haversine distance; otherwise cheapest rate first.
func (r *ProfessionalReadStore) Search(ctx context.Context, params queries.SearchProfessionalsParams) ([]*queries.ProfessionalSearchItem, error) {
	query := `
		SELECT id, name, email, category, hourly_rate_cents, travel_mode,
		       location_lat, location_lng`
	args := []any{}

	if params.HasLocation() {
		args = append(args, *params.LocationLat, *params.LocationLng)
		query += `,
		       (6371 * acos(
		           least(1.0, greatest(-1.0,
		               cos(radians($1)) * cos(radians(location_lat)) *
		               cos(radians(location_lng) - radians($2)) +
		               sin(radians($1)) * sin(radians(location_lat))
		           ))
		       )) AS distance_km`
	}

	query += `
		FROM professionals
		WHERE is_active`

	if params.Category != nil {
		args = append(args, *params.Category)
		query += ` AND category = $` + strconv.Itoa(len(args))
	}
	if params.TravelMode != nil {
		args = append(args, *params.TravelMode)
		query += ` AND travel_mode = $` + strconv.Itoa(len(args))
	}
	if params.MaxHourlyRateCents != nil {
		args = append(args, *params.MaxHourlyRateCents)
		query += ` AND hourly_rate_cents <= $` + strconv.Itoa(len(args))
	}

	if params.HasLocation() {
		if params.MaxDistanceKm != nil {
			args = append(args, *params.MaxDistanceKm)
			query += `
		AND (6371 * acos(
		        least(1.0, greatest(-1.0,
		            cos(radians($1)) * cos(radians(location_lat)) *
		            cos(radians(location_lng) - radians($2)) +
		            sin(radians($1)) * sin(radians(location_lat))
		        ))
		    )) <= $` + strconv.Itoa(len(args))
		}
		query += `
		ORDER BY distance_km ASC`
	} else {
		query += `
		ORDER BY hourly_rate_cents ASC`
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search professionals", err)
	}
	defer rows.Close()

	var items []*queries.ProfessionalSearchItem
	for rows.Next() {
		var item queries.ProfessionalSearchItem
		dest := []any{
			&item.ID,
			&item.Name,
			&item.Email,
			&item.Category,
			&item.HourlyRateCents,
			&item.TravelMode,
			&item.LocationLat,
			&item.LocationLng,
		}
		if params.HasLocation() {
			dest = append(dest, &item.DistanceKm)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, infra.WrapRepoErr("failed to scan professional row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate professional rows", err)
	}

	return items, nil
}
