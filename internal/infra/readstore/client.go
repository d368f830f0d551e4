package readstore

import (
	"context"

	"probook/internal/infra"
	"probook/internal/infra/db"
	"probook/internal/usecase/commands"
	"probook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClientReadStore struct {
	db db.DBTX
}

func NewClientReadStore(dbtx db.DBTX) *ClientReadStore {
	return &ClientReadStore{db: dbtx}
}

func (r *ClientReadStore) FindActiveByID(ctx context.Context, id uuid.UUID) (*commands.ClientSnapshot, error) {
	const query = `
		SELECT id, name, is_active
		FROM clients
		WHERE id = $1 AND is_active
	`

	var snapshot commands.ClientSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&snapshot.ID, &snapshot.Name, &snapshot.IsActive)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client by ID", err)
	}

	return &snapshot, nil
}

func (r *ClientReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ClientView, error) {
	const query = `
		SELECT id, name, email, is_active, created_at
		FROM clients
		WHERE id = $1 AND is_active
	`

	var view queries.ClientView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID,
		&view.Name,
		&view.Email,
		&view.IsActive,
		&view.CreatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client by ID", err)
	}

	return &view, nil
}
