package queries

import (
	"context"

	"probook/internal/infra"
	"probook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrClientNotFound = errs.New("client not found")

type ClientReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ClientView, error)
}

type ClientQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ClientView, error)
}

type clientQueriesImpl struct {
	store ClientReadStore
}

func NewClientQueries(store ClientReadStore) ClientQueries {
	return &clientQueriesImpl{store: store}
}

func (q *clientQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ClientView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrClientNotFound)
		}
		return nil, err
	}
	return view, nil
}
