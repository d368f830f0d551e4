package response

import (
	"time"

	"probook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromClientView(view *queries.ClientView) ClientResponse {
	return ClientResponse{
		ID:        view.ID,
		Name:      view.Name,
		Email:     view.Email,
		CreatedAt: view.CreatedAt,
	}
}
