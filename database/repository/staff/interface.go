package staffRepo

import (
	"context"

	"clinicsched/models"
)

// StaffRepository abstracts staff persistence.
type StaffRepository interface {
	Create(ctx context.Context, staff *models.Staff) error
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
	// List returns all staff ordered by display name so the selection order
	// is stable across renders.
	List(ctx context.Context) ([]models.Staff, error)
	Delete(ctx context.Context, id string) error
}
