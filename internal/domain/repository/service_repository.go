package repository

import (
	"context"

	"github.com/alam-gir/agency/internal/domain/entity"
)

// ServiceUpdate carries the optional fields of a partial service update;
// nil means "leave unchanged".
type ServiceUpdate struct {
	Title            *string
	Description      *string
	ShortDescription *string
	Status           *entity.Status
	CategoryID       *string
	PackageID        *string
}

type ServiceRepository interface {
	Create(ctx context.Context, s *entity.Service) error
	List(ctx context.Context) ([]entity.Service, error)
	GetByID(ctx context.Context, id string) (*entity.Service, error)
	Update(ctx context.Context, id string, upd ServiceUpdate) error
	SetIcon(ctx context.Context, id, assetID string) error
}
