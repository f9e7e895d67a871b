package repository

import (
	"context"

	"github.com/alam-gir/agency/internal/domain/entity"
)

type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	List(ctx context.Context) ([]entity.Category, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	UpdateTitle(ctx context.Context, id, title string) error
	SetIcon(ctx context.Context, id, assetID string) error
}
